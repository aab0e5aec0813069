package notifier

import "errors"

var (
	// ErrSendFailed возвращается, когда провайдер отклонил отправку письма
	ErrSendFailed = errors.New("notifier: failed to send email")
)
