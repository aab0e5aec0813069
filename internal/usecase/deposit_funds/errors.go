package deposit_funds

import "errors"

var (
	// ErrPermissionDenied возвращается, когда баланс пополняет не клиент
	ErrPermissionDenied = errors.New("deposit_funds: permission denied")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("deposit_funds: client not found")

	// ErrNonPositiveAmount возвращается при нулевой или отрицательной сумме
	ErrNonPositiveAmount = errors.New("deposit_funds: amount must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("deposit_funds: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("deposit_funds: internal error")
)
