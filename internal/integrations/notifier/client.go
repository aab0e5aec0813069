package notifier

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client email-уведомления через SendGrid.
// Уведомления fire-and-forget: ядро бронирования не зависит от их доставки,
// ошибки отправки только логируются.
type Client struct {
	sg        *sendgrid.Client
	fromEmail string
	fromName  string
	enabled   bool
	logger    Logger
}

// NewClient создает клиента уведомлений.
// При enabled=false все отправки превращаются в no-op.
func NewClient(apiKey, fromEmail, fromName string, enabled bool, logger Logger) *Client {
	return &Client{
		sg:        sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   enabled,
		logger:    logger,
	}
}

// Notify отправляет письмо асинхронно. Ошибки доставки логируются и не
// возвращаются вызывающему.
func (c *Client) Notify(toEmail, subject, message string) {
	if !c.enabled || toEmail == "" {
		return
	}

	go func() {
		if err := c.send(toEmail, subject, message); err != nil {
			c.logger.Warn("Notifier: failed to send email to %s: %v", toEmail, err)
		}
	}()
}

func (c *Client) send(toEmail, subject, message string) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail("", toEmail)
	email := mail.NewSingleEmail(from, subject, to, message, message)

	resp, err := c.sg.Send(email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: status=%d body=%s", ErrSendFailed, resp.StatusCode, resp.Body)
	}

	return nil
}
