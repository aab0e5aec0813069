package delete_rental

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов (ledger баланса)
type ClientRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Client, error)
	Credit(ctx context.Context, id int64, amount float64) (float64, error)
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Delete(ctx context.Context, id int64) error
}

// PaymentRepository интерфейс репозитория движений по балансу
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
