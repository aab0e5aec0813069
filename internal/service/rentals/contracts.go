package rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.RentalStatus) ([]*domain.Rental, error)
}

// PaymentRepository интерфейс репозитория движений по балансу
type PaymentRepository interface {
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
