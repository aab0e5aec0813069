package set_rental_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов (ledger баланса)
type ClientRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Client, error)
	Credit(ctx context.Context, id int64, amount float64) (float64, error)
}

// VehicleRepository интерфейс репозитория машин
type VehicleRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error)
	SetStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	FindOverlapping(ctx context.Context, filter domain.ReservationOverlapFilter) ([]*domain.Reservation, error)
	CancelOverlappingPending(ctx context.Context, vehicleID int64, start, end time.Time) (int64, error)
}

// PaymentRepository интерфейс репозитория движений по балансу
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс fire-and-forget уведомлений
type Notifier interface {
	Notify(toEmail, subject, message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
