package create_rental

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов (ledger баланса)
type ClientRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Client, error)
	Debit(ctx context.Context, id int64, amount float64) (float64, error)
}

// VehicleRepository интерфейс репозитория машин
type VehicleRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	GetActiveByClient(ctx context.Context, clientID int64) (*domain.Rental, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	FindOverlapping(ctx context.Context, filter domain.ReservationOverlapFilter) ([]*domain.Reservation, error)
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

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
