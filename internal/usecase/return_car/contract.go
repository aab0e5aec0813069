package return_car

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// VehicleRepository интерфейс репозитория машин
type VehicleRepository interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Vehicle, error)
	SetStatusAndStation(ctx context.Context, id int64, status domain.VehicleStatus, stationID int64) error
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	GetActiveByClient(ctx context.Context, clientID int64) (*domain.Rental, error)
	Complete(ctx context.Context, id int64, returnStationID int64) error
}

// StationRepository интерфейс репозитория станций
type StationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
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
