package create_rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на создание аренды
type Request struct {
	Actor           domain.Actor // инициатор операции (должен быть клиентом)
	VehicleID       int64        // ID машины
	PickupStationID int64        // ID станции выдачи
	StartDate       time.Time    // Начало аренды
	EndDate         time.Time    // Конец аренды
}

// Response модель ответа с созданной арендой
type Response struct {
	ID              int64     // ID созданной аренды
	ClientID        int64     // ID клиента
	VehicleID       int64     // ID машины
	PickupStationID *int64    // ID станции выдачи
	StartDate       time.Time // Начало аренды
	EndDate         time.Time // Конец аренды
	TotalAmount     float64   // Списанная сумма
	Status          string    // Статус аренды (PENDING)
	Balance         float64   // Баланс клиента после списания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
