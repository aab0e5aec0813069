package return_car

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на возврат машины на станцию
type Request struct {
	Actor     domain.Actor // инициатор операции (клиент с активной арендой)
	StationID int64        // ID станции возврата
	Latitude  float64      // Текущая широта клиента
	Longitude float64      // Текущая долгота клиента
}

// Response модель ответа с завершенной арендой
type Response struct {
	ID              int64     // ID аренды
	ClientID        int64     // ID клиента
	VehicleID       int64     // ID машины
	ReturnStationID int64     // ID станции возврата
	StartDate       time.Time // Начало аренды
	EndDate         time.Time // Конец аренды
	TotalAmount     float64   // Стоимость аренды
	Status          string    // Статус аренды (COMPLETED)
}
