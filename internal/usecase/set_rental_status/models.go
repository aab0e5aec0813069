package set_rental_status

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на смену статуса аренды менеджером
type Request struct {
	Actor     domain.Actor // инициатор операции (должен быть менеджером)
	RentalID  int64        // ID аренды
	NewStatus string       // Целевой статус (ACTIVE/COMPLETED/CANCELLED)
}

// Response модель ответа с арендой после перехода
type Response struct {
	ID              int64     // ID аренды
	ClientID        int64     // ID клиента
	VehicleID       int64     // ID машины
	ReturnStationID *int64    // ID станции возврата (если установлена)
	StartDate       time.Time // Начало аренды
	EndDate         time.Time // Конец аренды
	TotalAmount     float64   // Сумма аренды
	Status          string    // Новый статус аренды

	// CancelledReservations число PENDING броней, отмененных при активации
	CancelledReservations int64
}
