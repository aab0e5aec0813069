package set_reservation_status

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на смену статуса брони менеджером
type Request struct {
	Actor         domain.Actor // инициатор операции (менеджер)
	ReservationID int64        // ID брони
	NewStatus     string       // Целевой статус (CONFIRMED или CANCELLED)
}

// Response модель ответа с обновленной бронью
type Response struct {
	ID        int64     // ID брони
	ClientID  int64     // ID клиента
	VehicleID int64     // ID машины
	StartDate time.Time // Начало интервала
	EndDate   time.Time // Конец интервала
	Status    string    // Новый статус брони
}
