package cancel_reservation

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на отмену брони
type Request struct {
	Actor         domain.Actor // инициатор операции (владелец или менеджер)
	ReservationID int64        // ID брони
}

// Response модель ответа с отмененной бронью
type Response struct {
	ID        int64     // ID брони
	ClientID  int64     // ID клиента
	VehicleID int64     // ID машины
	StartDate time.Time // Начало интервала
	EndDate   time.Time // Конец интервала
	Status    string    // Статус брони (CANCELLED)
}
