package cancel_rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на отмену аренды клиентом
type Request struct {
	Actor    domain.Actor // инициатор операции (владелец аренды)
	RentalID int64        // ID аренды
}

// Response модель ответа с отмененной арендой
type Response struct {
	ID          int64     // ID аренды
	ClientID    int64     // ID клиента
	VehicleID   int64     // ID машины
	StartDate   time.Time // Начало аренды
	EndDate     time.Time // Конец аренды
	TotalAmount float64   // Возвращенная сумма
	Status      string    // Статус аренды (CANCELLED)
	Balance     float64   // Баланс клиента после возврата
}
