package update_rental_dates

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модель запроса на изменение дат аренды.
// Незаданная граница (nil) остается прежней.
type Request struct {
	Actor    domain.Actor // инициатор операции (владелец аренды)
	RentalID int64        // ID аренды
	NewStart *time.Time   // Новое начало аренды (опционально)
	NewEnd   *time.Time   // Новый конец аренды (опционально)
}

// Response модель ответа с обновленной арендой
type Response struct {
	ID          int64     // ID аренды
	ClientID    int64     // ID клиента
	VehicleID   int64     // ID машины
	StartDate   time.Time // Начало аренды
	EndDate     time.Time // Конец аренды
	TotalAmount float64   // Пересчитанная сумма
	Status      string    // Статус аренды
	Balance     float64   // Баланс клиента после доплаты/возврата
}
