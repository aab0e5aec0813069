package delete_rental

import "github.com/m04kA/SMC-RentalService/internal/domain"

// Request модель запроса на удаление PENDING аренды
type Request struct {
	Actor    domain.Actor // инициатор операции (владелец или менеджер)
	RentalID int64        // ID аренды
}

// Response модель ответа после удаления
type Response struct {
	ID             int64   // ID удаленной аренды
	ClientID       int64   // ID клиента
	RefundedAmount float64 // Возвращенная сумма
}
