package deposit_funds

import "github.com/m04kA/SMC-RentalService/internal/domain"

// Request модель запроса на пополнение баланса
type Request struct {
	Actor  domain.Actor // инициатор операции (клиент)
	Amount float64      // Сумма пополнения
}

// Response модель ответа с новым балансом
type Response struct {
	ClientID int64   // ID клиента
	Amount   float64 // Зачисленная сумма
	Balance  float64 // Баланс после зачисления
}
