package domain

import "time"

// PaymentKind вид движения по балансу клиента
type PaymentKind string

const (
	PaymentKindDeposit PaymentKind = "DEPOSIT"
	PaymentKindRental  PaymentKind = "RENTAL"
	PaymentKindRefund  PaymentKind = "REFUND"
)

// Payment append-only запись движения по балансу.
// Пишется в той же транзакции, что и изменение баланса.
type Payment struct {
	ID       int64
	ClientID int64
	Amount   float64
	Kind     PaymentKind
	RentalID *int64

	CreatedAt time.Time
}
