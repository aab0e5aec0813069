package domain

import "time"

// Client represents a client account with its monetary balance.
// Balance is mutated only through the ledger operations of the client
// repository (atomic debit/credit), never by direct assignment.
type Client struct {
	ID         int64
	Name       string
	Email      string
	IsVerified bool
	Balance    float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
