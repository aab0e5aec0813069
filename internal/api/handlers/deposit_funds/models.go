package deposit_funds

import (
	depositFunds "github.com/m04kA/SMC-RentalService/internal/usecase/deposit_funds"
)

// DepositFundsRequest HTTP request model
type DepositFundsRequest struct {
	Amount float64 `json:"amount"`
}

// BalanceResponse HTTP response model
type BalanceResponse struct {
	ClientID int64   `json:"clientId"`
	Amount   float64 `json:"amount"`
	Balance  float64 `json:"balance"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *depositFunds.Response) *BalanceResponse {
	return &BalanceResponse{
		ClientID: resp.ClientID,
		Amount:   resp.Amount,
		Balance:  resp.Balance,
	}
}
