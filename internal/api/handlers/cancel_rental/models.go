package cancel_rental

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	cancelRental "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_rental"
)

// RentalResponse HTTP response model
type RentalResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	VehicleID   int64   `json:"vehicleId"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TotalAmount float64 `json:"totalAmount"`
	Status      string  `json:"status"`
	Balance     float64 `json:"balance"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelRental.Response) *RentalResponse {
	return &RentalResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		VehicleID:   resp.VehicleID,
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		EndDate:     resp.EndDate.Format(domain.DateFormat),
		TotalAmount: resp.TotalAmount,
		Status:      resp.Status,
		Balance:     resp.Balance,
	}
}
