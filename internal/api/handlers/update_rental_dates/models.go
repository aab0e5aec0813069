package update_rental_dates

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	updateRentalDates "github.com/m04kA/SMC-RentalService/internal/usecase/update_rental_dates"
)

// UpdateRentalDatesRequest HTTP request model.
// Незаданная граница остается прежней.
type UpdateRentalDatesRequest struct {
	StartDate *string `json:"startDate,omitempty"` // "2025-10-15"
	EndDate   *string `json:"endDate,omitempty"`   // "2025-10-17"
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateRentalDatesRequest) ToUseCaseRequest(actor domain.Actor, rentalID int64) (*updateRentalDates.Request, error) {
	req := &updateRentalDates.Request{
		Actor:    actor,
		RentalID: rentalID,
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return nil, err
		}
		req.NewStart = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.NewEnd = &endDate
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateRentalDates.Response) *RentalResponse {
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
