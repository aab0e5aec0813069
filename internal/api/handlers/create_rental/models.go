package create_rental

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

// CreateRentalRequest HTTP request model
type CreateRentalRequest struct {
	VehicleID       int64  `json:"vehicleId"`
	PickupStationID int64  `json:"pickupStationId"`
	StartDate       string `json:"startDate"` // "2025-10-15"
	EndDate         string `json:"endDate"`   // "2025-10-17"
}

// RentalResponse HTTP response model
type RentalResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	VehicleID       int64   `json:"vehicleId"`
	PickupStationID *int64  `json:"pickupStationId,omitempty"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
	Balance         float64 `json:"balance"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateRentalRequest) ToUseCaseRequest(actor domain.Actor) (*createRental.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createRental.Request{
		Actor:           actor,
		VehicleID:       r.VehicleID,
		PickupStationID: r.PickupStationID,
		StartDate:       startDate,
		EndDate:         endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRental.Response) *RentalResponse {
	return &RentalResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		VehicleID:       resp.VehicleID,
		PickupStationID: resp.PickupStationID,
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		TotalAmount:     resp.TotalAmount,
		Status:          resp.Status,
		Balance:         resp.Balance,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
