package set_rental_status

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	setRentalStatus "github.com/m04kA/SMC-RentalService/internal/usecase/set_rental_status"
)

// SetRentalStatusRequest HTTP request model
type SetRentalStatusRequest struct {
	Status string `json:"status"` // ACTIVE / COMPLETED / CANCELLED
}

// RentalResponse HTTP response model
type RentalResponse struct {
	ID                    int64   `json:"id"`
	ClientID              int64   `json:"clientId"`
	VehicleID             int64   `json:"vehicleId"`
	ReturnStationID       *int64  `json:"returnStationId,omitempty"`
	StartDate             string  `json:"startDate"`
	EndDate               string  `json:"endDate"`
	TotalAmount           float64 `json:"totalAmount"`
	Status                string  `json:"status"`
	CancelledReservations int64   `json:"cancelledReservations"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setRentalStatus.Response) *RentalResponse {
	return &RentalResponse{
		ID:                    resp.ID,
		ClientID:              resp.ClientID,
		VehicleID:             resp.VehicleID,
		ReturnStationID:       resp.ReturnStationID,
		StartDate:             resp.StartDate.Format(domain.DateFormat),
		EndDate:               resp.EndDate.Format(domain.DateFormat),
		TotalAmount:           resp.TotalAmount,
		Status:                resp.Status,
		CancelledReservations: resp.CancelledReservations,
	}
}
