package set_reservation_status

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	setReservationStatus "github.com/m04kA/SMC-RentalService/internal/usecase/set_reservation_status"
)

// SetReservationStatusRequest HTTP request model
type SetReservationStatusRequest struct {
	Status string `json:"status"` // CONFIRMED / CANCELLED
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	VehicleID int64  `json:"vehicleId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setReservationStatus.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		ClientID:  resp.ClientID,
		VehicleID: resp.VehicleID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Status:    resp.Status,
	}
}
