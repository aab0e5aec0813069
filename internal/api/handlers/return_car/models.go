package return_car

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	returnCar "github.com/m04kA/SMC-RentalService/internal/usecase/return_car"
)

// ReturnCarRequest HTTP request model
type ReturnCarRequest struct {
	StationID int64   `json:"stationId"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RentalResponse HTTP response model
type RentalResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	VehicleID       int64   `json:"vehicleId"`
	ReturnStationID int64   `json:"returnStationId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	TotalAmount     float64 `json:"totalAmount"`
	Status          string  `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *returnCar.Response) *RentalResponse {
	return &RentalResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		VehicleID:       resp.VehicleID,
		ReturnStationID: resp.ReturnStationID,
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		TotalAmount:     resp.TotalAmount,
		Status:          resp.Status,
	}
}
