package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid rental status")
)

// Request модели

// GetUserRentalsRequest запрос на получение аренд клиента
type GetUserRentalsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// RentalResponse ответ с данными аренды
type RentalResponse struct {
	ID              int64     `json:"id"`
	ClientID        int64     `json:"clientId"`
	VehicleID       int64     `json:"vehicleId"`
	PickupStationID *int64    `json:"pickupStationId,omitempty"`
	ReturnStationID *int64    `json:"returnStationId,omitempty"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	TotalAmount     float64   `json:"totalAmount"`
	Status          string    `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RentalListResponse ответ со списком аренд
type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
}

// PaymentResponse ответ с записью движения по балансу
type PaymentResponse struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"clientId"`
	Amount    float64   `json:"amount"`
	Kind      string    `json:"kind"`
	RentalID  *int64    `json:"rentalId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentListResponse ответ со списком движений
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// Методы конвертации

// FromDomainRental конвертирует domain модель в DTO
func FromDomainRental(r *domain.Rental) *RentalResponse {
	if r == nil {
		return nil
	}

	return &RentalResponse{
		ID:              r.ID,
		ClientID:        r.ClientID,
		VehicleID:       r.VehicleID,
		PickupStationID: r.PickupStationID,
		ReturnStationID: r.ReturnStationID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TotalAmount:     r.TotalAmount,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainRentalList конвертирует список domain моделей в DTO
func FromDomainRentalList(rentals []*domain.Rental) *RentalListResponse {
	resp := &RentalListResponse{
		Rentals: make([]RentalResponse, 0, len(rentals)),
	}

	for _, rental := range rentals {
		if r := FromDomainRental(rental); r != nil {
			resp.Rentals = append(resp.Rentals, *r)
		}
	}

	return resp
}

// FromDomainPaymentList конвертирует список движений в DTO
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}

	for _, p := range payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:        p.ID,
			ClientID:  p.ClientID,
			Amount:    p.Amount,
			Kind:      string(p.Kind),
			RentalID:  p.RentalID,
			CreatedAt: p.CreatedAt,
		})
	}

	return resp
}

// ToDomainRentalStatus конвертирует строку в domain.RentalStatus с валидацией
func ToDomainRentalStatus(status string) (domain.RentalStatus, error) {
	s := domain.RentalStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
