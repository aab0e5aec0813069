package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// reservationTransitions допустимые переходы статусов брони.
// CONFIRMED -> PENDING запрещен, из CANCELLED переходов нет.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCancelled},
}

// IsValid returns true if the status is a known reservation status
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo returns true if the transition to the target status is allowed
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Reservation represents a vehicle hold for a future interval.
// A reservation never carries a charge; only a CONFIRMED reservation
// blocks the vehicle for its interval.
type Reservation struct {
	ID        int64
	ClientID  int64
	VehicleID int64
	StartDate time.Time
	EndDate   time.Time
	Status    ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the reserved time window
func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartDate, End: r.EndDate}
}

// ReservationOverlapFilter фильтр поиска броней, пересекающих интервал
type ReservationOverlapFilter struct {
	VehicleID int64
	Interval  Interval
	Statuses  []ReservationStatus
	ClientID  *int64 // только брони конкретного клиента (опционально)
	ExcludeID *int64 // исключить бронь из результата (проверка конфликта самой себя)
}

// IsHold возвращает true, если бронь еще удерживает интервал (PENDING или CONFIRMED)
func (r *Reservation) IsHold() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status.CanTransitionTo(ReservationStatusCancelled)
}
