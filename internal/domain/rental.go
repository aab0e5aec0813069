package domain

import "time"

// RentalStatus represents the status of a rental
type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "PENDING"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// rentalTransitions допустимые переходы статусов аренды.
// ACTIVE нельзя отменить напрямую - только через возврат машины на станцию.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusPending: {RentalStatusActive, RentalStatusCancelled},
	RentalStatusActive:  {RentalStatusCompleted},
}

// IsValid returns true if the status is a known rental status
func (s RentalStatus) IsValid() bool {
	switch s {
	case RentalStatusPending, RentalStatusActive, RentalStatusCompleted, RentalStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo returns true if the transition to the target status is allowed
func (s RentalStatus) CanTransitionTo(target RentalStatus) bool {
	for _, allowed := range rentalTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no transition out of the status is possible
func (s RentalStatus) IsTerminal() bool {
	return len(rentalTransitions[s]) == 0
}

// Rental represents a paid vehicle rental.
// Owns the charge lifecycle: TotalAmount is debited from the client's
// balance at creation and adjusted on date changes.
type Rental struct {
	ID              int64
	ClientID        int64
	VehicleID       int64
	PickupStationID *int64
	ReturnStationID *int64
	StartDate       time.Time
	EndDate         time.Time
	TotalAmount     float64
	Status          RentalStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the rental time window
func (r *Rental) Interval() Interval {
	return Interval{Start: r.StartDate, End: r.EndDate}
}

// IsActive returns true if the rental is currently active
func (r *Rental) IsActive() bool {
	return r.Status == RentalStatusActive
}

// CanBeCancelledByClient возвращает true, если клиент может отменить аренду.
// Отмена возможна только из PENDING: активная аренда завершается возвратом машины.
func (r *Rental) CanBeCancelledByClient() bool {
	return r.Status == RentalStatusPending
}

// CanBeDeleted returns true if the rental record may be removed entirely
func (r *Rental) CanBeDeleted() bool {
	return r.Status == RentalStatusPending
}

// CanUpdateDates returns true if the rental dates may still be changed
func (r *Rental) CanUpdateDates() bool {
	return r.Status == RentalStatusPending
}
