package domain

import "time"

// VehicleStatus represents the status of a vehicle
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
)

// IsValid returns true if the status is a known vehicle status
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusAvailable, VehicleStatusRented, VehicleStatusMaintenance:
		return true
	}
	return false
}

// Vehicle represents a rentable vehicle in the fleet.
// Status is mutated only by the booking flows, in lockstep with the
// status of the associated rental.
type Vehicle struct {
	ID               int64
	Brand            string
	Model            string
	DailyPrice       float64
	Status           VehicleStatus
	CurrentStationID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the vehicle is free for allocation
func (v *Vehicle) IsAvailable() bool {
	return v.Status == VehicleStatusAvailable
}
