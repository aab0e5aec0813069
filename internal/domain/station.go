package domain

import "time"

// Station represents a pickup/return station.
// The booking core only reads stations: existence, активность и координаты
// для проверки геозоны при возврате машины.
type Station struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
