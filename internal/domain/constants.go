package domain

// DateFormat формат дат интервалов аренды и брони в API
const DateFormat = "2006-01-02"

// Default booking configuration values
const (
	// DefaultMaxReturnDistanceKm радиус геозоны возврата по умолчанию
	DefaultMaxReturnDistanceKm = 1.0
)

// RentalHoldStatuses статусы аренды, блокирующие машину на интервале.
// Только ACTIVE аренда участвует в проверке доступности.
var RentalHoldStatuses = []RentalStatus{
	RentalStatusActive,
}

// ReservationHoldStatuses статусы брони, удерживающие интервал
var ReservationHoldStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
}
