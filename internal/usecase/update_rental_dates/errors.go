package update_rental_dates

import "errors"

var (
	// ErrPermissionDenied возвращается, когда аренду меняет не её владелец
	ErrPermissionDenied = errors.New("update_rental_dates: permission denied")

	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("update_rental_dates: rental not found")

	// ErrInvalidTransition возвращается, когда даты меняют не у PENDING аренды
	ErrInvalidTransition = errors.New("update_rental_dates: dates can only be changed while pending")

	// ErrInvalidInterval возвращается при некорректном новом интервале
	ErrInvalidInterval = errors.New("update_rental_dates: invalid rental interval")

	// ErrVehicleReserved возвращается, когда новый интервал пересекает подтвержденную бронь
	ErrVehicleReserved = errors.New("update_rental_dates: interval overlaps a confirmed reservation")

	// ErrInsufficientFunds возвращается, когда не хватает средств на доплату
	ErrInsufficientFunds = errors.New("update_rental_dates: insufficient funds")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_rental_dates: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_rental_dates: internal error")
)
