package cancel_rental

import "errors"

var (
	// ErrPermissionDenied возвращается, когда аренду отменяет не её владелец
	ErrPermissionDenied = errors.New("cancel_rental: permission denied")

	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("cancel_rental: rental not found")

	// ErrInvalidTransition возвращается при отмене не-PENDING аренды.
	// Активная аренда завершается только возвратом машины на станцию.
	ErrInvalidTransition = errors.New("cancel_rental: only pending rentals can be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_rental: internal error")
)
