package set_rental_status

import "errors"

var (
	// ErrPermissionDenied возвращается, когда статус меняет не менеджер
	ErrPermissionDenied = errors.New("set_rental_status: permission denied")

	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("set_rental_status: rental not found")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("set_rental_status: invalid rental status")

	// ErrInvalidTransition возвращается при недопустимом переходе статусов
	ErrInvalidTransition = errors.New("set_rental_status: invalid status transition")

	// ErrVehicleReserved возвращается, когда интервал аренды пересекает подтвержденную бронь
	ErrVehicleReserved = errors.New("set_rental_status: interval overlaps a confirmed reservation")

	// ErrVehicleUnavailable возвращается, когда машина уже выдана по другой аренде
	ErrVehicleUnavailable = errors.New("set_rental_status: vehicle is already rented")

	// ErrMissingReturnStation возвращается при завершении аренды без станции возврата
	ErrMissingReturnStation = errors.New("set_rental_status: return station is not set")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_rental_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_rental_status: internal error")
)
