package set_reservation_status

import "errors"

var (
	// ErrPermissionDenied возвращается, когда статус брони меняет не менеджер
	ErrPermissionDenied = errors.New("set_reservation_status: permission denied")

	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("set_reservation_status: reservation not found")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("set_reservation_status: invalid target status")

	// ErrInvalidTransition возвращается при недопустимом переходе статусов
	ErrInvalidTransition = errors.New("set_reservation_status: status transition is not allowed")

	// ErrIntervalConflict возвращается, когда подтверждению мешает другая
	// CONFIRMED бронь или активная аренда на интервале
	ErrIntervalConflict = errors.New("set_reservation_status: interval is already held")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_reservation_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_reservation_status: internal error")
)
