package create_reservation

import "errors"

var (
	// ErrPermissionDenied возвращается, когда бронь создает не клиент
	ErrPermissionDenied = errors.New("create_reservation: permission denied")

	// ErrClientNotVerified возвращается, когда клиент не прошел верификацию
	ErrClientNotVerified = errors.New("create_reservation: client is not verified")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_reservation: client not found")

	// ErrVehicleNotFound возвращается, когда машина не найдена
	ErrVehicleNotFound = errors.New("create_reservation: vehicle not found")

	// ErrInvalidInterval возвращается при некорректном интервале брони
	ErrInvalidInterval = errors.New("create_reservation: invalid reservation interval")

	// ErrDuplicateHold возвращается, когда у клиента уже есть удержание
	// этой машины на пересекающемся интервале
	ErrDuplicateHold = errors.New("create_reservation: overlapping hold already exists")

	// ErrVehicleBusy возвращается, когда машина занята активной арендой на интервале
	ErrVehicleBusy = errors.New("create_reservation: vehicle has an active rental in the interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
