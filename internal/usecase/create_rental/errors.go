package create_rental

import "errors"

var (
	// ErrPermissionDenied возвращается, когда операцию вызывает не клиент
	ErrPermissionDenied = errors.New("create_rental: permission denied")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_rental: client not found")

	// ErrVehicleNotFound возвращается, когда машина не найдена
	ErrVehicleNotFound = errors.New("create_rental: vehicle not found")

	// ErrStationNotFound возвращается, когда станция выдачи не найдена
	ErrStationNotFound = errors.New("create_rental: pickup station not found")

	// ErrStationInactive возвращается, когда станция выдачи не активна
	ErrStationInactive = errors.New("create_rental: pickup station is not active")

	// ErrInvalidInterval возвращается при некорректном интервале аренды
	ErrInvalidInterval = errors.New("create_rental: invalid rental interval")

	// ErrActiveRentalExists возвращается, когда у клиента уже есть активная аренда
	ErrActiveRentalExists = errors.New("create_rental: client already has an active rental")

	// ErrVehicleReserved возвращается, когда интервал пересекает подтвержденную бронь
	ErrVehicleReserved = errors.New("create_rental: interval overlaps a confirmed reservation")

	// ErrInsufficientFunds возвращается, когда баланса не хватает на аренду
	ErrInsufficientFunds = errors.New("create_rental: insufficient funds")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_rental: internal error")
)
