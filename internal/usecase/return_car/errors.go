package return_car

import "errors"

var (
	// ErrPermissionDenied возвращается, когда машину возвращает не клиент
	ErrPermissionDenied = errors.New("return_car: permission denied")

	// ErrNoActiveRental возвращается, когда у клиента нет активной аренды
	ErrNoActiveRental = errors.New("return_car: client has no active rental")

	// ErrStationNotFound возвращается, когда станция возврата не найдена
	ErrStationNotFound = errors.New("return_car: station not found")

	// ErrStationInactive возвращается, когда станция возврата закрыта
	ErrStationInactive = errors.New("return_car: station is not active")

	// ErrNotNearStation возвращается, когда клиент находится вне геозоны станции
	ErrNotNearStation = errors.New("return_car: current position is too far from the station")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("return_car: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("return_car: internal error")
)
