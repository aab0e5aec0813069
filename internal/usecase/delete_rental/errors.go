package delete_rental

import "errors"

var (
	// ErrPermissionDenied возвращается, когда аренду удаляет посторонний клиент
	ErrPermissionDenied = errors.New("delete_rental: permission denied")

	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("delete_rental: rental not found")

	// ErrNotDeletable возвращается при удалении не-PENDING аренды.
	// История активных и завершенных аренд не удаляется.
	ErrNotDeletable = errors.New("delete_rental: only pending rentals can be deleted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_rental: internal error")
)
