package set_reservation_status

import (
	"context"

	setReservationStatus "github.com/m04kA/SMC-RentalService/internal/usecase/set_reservation_status"
)

type SetReservationStatusUseCase interface {
	Execute(ctx context.Context, req *setReservationStatus.Request) (*setReservationStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
