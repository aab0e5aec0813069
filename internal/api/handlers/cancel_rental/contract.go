package cancel_rental

import (
	"context"

	cancelRental "github.com/m04kA/SMC-RentalService/internal/usecase/cancel_rental"
)

type CancelRentalUseCase interface {
	Execute(ctx context.Context, req *cancelRental.Request) (*cancelRental.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
