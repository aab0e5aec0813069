package set_rental_status

import (
	"context"

	setRentalStatus "github.com/m04kA/SMC-RentalService/internal/usecase/set_rental_status"
)

type SetRentalStatusUseCase interface {
	Execute(ctx context.Context, req *setRentalStatus.Request) (*setRentalStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
