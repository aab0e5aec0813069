package delete_rental

import (
	"context"

	deleteRental "github.com/m04kA/SMC-RentalService/internal/usecase/delete_rental"
)

type DeleteRentalUseCase interface {
	Execute(ctx context.Context, req *deleteRental.Request) (*deleteRental.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
