package update_rental_dates

import (
	"context"

	updateRentalDates "github.com/m04kA/SMC-RentalService/internal/usecase/update_rental_dates"
)

type UpdateRentalDatesUseCase interface {
	Execute(ctx context.Context, req *updateRentalDates.Request) (*updateRentalDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
