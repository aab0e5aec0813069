package return_car

import (
	"context"

	returnCar "github.com/m04kA/SMC-RentalService/internal/usecase/return_car"
)

type ReturnCarUseCase interface {
	Execute(ctx context.Context, req *returnCar.Request) (*returnCar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
