package deposit_funds

import (
	"context"

	depositFunds "github.com/m04kA/SMC-RentalService/internal/usecase/deposit_funds"
)

type DepositFundsUseCase interface {
	Execute(ctx context.Context, req *depositFunds.Request) (*depositFunds.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
