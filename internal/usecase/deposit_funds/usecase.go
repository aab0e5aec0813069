package deposit_funds

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
)

// UseCase use case пополнения баланса клиентом.
// Каждое зачисление фиксируется записью DEPOSIT в ledger движений.
type UseCase struct {
	clientRepo  ClientRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет use case пополнения баланса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Actor == nil {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}
	if req.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	// 2. Пополнение доступно только клиенту
	actor, ok := req.Actor.(domain.ClientActor)
	if !ok {
		uc.logger.Warn("DepositFunds: actor %d is not a client", req.Actor.ActorID())
		return nil, ErrPermissionDenied
	}

	uc.logger.Info("DepositFunds: client=%d, amount=%.2f", actor.ID, req.Amount)

	var (
		client  *domain.Client
		balance float64
	)

	// 3. Зачисление и запись в ledger в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		client, err = uc.clientRepo.GetForUpdate(txCtx, actor.ID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("%w: failed to lock client: %v", ErrInternal, err)
		}

		balance, err = uc.clientRepo.Credit(txCtx, client.ID, req.Amount)
		if err != nil {
			return fmt.Errorf("%w: failed to credit balance: %v", ErrInternal, err)
		}

		if _, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			ClientID: client.ID,
			Amount:   req.Amount,
			Kind:     domain.PaymentKindDeposit,
		}); err != nil {
			return fmt.Errorf("%w: failed to record deposit: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DepositFunds: client=%d credited %.2f, balance=%.2f", client.ID, req.Amount, balance)

	// 4. Уведомляем клиента (fire-and-forget)
	uc.notifier.Notify(client.Email, "Balance topped up",
		fmt.Sprintf("Your balance was topped up by %.2f. Current balance: %.2f", req.Amount, balance))

	return &Response{
		ClientID: client.ID,
		Amount:   req.Amount,
		Balance:  balance,
	}, nil
}
