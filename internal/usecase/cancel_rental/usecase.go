package cancel_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
)

// UseCase use case отмены PENDING аренды клиентом с полным возвратом средств.
// Статус машины не трогаем: до активации она не была RENTED.
type UseCase struct {
	clientRepo  ClientRepository
	rentalRepo  RentalRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	rentalRepo RentalRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:  clientRepo,
		rentalRepo:  rentalRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет use case отмены аренды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Actor == nil || req.RentalID <= 0 {
		return nil, fmt.Errorf("%w: actor and rentalID are required", ErrInvalidInput)
	}

	// 2. Только клиент отменяет свою аренду этим путем
	actor, ok := req.Actor.(domain.ClientActor)
	if !ok {
		uc.logger.Warn("CancelRental: actor %d is not a client", req.Actor.ActorID())
		return nil, ErrPermissionDenied
	}

	uc.logger.Info("CancelRental: client=%d, rental=%d", actor.ID, req.RentalID)

	var (
		result  *domain.Rental
		client  *domain.Client
		balance float64
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку клиента
		var err error
		client, err = uc.clientRepo.GetForUpdate(txCtx, actor.ID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrPermissionDenied
			}
			return fmt.Errorf("%w: failed to lock client: %v", ErrInternal, err)
		}

		// 3.2. Загружаем аренду с блокировкой
		rental, err := uc.rentalRepo.GetByID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				return ErrRentalNotFound
			}
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		if rental.ClientID != client.ID {
			return ErrPermissionDenied
		}
		if !rental.CanBeCancelledByClient() {
			uc.logger.Warn("CancelRental: rental id=%d in status %s cannot be cancelled", rental.ID, rental.Status)
			return ErrInvalidTransition
		}

		// 3.3. Полный возврат списанной суммы
		balance, err = uc.clientRepo.Credit(txCtx, client.ID, rental.TotalAmount)
		if err != nil {
			return fmt.Errorf("%w: failed to refund balance: %v", ErrInternal, err)
		}

		if _, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			ClientID: client.ID,
			Amount:   rental.TotalAmount,
			Kind:     domain.PaymentKindRefund,
			RentalID: &rental.ID,
		}); err != nil {
			return fmt.Errorf("%w: failed to record refund: %v", ErrInternal, err)
		}

		// 3.4. Переводим аренду в CANCELLED
		if err := uc.rentalRepo.UpdateStatus(txCtx, rental.ID, domain.RentalStatusCancelled); err != nil {
			return fmt.Errorf("%w: failed to update rental status: %v", ErrInternal, err)
		}

		rental.Status = domain.RentalStatusCancelled
		result = rental
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelRental: rental id=%d cancelled, refunded %.2f, balance=%.2f",
		result.ID, result.TotalAmount, balance)

	// 4. Уведомляем клиента (fire-and-forget)
	uc.notifier.Notify(client.Email, "Rental cancelled",
		fmt.Sprintf("Your rental #%d was cancelled. Refunded: %.2f", result.ID, result.TotalAmount))

	return &Response{
		ID:          result.ID,
		ClientID:    result.ClientID,
		VehicleID:   result.VehicleID,
		StartDate:   result.StartDate,
		EndDate:     result.EndDate,
		TotalAmount: result.TotalAmount,
		Status:      string(result.Status),
		Balance:     balance,
	}, nil
}
