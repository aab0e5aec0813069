package delete_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
)

// UseCase use case физического удаления PENDING аренды.
// Доступно владельцу и менеджеру. Списанная сумма возвращается на баланс,
// запись возврата остается в ledger движений.
type UseCase struct {
	clientRepo  ClientRepository
	rentalRepo  RentalRepository
	paymentRepo PaymentRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	rentalRepo RentalRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:  clientRepo,
		rentalRepo:  rentalRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case удаления аренды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Actor == nil || req.RentalID <= 0 {
		return nil, fmt.Errorf("%w: actor and rentalID are required", ErrInvalidInput)
	}

	uc.logger.Info("DeleteRental: actor=%d, rental=%d", req.Actor.ActorID(), req.RentalID)

	var result *Response

	// 2. Возврат средств и удаление в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем аренду с блокировкой
		rental, err := uc.rentalRepo.GetByID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				return ErrRentalNotFound
			}
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		// 2.2. Клиент удаляет только свою аренду, менеджер - любую
		if client, ok := req.Actor.(domain.ClientActor); ok && rental.ClientID != client.ID {
			return ErrPermissionDenied
		}

		if !rental.CanBeDeleted() {
			uc.logger.Warn("DeleteRental: rental id=%d in status %s cannot be deleted", rental.ID, rental.Status)
			return ErrNotDeletable
		}

		// 2.3. Блокируем клиента и возвращаем средства
		if _, err := uc.clientRepo.GetForUpdate(txCtx, rental.ClientID); err != nil {
			return fmt.Errorf("%w: failed to lock client: %v", ErrInternal, err)
		}
		if _, err := uc.clientRepo.Credit(txCtx, rental.ClientID, rental.TotalAmount); err != nil {
			return fmt.Errorf("%w: failed to refund balance: %v", ErrInternal, err)
		}

		if _, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			ClientID: rental.ClientID,
			Amount:   rental.TotalAmount,
			Kind:     domain.PaymentKindRefund,
			RentalID: &rental.ID,
		}); err != nil {
			return fmt.Errorf("%w: failed to record refund: %v", ErrInternal, err)
		}

		// 2.4. Удаляем запись аренды
		if err := uc.rentalRepo.Delete(txCtx, rental.ID); err != nil {
			return fmt.Errorf("%w: failed to delete rental: %v", ErrInternal, err)
		}

		result = &Response{
			ID:             rental.ID,
			ClientID:       rental.ClientID,
			RefundedAmount: rental.TotalAmount,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DeleteRental: rental id=%d deleted, refunded %.2f", result.ID, result.RefundedAmount)

	return result, nil
}
