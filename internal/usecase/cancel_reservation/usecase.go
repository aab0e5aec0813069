package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

// UseCase use case отмены брони владельцем или менеджером.
// Бронь бесплатна, поэтому отмена не трогает баланс: удержание
// просто снимается.
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case отмены брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Actor == nil || req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: actor and reservationID are required", ErrInvalidInput)
	}

	uc.logger.Info("CancelReservation: actor=%d, reservation=%d", req.Actor.ActorID(), req.ReservationID)

	var result *domain.Reservation

	// 2. Читаем и отменяем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.1. Клиент снимает только свою бронь, менеджер - любую
		if client, ok := req.Actor.(domain.ClientActor); ok && reservation.ClientID != client.ID {
			return ErrPermissionDenied
		}

		if !reservation.CanBeCancelled() {
			return ErrAlreadyCancelled
		}

		if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, domain.ReservationStatusCancelled); err != nil {
			return fmt.Errorf("%w: failed to update reservation status: %v", ErrInternal, err)
		}

		reservation.Status = domain.ReservationStatusCancelled
		result = reservation
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelReservation: reservation id=%d cancelled", result.ID)

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		VehicleID: result.VehicleID,
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		Status:    string(result.Status),
	}, nil
}
