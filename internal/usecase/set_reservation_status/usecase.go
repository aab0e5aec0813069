package set_reservation_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

// UseCase use case смены статуса брони менеджером.
// Подтверждение превращает мягкое PENDING удержание в жесткое:
// на одном интервале машины может быть только одна CONFIRMED бронь.
type UseCase struct {
	rentalRepo      RentalRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepo RentalRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case смены статуса брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Actor == nil || req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: actor and reservationID are required", ErrInvalidInput)
	}

	// 2. Смена статуса доступна только менеджеру
	actor, ok := req.Actor.(domain.ManagerActor)
	if !ok {
		uc.logger.Warn("SetReservationStatus: actor %d is not a manager", req.Actor.ActorID())
		return nil, ErrPermissionDenied
	}

	// 3. Парсим целевой статус
	target := domain.ReservationStatus(req.NewStatus)
	if !target.IsValid() {
		uc.logger.Warn("SetReservationStatus: invalid target status %q", req.NewStatus)
		return nil, ErrInvalidStatus
	}

	uc.logger.Info("SetReservationStatus: manager=%d, reservation=%d, target=%s", actor.ID, req.ReservationID, target)

	var result *domain.Reservation

	// 4. Выполняем переход в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем бронь с блокировкой
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 4.2. Проверяем переход по таблице состояний
		if !reservation.Status.CanTransitionTo(target) {
			uc.logger.Warn("SetReservationStatus: transition %s -> %s is not allowed", reservation.Status, target)
			return ErrInvalidTransition
		}

		// 4.3. Подтверждению мешает чужое жесткое удержание интервала
		if target == domain.ReservationStatusConfirmed {
			if err := uc.checkIntervalFree(txCtx, reservation); err != nil {
				return err
			}
		}

		if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, target); err != nil {
			return fmt.Errorf("%w: failed to update reservation status: %v", ErrInternal, err)
		}

		reservation.Status = target
		result = reservation
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetReservationStatus: reservation id=%d moved to %s", result.ID, result.Status)

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		VehicleID: result.VehicleID,
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		Status:    string(result.Status),
	}, nil
}

// checkIntervalFree проверяет, что интервал брони не удержан другой
// CONFIRMED бронью и не занят активной арендой
func (uc *UseCase) checkIntervalFree(ctx context.Context, reservation *domain.Reservation) error {
	holds, err := uc.reservationRepo.FindOverlapping(ctx, domain.ReservationOverlapFilter{
		VehicleID: reservation.VehicleID,
		Interval:  reservation.Interval(),
		Statuses:  []domain.ReservationStatus{domain.ReservationStatusConfirmed},
		ExcludeID: &reservation.ID,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to check reservations: %v", ErrInternal, err)
	}
	if len(holds) > 0 {
		uc.logger.Warn("SetReservationStatus: reservation id=%d conflicts with confirmed hold id=%d",
			reservation.ID, holds[0].ID)
		return ErrIntervalConflict
	}

	rentals, err := uc.rentalRepo.FindOverlapping(ctx, reservation.VehicleID,
		reservation.StartDate, reservation.EndDate, domain.RentalHoldStatuses, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to check rentals: %v", ErrInternal, err)
	}
	if len(rentals) > 0 {
		uc.logger.Warn("SetReservationStatus: reservation id=%d conflicts with active rental id=%d",
			reservation.ID, rentals[0].ID)
		return ErrIntervalConflict
	}

	return nil
}
