package set_rental_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
)

// UseCase use case смены статуса аренды менеджером.
// Статус машины движется синхронно со статусом аренды:
// ACTIVE - машина RENTED, COMPLETED/CANCELLED - машина AVAILABLE.
type UseCase struct {
	clientRepo      ClientRepository
	vehicleRepo     VehicleRepository
	rentalRepo      RentalRepository
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	vehicleRepo VehicleRepository,
	rentalRepo RentalRepository,
	reservationRepo ReservationRepository,
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:      clientRepo,
		vehicleRepo:     vehicleRepo,
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет use case смены статуса аренды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Actor == nil || req.RentalID <= 0 {
		return nil, fmt.Errorf("%w: actor and rentalID are required", ErrInvalidInput)
	}

	// 2. Смена статуса доступна только менеджеру
	actor, ok := req.Actor.(domain.ManagerActor)
	if !ok {
		uc.logger.Warn("SetRentalStatus: actor %d is not a manager", req.Actor.ActorID())
		return nil, ErrPermissionDenied
	}

	// 3. Парсим целевой статус
	target := domain.RentalStatus(req.NewStatus)
	if !target.IsValid() {
		uc.logger.Warn("SetRentalStatus: invalid target status %q", req.NewStatus)
		return nil, ErrInvalidStatus
	}

	uc.logger.Info("SetRentalStatus: manager=%d, rental=%d, target=%s", actor.ID, req.RentalID, target)

	// 4. Для отмены узнаем владельца предварительным чтением без блокировки:
	// внутри транзакции клиент блокируется ДО аренды - тот же порядок захвата,
	// что и в клиентских флоу, иначе конкурентная отмена менеджером и
	// изменение дат клиентом могут взаимно заблокироваться.
	var ownerID int64
	if target == domain.RentalStatusCancelled {
		rental, err := uc.rentalRepo.GetByID(ctx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				return nil, ErrRentalNotFound
			}
			return nil, fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}
		ownerID = rental.ClientID
	}

	var (
		result      *domain.Rental
		cancelled   int64
		notifyEmail string
	)

	// 5. Выполняем переход в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. При отмене первой блокируется строка клиента
		var client *domain.Client
		if target == domain.RentalStatusCancelled {
			var err error
			client, err = uc.clientRepo.GetForUpdate(txCtx, ownerID)
			if err != nil {
				return fmt.Errorf("%w: failed to lock client: %v", ErrInternal, err)
			}
		}

		// 5.2. Загружаем аренду с блокировкой
		rental, err := uc.rentalRepo.GetByID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				return ErrRentalNotFound
			}
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		// 5.3. Проверяем переход по таблице состояний
		if !rental.Status.CanTransitionTo(target) {
			uc.logger.Warn("SetRentalStatus: transition %s -> %s is not allowed", rental.Status, target)
			return ErrInvalidTransition
		}

		switch target {
		case domain.RentalStatusActive:
			cancelled, err = uc.activate(txCtx, rental)
		case domain.RentalStatusCompleted:
			err = uc.complete(txCtx, rental)
		case domain.RentalStatusCancelled:
			notifyEmail, err = uc.cancel(txCtx, rental, client)
		default:
			// PENDING недостижим: таблица переходов не ведет обратно в PENDING
			return ErrInvalidTransition
		}
		if err != nil {
			return err
		}

		rental.Status = target
		result = rental
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetRentalStatus: rental id=%d moved to %s", result.ID, result.Status)

	if notifyEmail != "" {
		uc.notifier.Notify(notifyEmail, "Rental cancelled",
			fmt.Sprintf("Your rental #%d was cancelled by the manager. Refunded: %.2f", result.ID, result.TotalAmount))
	}

	return &Response{
		ID:                    result.ID,
		ClientID:              result.ClientID,
		VehicleID:             result.VehicleID,
		ReturnStationID:       result.ReturnStationID,
		StartDate:             result.StartDate,
		EndDate:               result.EndDate,
		TotalAmount:           result.TotalAmount,
		Status:                string(result.Status),
		CancelledReservations: cancelled,
	}, nil
}

// activate выдает машину: PENDING -> ACTIVE.
// Подтвержденная бронь на интервале блокирует активацию; PENDING брони
// на интервале автоматически отменяются (они не оплачены), чтобы не
// оставлять протухшие удержания.
func (uc *UseCase) activate(ctx context.Context, rental *domain.Rental) (int64, error) {
	vehicle, err := uc.vehicleRepo.GetForUpdate(ctx, rental.VehicleID)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to lock vehicle: %v", ErrInternal, err)
	}

	if vehicle.Status == domain.VehicleStatusRented {
		uc.logger.Warn("SetRentalStatus: vehicle id=%d is already rented", vehicle.ID)
		return 0, ErrVehicleUnavailable
	}

	holds, err := uc.reservationRepo.FindOverlapping(ctx, domain.ReservationOverlapFilter{
		VehicleID: vehicle.ID,
		Interval:  rental.Interval(),
		Statuses:  []domain.ReservationStatus{domain.ReservationStatusConfirmed},
	})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to check reservations: %v", ErrInternal, err)
	}
	if len(holds) > 0 {
		return 0, ErrVehicleReserved
	}

	cancelled, err := uc.reservationRepo.CancelOverlappingPending(ctx, vehicle.ID, rental.StartDate, rental.EndDate)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to cancel pending reservations: %v", ErrInternal, err)
	}
	if cancelled > 0 {
		uc.logger.Info("SetRentalStatus: auto-cancelled %d pending reservations for vehicle=%d", cancelled, vehicle.ID)
	}

	if err := uc.rentalRepo.UpdateStatus(ctx, rental.ID, domain.RentalStatusActive); err != nil {
		return 0, fmt.Errorf("%w: failed to update rental status: %v", ErrInternal, err)
	}
	if err := uc.vehicleRepo.SetStatus(ctx, vehicle.ID, domain.VehicleStatusRented); err != nil {
		return 0, fmt.Errorf("%w: failed to update vehicle status: %v", ErrInternal, err)
	}

	return cancelled, nil
}

// complete завершает аренду: ACTIVE -> COMPLETED.
// Станция возврата должна быть уже установлена обычным флоу возврата машины.
func (uc *UseCase) complete(ctx context.Context, rental *domain.Rental) error {
	if rental.ReturnStationID == nil {
		uc.logger.Warn("SetRentalStatus: rental id=%d has no return station", rental.ID)
		return ErrMissingReturnStation
	}

	if err := uc.rentalRepo.UpdateStatus(ctx, rental.ID, domain.RentalStatusCompleted); err != nil {
		return fmt.Errorf("%w: failed to update rental status: %v", ErrInternal, err)
	}
	if err := uc.vehicleRepo.SetStatus(ctx, rental.VehicleID, domain.VehicleStatusAvailable); err != nil {
		return fmt.Errorf("%w: failed to update vehicle status: %v", ErrInternal, err)
	}

	return nil
}

// cancel отменяет PENDING аренду с полным возвратом средств.
// Строка клиента уже заблокирована вызывающим кодом до блокировки аренды.
// ACTIVE сюда не попадает: таблица переходов запрещает ACTIVE -> CANCELLED.
func (uc *UseCase) cancel(ctx context.Context, rental *domain.Rental, client *domain.Client) (string, error) {
	if _, err := uc.clientRepo.Credit(ctx, client.ID, rental.TotalAmount); err != nil {
		return "", fmt.Errorf("%w: failed to refund balance: %v", ErrInternal, err)
	}

	if _, err := uc.paymentRepo.Create(ctx, &domain.Payment{
		ClientID: client.ID,
		Amount:   rental.TotalAmount,
		Kind:     domain.PaymentKindRefund,
		RentalID: &rental.ID,
	}); err != nil {
		return "", fmt.Errorf("%w: failed to record refund: %v", ErrInternal, err)
	}

	if err := uc.rentalRepo.UpdateStatus(ctx, rental.ID, domain.RentalStatusCancelled); err != nil {
		return "", fmt.Errorf("%w: failed to update rental status: %v", ErrInternal, err)
	}
	if err := uc.vehicleRepo.SetStatus(ctx, rental.VehicleID, domain.VehicleStatusAvailable); err != nil {
		return "", fmt.Errorf("%w: failed to update vehicle status: %v", ErrInternal, err)
	}

	return client.Email, nil
}
