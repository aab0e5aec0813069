package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
)

// UseCase use case создания брони машины на будущий интервал.
// Бронь создается в PENDING и не списывает деньги. Разные клиенты
// могут держать PENDING брони на пересекающихся интервалах: конфликт
// разрешается на подтверждении.
type UseCase struct {
	clientRepo      ClientRepository
	vehicleRepo     VehicleRepository
	rentalRepo      RentalRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	vehicleRepo VehicleRepository,
	rentalRepo RentalRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		clientRepo:      clientRepo,
		vehicleRepo:     vehicleRepo,
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Бронь создает только клиент
	actor, ok := req.Actor.(domain.ClientActor)
	if !ok {
		uc.logger.Warn("CreateReservation: actor %d is not a client", req.Actor.ActorID())
		return nil, ErrPermissionDenied
	}

	// 3. Проверяем интервал относительно текущего времени
	interval := domain.Interval{Start: req.StartDate, End: req.EndDate}
	if err := validateInterval(interval, uc.timeProvider.Now()); err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: client=%d, vehicle=%d, interval=[%s, %s]",
		actor.ID, req.VehicleID, req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))

	// 4. Бронировать могут только верифицированные клиенты
	client, err := uc.clientRepo.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	if !client.IsVerified {
		uc.logger.Warn("CreateReservation: client=%d is not verified", client.ID)
		return nil, ErrClientNotVerified
	}

	var result *domain.Reservation

	// 5. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем машину на время проверок
		vehicle, err := uc.vehicleRepo.GetForUpdate(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: failed to lock vehicle: %v", ErrInternal, err)
		}

		// 5.2. У клиента не должно быть своего удержания этой машины на интервале
		own, err := uc.reservationRepo.FindOverlapping(txCtx, domain.ReservationOverlapFilter{
			VehicleID: vehicle.ID,
			Interval:  interval,
			Statuses:  domain.ReservationHoldStatuses,
			ClientID:  &client.ID,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to check own reservations: %v", ErrInternal, err)
		}
		if len(own) > 0 {
			return ErrDuplicateHold
		}

		// 5.3. Активная аренда на интервале делает бронь бессмысленной
		rentals, err := uc.rentalRepo.FindOverlapping(txCtx, vehicle.ID, req.StartDate, req.EndDate, domain.RentalHoldStatuses, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check rentals: %v", ErrInternal, err)
		}
		if len(rentals) > 0 {
			return ErrVehicleBusy
		}

		// 5.4. Создаем бронь в PENDING
		result, err = uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ClientID:  client.ID,
			VehicleID: vehicle.ID,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Status:    domain.ReservationStatusPending,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: reservation id=%d created", result.ID)

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		VehicleID: result.VehicleID,
		StartDate: result.StartDate,
		EndDate:   result.EndDate,
		Status:    string(result.Status),
	}, nil
}
