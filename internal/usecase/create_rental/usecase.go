package create_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	stationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/station"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// UseCase use case создания аренды.
// Машина не меняет статус при создании: аренда становится PENDING,
// а машина выдается только после активации менеджером.
type UseCase struct {
	clientRepo      ClientRepository
	vehicleRepo     VehicleRepository
	stationRepo     StationRepository
	rentalRepo      RentalRepository
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	vehicleRepo VehicleRepository,
	stationRepo StationRepository,
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
		stationRepo:     stationRepo,
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания аренды.
// Все операции с БД идут в одной сериализуемой транзакции: блокировка
// клиента, затем машины (фиксированный порядок), затем проверка пересечений
// и списание. Из двух конкурентных конфликтующих созданий закоммитится одно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRental: validation failed: %v", err)
		return nil, err
	}

	// 2. Только клиент создает аренду
	actor, ok := req.Actor.(domain.ClientActor)
	if !ok {
		uc.logger.Warn("CreateRental: actor %d is not a client", req.Actor.ActorID())
		return nil, ErrPermissionDenied
	}

	uc.logger.Info("CreateRental: client=%d, vehicle=%d, station=%d, interval=[%s, %s]",
		actor.ID, req.VehicleID, req.PickupStationID,
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))

	// 3. Валидация интервала
	now := uc.timeProvider.Now()
	interval := domain.Interval{Start: req.StartDate, End: req.EndDate}
	if err := validateInterval(interval, now); err != nil {
		uc.logger.Warn("CreateRental: interval validation failed: %v", err)
		return nil, err
	}

	// 4. Проверяем станцию выдачи
	station, err := uc.stationRepo.GetByID(ctx, req.PickupStationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("CreateRental: station id=%d not found", req.PickupStationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("CreateRental: failed to get station id=%d: %v", req.PickupStationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}
	if !station.IsActive {
		uc.logger.Warn("CreateRental: station id=%d is not active", station.ID)
		return nil, ErrStationInactive
	}

	var (
		result  *domain.Rental
		balance float64
	)

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Блокируем строку клиента (первой - порядок захвата блокировок)
		client, err := uc.clientRepo.GetForUpdate(txCtx, actor.ID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("%w: failed to lock client: %v", ErrInternal, err)
		}

		// 5.2. У клиента не должно быть активной аренды
		if _, err := uc.rentalRepo.GetActiveByClient(txCtx, client.ID); err == nil {
			return ErrActiveRentalExists
		} else if !errors.Is(err, rentalRepo.ErrRentalNotFound) {
			return fmt.Errorf("%w: failed to check active rental: %v", ErrInternal, err)
		}

		// 5.3. Блокируем строку машины
		vehicle, err := uc.vehicleRepo.GetForUpdate(txCtx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: failed to lock vehicle: %v", ErrInternal, err)
		}

		// 5.4. Интервал не должен пересекать подтвержденную бронь
		holds, err := uc.reservationRepo.FindOverlapping(txCtx, domain.ReservationOverlapFilter{
			VehicleID: vehicle.ID,
			Interval:  interval,
			Statuses:  []domain.ReservationStatus{domain.ReservationStatusConfirmed},
		})
		if err != nil {
			return fmt.Errorf("%w: failed to check reservations: %v", ErrInternal, err)
		}
		if len(holds) > 0 {
			uc.logger.Warn("CreateRental: vehicle=%d has %d confirmed reservations overlapping the interval",
				vehicle.ID, len(holds))
			return ErrVehicleReserved
		}

		// 5.5. Считаем стоимость и списываем с баланса
		amount := domain.RentalAmount(vehicle.DailyPrice, interval)

		balance, err = uc.clientRepo.Debit(txCtx, client.ID, amount)
		if err != nil {
			if errors.Is(err, clientRepo.ErrInsufficientFunds) {
				uc.logger.Warn("CreateRental: client=%d has insufficient funds (needed %.2f)", client.ID, amount)
				return ErrInsufficientFunds
			}
			return fmt.Errorf("%w: failed to debit balance: %v", ErrInternal, err)
		}

		// 5.6. Создаем аренду в статусе PENDING
		created, err := uc.rentalRepo.Create(txCtx, &domain.Rental{
			ClientID:        client.ID,
			VehicleID:       vehicle.ID,
			PickupStationID: ptr.Ptr(station.ID),
			StartDate:       req.StartDate,
			EndDate:         req.EndDate,
			TotalAmount:     amount,
			Status:          domain.RentalStatusPending,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create rental: %v", ErrInternal, err)
		}

		// 5.7. Фиксируем движение по балансу
		if _, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			ClientID: client.ID,
			Amount:   amount,
			Kind:     domain.PaymentKindRental,
			RentalID: &created.ID,
		}); err != nil {
			return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateRental: successfully created rental id=%d, amount=%.2f, balance=%.2f",
		result.ID, result.TotalAmount, balance)

	// 6. Уведомляем клиента (fire-and-forget)
	uc.notifyCreated(ctx, actor.ID, result)

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		VehicleID:       result.VehicleID,
		PickupStationID: result.PickupStationID,
		StartDate:       result.StartDate,
		EndDate:         result.EndDate,
		TotalAmount:     result.TotalAmount,
		Status:          string(result.Status),
		Balance:         balance,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

func (uc *UseCase) notifyCreated(ctx context.Context, clientID int64, rental *domain.Rental) {
	client, err := uc.clientRepo.GetForUpdate(ctx, clientID)
	if err != nil {
		// Уведомление не критично, аренда уже создана
		uc.logger.Warn("CreateRental: failed to load client %d for notification: %v", clientID, err)
		return
	}

	uc.notifier.Notify(client.Email, "Rental created",
		fmt.Sprintf("Your rental #%d is pending confirmation. Charged: %.2f", rental.ID, rental.TotalAmount))
}
