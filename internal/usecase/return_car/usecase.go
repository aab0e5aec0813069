package return_car

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	stationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/station"
	"github.com/m04kA/SMC-RentalService/pkg/geo"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// UseCase use case возврата машины клиентом на станцию.
// Аренда переводится в COMPLETED, машина становится AVAILABLE
// и привязывается к станции возврата. Стоимость не пересчитывается:
// сумма зафиксирована при создании аренды.
type UseCase struct {
	clientRepo          ClientRepository
	vehicleRepo         VehicleRepository
	rentalRepo          RentalRepository
	stationRepo         StationRepository
	txManager           TransactionManager
	notifier            Notifier
	logger              Logger
	maxReturnDistanceKm float64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	clientRepo ClientRepository,
	vehicleRepo VehicleRepository,
	rentalRepo RentalRepository,
	stationRepo StationRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
	maxReturnDistanceKm float64,
) *UseCase {
	if maxReturnDistanceKm <= 0 {
		maxReturnDistanceKm = domain.DefaultMaxReturnDistanceKm
	}
	return &UseCase{
		clientRepo:          clientRepo,
		vehicleRepo:         vehicleRepo,
		rentalRepo:          rentalRepo,
		stationRepo:         stationRepo,
		txManager:           txManager,
		notifier:            notifier,
		logger:              logger,
		maxReturnDistanceKm: maxReturnDistanceKm,
	}
}

// Execute выполняет use case возврата машины
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Actor == nil || req.StationID <= 0 {
		return nil, fmt.Errorf("%w: actor and stationID are required", ErrInvalidInput)
	}

	// 2. Возврат доступен только клиенту
	actor, ok := req.Actor.(domain.ClientActor)
	if !ok {
		uc.logger.Warn("ReturnCar: actor %d is not a client", req.Actor.ActorID())
		return nil, ErrPermissionDenied
	}

	uc.logger.Info("ReturnCar: client=%d, station=%d", actor.ID, req.StationID)

	// 3. Проверяем станцию возврата и геозону до транзакции
	station, err := uc.stationRepo.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			return nil, ErrStationNotFound
		}
		return nil, fmt.Errorf("%w: failed to get station: %v", ErrInternal, err)
	}
	if !station.IsActive {
		return nil, ErrStationInactive
	}

	if !geo.IsNear(req.Latitude, req.Longitude, station.Latitude, station.Longitude, uc.maxReturnDistanceKm) {
		uc.logger.Warn("ReturnCar: client=%d is %.3f km away from station=%d",
			actor.ID, geo.Distance(req.Latitude, req.Longitude, station.Latitude, station.Longitude), station.ID)
		return nil, ErrNotNearStation
	}

	var result *domain.Rental

	// 4. Завершаем аренду и освобождаем машину атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ровно одна активная аренда на клиента
		rental, err := uc.rentalRepo.GetActiveByClient(txCtx, actor.ID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				return ErrNoActiveRental
			}
			return fmt.Errorf("%w: failed to get active rental: %v", ErrInternal, err)
		}

		// 4.2. Блокируем машину
		if _, err := uc.vehicleRepo.GetForUpdate(txCtx, rental.VehicleID); err != nil {
			return fmt.Errorf("%w: failed to lock vehicle: %v", ErrInternal, err)
		}

		// 4.3. Аренда COMPLETED со станцией возврата
		if err := uc.rentalRepo.Complete(txCtx, rental.ID, station.ID); err != nil {
			return fmt.Errorf("%w: failed to complete rental: %v", ErrInternal, err)
		}

		// 4.4. Машина AVAILABLE на станции возврата
		if err := uc.vehicleRepo.SetStatusAndStation(txCtx, rental.VehicleID, domain.VehicleStatusAvailable, station.ID); err != nil {
			return fmt.Errorf("%w: failed to update vehicle: %v", ErrInternal, err)
		}

		rental.Status = domain.RentalStatusCompleted
		rental.ReturnStationID = ptr.Ptr(station.ID)
		result = rental
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReturnCar: rental id=%d completed at station=%d", result.ID, station.ID)

	// 5. Уведомляем клиента (fire-and-forget)
	if client, err := uc.clientRepo.GetByID(ctx, actor.ID); err == nil {
		uc.notifier.Notify(client.Email, "Rental completed",
			fmt.Sprintf("Your rental #%d is completed. The car was returned to %s.", result.ID, station.Name))
	}

	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		VehicleID:       result.VehicleID,
		ReturnStationID: station.ID,
		StartDate:       result.StartDate,
		EndDate:         result.EndDate,
		TotalAmount:     result.TotalAmount,
		Status:          string(result.Status),
	}, nil
}
