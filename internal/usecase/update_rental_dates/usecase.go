package update_rental_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
)

// UseCase use case изменения дат PENDING аренды.
// Сумма пересчитывается по новому интервалу: положительная разница
// списывается с баланса, отрицательная возвращается.
type UseCase struct {
	clientRepo      ClientRepository
	vehicleRepo     VehicleRepository
	rentalRepo      RentalRepository
	reservationRepo ReservationRepository
	paymentRepo     PaymentRepository
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
	paymentRepo PaymentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:      clientRepo,
		vehicleRepo:     vehicleRepo,
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case изменения дат аренды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Actor == nil || req.RentalID <= 0 {
		return nil, fmt.Errorf("%w: actor and rentalID are required", ErrInvalidInput)
	}
	if req.NewStart == nil && req.NewEnd == nil {
		return nil, fmt.Errorf("%w: at least one of newStart/newEnd is required", ErrInvalidInput)
	}

	// 2. Только клиент меняет даты своей аренды
	actor, ok := req.Actor.(domain.ClientActor)
	if !ok {
		uc.logger.Warn("UpdateRentalDates: actor %d is not a client", req.Actor.ActorID())
		return nil, ErrPermissionDenied
	}

	uc.logger.Info("UpdateRentalDates: client=%d, rental=%d", actor.ID, req.RentalID)

	var (
		result  *domain.Rental
		balance float64
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку клиента
		client, err := uc.clientRepo.GetForUpdate(txCtx, actor.ID)
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
		if !rental.CanUpdateDates() {
			return ErrInvalidTransition
		}

		// 3.3. Собираем новый интервал: незаданная граница остается прежней
		interval := rental.Interval()
		if req.NewStart != nil {
			interval.Start = *req.NewStart
		}
		if req.NewEnd != nil {
			interval.End = *req.NewEnd
		}
		if !interval.IsValid() {
			return fmt.Errorf("%w: start date must be before end date", ErrInvalidInterval)
		}
		if interval.Start.Before(uc.timeProvider.Now()) {
			return fmt.Errorf("%w: start date must not be in the past", ErrInvalidInterval)
		}

		// 3.4. Блокируем машину и перепроверяем подтвержденные брони на новом интервале
		vehicle, err := uc.vehicleRepo.GetForUpdate(txCtx, rental.VehicleID)
		if err != nil {
			return fmt.Errorf("%w: failed to lock vehicle: %v", ErrInternal, err)
		}

		holds, err := uc.reservationRepo.FindOverlapping(txCtx, domain.ReservationOverlapFilter{
			VehicleID: vehicle.ID,
			Interval:  interval,
			Statuses:  []domain.ReservationStatus{domain.ReservationStatusConfirmed},
		})
		if err != nil {
			return fmt.Errorf("%w: failed to check reservations: %v", ErrInternal, err)
		}
		if len(holds) > 0 {
			return ErrVehicleReserved
		}

		// 3.5. Пересчитываем сумму и проводим разницу по балансу
		newAmount := domain.RentalAmount(vehicle.DailyPrice, interval)
		delta := newAmount - rental.TotalAmount

		balance = client.Balance
		switch {
		case delta > 0:
			balance, err = uc.clientRepo.Debit(txCtx, client.ID, delta)
			if err != nil {
				if errors.Is(err, clientRepo.ErrInsufficientFunds) {
					uc.logger.Warn("UpdateRentalDates: client=%d has insufficient funds for delta %.2f", client.ID, delta)
					return ErrInsufficientFunds
				}
				return fmt.Errorf("%w: failed to debit delta: %v", ErrInternal, err)
			}

			if _, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
				ClientID: client.ID,
				Amount:   delta,
				Kind:     domain.PaymentKindRental,
				RentalID: &rental.ID,
			}); err != nil {
				return fmt.Errorf("%w: failed to record payment: %v", ErrInternal, err)
			}

		case delta < 0:
			balance, err = uc.clientRepo.Credit(txCtx, client.ID, -delta)
			if err != nil {
				return fmt.Errorf("%w: failed to credit delta: %v", ErrInternal, err)
			}

			if _, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
				ClientID: client.ID,
				Amount:   -delta,
				Kind:     domain.PaymentKindRefund,
				RentalID: &rental.ID,
			}); err != nil {
				return fmt.Errorf("%w: failed to record refund: %v", ErrInternal, err)
			}
		}

		// 3.6. Сохраняем новый интервал и сумму
		if err := uc.rentalRepo.UpdateDates(txCtx, rental.ID, interval.Start, interval.End, newAmount); err != nil {
			return fmt.Errorf("%w: failed to update rental dates: %v", ErrInternal, err)
		}

		rental.StartDate = interval.Start
		rental.EndDate = interval.End
		rental.TotalAmount = newAmount
		result = rental
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateRentalDates: rental id=%d repriced to %.2f, balance=%.2f",
		result.ID, result.TotalAmount, balance)

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
