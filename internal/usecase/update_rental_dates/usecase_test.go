package update_rental_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
)

type fakeClientRepo struct {
	client *domain.Client
}

func (r *fakeClientRepo) GetForUpdate(_ context.Context, id int64) (*domain.Client, error) {
	if r.client == nil || r.client.ID != id {
		return nil, clientRepo.ErrClientNotFound
	}
	return r.client, nil
}

func (r *fakeClientRepo) Debit(_ context.Context, id int64, amount float64) (float64, error) {
	if r.client == nil || r.client.ID != id {
		return 0, clientRepo.ErrClientNotFound
	}
	if r.client.Balance < amount {
		return 0, clientRepo.ErrInsufficientFunds
	}
	r.client.Balance -= amount
	return r.client.Balance, nil
}

func (r *fakeClientRepo) Credit(_ context.Context, id int64, amount float64) (float64, error) {
	if r.client == nil || r.client.ID != id {
		return 0, clientRepo.ErrClientNotFound
	}
	r.client.Balance += amount
	return r.client.Balance, nil
}

type fakeVehicleRepo struct {
	vehicle *domain.Vehicle
}

func (r *fakeVehicleRepo) GetForUpdate(_ context.Context, id int64) (*domain.Vehicle, error) {
	if r.vehicle == nil || r.vehicle.ID != id {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return r.vehicle, nil
}

type fakeRentalRepo struct {
	rental *domain.Rental
}

func (r *fakeRentalRepo) GetByID(_ context.Context, id int64) (*domain.Rental, error) {
	if r.rental == nil || r.rental.ID != id {
		return nil, rentalRepo.ErrRentalNotFound
	}
	return r.rental, nil
}

func (r *fakeRentalRepo) UpdateDates(_ context.Context, id int64, start, end time.Time, totalAmount float64) error {
	if r.rental == nil || r.rental.ID != id {
		return rentalRepo.ErrRentalNotFound
	}
	r.rental.StartDate = start
	r.rental.EndDate = end
	r.rental.TotalAmount = totalAmount
	return nil
}

type fakeReservationRepo struct {
	holds []*domain.Reservation
}

func (r *fakeReservationRepo) FindOverlapping(_ context.Context, filter domain.ReservationOverlapFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, h := range r.holds {
		if h.VehicleID == filter.VehicleID && h.Interval().Overlaps(filter.Interval) {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	out := *p
	out.ID = int64(len(r.payments) + 1)
	r.payments = append(r.payments, &out)
	return &out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type env struct {
	clients      *fakeClientRepo
	vehicles     *fakeVehicleRepo
	rentals      *fakeRentalRepo
	reservations *fakeReservationRepo
	payments     *fakePaymentRepo
	uc           *UseCase
}

// newEnv поднимает PENDING аренду на 2 дня по 100 (списано 200, баланс 300)
func newEnv(t *testing.T) *env {
	t.Helper()

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	e := &env{
		clients: &fakeClientRepo{client: &domain.Client{
			ID:      10,
			Balance: 300,
		}},
		vehicles: &fakeVehicleRepo{vehicle: &domain.Vehicle{
			ID:         20,
			DailyPrice: 100,
			Status:     domain.VehicleStatusAvailable,
		}},
		rentals: &fakeRentalRepo{rental: &domain.Rental{
			ID:          1,
			ClientID:    10,
			VehicleID:   20,
			StartDate:   start,
			EndDate:     start.Add(48 * time.Hour),
			TotalAmount: 200,
			Status:      domain.RentalStatusPending,
		}},
		reservations: &fakeReservationRepo{},
		payments:     &fakePaymentRepo{},
	}

	e.uc = NewUseCase(
		e.clients, e.vehicles, e.rentals, e.reservations, e.payments,
		fakeTxManager{}, nopLogger{},
	)
	return e
}

func TestExecute_ExtendChargesDelta(t *testing.T) {
	e := newEnv(t)
	newEnd := e.rentals.rental.StartDate.Add(4 * 24 * time.Hour)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
		NewEnd:   &newEnd,
	})

	require.NoError(t, err)
	// 4 дня по 100 = 400: доплата 200, баланс 300 -> 100
	assert.InDelta(t, 400, resp.TotalAmount, 0.001)
	assert.InDelta(t, 100, resp.Balance, 0.001)

	require.Len(t, e.payments.payments, 1)
	assert.Equal(t, domain.PaymentKindRental, e.payments.payments[0].Kind)
	assert.InDelta(t, 200, e.payments.payments[0].Amount, 0.001)
}

func TestExecute_ShrinkRefundsDelta(t *testing.T) {
	e := newEnv(t)
	newEnd := e.rentals.rental.StartDate.Add(24 * time.Hour)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
		NewEnd:   &newEnd,
	})

	require.NoError(t, err)
	// 1 день по 100 = 100: возврат 100, баланс 300 -> 400
	assert.InDelta(t, 100, resp.TotalAmount, 0.001)
	assert.InDelta(t, 400, resp.Balance, 0.001)

	require.Len(t, e.payments.payments, 1)
	assert.Equal(t, domain.PaymentKindRefund, e.payments.payments[0].Kind)
	assert.InDelta(t, 100, e.payments.payments[0].Amount, 0.001)
}

func TestExecute_SameAmountNoLedgerEntry(t *testing.T) {
	e := newEnv(t)
	// Сдвиг на день вперед при той же длительности
	newStart := e.rentals.rental.StartDate.Add(24 * time.Hour)
	newEnd := e.rentals.rental.EndDate.Add(24 * time.Hour)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
		NewStart: &newStart,
		NewEnd:   &newEnd,
	})

	require.NoError(t, err)
	assert.InDelta(t, 200, resp.TotalAmount, 0.001)
	assert.InDelta(t, 300, resp.Balance, 0.001)
	assert.Empty(t, e.payments.payments)
}

func TestExecute_InsufficientFundsForDelta(t *testing.T) {
	e := newEnv(t)
	e.clients.client.Balance = 50
	newEnd := e.rentals.rental.StartDate.Add(4 * 24 * time.Hour)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
		NewEnd:   &newEnd,
	})

	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.InDelta(t, 200, e.rentals.rental.TotalAmount, 0.001)
}

func TestExecute_ConfirmedReservationBlocksNewInterval(t *testing.T) {
	e := newEnv(t)
	newEnd := e.rentals.rental.StartDate.Add(4 * 24 * time.Hour)
	e.reservations.holds = []*domain.Reservation{{
		ID:        5,
		VehicleID: 20,
		StartDate: e.rentals.rental.EndDate.Add(24 * time.Hour),
		EndDate:   newEnd,
		Status:    domain.ReservationStatusConfirmed,
	}}

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
		NewEnd:   &newEnd,
	})

	require.ErrorIs(t, err, ErrVehicleReserved)
}

func TestExecute_ActiveRentalDatesFrozen(t *testing.T) {
	e := newEnv(t)
	e.rentals.rental.Status = domain.RentalStatusActive
	newEnd := e.rentals.rental.StartDate.Add(4 * 24 * time.Hour)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
		NewEnd:   &newEnd,
	})

	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_NoBoundsProvided(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ForeignRentalRejected(t *testing.T) {
	e := newEnv(t)
	e.rentals.rental.ClientID = 77
	e.clients.client.ID = 55
	newEnd := e.rentals.rental.StartDate.Add(24 * time.Hour)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 55},
		RentalID: 1,
		NewEnd:   &newEnd,
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
}
