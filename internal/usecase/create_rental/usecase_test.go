package create_rental

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	stationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/station"
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

type fakeVehicleRepo struct {
	vehicle *domain.Vehicle
}

func (r *fakeVehicleRepo) GetForUpdate(_ context.Context, id int64) (*domain.Vehicle, error) {
	if r.vehicle == nil || r.vehicle.ID != id {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return r.vehicle, nil
}

type fakeStationRepo struct {
	station *domain.Station
}

func (r *fakeStationRepo) GetByID(_ context.Context, id int64) (*domain.Station, error) {
	if r.station == nil || r.station.ID != id {
		return nil, stationRepo.ErrStationNotFound
	}
	return r.station, nil
}

type fakeRentalRepo struct {
	active  *domain.Rental
	created *domain.Rental
}

func (r *fakeRentalRepo) Create(_ context.Context, rental *domain.Rental) (*domain.Rental, error) {
	out := *rental
	out.ID = 1
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	r.created = &out
	return &out, nil
}

func (r *fakeRentalRepo) GetActiveByClient(_ context.Context, clientID int64) (*domain.Rental, error) {
	if r.active != nil && r.active.ClientID == clientID {
		return r.active, nil
	}
	return nil, rentalRepo.ErrRentalNotFound
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

type fakeNotifier struct {
	sent []string
}

func (n *fakeNotifier) Notify(toEmail, _, _ string) {
	n.sent = append(n.sent, toEmail)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type env struct {
	clients      *fakeClientRepo
	vehicles     *fakeVehicleRepo
	stations     *fakeStationRepo
	rentals      *fakeRentalRepo
	reservations *fakeReservationRepo
	payments     *fakePaymentRepo
	notifier     *fakeNotifier
	uc           *UseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		clients: &fakeClientRepo{client: &domain.Client{
			ID:         10,
			Email:      "client@example.com",
			IsVerified: true,
			Balance:    500,
		}},
		vehicles: &fakeVehicleRepo{vehicle: &domain.Vehicle{
			ID:         20,
			DailyPrice: 100,
			Status:     domain.VehicleStatusAvailable,
		}},
		stations: &fakeStationRepo{station: &domain.Station{
			ID:       30,
			IsActive: true,
		}},
		rentals:      &fakeRentalRepo{},
		reservations: &fakeReservationRepo{},
		payments:     &fakePaymentRepo{},
		notifier:     &fakeNotifier{},
	}

	e.uc = NewUseCase(
		e.clients, e.vehicles, e.stations, e.rentals, e.reservations, e.payments,
		fakeTxManager{}, e.notifier, nopLogger{},
	)
	return e
}

func futureInterval(days int) (time.Time, time.Time) {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	return start, start.Add(time.Duration(days) * 24 * time.Hour)
}

func TestExecute_Success_ChargesFullRentalAmount(t *testing.T) {
	e := newEnv(t)
	start, end := futureInterval(2)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ClientActor{ID: 10},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       start,
		EndDate:         end,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.RentalStatusPending), resp.Status)
	// 2 дня по 100 = 200, баланс 500 -> 300
	assert.InDelta(t, 200, resp.TotalAmount, 0.001)
	assert.InDelta(t, 300, resp.Balance, 0.001)

	require.Len(t, e.payments.payments, 1)
	assert.Equal(t, domain.PaymentKindRental, e.payments.payments[0].Kind)
	assert.InDelta(t, 200, e.payments.payments[0].Amount, 0.001)
	require.NotNil(t, e.payments.payments[0].RentalID)
	assert.Equal(t, int64(1), *e.payments.payments[0].RentalID)

	assert.Equal(t, []string{"client@example.com"}, e.notifier.sent)
}

func TestExecute_PartialDayRoundsUp(t *testing.T) {
	e := newEnv(t)
	start, _ := futureInterval(2)
	end := start.Add(2*24*time.Hour + time.Hour)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ClientActor{ID: 10},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       start,
		EndDate:         end,
	})

	require.NoError(t, err)
	assert.InDelta(t, 300, resp.TotalAmount, 0.001)
}

func TestExecute_InsufficientFunds(t *testing.T) {
	e := newEnv(t)
	e.clients.client.Balance = 150
	start, end := futureInterval(2)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ClientActor{ID: 10},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       start,
		EndDate:         end,
	})

	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.InDelta(t, 150, e.clients.client.Balance, 0.001)
	assert.Empty(t, e.payments.payments)
	assert.Nil(t, e.rentals.created)
}

func TestExecute_ActiveRentalExists(t *testing.T) {
	e := newEnv(t)
	start, end := futureInterval(2)
	e.rentals.active = &domain.Rental{ID: 99, ClientID: 10, Status: domain.RentalStatusActive}

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ClientActor{ID: 10},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       start,
		EndDate:         end,
	})

	require.ErrorIs(t, err, ErrActiveRentalExists)
}

func TestExecute_ConfirmedReservationBlocks(t *testing.T) {
	e := newEnv(t)
	start, end := futureInterval(2)
	e.reservations.holds = []*domain.Reservation{{
		ID:        5,
		ClientID:  77,
		VehicleID: 20,
		StartDate: start.Add(24 * time.Hour),
		EndDate:   end.Add(24 * time.Hour),
		Status:    domain.ReservationStatusConfirmed,
	}}

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ClientActor{ID: 10},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       start,
		EndDate:         end,
	})

	require.ErrorIs(t, err, ErrVehicleReserved)
	assert.InDelta(t, 500, e.clients.client.Balance, 0.001)
}

func TestExecute_ManagerCannotCreate(t *testing.T) {
	e := newEnv(t)
	start, end := futureInterval(1)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ManagerActor{ID: 1},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       start,
		EndDate:         end,
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_StationInactive(t *testing.T) {
	e := newEnv(t)
	e.stations.station.IsActive = false
	start, end := futureInterval(1)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ClientActor{ID: 10},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       start,
		EndDate:         end,
	})

	require.ErrorIs(t, err, ErrStationInactive)
}

func TestExecute_StartDateInPast(t *testing.T) {
	e := newEnv(t)
	start := time.Now().Add(-48 * time.Hour)
	end := start.Add(48 * time.Hour)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ClientActor{ID: 10},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       start,
		EndDate:         end,
	})

	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_InvertedInterval(t *testing.T) {
	e := newEnv(t)
	start, end := futureInterval(2)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:           domain.ClientActor{ID: 10},
		VehicleID:       20,
		PickupStationID: 30,
		StartDate:       end,
		EndDate:         start,
	})

	require.ErrorIs(t, err, ErrInvalidInterval)
}
