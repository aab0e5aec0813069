package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
)

type fakeClientRepo struct {
	client *domain.Client
}

func (r *fakeClientRepo) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if r.client == nil || r.client.ID != id {
		return nil, clientRepo.ErrClientNotFound
	}
	return r.client, nil
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
	rentals []*domain.Rental
}

func (r *fakeRentalRepo) FindOverlapping(_ context.Context, vehicleID int64, start, end time.Time, statuses []domain.RentalStatus, _ *int64) ([]*domain.Rental, error) {
	interval := domain.Interval{Start: start, End: end}
	var out []*domain.Rental
	for _, rental := range r.rentals {
		if rental.VehicleID != vehicleID || !rental.Interval().Overlaps(interval) {
			continue
		}
		for _, s := range statuses {
			if rental.Status == s {
				out = append(out, rental)
				break
			}
		}
	}
	return out, nil
}

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  *domain.Reservation
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	out := *reservation
	out.ID = 1
	r.created = &out
	return &out, nil
}

func (r *fakeReservationRepo) FindOverlapping(_ context.Context, filter domain.ReservationOverlapFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, h := range r.existing {
		if h.VehicleID != filter.VehicleID || !h.Interval().Overlaps(filter.Interval) {
			continue
		}
		if filter.ClientID != nil && h.ClientID != *filter.ClientID {
			continue
		}
		for _, s := range filter.Statuses {
			if h.Status == s {
				out = append(out, h)
				break
			}
		}
	}
	return out, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type env struct {
	clients      *fakeClientRepo
	vehicles     *fakeVehicleRepo
	rentals      *fakeRentalRepo
	reservations *fakeReservationRepo
	uc           *UseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		clients: &fakeClientRepo{client: &domain.Client{
			ID:         10,
			IsVerified: true,
		}},
		vehicles: &fakeVehicleRepo{vehicle: &domain.Vehicle{
			ID:     20,
			Status: domain.VehicleStatusAvailable,
		}},
		rentals:      &fakeRentalRepo{},
		reservations: &fakeReservationRepo{},
	}

	e.uc = NewUseCase(
		e.clients, e.vehicles, e.rentals, e.reservations,
		fakeTxManager{}, fixedTimeProvider{now: testNow}, nopLogger{},
	)
	return e
}

func TestExecute_Success_CreatesPendingHold(t *testing.T) {
	e := newEnv(t)
	start := testNow.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		VehicleID: 20,
		StartDate: start,
		EndDate:   end,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.ReservationStatusPending), resp.Status)
	require.NotNil(t, e.reservations.created)
	assert.Equal(t, domain.ReservationStatusPending, e.reservations.created.Status)
}

func TestExecute_UnverifiedClientRejected(t *testing.T) {
	e := newEnv(t)
	e.clients.client.IsVerified = false
	start := testNow.Add(24 * time.Hour)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		VehicleID: 20,
		StartDate: start,
		EndDate:   start.Add(24 * time.Hour),
	})

	require.ErrorIs(t, err, ErrClientNotVerified)
	assert.Nil(t, e.reservations.created)
}

func TestExecute_DuplicateHoldRejected(t *testing.T) {
	e := newEnv(t)
	start := testNow.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)
	e.reservations.existing = []*domain.Reservation{{
		ID:        5,
		ClientID:  10,
		VehicleID: 20,
		StartDate: start.Add(24 * time.Hour),
		EndDate:   end.Add(24 * time.Hour),
		Status:    domain.ReservationStatusPending,
	}}

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		VehicleID: 20,
		StartDate: start,
		EndDate:   end,
	})

	require.ErrorIs(t, err, ErrDuplicateHold)
}

func TestExecute_OtherClientsPendingHoldDoesNotBlock(t *testing.T) {
	e := newEnv(t)
	start := testNow.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)
	// Чужая PENDING бронь не мешает: конфликт разрешается на подтверждении
	e.reservations.existing = []*domain.Reservation{{
		ID:        5,
		ClientID:  77,
		VehicleID: 20,
		StartDate: start,
		EndDate:   end,
		Status:    domain.ReservationStatusPending,
	}}

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		VehicleID: 20,
		StartDate: start,
		EndDate:   end,
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.ReservationStatusPending), resp.Status)
}

func TestExecute_VehicleBusyWithRental(t *testing.T) {
	e := newEnv(t)
	start := testNow.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)
	e.rentals.rentals = []*domain.Rental{{
		ID:        7,
		ClientID:  77,
		VehicleID: 20,
		StartDate: start,
		EndDate:   end,
		Status:    domain.RentalStatusActive,
	}}

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		VehicleID: 20,
		StartDate: start,
		EndDate:   end,
	})

	require.ErrorIs(t, err, ErrVehicleBusy)
}

func TestExecute_CompletedRentalDoesNotBlock(t *testing.T) {
	e := newEnv(t)
	start := testNow.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)
	e.rentals.rentals = []*domain.Rental{{
		ID:        7,
		ClientID:  77,
		VehicleID: 20,
		StartDate: start,
		EndDate:   end,
		Status:    domain.RentalStatusCompleted,
	}}

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		VehicleID: 20,
		StartDate: start,
		EndDate:   end,
	})

	require.NoError(t, err)
}

func TestExecute_PastStartRejected(t *testing.T) {
	e := newEnv(t)
	start := testNow.Add(-24 * time.Hour)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		VehicleID: 20,
		StartDate: start,
		EndDate:   start.Add(48 * time.Hour),
	})

	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestExecute_ManagerCannotReserve(t *testing.T) {
	e := newEnv(t)
	start := testNow.Add(24 * time.Hour)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ManagerActor{ID: 1},
		VehicleID: 20,
		StartDate: start,
		EndDate:   start.Add(24 * time.Hour),
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
}
