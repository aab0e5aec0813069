package set_reservation_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
)

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
	reservations map[int64]*domain.Reservation
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (r *fakeReservationRepo) FindOverlapping(_ context.Context, filter domain.ReservationOverlapFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, h := range r.reservations {
		if h.VehicleID != filter.VehicleID || !h.Interval().Overlaps(filter.Interval) {
			continue
		}
		if filter.ExcludeID != nil && h.ID == *filter.ExcludeID {
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

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	res, ok := r.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testStart = time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

type env struct {
	rentals      *fakeRentalRepo
	reservations *fakeReservationRepo
	uc           *UseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		rentals: &fakeRentalRepo{},
		reservations: &fakeReservationRepo{reservations: map[int64]*domain.Reservation{
			1: {
				ID:        1,
				ClientID:  10,
				VehicleID: 20,
				StartDate: testStart,
				EndDate:   testStart.Add(48 * time.Hour),
				Status:    domain.ReservationStatusPending,
			},
		}},
	}

	e.uc = NewUseCase(e.rentals, e.reservations, fakeTxManager{}, nopLogger{})
	return e
}

func TestExecute_ConfirmPending(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ManagerActor{ID: 1},
		ReservationID: 1,
		NewStatus:     "CONFIRMED",
	})

	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	assert.Equal(t, domain.ReservationStatusConfirmed, e.reservations.reservations[1].Status)
}

func TestExecute_ConfirmSecondOverlappingFails(t *testing.T) {
	e := newEnv(t)
	e.reservations.reservations[2] = &domain.Reservation{
		ID:        2,
		ClientID:  77,
		VehicleID: 20,
		StartDate: testStart.Add(24 * time.Hour),
		EndDate:   testStart.Add(72 * time.Hour),
		Status:    domain.ReservationStatusPending,
	}

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ManagerActor{ID: 1},
		ReservationID: 1,
		NewStatus:     "CONFIRMED",
	})
	require.NoError(t, err)

	// Вторая пересекающаяся бронь не подтверждается
	_, err = e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ManagerActor{ID: 1},
		ReservationID: 2,
		NewStatus:     "CONFIRMED",
	})
	require.ErrorIs(t, err, ErrIntervalConflict)
	assert.Equal(t, domain.ReservationStatusPending, e.reservations.reservations[2].Status)
}

func TestExecute_ConfirmBlockedByActiveRental(t *testing.T) {
	e := newEnv(t)
	e.rentals.rentals = []*domain.Rental{{
		ID:        7,
		VehicleID: 20,
		StartDate: testStart,
		EndDate:   testStart.Add(48 * time.Hour),
		Status:    domain.RentalStatusActive,
	}}

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ManagerActor{ID: 1},
		ReservationID: 1,
		NewStatus:     "CONFIRMED",
	})

	require.ErrorIs(t, err, ErrIntervalConflict)
}

func TestExecute_CancelDoesNotCheckInterval(t *testing.T) {
	e := newEnv(t)
	e.reservations.reservations[2] = &domain.Reservation{
		ID:        2,
		ClientID:  77,
		VehicleID: 20,
		StartDate: testStart,
		EndDate:   testStart.Add(48 * time.Hour),
		Status:    domain.ReservationStatusConfirmed,
	}

	// Отмена проходит даже при занятом интервале
	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ManagerActor{ID: 1},
		ReservationID: 1,
		NewStatus:     "CANCELLED",
	})

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestExecute_ConfirmedCannotGoBackToPending(t *testing.T) {
	e := newEnv(t)
	e.reservations.reservations[1].Status = domain.ReservationStatusConfirmed

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ManagerActor{ID: 1},
		ReservationID: 1,
		NewStatus:     "PENDING",
	})

	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_CancelledIsTerminal(t *testing.T) {
	e := newEnv(t)
	e.reservations.reservations[1].Status = domain.ReservationStatusCancelled

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ManagerActor{ID: 1},
		ReservationID: 1,
		NewStatus:     "CONFIRMED",
	})

	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_ClientCannotChangeStatus(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ClientActor{ID: 10},
		ReservationID: 1,
		NewStatus:     "CONFIRMED",
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:         domain.ManagerActor{ID: 1},
		ReservationID: 404,
		NewStatus:     "CONFIRMED",
	})

	require.ErrorIs(t, err, ErrReservationNotFound)
}
