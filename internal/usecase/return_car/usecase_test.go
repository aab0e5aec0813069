package return_car

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

func (r *fakeVehicleRepo) SetStatusAndStation(_ context.Context, id int64, status domain.VehicleStatus, stationID int64) error {
	if r.vehicle == nil || r.vehicle.ID != id {
		return vehicleRepo.ErrVehicleNotFound
	}
	r.vehicle.Status = status
	r.vehicle.CurrentStationID = &stationID
	return nil
}

type fakeRentalRepo struct {
	active *domain.Rental
}

func (r *fakeRentalRepo) GetActiveByClient(_ context.Context, clientID int64) (*domain.Rental, error) {
	if r.active == nil || r.active.ClientID != clientID || r.active.Status != domain.RentalStatusActive {
		return nil, rentalRepo.ErrRentalNotFound
	}
	return r.active, nil
}

func (r *fakeRentalRepo) Complete(_ context.Context, id int64, returnStationID int64) error {
	if r.active == nil || r.active.ID != id {
		return rentalRepo.ErrRentalNotFound
	}
	r.active.Status = domain.RentalStatusCompleted
	r.active.ReturnStationID = &returnStationID
	return nil
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

// Станция в центре Москвы, координаты из теста pkg/geo.
const (
	stationLat = 55.7558
	stationLon = 37.6173
)

type env struct {
	clients  *fakeClientRepo
	vehicles *fakeVehicleRepo
	rentals  *fakeRentalRepo
	stations *fakeStationRepo
	notifier *fakeNotifier
	uc       *UseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	e := &env{
		clients: &fakeClientRepo{client: &domain.Client{
			ID:    10,
			Email: "client@example.com",
		}},
		vehicles: &fakeVehicleRepo{vehicle: &domain.Vehicle{
			ID:     20,
			Status: domain.VehicleStatusRented,
		}},
		rentals: &fakeRentalRepo{active: &domain.Rental{
			ID:          1,
			ClientID:    10,
			VehicleID:   20,
			StartDate:   start,
			EndDate:     start.Add(48 * time.Hour),
			TotalAmount: 200,
			Status:      domain.RentalStatusActive,
		}},
		stations: &fakeStationRepo{station: &domain.Station{
			ID:        30,
			Name:      "Central",
			Latitude:  stationLat,
			Longitude: stationLon,
			IsActive:  true,
		}},
		notifier: &fakeNotifier{},
	}

	e.uc = NewUseCase(
		e.clients, e.vehicles, e.rentals, e.stations,
		fakeTxManager{}, e.notifier, nopLogger{}, 1.0,
	)
	return e
}

func TestExecute_Success_CompletesRentalAndParksVehicle(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		StationID: 30,
		Latitude:  stationLat,
		Longitude: stationLon,
	})

	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.Status)
	assert.Equal(t, int64(30), resp.ReturnStationID)

	assert.Equal(t, domain.RentalStatusCompleted, e.rentals.active.Status)
	require.NotNil(t, e.rentals.active.ReturnStationID)
	assert.Equal(t, int64(30), *e.rentals.active.ReturnStationID)

	assert.Equal(t, domain.VehicleStatusAvailable, e.vehicles.vehicle.Status)
	require.NotNil(t, e.vehicles.vehicle.CurrentStationID)
	assert.Equal(t, int64(30), *e.vehicles.vehicle.CurrentStationID)

	assert.Equal(t, []string{"client@example.com"}, e.notifier.sent)
}

func TestExecute_WithinGeofenceRadius(t *testing.T) {
	e := newEnv(t)

	// ~500 метров к северу от станции
	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		StationID: 30,
		Latitude:  stationLat + 0.0045,
		Longitude: stationLon,
	})

	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.Status)
}

func TestExecute_TooFarFromStation(t *testing.T) {
	e := newEnv(t)

	// ~2.2 км к северу от станции
	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		StationID: 30,
		Latitude:  stationLat + 0.02,
		Longitude: stationLon,
	})

	require.ErrorIs(t, err, ErrNotNearStation)
	assert.Equal(t, domain.RentalStatusActive, e.rentals.active.Status)
	assert.Equal(t, domain.VehicleStatusRented, e.vehicles.vehicle.Status)
}

func TestExecute_NoActiveRental(t *testing.T) {
	e := newEnv(t)
	e.rentals.active = nil

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		StationID: 30,
		Latitude:  stationLat,
		Longitude: stationLon,
	})

	require.ErrorIs(t, err, ErrNoActiveRental)
}

func TestExecute_DoubleReturn(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		StationID: 30,
		Latitude:  stationLat,
		Longitude: stationLon,
	})
	require.NoError(t, err)

	// Повторный возврат: активной аренды уже нет
	_, err = e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		StationID: 30,
		Latitude:  stationLat,
		Longitude: stationLon,
	})
	require.ErrorIs(t, err, ErrNoActiveRental)
}

func TestExecute_StationInactive(t *testing.T) {
	e := newEnv(t)
	e.stations.station.IsActive = false

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		StationID: 30,
		Latitude:  stationLat,
		Longitude: stationLon,
	})

	require.ErrorIs(t, err, ErrStationInactive)
}

func TestExecute_StationNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ClientActor{ID: 10},
		StationID: 404,
		Latitude:  stationLat,
		Longitude: stationLon,
	})

	require.ErrorIs(t, err, ErrStationNotFound)
}

func TestExecute_ManagerCannotReturn(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:     domain.ManagerActor{ID: 1},
		StationID: 30,
		Latitude:  stationLat,
		Longitude: stationLon,
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
}
