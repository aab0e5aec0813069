package rentals

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

type fakeRentalRepo struct {
	rentals []*domain.Rental
}

func (r *fakeRentalRepo) GetByID(_ context.Context, id int64) (*domain.Rental, error) {
	for _, rental := range r.rentals {
		if rental.ID == id {
			return rental, nil
		}
	}
	return nil, rentalRepo.ErrRentalNotFound
}

func (r *fakeRentalRepo) GetByClientID(_ context.Context, clientID int64, status *domain.RentalStatus) ([]*domain.Rental, error) {
	var out []*domain.Rental
	for _, rental := range r.rentals {
		if rental.ClientID != clientID {
			continue
		}
		if status != nil && rental.Status != *status {
			continue
		}
		out = append(out, rental)
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []*domain.Payment
}

func (r *fakePaymentRepo) GetByClientID(_ context.Context, clientID int64) ([]*domain.Payment, error) {
	var out []*domain.Payment
	for _, p := range r.payments {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(rentals []*domain.Rental, payments []*domain.Payment) *Service {
	return NewService(&fakeRentalRepo{rentals: rentals}, &fakePaymentRepo{payments: payments}, nopLogger{})
}

var testStart = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func TestGetByID_OwnerSeesOwnRental(t *testing.T) {
	svc := newService([]*domain.Rental{
		{ID: 1, ClientID: 10, VehicleID: 20, StartDate: testStart, EndDate: testStart.Add(48 * time.Hour), Status: domain.RentalStatusPending},
	}, nil)

	resp, err := svc.GetByID(context.Background(), 1, domain.ClientActor{ID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestGetByID_ForeignClientDenied(t *testing.T) {
	svc := newService([]*domain.Rental{
		{ID: 1, ClientID: 10, Status: domain.RentalStatusPending},
	}, nil)

	_, err := svc.GetByID(context.Background(), 1, domain.ClientActor{ID: 77})

	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_ManagerSeesAny(t *testing.T) {
	svc := newService([]*domain.Rental{
		{ID: 1, ClientID: 10, Status: domain.RentalStatusActive},
	}, nil)

	resp, err := svc.GetByID(context.Background(), 1, domain.ManagerActor{ID: 1})

	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(nil, nil)

	_, err := svc.GetByID(context.Background(), 404, domain.ManagerActor{ID: 1})

	require.ErrorIs(t, err, ErrRentalNotFound)
}

func TestGetUserRentals_StatusFilter(t *testing.T) {
	svc := newService([]*domain.Rental{
		{ID: 1, ClientID: 10, Status: domain.RentalStatusPending},
		{ID: 2, ClientID: 10, Status: domain.RentalStatusCompleted},
		{ID: 3, ClientID: 77, Status: domain.RentalStatusPending},
	}, nil)

	status := "PENDING"
	resp, err := svc.GetUserRentals(context.Background(), &models.GetUserRentalsRequest{ClientID: 10, Status: &status})

	require.NoError(t, err)
	require.Len(t, resp.Rentals, 1)
	assert.Equal(t, int64(1), resp.Rentals[0].ID)
}

func TestGetUserRentals_InvalidStatus(t *testing.T) {
	svc := newService(nil, nil)

	status := "PAUSED"
	_, err := svc.GetUserRentals(context.Background(), &models.GetUserRentalsRequest{ClientID: 10, Status: &status})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserPayments_ReturnsClientLedger(t *testing.T) {
	rentalID := int64(1)
	svc := newService(nil, []*domain.Payment{
		{ID: 1, ClientID: 10, Amount: 500, Kind: domain.PaymentKindDeposit, CreatedAt: testStart},
		{ID: 2, ClientID: 10, Amount: 200, Kind: domain.PaymentKindRental, RentalID: &rentalID, CreatedAt: testStart},
		{ID: 3, ClientID: 77, Amount: 100, Kind: domain.PaymentKindDeposit, CreatedAt: testStart},
	})

	resp, err := svc.GetUserPayments(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, resp.Payments, 2)
	assert.Equal(t, "DEPOSIT", resp.Payments[0].Kind)
	assert.Equal(t, "RENTAL", resp.Payments[1].Kind)
	require.NotNil(t, resp.Payments[1].RentalID)
	assert.Equal(t, rentalID, *resp.Payments[1].RentalID)
}

func TestGetUserPayments_EmptyHistory(t *testing.T) {
	svc := newService(nil, nil)

	resp, err := svc.GetUserPayments(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, resp.Payments)
}
