package cancel_rental

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
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

func (r *fakeClientRepo) Credit(_ context.Context, id int64, amount float64) (float64, error) {
	if r.client == nil || r.client.ID != id {
		return 0, clientRepo.ErrClientNotFound
	}
	r.client.Balance += amount
	return r.client.Balance, nil
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

func (r *fakeRentalRepo) UpdateStatus(_ context.Context, id int64, status domain.RentalStatus) error {
	if r.rental == nil || r.rental.ID != id {
		return rentalRepo.ErrRentalNotFound
	}
	r.rental.Status = status
	return nil
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
	clients  *fakeClientRepo
	rentals  *fakeRentalRepo
	payments *fakePaymentRepo
	notifier *fakeNotifier
	uc       *UseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	e := &env{
		clients: &fakeClientRepo{client: &domain.Client{
			ID:      10,
			Email:   "client@example.com",
			Balance: 300,
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
		payments: &fakePaymentRepo{},
		notifier: &fakeNotifier{},
	}

	e.uc = NewUseCase(e.clients, e.rentals, e.payments, fakeTxManager{}, e.notifier, nopLogger{})
	return e
}

func TestExecute_Success_RefundRestoresBalance(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
	// 300 + возврат 200 = 500: баланс восстановлен до уровня перед созданием
	assert.InDelta(t, 500, resp.Balance, 0.001)
	assert.InDelta(t, 500, e.clients.client.Balance, 0.001)

	require.Len(t, e.payments.payments, 1)
	assert.Equal(t, domain.PaymentKindRefund, e.payments.payments[0].Kind)
	assert.InDelta(t, 200, e.payments.payments[0].Amount, 0.001)

	assert.Equal(t, []string{"client@example.com"}, e.notifier.sent)
}

func TestExecute_ActiveRentalCannotBeCancelled(t *testing.T) {
	e := newEnv(t)
	e.rentals.rental.Status = domain.RentalStatusActive

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 1,
	})

	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.InDelta(t, 300, e.clients.client.Balance, 0.001)
	assert.Empty(t, e.payments.payments)
}

func TestExecute_ForeignRentalRejected(t *testing.T) {
	e := newEnv(t)
	e.rentals.rental.ClientID = 77
	e.clients.client.ID = 55

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 55},
		RentalID: 1,
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_ManagerGoesThroughStatusFlow(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ManagerActor{ID: 1},
		RentalID: 1,
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_RentalNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:    domain.ClientActor{ID: 10},
		RentalID: 404,
	})

	require.ErrorIs(t, err, ErrRentalNotFound)
}
