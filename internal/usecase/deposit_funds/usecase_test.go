package deposit_funds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	clientRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/client"
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

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
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
	payments *fakePaymentRepo
	notifier *fakeNotifier
	uc       *UseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		clients: &fakeClientRepo{client: &domain.Client{
			ID:      10,
			Email:   "client@example.com",
			Balance: 100,
		}},
		payments: &fakePaymentRepo{},
		notifier: &fakeNotifier{},
	}

	e.uc = NewUseCase(e.clients, e.payments, fakeTxManager{}, e.notifier, nopLogger{})
	return e
}

func TestExecute_Success_CreditsBalanceAndWritesLedger(t *testing.T) {
	e := newEnv(t)

	resp, err := e.uc.Execute(context.Background(), &Request{
		Actor:  domain.ClientActor{ID: 10},
		Amount: 250,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ClientID)
	assert.InDelta(t, 250, resp.Amount, 0.001)
	assert.InDelta(t, 350, resp.Balance, 0.001)

	require.Len(t, e.payments.payments, 1)
	assert.Equal(t, domain.PaymentKindDeposit, e.payments.payments[0].Kind)
	assert.InDelta(t, 250, e.payments.payments[0].Amount, 0.001)
	assert.Nil(t, e.payments.payments[0].RentalID)

	assert.Equal(t, []string{"client@example.com"}, e.notifier.sent)
}

func TestExecute_NonPositiveAmount(t *testing.T) {
	e := newEnv(t)

	for _, amount := range []float64{0, -50} {
		_, err := e.uc.Execute(context.Background(), &Request{
			Actor:  domain.ClientActor{ID: 10},
			Amount: amount,
		})
		require.ErrorIs(t, err, ErrNonPositiveAmount)
	}

	assert.InDelta(t, 100, e.clients.client.Balance, 0.001)
	assert.Empty(t, e.payments.payments)
}

func TestExecute_ManagerCannotDeposit(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:  domain.ManagerActor{ID: 1},
		Amount: 100,
	})

	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExecute_ClientNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		Actor:  domain.ClientActor{ID: 404},
		Amount: 100,
	})

	require.ErrorIs(t, err, ErrClientNotFound)
}
