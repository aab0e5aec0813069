package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий клиентов и их балансов.
// Баланс меняется только через Debit/Credit - атомарные условные UPDATE,
// линеаризуемые относительно конкурентных списаний по той же строке.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var clientColumns = []string{
	"id",
	"name",
	"email",
	"is_verified",
	"balance",
	"created_at",
	"updated_at",
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate получает клиента по ID с блокировкой строки (FOR UPDATE).
// Должен вызываться внутри транзакции; берет блокировку строки клиента
// первой - до блокировки машины - чтобы исключить дедлоки по порядку захвата.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Client, error) {
	return r.get(ctx, id, true)
}

func (r *Repository) get(ctx context.Context, id int64, forUpdate bool) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"id": id})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: get - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.IsVerified,
		&client.Balance,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get - scan client: %v", ErrScanRow, err)
	}

	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return &client, nil
}

// Debit атомарно списывает сумму с баланса клиента.
// Условие balance >= amount входит в сам UPDATE: два конкурентных списания
// 80 и 80 при балансе 100 не могут пройти оба.
// Возвращает новый баланс или ErrInsufficientFunds.
func (r *Repository) Debit(ctx context.Context, id int64, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("balance", squirrel.Expr("balance - ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"balance": amount}).
		Suffix("RETURNING balance").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Debit - build update query: %v", ErrBuildQuery, err)
	}

	var balance float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)

	if err == sql.ErrNoRows {
		// Строка не обновлена: либо клиента нет, либо не хватило средств
		if _, getErr := r.get(ctx, id, false); getErr != nil {
			return 0, getErr
		}
		return 0, ErrInsufficientFunds
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Debit - execute update: %v", ErrExecQuery, err)
	}

	return balance, nil
}

// Credit атомарно зачисляет сумму на баланс клиента и возвращает новый баланс
func (r *Repository) Credit(ctx context.Context, id int64, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("balance", squirrel.Expr("balance + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING balance").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Credit - build update query: %v", ErrBuildQuery, err)
	}

	var balance float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&balance)

	if err == sql.ErrNoRows {
		return 0, ErrClientNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Credit - execute update: %v", ErrExecQuery, err)
	}

	return balance, nil
}
