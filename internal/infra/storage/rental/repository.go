package rental

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий аренд
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аренд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var rentalColumns = []string{
	"id",
	"client_id",
	"vehicle_id",
	"pickup_station_id",
	"return_station_id",
	"start_date",
	"end_date",
	"total_amount",
	"status",
	"created_at",
	"updated_at",
}

// Create создает новую аренду
func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rentals").
		Columns(
			"client_id",
			"vehicle_id",
			"pickup_station_id",
			"return_station_id",
			"start_date",
			"end_date",
			"total_amount",
			"status",
		).
		Values(
			rental.ClientID,
			rental.VehicleID,
			rental.PickupStationID,
			rental.ReturnStationID,
			rental.StartDate,
			rental.EndDate,
			rental.TotalAmount,
			rental.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rental.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return rental, nil
}

// GetByID получает аренду по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"id": id})

	// Под транзакцией строка аренды блокируется на время операции
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rental, err := r.scanRental(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// GetByClientID получает аренды клиента, опционально фильтруя по статусу.
// Сортировка: новые первыми.
func (r *Repository) GetByClientID(ctx context.Context, clientID int64, status *domain.RentalStatus) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRentals(rows)
}

// GetActiveByClient получает ACTIVE аренду клиента.
// У клиента может быть не более одной активной аренды; под транзакцией
// строка блокируется (FOR UPDATE). Возвращает ErrRentalNotFound, если её нет.
func (r *Repository) GetActiveByClient(ctx context.Context, clientID int64) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{
			"client_id": clientID,
			"status":    domain.RentalStatusActive,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByClient - build select query: %v", ErrBuildQuery, err)
	}

	rental, err := r.scanRental(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByClient - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// FindOverlapping получает аренды машины в указанных статусах, пересекающие
// интервал [start, end]. Пересечение включающее с обеих сторон:
// start_date <= $end AND end_date >= $start.
// Под транзакцией найденные строки блокируются (FOR UPDATE), чтобы два
// конкурентных создания не увидели "конфликтов нет" одновременно.
func (r *Repository) FindOverlapping(
	ctx context.Context,
	vehicleID int64,
	start, end time.Time,
	statuses []domain.RentalStatus,
	excludeID *int64,
) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"status": statusStrings}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("start_date ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRentals(rows)
}

// UpdateDates обновляет интервал аренды и пересчитанную сумму
func (r *Repository) UpdateDates(ctx context.Context, id int64, start, end time.Time, totalAmount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("start_date", start).
		Set("end_date", end).
		Set("total_amount", totalAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDates - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateDates")
}

// UpdateStatus обновляет статус аренды
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// Complete завершает аренду: статус COMPLETED и станция возврата одним запросом
func (r *Repository) Complete(ctx context.Context, id int64, returnStationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("status", domain.RentalStatusCompleted).
		Set("return_station_id", returnStationID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Complete")
}

// Delete физически удаляет аренду.
// Используется только менеджерским удалением PENDING аренды.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rentals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanRental(row rowScanner) (*domain.Rental, error) {
	var rental domain.Rental
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rental.ID,
		&rental.ClientID,
		&rental.VehicleID,
		&rental.PickupStationID,
		&rental.ReturnStationID,
		&rental.StartDate,
		&rental.EndDate,
		&rental.TotalAmount,
		&rental.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return &rental, nil
}

func (r *Repository) scanRentals(rows *sql.Rows) ([]*domain.Rental, error) {
	rentals := make([]*domain.Rental, 0)

	for rows.Next() {
		rental, err := r.scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRentals - scan row: %v", ErrScanRow, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRentals - rows error: %v", ErrScanRow, err)
	}

	return rentals, nil
}
