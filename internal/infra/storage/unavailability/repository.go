package unavailability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	"github.com/velmare/Nautic-BookingService/pkg/dbmetrics"
	"github.com/velmare/Nautic-BookingService/pkg/psqlbuilder"
)

const tableWindows = "unavailability_windows"

var windowColumns = []string{
	"id",
	"boat_id",
	"date_from",
	"date_to",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с окнами недоступности
// Окна создаются и удаляются целиком; редактирование диапазона - это
// удаление и повторное создание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон недоступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно недоступности
func (r *Repository) Create(ctx context.Context, window *domain.UnavailabilityWindow) (*domain.UnavailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableWindows).
		Columns("boat_id", "date_from", "date_to", "reason").
		Values(window.BoatID, window.DateFrom, window.DateTo, window.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&window.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time

	return window, nil
}

// GetByBoatID получает все окна недоступности лодки
func (r *Repository) GetByBoatID(ctx context.Context, boatID int64) ([]*domain.UnavailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From(tableWindows).
		Where(squirrel.Eq{"boat_id": boatID}).
		OrderBy("date_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBoatID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBoatID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// GetCovering получает окна лодки, покрывающие указанную дату
// (date_from <= date <= date_to, границы включительно)
func (r *Repository) GetCovering(ctx context.Context, boatID int64, date time.Time) ([]*domain.UnavailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From(tableWindows).
		Where(squirrel.Eq{"boat_id": boatID}).
		Where(squirrel.LtOrEq{"date_from": date}).
		Where(squirrel.GtOrEq{"date_to": date}).
		OrderBy("date_from ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCovering - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCovering - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// Delete удаляет окно недоступности
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableWindows).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// scanWindows сканирует результаты запроса в слайс окон
func scanWindows(rows *sql.Rows) ([]*domain.UnavailabilityWindow, error) {
	windows := make([]*domain.UnavailabilityWindow, 0)

	for rows.Next() {
		var window domain.UnavailabilityWindow
		var createdAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.BoatID,
			&window.DateFrom,
			&window.DateTo,
			&window.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %w", ErrScanRow, err)
		}

		window.CreatedAt = createdAt.Time
		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %w", ErrScanRow, err)
	}

	return windows, nil
}
