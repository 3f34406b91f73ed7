package fleet

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/velmare/Nautic-BookingService/internal/domain"
	"github.com/velmare/Nautic-BookingService/pkg/dbmetrics"
	"github.com/velmare/Nautic-BookingService/pkg/psqlbuilder"
)

const (
	tableBoats           = "boats"
	tableServices        = "services"
	tableSchedules       = "price_schedules"
	tableScheduleSeasons = "price_schedule_seasons"
	tablePriceTiers      = "price_tiers"
)

// Repository read-only репозиторий флота: лодки, услуги и таблицы цен
// CRUD флота живет в админском контуре, сервису бронирований нужно только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория флота
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBoatByID получает лодку по ID
func (r *Repository) GetBoatByID(ctx context.Context, id int64) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"boat_type",
		"max_passengers",
		"rental_price_high",
		"rental_price_mid",
		"rental_price_low",
		"charter_price_high",
		"charter_price_mid",
		"charter_price_low",
		"created_at",
		"updated_at",
	).
		From(tableBoats).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBoatByID - build select query: %w", ErrBuildQuery, err)
	}

	var boat domain.Boat
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&boat.ID,
		&boat.Name,
		&boat.BoatType,
		&boat.MaxPassengers,
		&boat.RentalPrices.High,
		&boat.RentalPrices.Mid,
		&boat.RentalPrices.Low,
		&boat.CharterPrices.High,
		&boat.CharterPrices.Mid,
		&boat.CharterPrices.Low,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBoatByID - scan boat: %w", ErrScanRow, err)
	}

	boat.CreatedAt = createdAt.Time
	boat.UpdatedAt = updatedAt.Time

	return &boat, nil
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"boat_id",
		"name",
		"service_type",
		"created_at",
		"updated_at",
	).
		From(tableServices).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %w", ErrBuildQuery, err)
	}

	var service domain.Service
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.BoatID,
		&service.Name,
		&service.Type,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %w", ErrScanRow, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

// GetPriceSchedule получает таблицу цен для услуги на лодке с учетом иерархии:
// 1. Переопределение для конкретной лодки (boat_id = boatID)
// 2. Дефолт услуги (boat_id IS NULL)
// Если нет ни того, ни другого - ErrScheduleNotFound (никогда не нулевая цена)
func (r *Repository) GetPriceSchedule(ctx context.Context, boatID, serviceID int64) (*domain.PriceSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"boat_id",
		"created_at",
		"updated_at",
	).
		From(tableSchedules).
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.Or{
			squirrel.Eq{"boat_id": boatID},
			squirrel.Eq{"boat_id": nil},
		}).
		OrderBy("boat_id ASC NULLS LAST"). // переопределение для лодки выигрывает у дефолта
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPriceSchedule - build select query: %w", ErrBuildQuery, err)
	}

	var schedule domain.PriceSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.ServiceID,
		&schedule.BoatID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPriceSchedule - scan schedule: %w", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	if err := r.loadSeasons(ctx, executor, &schedule); err != nil {
		return nil, err
	}

	return &schedule, nil
}

// loadSeasons загружает сезонные цены и пассажирские диапазоны таблицы
func (r *Repository) loadSeasons(ctx context.Context, executor DBExecutor, schedule *domain.PriceSchedule) error {
	query, args, err := psqlbuilder.Select("season", "flat_price").
		From(tableScheduleSeasons).
		Where(squirrel.Eq{"schedule_id": schedule.ID}).
		OrderBy("season ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadSeasons - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadSeasons - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	seasons := make([]domain.SeasonPrice, 0)
	for rows.Next() {
		var sp domain.SeasonPrice
		if err := rows.Scan(&sp.Season, &sp.FlatPrice); err != nil {
			return fmt.Errorf("%w: loadSeasons - scan row: %w", ErrScanRow, err)
		}
		seasons = append(seasons, sp)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadSeasons - rows error: %w", ErrScanRow, err)
	}

	tiersBySeason, err := r.loadTiers(ctx, executor, schedule.ID)
	if err != nil {
		return err
	}

	for i := range seasons {
		seasons[i].Tiers = tiersBySeason[seasons[i].Season]
	}

	schedule.Seasons = seasons
	return nil
}

// loadTiers загружает пассажирские диапазоны, сгруппированные по сезону
func (r *Repository) loadTiers(ctx context.Context, executor DBExecutor, scheduleID int64) (map[domain.Season][]domain.PassengerTier, error) {
	query, args, err := psqlbuilder.Select("season", "min_passengers", "max_passengers", "price").
		From(tablePriceTiers).
		Where(squirrel.Eq{"schedule_id": scheduleID}).
		OrderBy("season ASC, min_passengers ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: loadTiers - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadTiers - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	tiers := make(map[domain.Season][]domain.PassengerTier)
	for rows.Next() {
		var season domain.Season
		var tier domain.PassengerTier
		if err := rows.Scan(&season, &tier.MinPassengers, &tier.MaxPassengers, &tier.Price); err != nil {
			return nil, fmt.Errorf("%w: loadTiers - scan row: %w", ErrScanRow, err)
		}
		tiers[season] = append(tiers[season], tier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadTiers - rows error: %w", ErrScanRow, err)
	}

	return tiers, nil
}
