package boat

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/BRM-RentalService/internal/domain"
	"github.com/m04kA/BRM-RentalService/pkg/dbmetrics"
	"github.com/m04kA/BRM-RentalService/pkg/psqlbuilder"
)

const boatsTable = "boats"

var boatColumns = []string{
	"id",
	"company_id",
	"name",
	"type",
	"capacity",
	"price_per_day",
	"location",
	"status",
	"bookings_count",
	"revenue",
	"features",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с лодками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лодок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую лодку
func (r *Repository) Create(ctx context.Context, boat *domain.Boat) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(boatsTable).
		Columns(
			"company_id",
			"name",
			"type",
			"capacity",
			"price_per_day",
			"location",
			"status",
			"bookings_count",
			"revenue",
			"features",
			"image_url",
		).
		Values(
			boat.CompanyID,
			boat.Name,
			boat.Type,
			boat.Capacity,
			boat.PricePerDay,
			boat.Location,
			boat.Status,
			boat.BookingsCount,
			boat.Revenue,
			pq.Array(boat.Features),
			boat.ImageURL,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&boat.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	boat.CreatedAt = createdAt.Time
	boat.UpdatedAt = updatedAt.Time

	return boat, nil
}

// GetByID получает лодку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(boatColumns...).
		From(boatsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	boat, err := scanBoat(row)
	if err == sql.ErrNoRows {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan boat: %v", ErrScanRow, err)
	}

	return boat, nil
}

// ListWithFilter получает список лодок с фильтрацией по компании и статусу
// Порядок детерминирован (по id), чтобы фильтрация по доступности поверх
// этого списка была стабильной
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BoatsFilter) ([]*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(boatColumns...).
		From(boatsTable)

	if filter.CompanyID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"company_id": *filter.CompanyID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	boats := make([]*domain.Boat, 0)
	for rows.Next() {
		boat, err := scanBoat(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan row: %v", ErrScanRow, err)
		}
		boats = append(boats, boat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - rows error: %v", ErrScanRow, err)
	}

	return boats, nil
}

// Update обновляет описательные атрибуты и статус лодки
// Агрегатные счётчики (bookings_count, revenue) этим методом не изменяются -
// их обновляет только IncrementBookingStats
func (r *Repository) Update(ctx context.Context, boat *domain.Boat) (*domain.Boat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(boatsTable).
		Set("name", boat.Name).
		Set("type", boat.Type).
		Set("capacity", boat.Capacity).
		Set("price_per_day", boat.PricePerDay).
		Set("location", boat.Location).
		Set("status", boat.Status).
		Set("features", pq.Array(boat.Features)).
		Set("image_url", boat.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": boat.ID}).
		Suffix("RETURNING bookings_count, revenue, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&boat.BookingsCount,
		&boat.Revenue,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBoatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	boat.CreatedAt = createdAt.Time
	boat.UpdatedAt = updatedAt.Time

	return boat, nil
}

// IncrementBookingStats атомарно увеличивает счётчик бронирований и выручку лодки
// Вызывается контроллером бронирований после успешной записи бронирования
func (r *Repository) IncrementBookingStats(ctx context.Context, id int64, revenue float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(boatsTable).
		Set("bookings_count", squirrel.Expr("bookings_count + 1")).
		Set("revenue", squirrel.Expr("revenue + ?", revenue)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementBookingStats - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementBookingStats - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementBookingStats - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBoatNotFound
	}

	return nil
}

// Delete удаляет лодку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(boatsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBoatNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBoat сканирует одну строку результата в лодку
func scanBoat(row rowScanner) (*domain.Boat, error) {
	var boat domain.Boat
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&boat.ID,
		&boat.CompanyID,
		&boat.Name,
		&boat.Type,
		&boat.Capacity,
		&boat.PricePerDay,
		&boat.Location,
		&boat.Status,
		&boat.BookingsCount,
		&boat.Revenue,
		pq.Array(&boat.Features),
		&boat.ImageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	boat.CreatedAt = createdAt.Time
	boat.UpdatedAt = updatedAt.Time

	return &boat, nil
}
