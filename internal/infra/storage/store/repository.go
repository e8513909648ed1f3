package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/dbmetrics"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/psqlbuilder"
)

// Repository stores venue records. Opening hours and holiday sets are
// JSONB columns, read and replaced wholesale like the schedule fields.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a store repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one store. Returns ErrStoreNotFound when absent; the
// availability engine treats that as "nothing bookable", not a failure.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"phone",
		"opening_hours",
		"special_holidays",
		"created_at",
		"updated_at",
	).
		From("stores").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var store domain.Store
	var openingHoursRaw, holidaysRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&store.ID,
		&store.Name,
		&store.Address,
		&store.Phone,
		&openingHoursRaw,
		&holidaysRaw,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan store: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(openingHoursRaw, &store.OpeningHours); err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode opening_hours: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(holidaysRaw, &store.SpecialHolidays); err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode special_holidays: %v", ErrScanRow, err)
	}

	store.CreatedAt = createdAt.Time
	store.UpdatedAt = updatedAt.Time

	return &store, nil
}

// Create inserts a new store record
func (r *Repository) Create(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	openingHoursRaw, holidaysRaw, err := encodeFields(store)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("stores").
		Columns("name", "address", "phone", "opening_hours", "special_holidays").
		Values(store.Name, store.Address, store.Phone, openingHoursRaw, holidaysRaw).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&store.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	store.CreatedAt = createdAt.Time
	store.UpdatedAt = updatedAt.Time

	return store, nil
}

// Update replaces the full store record
func (r *Repository) Update(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	openingHoursRaw, holidaysRaw, err := encodeFields(store)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("stores").
		Set("name", store.Name).
		Set("address", store.Address).
		Set("phone", store.Phone).
		Set("opening_hours", openingHoursRaw).
		Set("special_holidays", holidaysRaw).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": store.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	store.CreatedAt = createdAt.Time
	store.UpdatedAt = updatedAt.Time

	return store, nil
}

func encodeFields(store *domain.Store) (openingHours, holidays []byte, err error) {
	hours := store.OpeningHours
	if hours == nil {
		hours = []domain.WorkingHours{}
	}
	openingHours, err = json.Marshal(hours)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening_hours: %v", ErrMarshal, err)
	}

	days := store.SpecialHolidays
	if days == nil {
		days = []string{}
	}
	holidays, err = json.Marshal(days)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: special_holidays: %v", ErrMarshal, err)
	}
	return openingHours, holidays, nil
}
