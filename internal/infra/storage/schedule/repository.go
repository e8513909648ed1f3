package schedule

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

// Repository stores per-staff schedules. The weekly pattern and the
// per-date override sets live in JSONB columns: they are always read
// and replaced as a whole, never queried field by field.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a schedule repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaffID fetches the schedule of one staff member.
// Returns ErrScheduleNotFound when none exists.
func (r *Repository) GetByStaffID(ctx context.Context, staffID int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"working_hours",
		"special_holidays",
		"special_workdays",
		"created_at",
		"updated_at",
	).
		From("schedules").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.Schedule
	var workingHoursRaw, holidaysRaw, workdaysRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&schedule.StaffID,
		&workingHoursRaw,
		&holidaysRaw,
		&workdaysRaw,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - scan schedule: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(workingHoursRaw, &schedule.WorkingHours); err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - decode working_hours: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(holidaysRaw, &schedule.SpecialHolidays); err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - decode special_holidays: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(workdaysRaw, &schedule.SpecialWorkdays); err != nil {
		return nil, fmt.Errorf("%w: GetByStaffID - decode special_workdays: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// Upsert replaces the full schedule record for a staff member, creating
// it on first save. There are no partial-field patch semantics: callers
// resubmit the complete set every time.
func (r *Repository) Upsert(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingHoursRaw, holidaysRaw, workdaysRaw, err := encodeFields(schedule)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"staff_id",
			"working_hours",
			"special_holidays",
			"special_workdays",
		).
		Values(
			schedule.StaffID,
			workingHoursRaw,
			holidaysRaw,
			workdaysRaw,
		).
		Suffix(`ON CONFLICT (staff_id) DO UPDATE SET
			working_hours = EXCLUDED.working_hours,
			special_holidays = EXCLUDED.special_holidays,
			special_workdays = EXCLUDED.special_workdays,
			updated_at = NOW()`).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

func encodeFields(schedule *domain.Schedule) (workingHours, holidays, workdays []byte, err error) {
	// Encode nil slices as empty JSON arrays so reads never see null
	workingHours, err = json.Marshal(orEmptyHours(schedule.WorkingHours))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: working_hours: %v", ErrMarshal, err)
	}
	holidays, err = json.Marshal(orEmptyStrings(schedule.SpecialHolidays))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: special_holidays: %v", ErrMarshal, err)
	}
	workdays, err = json.Marshal(orEmptyWorkdays(schedule.SpecialWorkdays))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: special_workdays: %v", ErrMarshal, err)
	}
	return workingHours, holidays, workdays, nil
}

func orEmptyHours(s []domain.WorkingHours) []domain.WorkingHours {
	if s == nil {
		return []domain.WorkingHours{}
	}
	return s
}

func orEmptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyWorkdays(s []domain.SpecialWorkday) []domain.SpecialWorkday {
	if s == nil {
		return []domain.SpecialWorkday{}
	}
	return s
}
