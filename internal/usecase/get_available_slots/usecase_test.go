package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	scheduleRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/schedule"
	storeRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/store"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/types"
)

type mockScheduleRepo struct {
	schedule *domain.Schedule
	err      error
}

func (m *mockScheduleRepo) GetByStaffID(ctx context.Context, staffID int64) (*domain.Schedule, error) {
	return m.schedule, m.err
}

type mockStoreRepo struct {
	store *domain.Store
	err   error
}

func (m *mockStoreRepo) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	return m.store, m.err
}

type mockReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	gotFilter    domain.StaffReservationsFilter
}

func (m *mockReservationRepo) FindByStaff(ctx context.Context, filter domain.StaffReservationsFilter) ([]*domain.Reservation, error) {
	m.gotFilter = filter
	return m.reservations, m.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(schedule *domain.Schedule, store *domain.Store, reservations []*domain.Reservation) *UseCase {
	return NewUseCase(
		&mockScheduleRepo{schedule: schedule},
		&mockStoreRepo{store: store},
		&mockReservationRepo{reservations: reservations},
		jst,
		nopLogger{},
	)
}

func TestExecute_BasicGrid(t *testing.T) {
	// Monday: staff 09:00-12:00, store 09:00-18:00
	uc := newTestUseCase(testSchedule(), testStore(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         10,
		StoreID:         1,
		StartDate:       date(2026, 9, 21),
		EndDate:         date(2026, 9, 21),
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.StaffID)
	assert.Equal(t,
		[]types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		resp.Slots["2026-09-21"])
}

func TestExecute_ReservationExcluded(t *testing.T) {
	reservations := []*domain.Reservation{
		{
			DateTime:             time.Date(2026, 9, 21, 10, 0, 0, 0, jst),
			TotalDurationMinutes: 30,
			Status:               domain.StatusReserved,
		},
	}
	uc := newTestUseCase(testSchedule(), testStore(), reservations)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         10,
		StoreID:         1,
		StartDate:       date(2026, 9, 21),
		EndDate:         date(2026, 9, 21),
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]types.TimeString{"09:00", "09:30", "10:30", "11:00", "11:30"},
		resp.Slots["2026-09-21"])
}

func TestExecute_LongDurationContiguity(t *testing.T) {
	uc := newTestUseCase(testSchedule(), testStore(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         10,
		StoreID:         1,
		StartDate:       date(2026, 9, 21),
		EndDate:         date(2026, 9, 21),
		DurationMinutes: 90,
	})
	require.NoError(t, err)

	// 90 minutes = 3 cells; the last viable start within 09:00-12:00 is 10:30
	assert.Equal(t,
		[]types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		resp.Slots["2026-09-21"])
}

func TestExecute_MultiDayRange(t *testing.T) {
	uc := newTestUseCase(testSchedule(), testStore(), nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         10,
		StoreID:         1,
		StartDate:       date(2026, 9, 20), // Sunday
		EndDate:         date(2026, 9, 23), // Wednesday
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	// Every date in the range gets a key, including empty days
	require.Len(t, resp.Slots, 4)
	assert.Empty(t, resp.Slots["2026-09-20"]) // staff off, store closed
	assert.NotEmpty(t, resp.Slots["2026-09-21"])
	assert.NotEmpty(t, resp.Slots["2026-09-22"])
	assert.Empty(t, resp.Slots["2026-09-23"]) // staff has no Wednesday entry
}

func TestExecute_StoreMissingDegradesToEmpty(t *testing.T) {
	uc := NewUseCase(
		&mockScheduleRepo{schedule: testSchedule()},
		&mockStoreRepo{err: storeRepo.ErrStoreNotFound},
		&mockReservationRepo{},
		jst,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         10,
		StoreID:         99,
		StartDate:       date(2026, 9, 21),
		EndDate:         date(2026, 9, 22),
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Empty(t, resp.Slots["2026-09-21"])
	assert.Empty(t, resp.Slots["2026-09-22"])
}

func TestExecute_ScheduleMissingMeansUnavailable(t *testing.T) {
	uc := NewUseCase(
		&mockScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&mockStoreRepo{store: testStore()},
		&mockReservationRepo{},
		jst,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		StaffID:         10,
		StoreID:         1,
		StartDate:       date(2026, 9, 21),
		EndDate:         date(2026, 9, 21),
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots["2026-09-21"])
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(testSchedule(), testStore(), nil)

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "non-positive duration",
			req: &Request{
				StaffID: 10, StoreID: 1,
				StartDate: date(2026, 9, 21), EndDate: date(2026, 9, 21),
				DurationMinutes: 0,
			},
		},
		{
			name: "end before start",
			req: &Request{
				StaffID: 10, StoreID: 1,
				StartDate: date(2026, 9, 22), EndDate: date(2026, 9, 21),
				DurationMinutes: 30,
			},
		},
		{
			name: "non-positive staff",
			req: &Request{
				StaffID: 0, StoreID: 1,
				StartDate: date(2026, 9, 21), EndDate: date(2026, 9, 21),
				DurationMinutes: 30,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_QueriesWholeRangeOnce(t *testing.T) {
	reservationRepo := &mockReservationRepo{}
	uc := NewUseCase(
		&mockScheduleRepo{schedule: testSchedule()},
		&mockStoreRepo{store: testStore()},
		reservationRepo,
		jst,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		StaffID:         10,
		StoreID:         1,
		StartDate:       date(2026, 9, 21),
		EndDate:         date(2026, 9, 25),
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	// The ledger is read once with venue-local day bounds
	assert.Equal(t, int64(10), reservationRepo.gotFilter.StaffID)
	assert.Equal(t, time.Date(2026, 9, 21, 0, 0, 0, 0, jst), reservationRepo.gotFilter.From)
	assert.True(t, reservationRepo.gotFilter.To.After(time.Date(2026, 9, 25, 23, 59, 0, 0, jst)))
}
