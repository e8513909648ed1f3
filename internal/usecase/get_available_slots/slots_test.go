package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/types"
)

var jst = time.FixedZone("venue", 9*60*60)

func testStore() *domain.Store {
	return &domain.Store{
		ID:   1,
		Name: "Shibuya",
		OpeningHours: []domain.WorkingHours{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 4, StartTime: "09:00", EndTime: "18:00"},
			{DayOfWeek: 5, StartTime: "09:00", EndTime: "18:00"},
		},
	}
}

func testSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID:      1,
		StaffID: 10,
		WorkingHours: []domain.WorkingHours{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
			{DayOfWeek: 2, StartTime: "10:00", EndTime: "19:00"},
		},
	}
}

func TestResolveDayWindow(t *testing.T) {
	// 2026-09-21 is a Monday
	const monday = "2026-09-21"

	t.Run("intersection of store and staff windows", func(t *testing.T) {
		start, end, ok := resolveDayWindow(monday, 1, testStore(), testSchedule())
		require.True(t, ok)
		assert.Equal(t, types.TimeString("09:00"), start)
		assert.Equal(t, types.TimeString("12:00"), end)
	})

	t.Run("staff window clipped by store close", func(t *testing.T) {
		start, end, ok := resolveDayWindow("2026-09-22", 2, testStore(), testSchedule())
		require.True(t, ok)
		assert.Equal(t, types.TimeString("10:00"), start)
		assert.Equal(t, types.TimeString("18:00"), end)
	})

	t.Run("store holiday empties the day", func(t *testing.T) {
		store := testStore()
		store.SpecialHolidays = []string{monday}
		_, _, ok := resolveDayWindow(monday, 1, store, testSchedule())
		assert.False(t, ok)
	})

	t.Run("staff holiday empties the day", func(t *testing.T) {
		schedule := testSchedule()
		schedule.SpecialHolidays = []string{monday}
		_, _, ok := resolveDayWindow(monday, 1, testStore(), schedule)
		assert.False(t, ok)
	})

	t.Run("holiday wins over special workday on the same date", func(t *testing.T) {
		schedule := testSchedule()
		schedule.SpecialHolidays = []string{monday}
		schedule.SpecialWorkdays = []domain.SpecialWorkday{
			{Date: monday, StartTime: "10:00", EndTime: "15:00"},
		}
		_, _, ok := resolveDayWindow(monday, 1, testStore(), schedule)
		assert.False(t, ok)
	})

	t.Run("special workday replaces the weekly pattern", func(t *testing.T) {
		// Sunday: no store hours, no staff hours, but a special workday
		const sunday = "2026-09-20"
		schedule := testSchedule()
		schedule.SpecialWorkdays = []domain.SpecialWorkday{
			{Date: sunday, StartTime: "10:00", EndTime: "15:00"},
		}
		start, end, ok := resolveDayWindow(sunday, 0, testStore(), schedule)
		require.True(t, ok)
		assert.Equal(t, types.TimeString("10:00"), start)
		assert.Equal(t, types.TimeString("15:00"), end)
	})

	t.Run("no schedule means fully unavailable", func(t *testing.T) {
		_, _, ok := resolveDayWindow(monday, 1, testStore(), nil)
		assert.False(t, ok)
	})

	t.Run("staff does not work that weekday", func(t *testing.T) {
		// Wednesday: store open, staff has no entry
		_, _, ok := resolveDayWindow("2026-09-23", 3, testStore(), testSchedule())
		assert.False(t, ok)
	})

	t.Run("disjoint windows yield nothing", func(t *testing.T) {
		schedule := testSchedule()
		schedule.WorkingHours = []domain.WorkingHours{
			{DayOfWeek: 1, StartTime: "19:00", EndTime: "22:00"},
		}
		_, _, ok := resolveDayWindow(monday, 1, testStore(), schedule)
		assert.False(t, ok)
	})
}

func TestGenerateTimeSlots(t *testing.T) {
	slots := generateTimeSlots("09:00", "12:00")
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)

	// Start is offered even when the last cell extends past the end
	slots = generateTimeSlots("09:00", "09:45")
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)

	slots = generateTimeSlots("09:00", "09:00")
	assert.Empty(t, slots)

	// Grid runs to the end of the day without wrapping
	slots = generateTimeSlots("23:00", "24:00")
	assert.Equal(t, []types.TimeString{"23:00", "23:30"}, slots)
}

func TestExcludeReserved(t *testing.T) {
	const date = "2026-09-21"
	candidates := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}

	reservationAt := func(hour, min, duration int, status domain.ReservationStatus) *domain.Reservation {
		return &domain.Reservation{
			DateTime:             time.Date(2026, 9, 21, hour, min, 0, 0, jst),
			TotalDurationMinutes: duration,
			Status:               status,
		}
	}

	t.Run("no reservations keeps all candidates", func(t *testing.T) {
		got := excludeReserved(date, candidates, nil, jst)
		assert.Equal(t, candidates, got)
	})

	t.Run("single slot reservation removes one cell", func(t *testing.T) {
		reservations := []*domain.Reservation{reservationAt(10, 0, 30, domain.StatusReserved)}
		got := excludeReserved(date, candidates, reservations, jst)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:30", "11:00", "11:30"}, got)
	})

	t.Run("long reservation removes every overlapped cell", func(t *testing.T) {
		reservations := []*domain.Reservation{reservationAt(10, 0, 90, domain.StatusReserved)}
		got := excludeReserved(date, candidates, reservations, jst)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "11:30"}, got)
	})

	t.Run("half-open intervals let bookings touch", func(t *testing.T) {
		// Ends exactly at 10:00, so the 10:00 cell stays free
		reservations := []*domain.Reservation{reservationAt(9, 30, 30, domain.StatusReserved)}
		got := excludeReserved(date, candidates, reservations, jst)
		assert.Equal(t, []types.TimeString{"09:00", "10:00", "10:30", "11:00", "11:30"}, got)
	})

	t.Run("canceled reservations do not block", func(t *testing.T) {
		reservations := []*domain.Reservation{reservationAt(10, 0, 30, domain.StatusCanceled)}
		got := excludeReserved(date, candidates, reservations, jst)
		assert.Equal(t, candidates, got)
	})

	t.Run("mid-cell reservation blocks both touched cells", func(t *testing.T) {
		reservations := []*domain.Reservation{reservationAt(10, 15, 30, domain.StatusReserved)}
		got := excludeReserved(date, candidates, reservations, jst)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "11:00", "11:30"}, got)
	})
}

func TestFilterDurationFit(t *testing.T) {
	t.Run("single slot duration keeps everything", func(t *testing.T) {
		candidates := []types.TimeString{"09:00", "10:00", "11:30"}
		assert.Equal(t, candidates, filterDurationFit(candidates, 30))
	})

	t.Run("ninety minutes needs three contiguous cells", func(t *testing.T) {
		candidates := []types.TimeString{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}
		got := filterDurationFit(candidates, 90)
		assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, got)
	})

	t.Run("gap in the middle disqualifies the run", func(t *testing.T) {
		// 10:00 missing: 09:30 cannot start a 90-minute booking
		candidates := []types.TimeString{"09:00", "09:30", "10:30", "11:00", "11:30"}
		got := filterDurationFit(candidates, 90)
		assert.Equal(t, []types.TimeString{"10:30"}, got)
	})

	t.Run("duration rounds up to the next slot multiple", func(t *testing.T) {
		// 45 minutes occupies two cells
		candidates := []types.TimeString{"09:00", "09:30", "11:00"}
		got := filterDurationFit(candidates, 45)
		assert.Equal(t, []types.TimeString{"09:00"}, got)
	})

	t.Run("not enough candidates", func(t *testing.T) {
		candidates := []types.TimeString{"09:00"}
		assert.Empty(t, filterDurationFit(candidates, 60))
	})
}
