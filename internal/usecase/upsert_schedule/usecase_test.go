package upsert_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
)

type mockScheduleRepo struct {
	got *domain.Schedule
	err error
}

func (m *mockScheduleRepo) Upsert(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.got = schedule
	stored := *schedule
	stored.ID = 5
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	return &stored, nil
}

type mockDirectory struct {
	users    map[int64]*directory.User
	staff    map[int64]*directory.Staff
	userErr  error
	staffErr error
}

func (m *mockDirectory) GetUser(ctx context.Context, userID int64) (*directory.User, error) {
	if m.userErr != nil {
		return nil, m.userErr
	}
	u, ok := m.users[userID]
	if !ok {
		return nil, directory.ErrUserNotFound
	}
	return u, nil
}

func (m *mockDirectory) GetStaff(ctx context.Context, staffID int64) (*directory.Staff, error) {
	if m.staffErr != nil {
		return nil, m.staffErr
	}
	s, ok := m.staff[staffID]
	if !ok {
		return nil, directory.ErrStaffNotFound
	}
	return s, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDirectory() *mockDirectory {
	return &mockDirectory{
		users: map[int64]*directory.User{
			1:   {ID: 1, Role: directory.RoleAdmin},
			100: {ID: 100, Role: directory.RoleStaff},
			200: {ID: 200, Role: directory.RoleCustomer},
		},
		staff: map[int64]*directory.Staff{
			10: {ID: 10, UserID: 100, StoreID: 1},
		},
	}
}

func validRequest(actingUserID int64) *Request {
	return &Request{
		ActingUserID: actingUserID,
		StaffID:      10,
		WorkingHours: []domain.WorkingHours{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		},
		SpecialHolidays: []string{"2026-12-31"},
		SpecialWorkdays: []domain.SpecialWorkday{
			{Date: "2026-09-23", StartTime: "10:00", EndTime: "15:00"},
		},
	}
}

func TestExecute_AdminCanEditAnySchedule(t *testing.T) {
	repo := &mockScheduleRepo{}
	uc := NewUseCase(repo, testDirectory(), nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(1))
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, int64(10), resp.StaffID)
	assert.Equal(t, int64(10), repo.got.StaffID)
}

func TestExecute_StaffCanEditOwnSchedule(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{}, testDirectory(), nopLogger{})

	// User 100 is the account behind staff 10
	_, err := uc.Execute(context.Background(), validRequest(100))
	assert.NoError(t, err)
}

func TestExecute_OtherUserDenied(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{}, testDirectory(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(200))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecute_StaffNotFound(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{}, testDirectory(), nopLogger{})

	req := validRequest(1)
	req.StaffID = 999
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_ActorNotFound(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{}, testDirectory(), nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest(999))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_InvalidPatternRejected(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{}, testDirectory(), nopLogger{})

	req := validRequest(1)
	req.WorkingHours = []domain.WorkingHours{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "13:00", EndTime: "18:00"},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidWindowRejected(t *testing.T) {
	uc := NewUseCase(&mockScheduleRepo{}, testDirectory(), nopLogger{})

	req := validRequest(1)
	req.SpecialWorkdays = []domain.SpecialWorkday{
		{Date: "2026-09-23", StartTime: "15:00", EndTime: "10:00"},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
