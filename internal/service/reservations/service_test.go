package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
	reservationRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/reservation"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations/models"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/ptr"
)

type mockRepo struct {
	byID       map[int64]*domain.Reservation
	byNumber   map[string]*domain.Reservation
	cancelled  []int64
	statusSets map[int64]domain.ReservationStatus
}

func newMockRepo(reservations ...*domain.Reservation) *mockRepo {
	m := &mockRepo{
		byID:       make(map[int64]*domain.Reservation),
		byNumber:   make(map[string]*domain.Reservation),
		statusSets: make(map[int64]domain.ReservationStatus),
	}
	for _, r := range reservations {
		m.byID[r.ID] = r
		m.byNumber[r.ReservationNumber] = r
	}
	return m
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (m *mockRepo) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	r, ok := m.byNumber[number]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (m *mockRepo) GetByCustomerID(ctx context.Context, customerID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range m.byID {
		if r.CustomerID != nil && *r.CustomerID == customerID {
			if status != nil && r.Status != *status {
				continue
			}
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) FindByStaff(ctx context.Context, filter domain.StaffReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range m.byID {
		if r.StaffID != filter.StaffID {
			continue
		}
		if !filter.IncludeCanceled && r.Status == domain.StatusCanceled {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := m.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	m.statusSets[id] = status
	return nil
}

func (m *mockRepo) Cancel(ctx context.Context, id int64, reason string) error {
	if _, ok := m.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	m.cancelled = append(m.cancelled, id)
	return nil
}

type mockDirectory struct {
	users map[int64]*directory.User
	staff map[int64]*directory.Staff
}

func (m *mockDirectory) GetUser(ctx context.Context, userID int64) (*directory.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, directory.ErrUserNotFound
	}
	return u, nil
}

func (m *mockDirectory) GetStaff(ctx context.Context, staffID int64) (*directory.Staff, error) {
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
			7:   {ID: 7, Role: directory.RoleCustomer},
			8:   {ID: 8, Role: directory.RoleCustomer},
		},
		staff: map[int64]*directory.Staff{
			10: {ID: 10, UserID: 100, StoreID: 1},
		},
	}
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:                1,
		ReservationNumber: "A1B2C3D4",
		CustomerID:        ptr.Ptr(int64(7)),
		StaffID:           10,
		ServiceID:         3,
		StoreID:           1,
		DateTime:          time.Date(2026, 9, 21, 1, 0, 0, 0, time.UTC),
		Status:            domain.StatusReserved,
	}
}

func TestGetByID_Access(t *testing.T) {
	repo := newMockRepo(testReservation())
	svc := NewService(repo, testDirectory(), nopLogger{})

	t.Run("owner sees own reservation", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Equal(t, "A1B2C3D4", got.ReservationNumber)
	})

	t.Run("assigned staff sees it", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 100)
		assert.NoError(t, err)
	})

	t.Run("admin sees it", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 1)
		assert.NoError(t, err)
	})

	t.Run("other customer denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 8)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, 7)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestGetByNumber(t *testing.T) {
	svc := NewService(newMockRepo(testReservation()), testDirectory(), nopLogger{})

	got, err := svc.GetByNumber(context.Background(), "A1B2C3D4")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.GetByNumber(context.Background(), "ZZZZZZZZ")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.GetByNumber(context.Background(), "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels reserved", func(t *testing.T) {
		repo := newMockRepo(testReservation())
		svc := NewService(repo, testDirectory(), nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 7, CancellationReason: "conflict"})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.cancelled)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		res := testReservation()
		res.Status = domain.StatusCompleted
		svc := NewService(newMockRepo(res), testDirectory(), nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 7})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("unrelated customer denied", func(t *testing.T) {
		repo := newMockRepo(testReservation())
		svc := NewService(repo, testDirectory(), nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: 8})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("staff moves reserved to in-progress", func(t *testing.T) {
		repo := newMockRepo(testReservation())
		svc := NewService(repo, testDirectory(), nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 100, Status: "in-progress"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, repo.statusSets[1])
	})

	t.Run("customer may not drive the lifecycle", func(t *testing.T) {
		svc := NewService(newMockRepo(testReservation()), testDirectory(), nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 7, Status: "in-progress"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("backwards transition rejected", func(t *testing.T) {
		res := testReservation()
		res.Status = domain.StatusCompleted
		svc := NewService(newMockRepo(res), testDirectory(), nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 1, Status: "in-progress"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc := NewService(newMockRepo(testReservation()), testDirectory(), nopLogger{})

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 1, Status: "done"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestGetStaffReservations(t *testing.T) {
	res := testReservation()
	canceled := testReservation()
	canceled.ID = 2
	canceled.ReservationNumber = "E5F6G7H8"
	canceled.Status = domain.StatusCanceled

	repo := newMockRepo(res, canceled)
	svc := NewService(repo, testDirectory(), nopLogger{})

	from := time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	t.Run("staff sees own agenda without canceled", func(t *testing.T) {
		got, err := svc.GetStaffReservations(context.Background(), &models.GetStaffReservationsRequest{
			UserID: 100, StaffID: 10, From: from, To: to,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Total)
	})

	t.Run("canceled included on request", func(t *testing.T) {
		got, err := svc.GetStaffReservations(context.Background(), &models.GetStaffReservationsRequest{
			UserID: 1, StaffID: 10, From: from, To: to, IncludeCanceled: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, got.Total)
	})

	t.Run("customer denied", func(t *testing.T) {
		_, err := svc.GetStaffReservations(context.Background(), &models.GetStaffReservationsRequest{
			UserID: 7, StaffID: 10, From: from, To: to,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := svc.GetStaffReservations(context.Background(), &models.GetStaffReservationsRequest{
			UserID: 1, StaffID: 10, From: to, To: from,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetCustomerReservations(t *testing.T) {
	svc := NewService(newMockRepo(testReservation()), testDirectory(), nopLogger{})

	got, err := svc.GetCustomerReservations(context.Background(), &models.GetCustomerReservationsRequest{CustomerID: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)

	bad := "done"
	_, err = svc.GetCustomerReservations(context.Background(), &models.GetCustomerReservationsRequest{CustomerID: 7, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
