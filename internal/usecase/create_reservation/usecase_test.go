package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
	storeRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/store"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/ptr"
)

var jst = time.FixedZone("venue", 9*60*60)

type mockReservationRepo struct {
	existing  []*domain.Reservation
	findErr   error
	createErr error
	created   *domain.Reservation
}

func (m *mockReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	stored := *res
	stored.ID = 42
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.created = &stored
	return &stored, nil
}

func (m *mockReservationRepo) FindByStaff(ctx context.Context, filter domain.StaffReservationsFilter) ([]*domain.Reservation, error) {
	return m.existing, m.findErr
}

type mockStoreRepo struct {
	err error
}

func (m *mockStoreRepo) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Store{ID: id, Name: "Shibuya"}, nil
}

type mockDirectory struct {
	staffErr error
	userErr  error
}

func (m *mockDirectory) GetStaff(ctx context.Context, staffID int64) (*directory.Staff, error) {
	if m.staffErr != nil {
		return nil, m.staffErr
	}
	return &directory.Staff{ID: staffID, UserID: 100, StoreID: 1}, nil
}

func (m *mockDirectory) GetUser(ctx context.Context, userID int64) (*directory.User, error) {
	if m.userErr != nil {
		return nil, m.userErr
	}
	return &directory.User{ID: userID, Role: directory.RoleCustomer}, nil
}

// passthroughTxManager runs the function without a real transaction
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		CustomerID:           ptr.Ptr(int64(7)),
		StaffID:              10,
		ServiceID:            3,
		StoreID:              1,
		DateTime:             time.Date(2026, 9, 21, 10, 0, 0, 0, jst),
		TotalDurationMinutes: 60,
		TotalPrice:           5500,
	}
}

func newTestUseCase(resRepo *mockReservationRepo, stRepo *mockStoreRepo, dir *mockDirectory) *UseCase {
	return NewUseCase(
		resRepo,
		stRepo,
		dir,
		passthroughTxManager{},
		jst,
		&fixedTimeProvider{now: testNow},
		nopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	resRepo := &mockReservationRepo{}
	uc := newTestUseCase(resRepo, &mockStoreRepo{}, &mockDirectory{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Len(t, resp.ReservationNumber, domain.ReservationNumberLength)
	assert.Equal(t, string(domain.StatusReserved), resp.Status)
	// Instants are normalized to UTC before hitting storage
	assert.Equal(t, time.UTC, resRepo.created.DateTime.Location())
}

func TestExecute_GuestSuccess(t *testing.T) {
	resRepo := &mockReservationRepo{}
	uc := newTestUseCase(resRepo, &mockStoreRepo{}, &mockDirectory{})

	req := validRequest()
	req.CustomerID = nil
	req.GuestName = ptr.Ptr("Hanako Yamada")
	req.GuestEmail = ptr.Ptr("hanako@example.com")
	req.GuestPhone = ptr.Ptr("090-0000-0000")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.CustomerID)
	assert.Equal(t, "Hanako Yamada", *resp.GuestName)
}

func TestExecute_GuestContactRequired(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockStoreRepo{}, &mockDirectory{})

	req := validRequest()
	req.CustomerID = nil
	req.GuestName = ptr.Ptr("Hanako Yamada")
	// Email and phone missing

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OverlapRejected(t *testing.T) {
	// Existing 10:30-11:30 overlaps the requested 10:00-11:00
	resRepo := &mockReservationRepo{
		existing: []*domain.Reservation{
			{
				DateTime:             time.Date(2026, 9, 21, 10, 30, 0, 0, jst),
				TotalDurationMinutes: 60,
				Status:               domain.StatusReserved,
			},
		},
	}
	uc := newTestUseCase(resRepo, &mockStoreRepo{}, &mockDirectory{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, resRepo.created)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	// Existing 09:00-10:00 touches the requested 10:00-11:00 without overlap
	resRepo := &mockReservationRepo{
		existing: []*domain.Reservation{
			{
				DateTime:             time.Date(2026, 9, 21, 9, 0, 0, 0, jst),
				TotalDurationMinutes: 60,
				Status:               domain.StatusReserved,
			},
		},
	}
	uc := newTestUseCase(resRepo, &mockStoreRepo{}, &mockDirectory{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_CanceledDoesNotBlock(t *testing.T) {
	resRepo := &mockReservationRepo{
		existing: []*domain.Reservation{
			{
				DateTime:             time.Date(2026, 9, 21, 10, 0, 0, 0, jst),
				TotalDurationMinutes: 60,
				Status:               domain.StatusCanceled,
			},
		},
	}
	uc := newTestUseCase(resRepo, &mockStoreRepo{}, &mockDirectory{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_StoreNotFound(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockStoreRepo{err: storeRepo.ErrStoreNotFound}, &mockDirectory{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockStoreRepo{}, &mockDirectory{staffErr: directory.ErrStaffNotFound})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockStoreRepo{}, &mockDirectory{userErr: directory.ErrUserNotFound})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_PastDateTimeRejected(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockStoreRepo{}, &mockDirectory{})

	req := validRequest()
	req.DateTime = testNow.Add(-time.Hour)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDateTime)
}

func TestGenerateReservationNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := generateReservationNumber()
		require.NoError(t, err)
		assert.Len(t, number, domain.ReservationNumberLength)
		for _, c := range number {
			assert.Contains(t, numberAlphabet, string(c))
		}
		seen[number] = true
	}
	// 36^8 possibilities make collisions in 100 draws vanishingly unlikely
	assert.Greater(t, len(seen), 95)
}
