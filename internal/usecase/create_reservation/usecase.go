package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
	storeRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/store"
)

// UseCase books an appointment. The availability shown to clients is
// advisory; the authoritative overlap check happens here, inside a
// serializable transaction, so two requests for the same interval can
// never both commit.
type UseCase struct {
	reservationRepo ReservationRepository
	storeRepo       StoreRepository
	directory       DirectoryClient
	txManager       TransactionManager
	venue           *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking use case
func NewUseCase(
	reservationRepo ReservationRepository,
	storeRepo StoreRepository,
	directoryClient DirectoryClient,
	txManager TransactionManager,
	venue *time.Location,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		storeRepo:       storeRepo,
		directory:       directoryClient,
		txManager:       txManager,
		venue:           venue,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute validates the request, checks the referenced entities exist,
// then re-validates non-overlap and inserts atomically.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: staff=%d, store=%d, at=%s, duration=%d",
		req.StaffID, req.StoreID, req.DateTime.Format(time.RFC3339), req.TotalDurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if !req.DateTime.After(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateReservation: requested start %s is in the past", req.DateTime.Format(time.RFC3339))
		return nil, ErrPastDateTime
	}

	if _, err := uc.storeRepo.GetByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CreateReservation: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	if _, err := uc.directory.GetStaff(ctx, req.StaffID); err != nil {
		if errors.Is(err, directory.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateReservation: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if req.CustomerID != nil {
		if _, err := uc.directory.GetUser(ctx, *req.CustomerID); err != nil {
			if errors.Is(err, directory.ErrUserNotFound) {
				return nil, ErrCustomerNotFound
			}
			uc.logger.Error("CreateReservation: failed to get customer id=%d: %v", *req.CustomerID, err)
			return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
	}

	number, err := generateReservationNumber()
	if err != nil {
		uc.logger.Error("CreateReservation: failed to generate reservation number: %v", err)
		return nil, fmt.Errorf("%w: failed to generate reservation number: %v", ErrInternal, err)
	}

	reservation := &domain.Reservation{
		ReservationNumber:    number,
		CustomerID:           req.CustomerID,
		GuestName:            req.GuestName,
		GuestEmail:           req.GuestEmail,
		GuestPhone:           req.GuestPhone,
		StaffID:              req.StaffID,
		ServiceID:            req.ServiceID,
		StoreID:              req.StoreID,
		DateTime:             req.DateTime.UTC(),
		TotalDurationMinutes: req.TotalDurationMinutes,
		TotalPrice:           req.TotalPrice,
		Status:               domain.StatusReserved,
		Notes:                req.Notes,
	}

	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.checkNoOverlap(txCtx, reservation); err != nil {
			return err
		}

		var createErr error
		created, createErr = uc.reservationRepo.Create(txCtx, reservation)
		if createErr != nil {
			return fmt.Errorf("failed to create reservation: %w", createErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: slot taken for staff=%d at %s",
				req.StaffID, req.DateTime.Format(time.RFC3339))
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: created reservation id=%d, number=%s", created.ID, created.ReservationNumber)

	return toResponse(created), nil
}

// checkNoOverlap re-reads the staff member's active reservations for
// the requested day under lock and rejects any interval collision.
func (uc *UseCase) checkNoOverlap(ctx context.Context, res *domain.Reservation) error {
	local := res.DateTime.In(uc.venue)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, uc.venue)
	dayEnd := dayStart.AddDate(0, 0, 1)

	existing, err := uc.reservationRepo.FindByStaff(ctx, domain.StaffReservationsFilter{
		StaffID: res.StaffID,
		From:    dayStart,
		To:      dayEnd,
	})
	if err != nil {
		return fmt.Errorf("failed to get reservations: %w", err)
	}

	newEnd := res.End()
	for _, other := range existing {
		if !other.IsActive() {
			continue
		}
		// Half-open intervals: back-to-back reservations do not collide
		if res.DateTime.Before(other.End()) && other.DateTime.Before(newEnd) {
			return ErrSlotTaken
		}
	}
	return nil
}

func toResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:                   res.ID,
		ReservationNumber:    res.ReservationNumber,
		CustomerID:           res.CustomerID,
		GuestName:            res.GuestName,
		GuestEmail:           res.GuestEmail,
		GuestPhone:           res.GuestPhone,
		StaffID:              res.StaffID,
		ServiceID:            res.ServiceID,
		StoreID:              res.StoreID,
		DateTime:             res.DateTime,
		TotalDurationMinutes: res.TotalDurationMinutes,
		TotalPrice:           res.TotalPrice,
		Status:               string(res.Status),
		Notes:                res.Notes,
		CreatedAt:            res.CreatedAt,
		UpdatedAt:            res.UpdatedAt,
	}
}
