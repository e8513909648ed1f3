package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
	reservationRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/reservation"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/reservations/models"
)

// Service exposes the reservation lifecycle: reads with per-caller
// access checks, cancellation, and forward-only status updates.
type Service struct {
	reservationRepo ReservationRepository
	directory       DirectoryClient
	logger          Logger
}

// NewService creates the reservations service
func NewService(reservationRepo ReservationRepository, directoryClient DirectoryClient, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		directory:       directoryClient,
		logger:          logger,
	}
}

// GetByID fetches one reservation. Visible to the owning customer, the
// assigned staff member, and admins.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReservationAccess(ctx, res, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainReservation(res), nil
}

// GetByNumber fetches one reservation by its booking reference. This is
// the guest lookup path: guests hold no account, the reference is the
// only credential.
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByNumber: fetching reservation number=%s", number)

	if len(number) != domain.ReservationNumberLength {
		return nil, fmt.Errorf("%w: malformed reservation number", ErrInvalidInput)
	}

	res, err := s.reservationRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByNumber: reservation number=%s not found", number)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// GetCustomerReservations lists the calling customer's own history,
// optionally filtered by status.
func (s *Service) GetCustomerReservations(ctx context.Context, req *models.GetCustomerReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetCustomerReservations: fetching reservations for customer=%d, status=%v", req.CustomerID, req.Status)

	var status *domain.ReservationStatus
	if req.Status != nil {
		st, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerReservations: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &st
	}

	list, err := s.reservationRepo.GetByCustomerID(ctx, req.CustomerID, status)
	if err != nil {
		s.logger.Error("GetCustomerReservations: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerReservations: fetched %d reservations for customer=%d", len(list), req.CustomerID)
	return models.FromDomainReservationList(list), nil
}

// GetStaffReservations lists a staff member's agenda for an instant
// range. Visible to the staff member themselves and admins.
func (s *Service) GetStaffReservations(ctx context.Context, req *models.GetStaffReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetStaffReservations: fetching reservations for staff=%d, user=%d, range=%s..%s",
		req.StaffID, req.UserID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: invalid range", ErrInvalidInput)
	}

	if err := s.checkStaffAccess(ctx, req.StaffID, req.UserID); err != nil {
		return nil, err
	}

	list, err := s.reservationRepo.FindByStaff(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetStaffReservations: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetStaffReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStaffReservations: fetched %d reservations for staff=%d", len(list), req.StaffID)
	return models.FromDomainReservationList(list), nil
}

// Cancel marks a reservation canceled. Cancellation is a status write;
// the record stays for history and auditing. Allowed for the owning
// customer, the assigned staff member, and admins, and only while the
// reservation is reserved or in progress.
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReservationAccess(ctx, res, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", req.UserID, reservationID)
		return err
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// UpdateStatus moves a reservation to a new lifecycle state. Only the
// assigned staff member and admins may drive the lifecycle, and only
// along forward transitions.
func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s by user=%d",
		reservationID, req.Status, req.UserID)

	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkStaffAccess(ctx, res.StaffID, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d to reservation id=%d", req.UserID, reservationID)
		return err
	}

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, reservationID)
		return ErrInvalidStatus
	}

	if !res.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for reservation id=%d",
			res.Status, newStatus, reservationID)
		return ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", reservationID, newStatus)
	return nil
}

// Helper methods

// checkReservationAccess allows the owning customer, the assigned staff
// member, and admins.
func (s *Service) checkReservationAccess(ctx context.Context, res *domain.Reservation, userID int64) error {
	if res.CustomerID != nil && *res.CustomerID == userID {
		return nil
	}

	if err := s.checkStaffAccess(ctx, res.StaffID, userID); err != nil {
		return ErrAccessDenied
	}
	return nil
}

// checkStaffAccess allows the staff member's own account and admins
func (s *Service) checkStaffAccess(ctx context.Context, staffID int64, userID int64) error {
	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			s.logger.Warn("checkStaffAccess: user id=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkStaffAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get user: %v", ErrInternal, err)
	}
	if user.IsAdmin() {
		return nil
	}

	staff, err := s.directory.GetStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, directory.ErrStaffNotFound) {
			s.logger.Warn("checkStaffAccess: staff id=%d not found", staffID)
			return ErrStaffNotFound
		}
		s.logger.Error("checkStaffAccess: failed to get staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get staff: %v", ErrInternal, err)
	}
	if staff.UserID == userID {
		return nil
	}

	s.logger.Warn("checkStaffAccess: user=%d is not staff=%d and not an admin", userID, staffID)
	return ErrAccessDenied
}
