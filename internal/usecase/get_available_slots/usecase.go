package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ymgn-dev/SLB-ReservationService/internal/domain"
	scheduleRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/schedule"
	storeRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/store"
	"github.com/ymgn-dev/SLB-ReservationService/pkg/types"
)

// UseCase computes bookable start times for a staff/store pair.
// It is a pure read computation: no writes, no held locks, and the
// result is advisory only — the booking-commit path re-validates.
type UseCase struct {
	scheduleRepo    ScheduleRepository
	storeRepo       StoreRepository
	reservationRepo ReservationRepository
	venue           *time.Location
	logger          Logger
}

// NewUseCase creates the availability use case. venue carries the fixed
// offset used for every civil-time/instant conversion.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	storeRepo StoreRepository,
	reservationRepo ReservationRepository,
	venue *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		storeRepo:       storeRepo,
		reservationRepo: reservationRepo,
		venue:           venue,
		logger:          logger,
	}
}

// Execute computes, per calendar day in [StartDate, EndDate], the
// ordered list of start times at which the requested duration fits.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%d, store=%d, range=%s..%s, duration=%d",
		req.StaffID, req.StoreID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// A missing store is a legitimate onboarding state: every day in
	// the range degrades to an empty list instead of an error.
	store, err := uc.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			uc.logger.Warn("GetAvailableSlots: store id=%d not found, returning empty range", req.StoreID)
			return &Response{StaffID: req.StaffID, Slots: emptyRange(req.StartDate, req.EndDate)}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// A staff member without a schedule is fully unavailable. The nil
	// schedule is threaded through explicitly rather than replaced
	// with an empty value, so absence can never read as "fully open".
	schedule, err := uc.scheduleRepo.GetByStaffID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			schedule = nil
		} else {
			uc.logger.Error("GetAvailableSlots: failed to get schedule for staff=%d: %v", req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
	}

	// One ledger query covers the whole range, bounded by venue-local
	// day limits converted to instants.
	rangeFrom := uc.dayStart(req.StartDate)
	rangeTo := uc.dayEnd(req.EndDate)

	reservations, err := uc.reservationRepo.FindByStaff(ctx, domain.StaffReservationsFilter{
		StaffID: req.StaffID,
		From:    rangeFrom,
		To:      rangeTo,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	reservationsByDate := uc.groupByVenueDate(reservations)

	slotsByDate := make(map[string][]types.TimeString)
	for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(domain.DateFormat)
		slotsByDate[dateStr] = uc.computeDaySlots(
			dateStr,
			int(d.Weekday()),
			store,
			schedule,
			reservationsByDate[dateStr],
			req.DurationMinutes,
		)
	}

	uc.logger.Info("GetAvailableSlots: computed %d days for staff=%d, store=%d",
		len(slotsByDate), req.StaffID, req.StoreID)

	return &Response{StaffID: req.StaffID, Slots: slotsByDate}, nil
}

// computeDaySlots runs the per-day pipeline: window resolution,
// candidate grid, reservation exclusion, duration fit.
func (uc *UseCase) computeDaySlots(
	dateStr string,
	dayOfWeek int,
	store *domain.Store,
	schedule *domain.Schedule,
	reservations []*domain.Reservation,
	durationMinutes int,
) []types.TimeString {
	start, end, ok := resolveDayWindow(dateStr, dayOfWeek, store, schedule)
	if !ok {
		return []types.TimeString{}
	}

	candidates := generateTimeSlots(start, end)
	candidates = excludeReserved(dateStr, candidates, reservations, uc.venue)
	return filterDurationFit(candidates, durationMinutes)
}

// groupByVenueDate buckets reservations by their venue-local calendar date
func (uc *UseCase) groupByVenueDate(reservations []*domain.Reservation) map[string][]*domain.Reservation {
	grouped := make(map[string][]*domain.Reservation)
	for _, res := range reservations {
		dateStr := res.DateTime.In(uc.venue).Format(domain.DateFormat)
		grouped[dateStr] = append(grouped[dateStr], res)
	}
	return grouped
}

// dayStart returns the instant of venue-local midnight for the date
func (uc *UseCase) dayStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.venue)
}

// dayEnd returns the last instant of the venue-local day
func (uc *UseCase) dayEnd(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(999*time.Millisecond), uc.venue)
}

// emptyRange builds the degraded response: one empty list per date
func emptyRange(startDate, endDate time.Time) map[string][]types.TimeString {
	slots := make(map[string][]types.TimeString)
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		slots[d.Format(domain.DateFormat)] = []types.TimeString{}
	}
	return slots
}
