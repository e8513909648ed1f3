package stores

import (
	"context"
	"errors"
	"fmt"

	"github.com/ymgn-dev/SLB-ReservationService/internal/integrations/directory"
	storeRepo "github.com/ymgn-dev/SLB-ReservationService/internal/infra/storage/store"
	"github.com/ymgn-dev/SLB-ReservationService/internal/service/stores/models"
)

// Service exposes store reads and the admin-only upsert
type Service struct {
	storeRepo StoreRepository
	directory DirectoryClient
	logger    Logger
}

// NewService creates the stores service
func NewService(storeRepo StoreRepository, directoryClient DirectoryClient, logger Logger) *Service {
	return &Service{
		storeRepo: storeRepo,
		directory: directoryClient,
		logger:    logger,
	}
}

// Get fetches one store record
func (s *Service) Get(ctx context.Context, storeID int64) (*models.StoreResponse, error) {
	s.logger.Info("Get: fetching store id=%d", storeID)

	if storeID <= 0 {
		return nil, fmt.Errorf("%w: storeId must be positive", ErrInvalidInput)
	}

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("Get: store id=%d not found", storeID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("Get: repository error for store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStore(store), nil
}

// Upsert creates the store record or replaces it wholesale. Admin only.
func (s *Service) Upsert(ctx context.Context, storeID int64, req *models.UpsertStoreRequest) (*models.StoreResponse, error) {
	s.logger.Info("Upsert: upserting store id=%d by user=%d", storeID, req.UserID)

	if storeID <= 0 {
		return nil, fmt.Errorf("%w: storeId must be positive", ErrInvalidInput)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	store := req.ToDomainStore(storeID)
	if err := store.Validate(); err != nil {
		s.logger.Warn("Upsert: validation failed for store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, err := s.storeRepo.GetByID(ctx, storeID)
	switch {
	case err == nil:
		updated, err := s.storeRepo.Update(ctx, store)
		if err != nil {
			s.logger.Error("Upsert: failed to update store id=%d: %v", storeID, err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Upsert: updated store id=%d", storeID)
		return models.FromDomainStore(updated), nil

	case errors.Is(err, storeRepo.ErrStoreNotFound):
		created, err := s.storeRepo.Create(ctx, store)
		if err != nil {
			s.logger.Error("Upsert: failed to create store id=%d: %v", storeID, err)
			return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Upsert: created store id=%d", storeID)
		return models.FromDomainStore(created), nil

	default:
		s.logger.Error("Upsert: repository error for store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}
}

// checkAdminAccess verifies the acting user holds the admin role
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.directory.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user=%d is not an admin", userID)
		return ErrAccessDenied
	}
	return nil
}
