package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/google/uuid"
)

// storeService implements store management. The store family uses the
// direct-owner predicate: only the managing user may read or mutate a store.
type storeService struct {
	storeRepo portsrepo.StoreRepository
	userRepo  portsrepo.UserReader
	rbac      portssvc.PermissionChecker
	ownership *ownershipResolver
}

// NewStoreService creates a new storeService.
func NewStoreService(storeRepo portsrepo.StoreRepository, userRepo portsrepo.UserReader, rbac portssvc.PermissionChecker, ownership *ownershipResolver) portssvc.StoreSvcFacade {
	return &storeService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		rbac:      rbac,
		ownership: ownership,
	}
}

var _ portssvc.StoreSvcFacade = (*storeService)(nil)

// CreateStore creates a store managed by the calling user.
func (s *storeService) CreateStore(ctx context.Context, actorUserID string, req dto.CreateStoreRequest) (*domain.Store, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleStore, domain.ActionCreate); err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}

	now := time.Now()
	store := domain.Store{
		StoreID:   uuid.NewString(),
		CompanyID: actor.CompanyID,
		ManagerID: actorUserID,
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		OpenDate:  req.OpenDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.storeRepo.SaveStore(ctx, store); err != nil {
		logger.Error("Failed to save store", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	logger.Info("Store created", slog.String("store_id", store.StoreID), slog.String("manager_id", actorUserID))
	return &store, nil
}

// GetStore retrieves a store managed by the actor.
func (s *storeService) GetStore(ctx context.Context, actorUserID, storeID string) (*domain.Store, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleStore, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner)
}

// ListStores lists the stores managed by the actor.
func (s *storeService) ListStores(ctx context.Context, actorUserID string) ([]domain.Store, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleStore, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.storeRepo.FindStoresByManager(ctx, actorUserID)
}

// UpdateStore updates a store managed by the actor.
func (s *storeService) UpdateStore(ctx context.Context, actorUserID, storeID string, req dto.UpdateStoreRequest) (*domain.Store, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleStore, domain.ActionUpdate); err != nil {
		return nil, err
	}

	store, err := s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}
	if req.OpenDate != nil {
		store.OpenDate = *req.OpenDate
	}
	store.LastUpdatedAt = time.Now()
	store.LastUpdatedBy = actorUserID

	if err := s.storeRepo.UpdateStore(ctx, *store); err != nil {
		logger.Error("Failed to update store", slog.String("error", err.Error()), slog.String("store_id", storeID))
		return nil, fmt.Errorf("failed to update store: %w", err)
	}
	return store, nil
}

// DeleteStore deletes a store managed by the actor.
func (s *storeService) DeleteStore(ctx context.Context, actorUserID, storeID string) error {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleStore, domain.ActionDelete); err != nil {
		return err
	}
	if _, err := s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner); err != nil {
		return err
	}
	return s.storeRepo.DeleteStore(ctx, storeID)
}
