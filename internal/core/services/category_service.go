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

// categoryService implements category management under a store.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepository
	rbac         portssvc.PermissionChecker
	ownership    *ownershipResolver
}

// NewCategoryService creates a new categoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, rbac portssvc.PermissionChecker, ownership *ownershipResolver) portssvc.CategorySvcFacade {
	return &categoryService{
		categoryRepo: categoryRepo,
		rbac:         rbac,
		ownership:    ownership,
	}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, actorUserID, storeID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleCategory, domain.ActionCreate); err != nil {
		return nil, err
	}
	if _, err := s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		StoreID:    storeID,
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, actorUserID, storeID, categoryID string) (*domain.Category, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleCategory, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.ownership.ResolveCategory(ctx, actorUserID, storeID, categoryID, DirectOwner)
}

func (s *categoryService) ListCategories(ctx context.Context, actorUserID, storeID string) ([]domain.Category, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleCategory, domain.ActionRead); err != nil {
		return nil, err
	}
	if _, err := s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner); err != nil {
		return nil, err
	}
	return s.categoryRepo.FindCategoriesByStore(ctx, storeID)
}

func (s *categoryService) UpdateCategory(ctx context.Context, actorUserID, storeID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleCategory, domain.ActionUpdate); err != nil {
		return nil, err
	}
	category, err := s.ownership.ResolveCategory(ctx, actorUserID, storeID, categoryID, DirectOwner)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = actorUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, actorUserID, storeID, categoryID string) error {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleCategory, domain.ActionDelete); err != nil {
		return err
	}
	if _, err := s.ownership.ResolveCategory(ctx, actorUserID, storeID, categoryID, DirectOwner); err != nil {
		return err
	}
	return s.categoryRepo.DeleteCategory(ctx, categoryID)
}
