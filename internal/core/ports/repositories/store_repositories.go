package repositories

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// StoreRepository defines persistence operations for stores.
type StoreRepository interface {
	SaveStore(ctx context.Context, store domain.Store) error
	FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error)
	FindStoresByManager(ctx context.Context, managerID string) ([]domain.Store, error)
	FindStoresByCompany(ctx context.Context, companyID string) ([]domain.Store, error)
	UpdateStore(ctx context.Context, store domain.Store) error
	DeleteStore(ctx context.Context, storeID string) error
}

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategoriesByStore(ctx context.Context, storeID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// ServiceRepository defines persistence operations for catalog services.
type ServiceRepository interface {
	SaveService(ctx context.Context, service domain.Service) error
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	FindServicesByStore(ctx context.Context, storeID string) ([]domain.Service, error)
	FindServicesByCategory(ctx context.Context, categoryID string) ([]domain.Service, error)
	UpdateService(ctx context.Context, service domain.Service) error
	DeleteService(ctx context.Context, serviceID string) error
}
