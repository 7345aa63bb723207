package services

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/dto"
)

// StoreSvcFacade defines store management operations. Store access uses the
// direct-owner predicate: only the managing user may act on a store.
type StoreSvcFacade interface {
	CreateStore(ctx context.Context, actorUserID string, req dto.CreateStoreRequest) (*domain.Store, error)
	GetStore(ctx context.Context, actorUserID, storeID string) (*domain.Store, error)
	ListStores(ctx context.Context, actorUserID string) ([]domain.Store, error)
	UpdateStore(ctx context.Context, actorUserID, storeID string, req dto.UpdateStoreRequest) (*domain.Store, error)
	DeleteStore(ctx context.Context, actorUserID, storeID string) error
}

// CategorySvcFacade defines category management within a store.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, actorUserID, storeID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategory(ctx context.Context, actorUserID, storeID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, actorUserID, storeID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, actorUserID, storeID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, actorUserID, storeID, categoryID string) error
}

// CatalogSvcFacade defines catalog service management within a store.
type CatalogSvcFacade interface {
	CreateService(ctx context.Context, actorUserID, storeID string, req dto.CreateServiceRequest) (*domain.Service, error)
	GetService(ctx context.Context, actorUserID, storeID, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context, actorUserID, storeID string) ([]domain.Service, error)
	UpdateService(ctx context.Context, actorUserID, storeID, serviceID string, req dto.UpdateServiceRequest) (*domain.Service, error)
	DeleteService(ctx context.Context, actorUserID, storeID, serviceID string) error
}
