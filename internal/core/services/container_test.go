package services_test

import (
	"context"
	"testing"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/core/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStoreID = "store-1"

// containerFixture wires the full service container over mocks. The store,
// category, catalog and client services resolve ownership through the shared
// resolver, so they are exercised through the container rather than built
// directly.
type containerFixture struct {
	repos *testRepos
	c     *portssvc.ServiceContainer
}

func newContainerFixture() *containerFixture {
	repos := newTestRepos()
	actor := domain.User{UserID: actorID, CompanyID: testCompanyID, RoleID: "actor-role"}
	repos.grantAllPermissions(&actor)
	c := services.NewServiceContainer(repos.provider(), testConfig(), new(MockNotificationSender))
	return &containerFixture{repos: repos, c: c}
}

// managedStore makes the fixture's store lookup return a store managed by the
// test actor.
func (f *containerFixture) managedStore() {
	f.repos.store.FindStoreByIDFn = func(ctx context.Context, storeID string) (*domain.Store, error) {
		return &domain.Store{
			StoreID:   storeID,
			CompanyID: testCompanyID,
			ManagerID: actorID,
			Name:      "Downtown",
		}, nil
	}
}

// foreignStore makes the store lookup return a store managed by someone else.
func (f *containerFixture) foreignStore() {
	f.repos.store.FindStoreByIDFn = func(ctx context.Context, storeID string) (*domain.Store, error) {
		return &domain.Store{
			StoreID:   storeID,
			CompanyID: testCompanyID,
			ManagerID: "another-manager",
		}, nil
	}
}

func TestCreateStore_ActorBecomesManager(t *testing.T) {
	f := newContainerFixture()
	var saved domain.Store
	f.repos.store.SaveStoreFn = func(ctx context.Context, store domain.Store) error {
		saved = store
		return nil
	}

	got, err := f.c.Store.CreateStore(context.Background(), actorID, dto.CreateStoreRequest{
		Name:     "Downtown",
		Address:  "1 Main St",
		OpenDate: "01-03-2025",
	})
	require.NoError(t, err)
	assert.Equal(t, actorID, got.ManagerID)
	assert.Equal(t, testCompanyID, got.CompanyID)
	assert.Equal(t, "01-03-2025", saved.OpenDate)
}

func TestGetStore_NonManagerSurfacesAsNotFound(t *testing.T) {
	f := newContainerFixture()
	f.foreignStore()

	_, err := f.c.Store.GetStore(context.Background(), actorID, testStoreID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateStore_PartialFields(t *testing.T) {
	f := newContainerFixture()
	f.managedStore()
	var updated domain.Store
	f.repos.store.UpdateStoreFn = func(ctx context.Context, store domain.Store) error {
		updated = store
		return nil
	}

	got, err := f.c.Store.UpdateStore(context.Background(), actorID, testStoreID, dto.UpdateStoreRequest{
		Phone: strPtr("+14155550123"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+14155550123", got.Phone)
	assert.Equal(t, "Downtown", updated.Name)
	assert.Equal(t, actorID, updated.LastUpdatedBy)
}

func TestListStores_ScopedToManager(t *testing.T) {
	f := newContainerFixture()
	f.repos.store.FindStoresByManagerFn = func(ctx context.Context, managerID string) ([]domain.Store, error) {
		require.Equal(t, actorID, managerID)
		return []domain.Store{{StoreID: "s1"}, {StoreID: "s2"}}, nil
	}

	stores, err := f.c.Store.ListStores(context.Background(), actorID)
	require.NoError(t, err)
	assert.Len(t, stores, 2)
}

func TestCreateCategory_UnderManagedStore(t *testing.T) {
	f := newContainerFixture()
	f.managedStore()
	var saved domain.Category
	f.repos.category.SaveCategoryFn = func(ctx context.Context, category domain.Category) error {
		saved = category
		return nil
	}

	got, err := f.c.Category.CreateCategory(context.Background(), actorID, testStoreID, dto.CreateCategoryRequest{Name: "Hair"})
	require.NoError(t, err)
	assert.Equal(t, testStoreID, got.StoreID)
	assert.Equal(t, "Hair", saved.Name)
}

func TestGetCategory_OtherStoresCategoryNotFound(t *testing.T) {
	f := newContainerFixture()
	f.managedStore()
	f.repos.category.FindCategoryByIDFn = func(ctx context.Context, categoryID string) (*domain.Category, error) {
		return &domain.Category{CategoryID: categoryID, StoreID: "another-store", Name: "Nails"}, nil
	}

	_, err := f.c.Category.GetCategory(context.Background(), actorID, testStoreID, "cat-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategory_NonManagerCannotTouch(t *testing.T) {
	f := newContainerFixture()
	f.foreignStore()

	_, err := f.c.Category.CreateCategory(context.Background(), actorID, testStoreID, dto.CreateCategoryRequest{Name: "Hair"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
