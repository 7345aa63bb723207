package services_test

import (
	"context"
	"testing"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceRequest() dto.CreateServiceRequest {
	return dto.CreateServiceRequest{
		Name:     "Haircut",
		Duration: 45,
		Price: dto.PriceDTO{
			Amount:      decimal.NewFromInt(40),
			Currency:    "EUR",
			TaxIncluded: true,
		},
	}
}

func TestCreateService_DefaultsDepositToZeroFixed(t *testing.T) {
	f := newContainerFixture()
	f.managedStore()
	var saved domain.Service
	f.repos.service.SaveServiceFn = func(ctx context.Context, service domain.Service) error {
		saved = service
		return nil
	}

	got, err := f.c.Catalog.CreateService(context.Background(), actorID, testStoreID, serviceRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.DepositFixed, got.Deposit.Type)
	assert.True(t, got.Deposit.Value.IsZero())
	assert.Equal(t, "EUR", saved.Price.Currency)
	assert.True(t, saved.Price.TaxIncluded)
}

func TestCreateService_PriceValidation(t *testing.T) {
	tests := []struct {
		name    string
		price   dto.PriceDTO
		wantErr string
	}{
		{
			name:    "negative amount",
			price:   dto.PriceDTO{Amount: decimal.NewFromInt(-1), Currency: "EUR"},
			wantErr: "price amount must not be negative",
		},
		{
			name:    "bad currency length",
			price:   dto.PriceDTO{Amount: decimal.NewFromInt(10), Currency: "EURO"},
			wantErr: "currency must be a 3-letter code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContainerFixture()
			f.managedStore()

			req := serviceRequest()
			req.Price = tt.price
			_, err := f.c.Catalog.CreateService(context.Background(), actorID, testStoreID, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateService_DepositValidation(t *testing.T) {
	tests := []struct {
		name    string
		deposit dto.DepositDTO
		wantErr string
	}{
		{
			name:    "negative value",
			deposit: dto.DepositDTO{Type: "fixed", Value: decimal.NewFromInt(-5)},
			wantErr: "deposit value must not be negative",
		},
		{
			name:    "percentage above 100",
			deposit: dto.DepositDTO{Type: "percentage", Value: decimal.NewFromInt(150)},
			wantErr: "percentage deposit must not exceed 100",
		},
		{
			name:    "unknown type",
			deposit: dto.DepositDTO{Type: "tip", Value: decimal.NewFromInt(5)},
			wantErr: "deposit type must be percentage or fixed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newContainerFixture()
			f.managedStore()

			req := serviceRequest()
			d := tt.deposit
			req.Deposit = &d
			_, err := f.c.Catalog.CreateService(context.Background(), actorID, testStoreID, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateService_FullPercentageDepositAccepted(t *testing.T) {
	f := newContainerFixture()
	f.managedStore()
	f.repos.service.SaveServiceFn = func(ctx context.Context, service domain.Service) error {
		return nil
	}

	req := serviceRequest()
	req.Deposit = &dto.DepositDTO{Type: "percentage", Value: decimal.NewFromInt(100)}
	got, err := f.c.Catalog.CreateService(context.Background(), actorID, testStoreID, req)
	require.NoError(t, err)
	assert.Equal(t, domain.DepositPercentage, got.Deposit.Type)
}

func TestCreateService_CategoryFromAnotherStore(t *testing.T) {
	f := newContainerFixture()
	f.managedStore()
	f.repos.category.FindCategoryByIDFn = func(ctx context.Context, categoryID string) (*domain.Category, error) {
		return &domain.Category{CategoryID: categoryID, StoreID: "another-store"}, nil
	}

	req := serviceRequest()
	req.CategoryID = strPtr("cat-9")
	_, err := f.c.Catalog.CreateService(context.Background(), actorID, testStoreID, req)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetService_VerifiesCategoryHop(t *testing.T) {
	f := newContainerFixture()
	f.managedStore()
	f.repos.service.FindServiceByIDFn = func(ctx context.Context, serviceID string) (*domain.Service, error) {
		catID := "cat-1"
		return &domain.Service{ServiceID: serviceID, StoreID: testStoreID, CategoryID: &catID}, nil
	}
	// The referenced category moved to another store; the chain is broken.
	f.repos.category.FindCategoryByIDFn = func(ctx context.Context, categoryID string) (*domain.Category, error) {
		return &domain.Category{CategoryID: categoryID, StoreID: "another-store"}, nil
	}

	_, err := f.c.Catalog.GetService(context.Background(), actorID, testStoreID, "svc-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateService_RevalidatesPriceAndDeposit(t *testing.T) {
	f := newContainerFixture()
	f.managedStore()
	f.repos.service.FindServiceByIDFn = func(ctx context.Context, serviceID string) (*domain.Service, error) {
		return &domain.Service{
			ServiceID: serviceID,
			StoreID:   testStoreID,
			Name:      "Haircut",
			Duration:  45,
			Price:     domain.Price{Amount: decimal.NewFromInt(40), Currency: "EUR"},
			Deposit:   domain.Deposit{Type: domain.DepositFixed, Value: decimal.Zero},
		}, nil
	}

	bad := dto.PriceDTO{Amount: decimal.NewFromInt(-10), Currency: "EUR"}
	_, err := f.c.Catalog.UpdateService(context.Background(), actorID, testStoreID, "svc-1", dto.UpdateServiceRequest{
		Price: &bad,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDeleteService_NonManagerSurfacesAsNotFound(t *testing.T) {
	f := newContainerFixture()
	f.foreignStore()

	err := f.c.Catalog.DeleteService(context.Background(), actorID, testStoreID, "svc-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
