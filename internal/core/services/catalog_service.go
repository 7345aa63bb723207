package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// catalogService implements catalog service management under a store.
type catalogService struct {
	serviceRepo portsrepo.ServiceRepository
	rbac        portssvc.PermissionChecker
	ownership   *ownershipResolver
}

// NewCatalogService creates a new catalogService.
func NewCatalogService(serviceRepo portsrepo.ServiceRepository, rbac portssvc.PermissionChecker, ownership *ownershipResolver) portssvc.CatalogSvcFacade {
	return &catalogService{
		serviceRepo: serviceRepo,
		rbac:        rbac,
		ownership:   ownership,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

var depositPercentageMax = decimal.NewFromInt(100)

// validatePrice enforces the structured price shape.
func validatePrice(p dto.PriceDTO) error {
	if p.Amount.IsNegative() {
		return fmt.Errorf("%w: price amount must not be negative", apperrors.ErrValidation)
	}
	if len(p.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code", apperrors.ErrValidation)
	}
	return nil
}

// validateDeposit enforces the structured deposit shape: a percentage
// deposit must not exceed 100.
func validateDeposit(d dto.DepositDTO) error {
	if d.Value.IsNegative() {
		return fmt.Errorf("%w: deposit value must not be negative", apperrors.ErrValidation)
	}
	switch domain.DepositType(d.Type) {
	case domain.DepositPercentage:
		if d.Value.GreaterThan(depositPercentageMax) {
			return fmt.Errorf("%w: percentage deposit must not exceed 100", apperrors.ErrValidation)
		}
	case domain.DepositFixed:
	default:
		return fmt.Errorf("%w: deposit type must be percentage or fixed", apperrors.ErrValidation)
	}
	return nil
}

func (s *catalogService) CreateService(ctx context.Context, actorUserID, storeID string, req dto.CreateServiceRequest) (*domain.Service, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleService, domain.ActionCreate); err != nil {
		return nil, err
	}
	if _, err := s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.ownership.ResolveCategory(ctx, actorUserID, storeID, *req.CategoryID, DirectOwner); err != nil {
			return nil, err
		}
	}

	if err := validatePrice(req.Price); err != nil {
		return nil, err
	}
	deposit := domain.Deposit{Type: domain.DepositFixed, Value: decimal.Zero}
	if req.Deposit != nil {
		if err := validateDeposit(*req.Deposit); err != nil {
			return nil, err
		}
		deposit = domain.Deposit{Type: domain.DepositType(req.Deposit.Type), Value: req.Deposit.Value}
	}

	now := time.Now()
	service := domain.Service{
		ServiceID:   uuid.NewString(),
		StoreID:     storeID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price: domain.Price{
			Amount:      req.Price.Amount,
			Currency:    req.Price.Currency,
			TaxIncluded: req.Price.TaxIncluded,
		},
		Deposit:    deposit,
		LaunchDate: req.LaunchDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.serviceRepo.SaveService(ctx, service); err != nil {
		logger.Error("Failed to save service", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &service, nil
}

func (s *catalogService) GetService(ctx context.Context, actorUserID, storeID, serviceID string) (*domain.Service, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleService, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.ownership.ResolveService(ctx, actorUserID, storeID, serviceID, DirectOwner)
}

func (s *catalogService) ListServices(ctx context.Context, actorUserID, storeID string) ([]domain.Service, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleService, domain.ActionRead); err != nil {
		return nil, err
	}
	if _, err := s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner); err != nil {
		return nil, err
	}
	return s.serviceRepo.FindServicesByStore(ctx, storeID)
}

func (s *catalogService) UpdateService(ctx context.Context, actorUserID, storeID, serviceID string, req dto.UpdateServiceRequest) (*domain.Service, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleService, domain.ActionUpdate); err != nil {
		return nil, err
	}
	service, err := s.ownership.ResolveService(ctx, actorUserID, storeID, serviceID, DirectOwner)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.ownership.ResolveCategory(ctx, actorUserID, storeID, *req.CategoryID, DirectOwner); err != nil {
			return nil, err
		}
		service.CategoryID = req.CategoryID
	}
	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Price != nil {
		if err := validatePrice(*req.Price); err != nil {
			return nil, err
		}
		service.Price = domain.Price{
			Amount:      req.Price.Amount,
			Currency:    req.Price.Currency,
			TaxIncluded: req.Price.TaxIncluded,
		}
	}
	if req.Deposit != nil {
		if err := validateDeposit(*req.Deposit); err != nil {
			return nil, err
		}
		service.Deposit = domain.Deposit{Type: domain.DepositType(req.Deposit.Type), Value: req.Deposit.Value}
	}
	if req.LaunchDate != nil {
		service.LaunchDate = *req.LaunchDate
	}
	service.LastUpdatedAt = time.Now()
	service.LastUpdatedBy = actorUserID

	if err := s.serviceRepo.UpdateService(ctx, *service); err != nil {
		logger.Error("Failed to update service", slog.String("error", err.Error()), slog.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return service, nil
}

func (s *catalogService) DeleteService(ctx context.Context, actorUserID, storeID, serviceID string) error {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleService, domain.ActionDelete); err != nil {
		return err
	}
	if _, err := s.ownership.ResolveService(ctx, actorUserID, storeID, serviceID, DirectOwner); err != nil {
		return err
	}
	return s.serviceRepo.DeleteService(ctx, serviceID)
}
