package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/bookora/bookora_backend/internal/utils"
	"github.com/google/uuid"
)

// userService implements employee administration. This family uses the
// company-scoped ownership predicate: any suitably permissioned user of the
// company may act, not just a direct owner.
type userService struct {
	userRepo    portsrepo.UserRepository
	companyRepo portsrepo.CompanyRepository
	roleRepo    portsrepo.RoleReader
	storeRepo   portsrepo.StoreRepository
	rbac        portssvc.PermissionChecker
	visibility  portssvc.VisibilitySvcFacade
}

// NewUserService creates a new userService.
func NewUserService(
	userRepo portsrepo.UserRepository,
	companyRepo portsrepo.CompanyRepository,
	roleRepo portsrepo.RoleReader,
	storeRepo portsrepo.StoreRepository,
	rbac portssvc.PermissionChecker,
	visibility portssvc.VisibilitySvcFacade,
) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		roleRepo:    roleRepo,
		storeRepo:   storeRepo,
		rbac:        rbac,
		visibility:  visibility,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateEmployee creates a user within the creator's company. Company and
// role user limits are enforced here, at creation time only.
func (s *userService) CreateEmployee(ctx context.Context, creatorUserID string, req dto.CreateEmployeeRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, creatorUserID, domain.ModuleUser, domain.ActionCreate); err != nil {
		return nil, err
	}

	creator, err := s.userRepo.FindUserByID(ctx, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, creator.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load company: %w", err)
	}
	userCount, err := s.userRepo.CountUsersByCompany(ctx, company.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count company users: %w", err)
	}
	if userCount >= company.UserLimit {
		return nil, fmt.Errorf("%w: Company user limit reached (%d)", apperrors.ErrValidation, company.UserLimit)
	}

	role, err := s.roleRepo.FindRoleByID(ctx, req.RoleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load role: %w", err)
	}
	if role.CompanyID != creator.CompanyID {
		return nil, apperrors.ErrNotFound
	}
	if role.UserLimit > 0 {
		roleCount, err := s.userRepo.CountUsersByRole(ctx, role.RoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to count role users: %w", err)
		}
		if roleCount >= role.UserLimit {
			return nil, fmt.Errorf("%w: Role user limit reached (%d)", apperrors.ErrValidation, role.UserLimit)
		}
	}

	if req.StoreID != nil {
		store, err := s.storeRepo.FindStoreByID(ctx, *req.StoreID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to load store: %w", err)
		}
		if store.CompanyID != creator.CompanyID {
			return nil, apperrors.ErrNotFound
		}
	}

	if err := s.checkIdentityUnique(ctx, req.Email, req.Phone); err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		CompanyID:    creator.CompanyID,
		StoreID:      req.StoreID,
		RoleID:       req.RoleID,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save employee", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	logger.Info("Employee created", slog.String("user_id", user.UserID), slog.String("company_id", creator.CompanyID))
	return &user, nil
}

// GetUser retrieves a user of the actor's company.
func (s *userService) GetUser(ctx context.Context, actorUserID, userID string) (*domain.User, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleUser, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.loadCompanyUser(ctx, actorUserID, userID)
}

// ListVisibleUsers lists the users the actor may see per the visibility graph.
func (s *userService) ListVisibleUsers(ctx context.Context, actorUserID string) ([]domain.User, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleUser, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.visibility.GetVisibleUsers(ctx, actorUserID)
}

// UpdateUser updates a user of the actor's company.
func (s *userService) UpdateUser(ctx context.Context, actorUserID, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleUser, domain.ActionUpdate); err != nil {
		return nil, err
	}

	user, err := s.loadCompanyUser(ctx, actorUserID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil && *req.Phone != user.Phone {
		if existing, err := s.userRepo.FindUserByPhone(ctx, *req.Phone); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check phone: %w", err)
		} else if existing != nil {
			return nil, fmt.Errorf("%w: user with this phone number already exists", apperrors.ErrConflict)
		}
		user.Phone = *req.Phone
	}
	if req.RoleID != nil && *req.RoleID != user.RoleID {
		role, err := s.roleRepo.FindRoleByID(ctx, *req.RoleID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to load role: %w", err)
		}
		if role.CompanyID != user.CompanyID {
			return nil, apperrors.ErrNotFound
		}
		user.RoleID = *req.RoleID
	}
	if req.StoreID != nil {
		store, err := s.storeRepo.FindStoreByID(ctx, *req.StoreID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to load store: %w", err)
		}
		if store.CompanyID != user.CompanyID {
			return nil, apperrors.ErrNotFound
		}
		user.StoreID = req.StoreID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = actorUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to update user", slog.String("error", err.Error()), slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeactivateUser soft-deletes a user of the actor's company.
func (s *userService) DeactivateUser(ctx context.Context, actorUserID, userID string) error {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleUser, domain.ActionDelete); err != nil {
		return err
	}
	if _, err := s.loadCompanyUser(ctx, actorUserID, userID); err != nil {
		return err
	}
	return s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), actorUserID)
}

// loadCompanyUser loads a user and verifies company membership. A user of
// another company surfaces as not found.
func (s *userService) loadCompanyUser(ctx context.Context, actorUserID, userID string) (*domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user.CompanyID != actor.CompanyID {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

// checkIdentityUnique pre-checks global email/phone uniqueness.
func (s *userService) checkIdentityUnique(ctx context.Context, email, phone string) error {
	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return fmt.Errorf("%w: user with this email already exists", apperrors.ErrConflict)
	}
	if existing, err := s.userRepo.FindUserByPhone(ctx, phone); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check phone: %w", err)
	} else if existing != nil {
		return fmt.Errorf("%w: user with this phone number already exists", apperrors.ErrConflict)
	}
	return nil
}
