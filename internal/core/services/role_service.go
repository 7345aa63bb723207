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
	"github.com/google/uuid"
)

// roleService implements the RBAC engine: permission resolution plus role
// lifecycle management.
type roleService struct {
	roleRepo       portsrepo.RoleRepository
	userRepo       portsrepo.UserReader
	visibilityRepo portsrepo.VisibilityRepository
}

// NewRoleService creates a new roleService.
func NewRoleService(roleRepo portsrepo.RoleRepository, userRepo portsrepo.UserReader, visibilityRepo portsrepo.VisibilityRepository) portssvc.RoleSvcFacade {
	return &roleService{
		roleRepo:       roleRepo,
		userRepo:       userRepo,
		visibilityRepo: visibilityRepo,
	}
}

var _ portssvc.RoleSvcFacade = (*roleService)(nil)

// HasPermission resolves the user's effective permission set and tests for
// an exact (module, action) match. No inheritance: SuperAdmin only has what
// was explicitly seeded to it.
func (s *roleService) HasPermission(ctx context.Context, userID, module, action string) (bool, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user for permission check: %w", err)
	}

	permissions, err := s.roleRepo.FindPermissionsByRole(ctx, user.RoleID)
	if err != nil {
		return false, fmt.Errorf("failed to load role permissions: %w", err)
	}

	for _, p := range permissions {
		if p.Module == module && p.Action == action {
			return true, nil
		}
	}
	return false, nil
}

// GetUserPermissions resolves a user's effective permission set.
func (s *roleService) GetUserPermissions(ctx context.Context, userID string) ([]domain.Permission, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return s.roleRepo.FindPermissionsByRole(ctx, user.RoleID)
}

// ListPermissions returns the full permission catalog.
func (s *roleService) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	return s.roleRepo.FindAllPermissions(ctx)
}

// CreateRole creates a company-scoped role with an explicit permission set.
func (s *roleService) CreateRole(ctx context.Context, actorUserID string, req dto.CreateRoleRequest) (*domain.Role, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s, actorUserID, domain.ModuleRole, domain.ActionCreate); err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}

	existing, err := s.roleRepo.FindRoleByName(ctx, actor.CompanyID, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check role name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: role with this name already exists", apperrors.ErrConflict)
	}

	permissionIDs := dedupeStrings(req.PermissionIDs)
	if err := s.validatePermissionIDs(ctx, permissionIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	role := domain.Role{
		RoleID:    uuid.NewString(),
		Name:      req.Name,
		CompanyID: actor.CompanyID,
		UserLimit: req.UserLimit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.roleRepo.SaveRole(ctx, role); err != nil {
		logger.Error("Failed to save role", slog.String("error", err.Error()), slog.String("role_name", req.Name))
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	if err := s.roleRepo.ReplaceRolePermissions(ctx, role.RoleID, permissionIDs); err != nil {
		logger.Error("Failed to set role permissions", slog.String("error", err.Error()), slog.String("role_id", role.RoleID))
		return nil, fmt.Errorf("failed to set role permissions: %w", err)
	}

	logger.Info("Role created", slog.String("role_id", role.RoleID), slog.String("company_id", actor.CompanyID))
	return &role, nil
}

// GetRole retrieves a role of the actor's company with its permissions.
func (s *roleService) GetRole(ctx context.Context, actorUserID, roleID string) (*domain.Role, []domain.Permission, error) {
	if err := requirePermission(ctx, s, actorUserID, domain.ModuleRole, domain.ActionRead); err != nil {
		return nil, nil, err
	}

	role, err := s.loadCompanyRole(ctx, actorUserID, roleID)
	if err != nil {
		return nil, nil, err
	}

	permissions, err := s.roleRepo.FindPermissionsByRole(ctx, roleID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load role permissions: %w", err)
	}
	return role, permissions, nil
}

// ListRoles lists the roles of the actor's company.
func (s *roleService) ListRoles(ctx context.Context, actorUserID string) ([]domain.Role, error) {
	if err := requirePermission(ctx, s, actorUserID, domain.ModuleRole, domain.ActionRead); err != nil {
		return nil, err
	}

	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}
	return s.roleRepo.FindRolesByCompany(ctx, actor.CompanyID)
}

// UpdateRole updates a role; a provided permission set replaces the previous
// one wholesale (clear then bulk insert), never merges.
func (s *roleService) UpdateRole(ctx context.Context, actorUserID, roleID string, req dto.UpdateRoleRequest) (*domain.Role, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s, actorUserID, domain.ModuleRole, domain.ActionUpdate); err != nil {
		return nil, err
	}

	role, err := s.loadCompanyRole(ctx, actorUserID, roleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != role.Name {
		existing, err := s.roleRepo.FindRoleByName(ctx, role.CompanyID, *req.Name)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to check role name: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: role with this name already exists", apperrors.ErrConflict)
		}
		role.Name = *req.Name
	}
	if req.UserLimit != nil {
		role.UserLimit = *req.UserLimit
	}
	role.LastUpdatedAt = time.Now()
	role.LastUpdatedBy = actorUserID

	if err := s.roleRepo.UpdateRole(ctx, *role); err != nil {
		logger.Error("Failed to update role", slog.String("error", err.Error()), slog.String("role_id", roleID))
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	if req.PermissionIDs != nil {
		permissionIDs := dedupeStrings(*req.PermissionIDs)
		if err := s.validatePermissionIDs(ctx, permissionIDs); err != nil {
			return nil, err
		}
		if err := s.roleRepo.ReplaceRolePermissions(ctx, roleID, permissionIDs); err != nil {
			logger.Error("Failed to replace role permissions", slog.String("error", err.Error()), slog.String("role_id", roleID))
			return nil, fmt.Errorf("failed to replace role permissions: %w", err)
		}
	}

	return role, nil
}

// DeleteRole deletes a role after confirming no user still holds it, then
// cascades its permission and visibility links before removing the row.
func (s *roleService) DeleteRole(ctx context.Context, actorUserID, roleID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s, actorUserID, domain.ModuleRole, domain.ActionDelete); err != nil {
		return err
	}

	role, err := s.loadCompanyRole(ctx, actorUserID, roleID)
	if err != nil {
		return err
	}

	assigned, err := s.userRepo.CountUsersByRole(ctx, roleID)
	if err != nil {
		return fmt.Errorf("failed to count role users: %w", err)
	}
	if assigned > 0 {
		return fmt.Errorf("%w: Cannot delete a role assigned to users", apperrors.ErrConflict)
	}

	if err := s.roleRepo.DeleteRolePermissions(ctx, roleID); err != nil {
		return fmt.Errorf("failed to delete role permissions: %w", err)
	}
	if err := s.visibilityRepo.DeleteRoleUserVisibilityByRole(ctx, roleID); err != nil {
		return fmt.Errorf("failed to delete role visibility links: %w", err)
	}
	if err := s.roleRepo.DeleteRole(ctx, roleID); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	logger.Info("Role deleted", slog.String("role_id", roleID), slog.String("company_id", role.CompanyID))
	return nil
}

// AssignRoleVisibility replaces the role's visibility target set: existing
// links are cleared, then one link per deduped target is inserted. Gated by
// the visibility.assign catalog permission rather than a role name.
func (s *roleService) AssignRoleVisibility(ctx context.Context, actorUserID, roleID string, targetUserIDs []string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s, actorUserID, domain.ModuleVisibility, domain.ActionAssign); err != nil {
		return err
	}

	role, err := s.loadCompanyRole(ctx, actorUserID, roleID)
	if err != nil {
		return err
	}

	targetUserIDs = dedupeStrings(targetUserIDs)
	if len(targetUserIDs) > 0 {
		targets, err := s.userRepo.FindUsersByIDs(ctx, targetUserIDs)
		if err != nil {
			return fmt.Errorf("failed to load targets: %w", err)
		}
		if len(targets) != len(targetUserIDs) {
			return fmt.Errorf("%w: unknown target user in request", apperrors.ErrValidation)
		}
		for _, t := range targets {
			if t.CompanyID != role.CompanyID {
				return fmt.Errorf("%w: target user does not belong to your company", apperrors.ErrValidation)
			}
		}
	}

	if err := s.visibilityRepo.DeleteRoleUserVisibilityByRole(ctx, roleID); err != nil {
		return fmt.Errorf("failed to clear role visibility links: %w", err)
	}
	for _, targetID := range targetUserIDs {
		link := domain.RoleUserVisibility{RoleID: roleID, TargetUserID: targetID}
		if err := s.visibilityRepo.SaveRoleUserVisibility(ctx, link); err != nil {
			logger.Error("Failed to save role visibility link", slog.String("error", err.Error()), slog.String("role_id", roleID))
			return fmt.Errorf("failed to save role visibility link: %w", err)
		}
	}

	logger.Info("Role visibility assigned", slog.String("role_id", roleID), slog.Int("target_count", len(targetUserIDs)))
	return nil
}

// loadCompanyRole loads a role and verifies it belongs to the actor's
// company. A role of another company surfaces as not found.
func (s *roleService) loadCompanyRole(ctx context.Context, actorUserID, roleID string) (*domain.Role, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}

	role, err := s.roleRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load role %s: %w", roleID, err)
	}
	if role.CompanyID != actor.CompanyID {
		return nil, apperrors.ErrNotFound
	}
	return role, nil
}

// validatePermissionIDs checks every id against the catalog.
func (s *roleService) validatePermissionIDs(ctx context.Context, permissionIDs []string) error {
	if len(permissionIDs) == 0 {
		return nil
	}
	found, err := s.roleRepo.FindPermissionsByIDs(ctx, permissionIDs)
	if err != nil {
		return fmt.Errorf("failed to look up permissions: %w", err)
	}
	if len(found) != len(permissionIDs) {
		return fmt.Errorf("%w: unknown permission id in request", apperrors.ErrValidation)
	}
	return nil
}
