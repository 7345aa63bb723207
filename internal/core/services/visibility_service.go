package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/middleware"
)

// visibilityAssignerRoles names the roles allowed to assign direct
// visibility. This is a role-name policy, not a permission-catalog check.
var visibilityAssignerRoles = map[string]struct{}{
	domain.RoleSuperAdmin: {},
	domain.RoleAdmin:      {},
}

// visibilityService implements the visibility graph over the two relations:
// role-based (RoleUserVisibility) and direct (EmployeeVisibility).
type visibilityService struct {
	visibilityRepo portsrepo.VisibilityRepository
	userRepo       portsrepo.UserReader
	roleRepo       portsrepo.RoleReader
}

// NewVisibilityService creates a new visibilityService.
func NewVisibilityService(visibilityRepo portsrepo.VisibilityRepository, userRepo portsrepo.UserReader, roleRepo portsrepo.RoleReader) portssvc.VisibilitySvcFacade {
	return &visibilityService{
		visibilityRepo: visibilityRepo,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
	}
}

var _ portssvc.VisibilitySvcFacade = (*visibilityService)(nil)

// GetVisibleUsers unions the actor's role-based visibility set with their
// direct visibility set. A user holds exactly one role, so the role-based
// source reduces to that role's target list.
func (s *visibilityService) GetVisibleUsers(ctx context.Context, actorUserID string) ([]domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load actor: %w", err)
	}

	roleTargets, err := s.visibilityRepo.FindRoleVisibilityTargets(ctx, actor.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load role visibility targets: %w", err)
	}
	directTargets, err := s.visibilityRepo.FindEmployeeVisibilityTargets(ctx, actorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load direct visibility targets: %w", err)
	}

	targetIDs := dedupeStrings(append(roleTargets, directTargets...))
	if len(targetIDs) == 0 {
		return []domain.User{}, nil
	}
	return s.userRepo.FindUsersByIDs(ctx, targetIDs)
}

// AssignVisibility replaces the viewer's full direct visibility set. The
// operation is destructive-then-additive: existing links for the viewer are
// deleted before the new set is inserted, making the final state idempotent.
func (s *visibilityService) AssignVisibility(ctx context.Context, callerUserID, viewerUserID string, targetUserIDs []string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	caller, err := s.userRepo.FindUserByID(ctx, callerUserID)
	if err != nil {
		return fmt.Errorf("failed to load caller: %w", err)
	}

	callerRole, err := s.roleRepo.FindRoleByID(ctx, caller.RoleID)
	if err != nil {
		return fmt.Errorf("failed to load caller role: %w", err)
	}
	if _, ok := visibilityAssignerRoles[callerRole.Name]; !ok {
		return fmt.Errorf("%w: only SuperAdmin or Admin may assign visibility", apperrors.ErrForbidden)
	}

	viewer, err := s.userRepo.FindUserByID(ctx, viewerUserID)
	if err != nil {
		return fmt.Errorf("failed to load viewer: %w", err)
	}
	if viewer.CompanyID != caller.CompanyID {
		return fmt.Errorf("%w: viewer does not belong to your company", apperrors.ErrValidation)
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
			if t.CompanyID != caller.CompanyID {
				return fmt.Errorf("%w: target user does not belong to your company", apperrors.ErrValidation)
			}
		}
	}

	if err := s.visibilityRepo.ReplaceEmployeeVisibility(ctx, viewerUserID, targetUserIDs); err != nil {
		logger.Error("Failed to replace employee visibility", slog.String("error", err.Error()), slog.String("viewer_id", viewerUserID))
		return fmt.Errorf("failed to assign visibility: %w", err)
	}

	logger.Info("Visibility assigned", slog.String("viewer_id", viewerUserID), slog.Int("target_count", len(targetUserIDs)))
	return nil
}

// GetVisibility returns the viewer's direct visibility set. Callers who are
// not SuperAdmin or Admin may only query their own id; a Manager asking
// about another manager is rejected.
func (s *visibilityService) GetVisibility(ctx context.Context, callerUserID, viewerUserID string) ([]domain.User, error) {
	if callerUserID != viewerUserID {
		caller, err := s.userRepo.FindUserByID(ctx, callerUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load caller: %w", err)
		}
		callerRole, err := s.roleRepo.FindRoleByID(ctx, caller.RoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to load caller role: %w", err)
		}
		if _, ok := visibilityAssignerRoles[callerRole.Name]; !ok {
			return nil, fmt.Errorf("%w: cannot query another user's visibility", apperrors.ErrForbidden)
		}
	}

	targetIDs, err := s.visibilityRepo.FindEmployeeVisibilityTargets(ctx, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load visibility targets: %w", err)
	}
	if len(targetIDs) == 0 {
		return []domain.User{}, nil
	}
	return s.userRepo.FindUsersByIDs(ctx, targetIDs)
}
