package services

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/dto"
)

// PermissionChecker is the RBAC capability check primitive. Services that
// only need authorization checks depend on this narrow interface.
type PermissionChecker interface {
	// HasPermission reports whether the user's role grants the exact
	// (module, action) pair. There is no inheritance between permissions.
	HasPermission(ctx context.Context, userID, module, action string) (bool, error)
}

// RoleSvcFacade defines role and permission management operations.
type RoleSvcFacade interface {
	PermissionChecker

	// CreateRole creates a role with an explicit permission set.
	CreateRole(ctx context.Context, actorUserID string, req dto.CreateRoleRequest) (*domain.Role, error)

	// GetRole retrieves a role of the actor's company with its permissions.
	GetRole(ctx context.Context, actorUserID, roleID string) (*domain.Role, []domain.Permission, error)

	// ListRoles lists the roles of the actor's company.
	ListRoles(ctx context.Context, actorUserID string) ([]domain.Role, error)

	// UpdateRole updates a role. A provided permission set replaces the
	// previous one wholesale.
	UpdateRole(ctx context.Context, actorUserID, roleID string, req dto.UpdateRoleRequest) (*domain.Role, error)

	// DeleteRole deletes a role and cascades its permission and visibility
	// links. Fails with a conflict while any user still holds the role.
	DeleteRole(ctx context.Context, actorUserID, roleID string) error

	// AssignRoleVisibility replaces the role's visibility target set
	// wholesale: every user holding the role may see the given targets.
	AssignRoleVisibility(ctx context.Context, actorUserID, roleID string, targetUserIDs []string) error

	// ListPermissions returns the full permission catalog.
	ListPermissions(ctx context.Context) ([]domain.Permission, error)

	// GetUserPermissions resolves a user's effective permission set.
	GetUserPermissions(ctx context.Context, userID string) ([]domain.Permission, error)
}
