package repositories

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// RoleReader defines read operations for roles and the permission catalog.
type RoleReader interface {
	// FindRoleByID retrieves a role by its ID.
	FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error)

	// FindRoleByName retrieves a role by name within a company.
	FindRoleByName(ctx context.Context, companyID string, name string) (*domain.Role, error)

	// FindRolesByCompany retrieves all roles of a company.
	FindRolesByCompany(ctx context.Context, companyID string) ([]domain.Role, error)

	// FindAllPermissions returns the full permission catalog.
	FindAllPermissions(ctx context.Context) ([]domain.Permission, error)

	// FindPermissionsByIDs retrieves catalog entries for the given IDs.
	FindPermissionsByIDs(ctx context.Context, permissionIDs []string) ([]domain.Permission, error)

	// FindPermissionsByRole retrieves the permissions granted to a role.
	FindPermissionsByRole(ctx context.Context, roleID string) ([]domain.Permission, error)
}

// RoleWriter defines write operations for roles and their permission links.
type RoleWriter interface {
	// SaveRole persists a new role.
	SaveRole(ctx context.Context, role domain.Role) error

	// UpdateRole updates an existing role's details.
	UpdateRole(ctx context.Context, role domain.Role) error

	// ReplaceRolePermissions clears all permission links of the role and
	// bulk-inserts the given set. Exact duplicate pairs are skipped.
	ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error

	// DeleteRole removes the role row. Permission and visibility links must
	// be removed first by the caller.
	DeleteRole(ctx context.Context, roleID string) error

	// DeleteRolePermissions removes all permission links of the role.
	DeleteRolePermissions(ctx context.Context, roleID string) error

	// SavePermission persists a permission catalog entry (seed only).
	SavePermission(ctx context.Context, permission domain.Permission) error
}

// RoleRepository combines all role-related repository interfaces.
type RoleRepository interface {
	RoleReader
	RoleWriter
}
