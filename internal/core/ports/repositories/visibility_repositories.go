package repositories

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// VisibilityRepository defines persistence operations for the two visibility
// relations: role-based (role -> target user) and direct (viewer -> target).
type VisibilityRepository interface {
	// FindRoleVisibilityTargets returns the target user IDs visible to
	// holders of the given role.
	FindRoleVisibilityTargets(ctx context.Context, roleID string) ([]string, error)

	// SaveRoleUserVisibility persists a role -> target user link.
	SaveRoleUserVisibility(ctx context.Context, link domain.RoleUserVisibility) error

	// DeleteRoleUserVisibilityByRole removes all links of a role.
	DeleteRoleUserVisibilityByRole(ctx context.Context, roleID string) error

	// FindEmployeeVisibilityTargets returns the target user IDs directly
	// visible to the given viewer.
	FindEmployeeVisibilityTargets(ctx context.Context, viewerUserID string) ([]string, error)

	// ReplaceEmployeeVisibility deletes all direct links of the viewer and
	// inserts the given target set. The final state is idempotent with
	// respect to repeated calls.
	ReplaceEmployeeVisibility(ctx context.Context, viewerUserID string, targetUserIDs []string) error
}
