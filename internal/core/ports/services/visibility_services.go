package services

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// VisibilitySvcFacade answers "which users can actor X see" and manages the
// direct (viewer -> target) visibility relation.
type VisibilitySvcFacade interface {
	// GetVisibleUsers combines role-based and direct visibility into the
	// set of users the actor may see.
	GetVisibleUsers(ctx context.Context, actorUserID string) ([]domain.User, error)

	// AssignVisibility replaces the viewer's full direct visibility set.
	// Only SuperAdmin or Admin callers may assign; viewer and all targets
	// must belong to the caller's company.
	AssignVisibility(ctx context.Context, callerUserID, viewerUserID string, targetUserIDs []string) error

	// GetVisibility returns the viewer's direct visibility set. A Manager
	// may only query its own id.
	GetVisibility(ctx context.Context, callerUserID, viewerUserID string) ([]domain.User, error)
}
