package services

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/dto"
)

// UserSvcFacade defines employee management operations. All operations are
// company-scoped: the actor can only ever touch users of its own company.
type UserSvcFacade interface {
	// CreateEmployee creates a user within the creator's company, enforcing
	// the company and role user limits at creation time.
	CreateEmployee(ctx context.Context, creatorUserID string, req dto.CreateEmployeeRequest) (*domain.User, error)

	// GetUser retrieves a user of the actor's company.
	GetUser(ctx context.Context, actorUserID, userID string) (*domain.User, error)

	// ListVisibleUsers lists the users the actor may see per the visibility graph.
	ListVisibleUsers(ctx context.Context, actorUserID string) ([]domain.User, error)

	// UpdateUser updates a user of the actor's company.
	UpdateUser(ctx context.Context, actorUserID, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeactivateUser soft-deletes a user of the actor's company.
	DeactivateUser(ctx context.Context, actorUserID, userID string) error
}
