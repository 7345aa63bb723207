package repositories

import (
	"context"
	"time"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByPhone retrieves a user by their unique phone number.
	FindUserByPhone(ctx context.Context, phone string) (*domain.User, error)

	// FindUsersByCompany retrieves all users of a company.
	FindUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error)

	// FindUsersByIDs retrieves the users with the given IDs.
	FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error)

	// CountUsersByCompany counts non-deleted users of a company.
	CountUsersByCompany(ctx context.Context, companyID string) (int, error)

	// CountUsersByRole counts non-deleted users holding a role.
	CountUsersByRole(ctx context.Context, roleID string) (int, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepository combines all user-related repository interfaces.
type UserRepository interface {
	UserReader
	UserWriter
}
