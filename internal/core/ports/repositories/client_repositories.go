package repositories

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// ClientRepository defines persistence operations for store clients.
// Phone and email lookups are store-scoped; client uniqueness is per store.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	FindClientsByStore(ctx context.Context, storeID string) ([]domain.Client, error)
	FindClientByPhoneInStore(ctx context.Context, storeID string, phone string) (*domain.Client, error)
	FindClientByEmailInStore(ctx context.Context, storeID string, email string) (*domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error

	// AppendClientNote appends a single entry to the client's information
	// history. Existing entries are never modified or removed.
	AppendClientNote(ctx context.Context, clientID string, note domain.ClientNote) error

	DeleteClient(ctx context.Context, clientID string) error
}
