package services

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/dto"
)

// ClientSvcFacade defines client management within a store. Client phone and
// email uniqueness is enforced per store.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, actorUserID, storeID string, req dto.CreateClientRequest) (*domain.Client, error)
	GetClient(ctx context.Context, actorUserID, storeID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, actorUserID, storeID string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, actorUserID, storeID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// AppendClientNote appends one entry to the client's information
	// history. Entries with an empty trimmed note and no images are rejected.
	AppendClientNote(ctx context.Context, actorUserID, storeID, clientID string, req dto.AppendClientNoteRequest) (*domain.Client, error)

	DeleteClient(ctx context.Context, actorUserID, storeID, clientID string) error
}
