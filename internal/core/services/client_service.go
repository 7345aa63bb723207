package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/google/uuid"
)

// clientService implements client management under a store. Phone and email
// uniqueness is enforced per store: the same person can be a client of two
// different stores.
type clientService struct {
	clientRepo portsrepo.ClientRepository
	rbac       portssvc.PermissionChecker
	ownership  *ownershipResolver
}

// NewClientService creates a new clientService.
func NewClientService(clientRepo portsrepo.ClientRepository, rbac portssvc.PermissionChecker, ownership *ownershipResolver) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo: clientRepo,
		rbac:       rbac,
		ownership:  ownership,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, actorUserID, storeID string, req dto.CreateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleClient, domain.ActionCreate); err != nil {
		return nil, err
	}
	if _, err := s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner); err != nil {
		return nil, err
	}
	if err := s.checkClientUnique(ctx, storeID, req.Phone, req.Email); err != nil {
		return nil, err
	}

	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		StoreID:     storeID,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Information: []domain.ClientNote{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

func (s *clientService) GetClient(ctx context.Context, actorUserID, storeID, clientID string) (*domain.Client, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleClient, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.ownership.ResolveClient(ctx, actorUserID, storeID, clientID, DirectOwner)
}

func (s *clientService) ListClients(ctx context.Context, actorUserID, storeID string) ([]domain.Client, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleClient, domain.ActionRead); err != nil {
		return nil, err
	}
	if _, err := s.ownership.ResolveStore(ctx, actorUserID, storeID, DirectOwner); err != nil {
		return nil, err
	}
	return s.clientRepo.FindClientsByStore(ctx, storeID)
}

func (s *clientService) UpdateClient(ctx context.Context, actorUserID, storeID, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleClient, domain.ActionUpdate); err != nil {
		return nil, err
	}
	client, err := s.ownership.ResolveClient(ctx, actorUserID, storeID, clientID, DirectOwner)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil && *req.Phone != client.Phone {
		if err := s.checkClientUnique(ctx, storeID, *req.Phone, ""); err != nil {
			return nil, err
		}
		client.Phone = *req.Phone
	}
	if req.Email != nil && *req.Email != client.Email {
		if err := s.checkClientUnique(ctx, storeID, "", *req.Email); err != nil {
			return nil, err
		}
		client.Email = *req.Email
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = actorUserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		logger.Error("Failed to update client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// AppendClientNote appends one validated entry to the client's information
// history. The history is append-only: entries are never spliced or removed.
func (s *clientService) AppendClientNote(ctx context.Context, actorUserID, storeID, clientID string, req dto.AppendClientNoteRequest) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleClient, domain.ActionUpdate); err != nil {
		return nil, err
	}
	client, err := s.ownership.ResolveClient(ctx, actorUserID, storeID, clientID, DirectOwner)
	if err != nil {
		return nil, err
	}

	note := strings.TrimSpace(req.Note)
	if note == "" && len(req.Images) == 0 {
		return nil, fmt.Errorf("%w: information entry must have a note or at least one image", apperrors.ErrValidation)
	}

	entry := domain.ClientNote{
		Note:   note,
		Images: req.Images,
		Date:   time.Now(),
	}
	if entry.Images == nil {
		entry.Images = []string{}
	}

	if err := s.clientRepo.AppendClientNote(ctx, clientID, entry); err != nil {
		logger.Error("Failed to append client note", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to append client note: %w", err)
	}

	client.Information = append(client.Information, entry)
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, actorUserID, storeID, clientID string) error {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleClient, domain.ActionDelete); err != nil {
		return err
	}
	if _, err := s.ownership.ResolveClient(ctx, actorUserID, storeID, clientID, DirectOwner); err != nil {
		return err
	}
	return s.clientRepo.DeleteClient(ctx, clientID)
}

// checkClientUnique verifies store-scoped phone/email uniqueness. Empty
// values are skipped.
func (s *clientService) checkClientUnique(ctx context.Context, storeID, phone, email string) error {
	if phone != "" {
		existing, err := s.clientRepo.FindClientByPhoneInStore(ctx, storeID, phone)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check client phone: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("%w: Client with this phone number already exists for this store", apperrors.ErrConflict)
		}
	}
	if email != "" {
		existing, err := s.clientRepo.FindClientByEmailInStore(ctx, storeID, email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check client email: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("%w: Client with this email already exists for this store", apperrors.ErrConflict)
		}
	}
	return nil
}
