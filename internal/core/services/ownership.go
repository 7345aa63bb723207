package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
)

// OwnershipPolicy selects which ownership predicate authorizes access to a
// resource family. The two predicates are deliberately distinct and must not
// be unified: doing so would change access semantics.
type OwnershipPolicy int

const (
	// DirectOwner authorizes only the user directly linked to the root of
	// the chain (store.managerID == actor). Used for the store, category,
	// service and client families.
	DirectOwner OwnershipPolicy = iota

	// CompanyScoped authorizes any user of the same company, subject to
	// RBAC. Used for employee and role administration.
	CompanyScoped
)

// ownershipResolver walks a foreign-key chain (store -> category -> service,
// store -> client) and verifies that the actor's scoping chain contains the
// target. Every failure, including "exists but owned by someone else",
// surfaces as ErrNotFound so existence never leaks across tenants.
type ownershipResolver struct {
	userRepo     portsrepo.UserReader
	storeRepo    portsrepo.StoreRepository
	categoryRepo portsrepo.CategoryRepository
	serviceRepo  portsrepo.ServiceRepository
	clientRepo   portsrepo.ClientRepository
}

func newOwnershipResolver(
	userRepo portsrepo.UserReader,
	storeRepo portsrepo.StoreRepository,
	categoryRepo portsrepo.CategoryRepository,
	serviceRepo portsrepo.ServiceRepository,
	clientRepo portsrepo.ClientRepository,
) *ownershipResolver {
	return &ownershipResolver{
		userRepo:     userRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		serviceRepo:  serviceRepo,
		clientRepo:   clientRepo,
	}
}

// ResolveStore verifies the actor may act on the store under the given
// policy and returns it.
func (r *ownershipResolver) ResolveStore(ctx context.Context, actorUserID, storeID string, policy OwnershipPolicy) (*domain.Store, error) {
	store, err := r.storeRepo.FindStoreByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve store %s: %w", storeID, err)
	}

	switch policy {
	case DirectOwner:
		if store.ManagerID != actorUserID {
			return nil, apperrors.ErrNotFound
		}
	case CompanyScoped:
		actor, err := r.userRepo.FindUserByID(ctx, actorUserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to load actor %s: %w", actorUserID, err)
		}
		if actor.CompanyID != store.CompanyID {
			return nil, apperrors.ErrNotFound
		}
	}

	return store, nil
}

// ResolveCategory resolves the store hop, then verifies the category belongs
// to that store.
func (r *ownershipResolver) ResolveCategory(ctx context.Context, actorUserID, storeID, categoryID string, policy OwnershipPolicy) (*domain.Category, error) {
	if _, err := r.ResolveStore(ctx, actorUserID, storeID, policy); err != nil {
		return nil, err
	}

	category, err := r.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve category %s: %w", categoryID, err)
	}
	if category.StoreID != storeID {
		return nil, apperrors.ErrNotFound
	}

	return category, nil
}

// ResolveService resolves store -> service, and when the service references
// a category, verifies that hop too.
func (r *ownershipResolver) ResolveService(ctx context.Context, actorUserID, storeID, serviceID string, policy OwnershipPolicy) (*domain.Service, error) {
	if _, err := r.ResolveStore(ctx, actorUserID, storeID, policy); err != nil {
		return nil, err
	}

	service, err := r.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve service %s: %w", serviceID, err)
	}
	if service.StoreID != storeID {
		return nil, apperrors.ErrNotFound
	}
	if service.CategoryID != nil {
		category, err := r.categoryRepo.FindCategoryByID(ctx, *service.CategoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.ErrNotFound
			}
			return nil, fmt.Errorf("failed to resolve category hop for service %s: %w", serviceID, err)
		}
		if category.StoreID != storeID {
			return nil, apperrors.ErrNotFound
		}
	}

	return service, nil
}

// ResolveClient resolves store -> client.
func (r *ownershipResolver) ResolveClient(ctx context.Context, actorUserID, storeID, clientID string, policy OwnershipPolicy) (*domain.Client, error) {
	if _, err := r.ResolveStore(ctx, actorUserID, storeID, policy); err != nil {
		return nil, err
	}

	client, err := r.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve client %s: %w", clientID, err)
	}
	if client.StoreID != storeID {
		return nil, apperrors.ErrNotFound
	}

	return client, nil
}
