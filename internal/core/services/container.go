package services

import (
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/platform/config"
)

// NewServiceContainer wires all services with their repository and service
// dependencies. The role service doubles as the permission checker for the
// other services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config, sender portssvc.NotificationSender) *portssvc.ServiceContainer {
	ownership := newOwnershipResolver(repos.UserRepo, repos.StoreRepo, repos.CategoryRepo, repos.ServiceRepo, repos.ClientRepo)

	roleSvc := NewRoleService(repos.RoleRepo, repos.UserRepo, repos.VisibilityRepo)
	rbac := portssvc.PermissionChecker(roleSvc)

	visibilitySvc := NewVisibilityService(repos.VisibilityRepo, repos.UserRepo, repos.RoleRepo)

	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(cfg, repos.UserRepo, repos.CompanyRepo, repos.RoleRepo, repos.RefreshTokenRepo, repos.OTPRepo, sender),
		User:        NewUserService(repos.UserRepo, repos.CompanyRepo, repos.RoleRepo, repos.StoreRepo, rbac, visibilitySvc),
		Role:        roleSvc,
		Visibility:  visibilitySvc,
		Store:       NewStoreService(repos.StoreRepo, repos.UserRepo, rbac, ownership),
		Category:    NewCategoryService(repos.CategoryRepo, rbac, ownership),
		Catalog:     NewCatalogService(repos.ServiceRepo, rbac, ownership),
		Client:      NewClientService(repos.ClientRepo, rbac, ownership),
		Appointment: NewAppointmentService(repos.AppointmentRepo, rbac, cfg.AppointmentUpdateConflictCheck),
	}
}
