package pgsql

import (
	"github.com/bookora/bookora_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full repository set backed by a shared
// pgx pool.
func NewRepositoryProvider(db *pgxpool.Pool) *repositories.RepositoryProvider {
	return &repositories.RepositoryProvider{
		CompanyRepo:      NewCompanyRepository(db),
		RoleRepo:         NewRoleRepository(db),
		UserRepo:         NewUserRepository(db),
		StoreRepo:        NewStoreRepository(db),
		CategoryRepo:     NewCategoryRepository(db),
		ServiceRepo:      NewServiceRepository(db),
		ClientRepo:       NewClientRepository(db),
		AppointmentRepo:  NewAppointmentRepository(db),
		VisibilityRepo:   NewVisibilityRepository(db),
		RefreshTokenRepo: NewRefreshTokenRepository(db),
		OTPRepo:          NewOTPRepository(db),
	}
}
