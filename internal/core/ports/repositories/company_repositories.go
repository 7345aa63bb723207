package repositories

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	// SaveCompany persists a new company.
	SaveCompany(ctx context.Context, company domain.Company) error

	// FindCompanyByID retrieves a company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanyByName retrieves a company by its unique name.
	FindCompanyByName(ctx context.Context, name string) (*domain.Company, error)
}
