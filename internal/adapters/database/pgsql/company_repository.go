package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyRepository struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

var _ repositories.CompanyRepository = (*CompanyRepository)(nil)

func (r *CompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	query := `
        INSERT INTO companies (company_id, name, domain, user_limit, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		company.CompanyID,
		company.Name,
		company.Domain,
		company.UserLimit,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: company name already taken", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
        SELECT company_id, name, domain, user_limit, created_at, created_by, last_updated_at, last_updated_by
        FROM companies
        WHERE company_id = $1;
    `
	return r.scanCompany(r.db.QueryRow(ctx, query, companyID))
}

func (r *CompanyRepository) FindCompanyByName(ctx context.Context, name string) (*domain.Company, error) {
	query := `
        SELECT company_id, name, domain, user_limit, created_at, created_by, last_updated_at, last_updated_by
        FROM companies
        WHERE name = $1;
    `
	return r.scanCompany(r.db.QueryRow(ctx, query, name))
}

func (r *CompanyRepository) scanCompany(row pgx.Row) (*domain.Company, error) {
	var company domain.Company
	err := row.Scan(
		&company.CompanyID,
		&company.Name,
		&company.Domain,
		&company.UserLimit,
		&company.CreatedAt,
		&company.CreatedBy,
		&company.LastUpdatedAt,
		&company.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &company, nil
}
