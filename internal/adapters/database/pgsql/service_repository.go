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

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

var _ repositories.ServiceRepository = (*ServiceRepository)(nil)

const serviceColumns = `service_id, store_id, category_id, name, description, duration_minutes, price_amount, price_currency, price_tax_included, deposit_type, deposit_value, launch_date, created_at, created_by, last_updated_at, last_updated_by`

func (r *ServiceRepository) SaveService(ctx context.Context, service domain.Service) error {
	query := `
        INSERT INTO services (service_id, store_id, category_id, name, description, duration_minutes, price_amount, price_currency, price_tax_included, deposit_type, deposit_value, launch_date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err := r.db.Exec(ctx, query,
		service.ServiceID,
		service.StoreID,
		service.CategoryID,
		service.Name,
		service.Description,
		service.Duration,
		service.Price.Amount,
		service.Price.Currency,
		service.Price.TaxIncluded,
		string(service.Deposit.Type),
		service.Deposit.Value,
		service.LaunchDate,
		service.CreatedAt,
		service.CreatedBy,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE service_id = $1;`
	var service domain.Service
	var depositType string
	err := r.db.QueryRow(ctx, query, serviceID).Scan(
		&service.ServiceID,
		&service.StoreID,
		&service.CategoryID,
		&service.Name,
		&service.Description,
		&service.Duration,
		&service.Price.Amount,
		&service.Price.Currency,
		&service.Price.TaxIncluded,
		&depositType,
		&service.Deposit.Value,
		&service.LaunchDate,
		&service.CreatedAt,
		&service.CreatedBy,
		&service.LastUpdatedAt,
		&service.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	service.Deposit.Type = domain.DepositType(depositType)
	return &service, nil
}

func (r *ServiceRepository) FindServicesByStore(ctx context.Context, storeID string) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE store_id = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query store services: %w", err)
	}
	defer rows.Close()
	return scanServiceRows(rows)
}

func (r *ServiceRepository) FindServicesByCategory(ctx context.Context, categoryID string) ([]domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE category_id = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category services: %w", err)
	}
	defer rows.Close()
	return scanServiceRows(rows)
}

func (r *ServiceRepository) UpdateService(ctx context.Context, service domain.Service) error {
	query := `
        UPDATE services SET
            category_id = $2,
            name = $3,
            description = $4,
            duration_minutes = $5,
            price_amount = $6,
            price_currency = $7,
            price_tax_included = $8,
            deposit_type = $9,
            deposit_value = $10,
            launch_date = $11,
            last_updated_at = $12,
            last_updated_by = $13
        WHERE service_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		service.ServiceID,
		service.CategoryID,
		service.Name,
		service.Description,
		service.Duration,
		service.Price.Amount,
		service.Price.Currency,
		service.Price.TaxIncluded,
		string(service.Deposit.Type),
		service.Deposit.Value,
		service.LaunchDate,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ServiceRepository) DeleteService(ctx context.Context, serviceID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE service_id = $1;`, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanServiceRows(rows pgx.Rows) ([]domain.Service, error) {
	services := []domain.Service{}
	for rows.Next() {
		var service domain.Service
		var depositType string
		if err := rows.Scan(
			&service.ServiceID,
			&service.StoreID,
			&service.CategoryID,
			&service.Name,
			&service.Description,
			&service.Duration,
			&service.Price.Amount,
			&service.Price.Currency,
			&service.Price.TaxIncluded,
			&depositType,
			&service.Deposit.Value,
			&service.LaunchDate,
			&service.CreatedAt,
			&service.CreatedBy,
			&service.LastUpdatedAt,
			&service.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service row: %w", err)
		}
		service.Deposit.Type = domain.DepositType(depositType)
		services = append(services, service)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", rows.Err())
	}
	return services, nil
}
