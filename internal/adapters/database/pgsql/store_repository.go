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

type StoreRepository struct {
	db *pgxpool.Pool
}

func NewStoreRepository(db *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{db: db}
}

var _ repositories.StoreRepository = (*StoreRepository)(nil)

const storeColumns = `store_id, company_id, manager_id, name, address, phone, open_date, created_at, created_by, last_updated_at, last_updated_by`

func (r *StoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	query := `
        INSERT INTO stores (store_id, company_id, manager_id, name, address, phone, open_date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		store.StoreID,
		store.CompanyID,
		store.ManagerID,
		store.Name,
		store.Address,
		store.Phone,
		store.OpenDate,
		store.CreatedAt,
		store.CreatedBy,
		store.LastUpdatedAt,
		store.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	return nil
}

func (r *StoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE store_id = $1;`
	var store domain.Store
	err := r.db.QueryRow(ctx, query, storeID).Scan(
		&store.StoreID,
		&store.CompanyID,
		&store.ManagerID,
		&store.Name,
		&store.Address,
		&store.Phone,
		&store.OpenDate,
		&store.CreatedAt,
		&store.CreatedBy,
		&store.LastUpdatedAt,
		&store.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}
	return &store, nil
}

func (r *StoreRepository) FindStoresByManager(ctx context.Context, managerID string) ([]domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE manager_id = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores by manager: %w", err)
	}
	defer rows.Close()
	return scanStoreRows(rows)
}

func (r *StoreRepository) FindStoresByCompany(ctx context.Context, companyID string) ([]domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE company_id = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores by company: %w", err)
	}
	defer rows.Close()
	return scanStoreRows(rows)
}

func (r *StoreRepository) UpdateStore(ctx context.Context, store domain.Store) error {
	query := `
        UPDATE stores SET
            name = $2,
            address = $3,
            phone = $4,
            open_date = $5,
            last_updated_at = $6,
            last_updated_by = $7
        WHERE store_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		store.StoreID,
		store.Name,
		store.Address,
		store.Phone,
		store.OpenDate,
		store.LastUpdatedAt,
		store.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *StoreRepository) DeleteStore(ctx context.Context, storeID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM stores WHERE store_id = $1;`, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanStoreRows(rows pgx.Rows) ([]domain.Store, error) {
	stores := []domain.Store{}
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(
			&store.StoreID,
			&store.CompanyID,
			&store.ManagerID,
			&store.Name,
			&store.Address,
			&store.Phone,
			&store.OpenDate,
			&store.CreatedAt,
			&store.CreatedBy,
			&store.LastUpdatedAt,
			&store.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan store row: %w", err)
		}
		stores = append(stores, store)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating store rows: %w", rows.Err())
	}
	return stores, nil
}
