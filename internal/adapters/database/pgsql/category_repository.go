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

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

var _ repositories.CategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
        INSERT INTO categories (category_id, store_id, name, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.StoreID,
		category.Name,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
        SELECT category_id, store_id, name, created_at, created_by, last_updated_at, last_updated_by
        FROM categories
        WHERE category_id = $1;
    `
	var category domain.Category
	err := r.db.QueryRow(ctx, query, categoryID).Scan(
		&category.CategoryID,
		&category.StoreID,
		&category.Name,
		&category.CreatedAt,
		&category.CreatedBy,
		&category.LastUpdatedAt,
		&category.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) FindCategoriesByStore(ctx context.Context, storeID string) ([]domain.Category, error) {
	query := `
        SELECT category_id, store_id, name, created_at, created_by, last_updated_at, last_updated_by
        FROM categories
        WHERE store_id = $1
        ORDER BY created_at;
    `
	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query store categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.CategoryID,
			&category.StoreID,
			&category.Name,
			&category.CreatedAt,
			&category.CreatedBy,
			&category.LastUpdatedAt,
			&category.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, category)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", rows.Err())
	}
	return categories, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
        UPDATE categories SET
            name = $2,
            last_updated_at = $3,
            last_updated_by = $4
        WHERE category_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
