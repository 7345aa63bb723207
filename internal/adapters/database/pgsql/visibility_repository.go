package pgsql

import (
	"context"
	"fmt"

	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// VisibilityRepository persists the two visibility relations. Direct links
// are replaced wholesale so repeated assignments converge to the same state.
type VisibilityRepository struct {
	db *pgxpool.Pool
}

func NewVisibilityRepository(db *pgxpool.Pool) *VisibilityRepository {
	return &VisibilityRepository{db: db}
}

var _ repositories.VisibilityRepository = (*VisibilityRepository)(nil)

func (r *VisibilityRepository) FindRoleVisibilityTargets(ctx context.Context, roleID string) ([]string, error) {
	query := `SELECT target_user_id FROM role_user_visibility WHERE role_id = $1;`
	rows, err := r.db.Query(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query role visibility targets: %w", err)
	}
	defer rows.Close()
	return scanTargetIDs(rows)
}

func (r *VisibilityRepository) SaveRoleUserVisibility(ctx context.Context, link domain.RoleUserVisibility) error {
	query := `
        INSERT INTO role_user_visibility (role_id, target_user_id)
        VALUES ($1, $2)
        ON CONFLICT (role_id, target_user_id) DO NOTHING;
    `
	if _, err := r.db.Exec(ctx, query, link.RoleID, link.TargetUserID); err != nil {
		return fmt.Errorf("failed to save role visibility link: %w", err)
	}
	return nil
}

func (r *VisibilityRepository) DeleteRoleUserVisibilityByRole(ctx context.Context, roleID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM role_user_visibility WHERE role_id = $1;`, roleID); err != nil {
		return fmt.Errorf("failed to delete role visibility links: %w", err)
	}
	return nil
}

func (r *VisibilityRepository) FindEmployeeVisibilityTargets(ctx context.Context, viewerUserID string) ([]string, error) {
	query := `SELECT target_user_id FROM employee_visibility WHERE viewer_user_id = $1;`
	rows, err := r.db.Query(ctx, query, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee visibility targets: %w", err)
	}
	defer rows.Close()
	return scanTargetIDs(rows)
}

// ReplaceEmployeeVisibility rewrites the viewer's direct links in one
// transaction. Duplicate target IDs collapse to a single link.
func (r *VisibilityRepository) ReplaceEmployeeVisibility(ctx context.Context, viewerUserID string, targetUserIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM employee_visibility WHERE viewer_user_id = $1;`, viewerUserID); err != nil {
		return fmt.Errorf("failed to clear employee visibility: %w", err)
	}

	batch := &pgx.Batch{}
	seen := map[string]struct{}{}
	for _, targetID := range targetUserIDs {
		if _, ok := seen[targetID]; ok {
			continue
		}
		seen[targetID] = struct{}{}
		batch.Queue(`INSERT INTO employee_visibility (viewer_user_id, target_user_id) VALUES ($1, $2);`, viewerUserID, targetID)
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("failed to insert visibility link: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close visibility batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit employee visibility: %w", err)
	}
	return nil
}

func scanTargetIDs(rows pgx.Rows) ([]string, error) {
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan target id: %w", err)
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating target ids: %w", rows.Err())
	}
	return ids, nil
}
