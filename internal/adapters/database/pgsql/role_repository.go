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

type RoleRepository struct {
	db *pgxpool.Pool
}

func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

var _ repositories.RoleRepository = (*RoleRepository)(nil)

const roleColumns = `role_id, name, company_id, user_limit, created_at, created_by, last_updated_at, last_updated_by`

func (r *RoleRepository) SaveRole(ctx context.Context, role domain.Role) error {
	query := `
        INSERT INTO roles (role_id, name, company_id, user_limit, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		role.RoleID,
		role.Name,
		role.CompanyID,
		role.UserLimit,
		role.CreatedAt,
		role.CreatedBy,
		role.LastUpdatedAt,
		role.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: role name already exists in company", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save role: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE role_id = $1;`
	return scanRoleRow(r.db.QueryRow(ctx, query, roleID))
}

func (r *RoleRepository) FindRoleByName(ctx context.Context, companyID string, name string) (*domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE company_id = $1 AND name = $2;`
	return scanRoleRow(r.db.QueryRow(ctx, query, companyID, name))
}

func (r *RoleRepository) FindRolesByCompany(ctx context.Context, companyID string) ([]domain.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE company_id = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company roles: %w", err)
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(
			&role.RoleID,
			&role.Name,
			&role.CompanyID,
			&role.UserLimit,
			&role.CreatedAt,
			&role.CreatedBy,
			&role.LastUpdatedAt,
			&role.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan role row: %w", err)
		}
		roles = append(roles, role)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", rows.Err())
	}
	return roles, nil
}

func (r *RoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	query := `
        UPDATE roles SET
            name = $2,
            user_limit = $3,
            last_updated_at = $4,
            last_updated_by = $5
        WHERE role_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		role.RoleID,
		role.Name,
		role.UserLimit,
		role.LastUpdatedAt,
		role.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: role name already exists in company", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceRolePermissions rewrites the role's permission links in one
// transaction so readers never observe a partially replaced set.
func (r *RoleRepository) ReplaceRolePermissions(ctx context.Context, roleID string, permissionIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1;`, roleID); err != nil {
		return fmt.Errorf("failed to clear role permissions: %w", err)
	}

	batch := &pgx.Batch{}
	seen := map[string]struct{}{}
	for _, permissionID := range permissionIDs {
		if _, ok := seen[permissionID]; ok {
			continue
		}
		seen[permissionID] = struct{}{}
		batch.Queue(`INSERT INTO role_permissions (role_id, permission_id) VALUES ($1, $2);`, roleID, permissionID)
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("failed to insert role permission: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close permission batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit role permissions: %w", err)
	}
	return nil
}

func (r *RoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE role_id = $1;`, roleID)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoleRepository) DeleteRolePermissions(ctx context.Context, roleID string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1;`, roleID); err != nil {
		return fmt.Errorf("failed to delete role permissions: %w", err)
	}
	return nil
}

func (r *RoleRepository) SavePermission(ctx context.Context, permission domain.Permission) error {
	query := `
        INSERT INTO permissions (permission_id, module, action)
        VALUES ($1, $2, $3)
        ON CONFLICT (module, action) DO NOTHING;
    `
	if _, err := r.db.Exec(ctx, query, permission.PermissionID, permission.Module, permission.Action); err != nil {
		return fmt.Errorf("failed to save permission: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindAllPermissions(ctx context.Context) ([]domain.Permission, error) {
	query := `SELECT permission_id, module, action FROM permissions ORDER BY module, action;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()
	return scanPermissionRows(rows)
}

func (r *RoleRepository) FindPermissionsByIDs(ctx context.Context, permissionIDs []string) ([]domain.Permission, error) {
	if len(permissionIDs) == 0 {
		return []domain.Permission{}, nil
	}
	query := `SELECT permission_id, module, action FROM permissions WHERE permission_id = ANY($1);`
	rows, err := r.db.Query(ctx, query, permissionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions by ids: %w", err)
	}
	defer rows.Close()
	return scanPermissionRows(rows)
}

func (r *RoleRepository) FindPermissionsByRole(ctx context.Context, roleID string) ([]domain.Permission, error) {
	query := `
        SELECT p.permission_id, p.module, p.action
        FROM permissions p
        JOIN role_permissions rp ON rp.permission_id = p.permission_id
        WHERE rp.role_id = $1
        ORDER BY p.module, p.action;
    `
	rows, err := r.db.Query(ctx, query, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query role permissions: %w", err)
	}
	defer rows.Close()
	return scanPermissionRows(rows)
}

func scanRoleRow(row pgx.Row) (*domain.Role, error) {
	var role domain.Role
	err := row.Scan(
		&role.RoleID,
		&role.Name,
		&role.CompanyID,
		&role.UserLimit,
		&role.CreatedAt,
		&role.CreatedBy,
		&role.LastUpdatedAt,
		&role.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	return &role, nil
}

func scanPermissionRows(rows pgx.Rows) ([]domain.Permission, error) {
	permissions := []domain.Permission{}
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.PermissionID, &p.Module, &p.Action); err != nil {
			return nil, fmt.Errorf("failed to scan permission row: %w", err)
		}
		permissions = append(permissions, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating permission rows: %w", rows.Err())
	}
	return permissions, nil
}
