package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

var _ repositories.UserRepository = (*UserRepository)(nil)

const userColumns = `user_id, name, email, phone, password_hash, company_id, store_id, role_id, is_active, is_verified, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, name, email, phone, password_hash, company_id, store_id, role_id, is_active, is_verified, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.CompanyID,
		user.StoreID,
		user.RoleID,
		user.IsActive,
		user.IsVerified,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user email or phone already taken", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	return scanUserRow(r.db.QueryRow(ctx, query, userID))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL;`
	return scanUserRow(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1 AND deleted_at IS NULL;`
	return scanUserRow(r.db.QueryRow(ctx, query, phone))
}

func (r *UserRepository) FindUsersByCompany(ctx context.Context, companyID string) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 AND deleted_at IS NULL ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query company users: %w", err)
	}
	defer rows.Close()
	return scanUserRows(rows)
}

func (r *UserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error) {
	if len(userIDs) == 0 {
		return []domain.User{}, nil
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ANY($1) AND deleted_at IS NULL ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by ids: %w", err)
	}
	defer rows.Close()
	return scanUserRows(rows)
}

func (r *UserRepository) CountUsersByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE company_id = $1 AND deleted_at IS NULL;`
	if err := r.db.QueryRow(ctx, query, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count company users: %w", err)
	}
	return count, nil
}

func (r *UserRepository) CountUsersByRole(ctx context.Context, roleID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE role_id = $1 AND deleted_at IS NULL;`
	if err := r.db.QueryRow(ctx, query, roleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count role users: %w", err)
	}
	return count, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users SET
            name = $2,
            phone = $3,
            company_id = $4,
            store_id = $5,
            role_id = $6,
            is_active = $7,
            is_verified = $8,
            last_updated_at = $9,
            last_updated_by = $10
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Phone,
		user.CompanyID,
		user.StoreID,
		user.RoleID,
		user.IsActive,
		user.IsVerified,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user phone already taken", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE users SET
            is_active = FALSE,
            deleted_at = $2,
            last_updated_at = $2,
            last_updated_by = $3
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	tag, err := r.db.Exec(ctx, query, userID, deletedAt, deletedBy)
	if err != nil {
		return fmt.Errorf("failed to mark user deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanUserRow(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.CompanyID,
		&user.StoreID,
		&user.RoleID,
		&user.IsActive,
		&user.IsVerified,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
		&user.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func scanUserRows(rows pgx.Rows) ([]domain.User, error) {
	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.UserID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.PasswordHash,
			&user.CompanyID,
			&user.StoreID,
			&user.RoleID,
			&user.IsActive,
			&user.IsVerified,
			&user.CreatedAt,
			&user.CreatedBy,
			&user.LastUpdatedAt,
			&user.LastUpdatedBy,
			&user.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}
