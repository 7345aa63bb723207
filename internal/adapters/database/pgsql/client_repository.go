package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClientRepository persists clients with their information history as a
// JSONB array. The history column is only ever appended to.
type ClientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

var _ repositories.ClientRepository = (*ClientRepository)(nil)

const clientColumns = `client_id, store_id, name, phone, email, information, created_at, created_by, last_updated_at, last_updated_by`

func (r *ClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	information, err := json.Marshal(client.Information)
	if err != nil {
		return fmt.Errorf("failed to marshal client information: %w", err)
	}
	query := `
        INSERT INTO clients (client_id, store_id, name, phone, email, information, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err = r.db.Exec(ctx, query,
		client.ClientID,
		client.StoreID,
		client.Name,
		client.Phone,
		client.Email,
		information,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client phone or email already exists for this store", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *ClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	return scanClientRow(r.db.QueryRow(ctx, query, clientID))
}

func (r *ClientRepository) FindClientsByStore(ctx context.Context, storeID string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE store_id = $1 ORDER BY created_at;`
	rows, err := r.db.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query store clients: %w", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		client, err := scanClientValues(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}
	return clients, nil
}

func (r *ClientRepository) FindClientByPhoneInStore(ctx context.Context, storeID string, phone string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE store_id = $1 AND phone = $2;`
	return scanClientRow(r.db.QueryRow(ctx, query, storeID, phone))
}

func (r *ClientRepository) FindClientByEmailInStore(ctx context.Context, storeID string, email string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE store_id = $1 AND email = $2;`
	return scanClientRow(r.db.QueryRow(ctx, query, storeID, email))
}

func (r *ClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
        UPDATE clients SET
            name = $2,
            phone = $3,
            email = $4,
            last_updated_at = $5,
            last_updated_by = $6
        WHERE client_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		client.ClientID,
		client.Name,
		client.Phone,
		client.Email,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client phone or email already exists for this store", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AppendClientNote appends one entry to the information array in place.
// Existing entries are never touched.
func (r *ClientRepository) AppendClientNote(ctx context.Context, clientID string, note domain.ClientNote) error {
	entry, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to marshal information entry: %w", err)
	}
	query := `
        UPDATE clients SET
            information = information || $2::jsonb,
            last_updated_at = NOW()
        WHERE client_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, clientID, entry)
	if err != nil {
		return fmt.Errorf("failed to append client note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE client_id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanClientRow(row pgx.Row) (*domain.Client, error) {
	client, err := scanClientValues(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

func scanClientValues(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	var information []byte
	err := row.Scan(
		&client.ClientID,
		&client.StoreID,
		&client.Name,
		&client.Phone,
		&client.Email,
		&information,
		&client.CreatedAt,
		&client.CreatedBy,
		&client.LastUpdatedAt,
		&client.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan client row: %w", err)
	}
	client.Information = []domain.ClientNote{}
	if len(information) > 0 {
		if err := json.Unmarshal(information, &client.Information); err != nil {
			return nil, fmt.Errorf("failed to unmarshal client information: %w", err)
		}
	}
	return &client, nil
}
