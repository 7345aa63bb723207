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

type AppointmentRepository struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

var _ repositories.AppointmentRepository = (*AppointmentRepository)(nil)

const appointmentColumns = `appointment_id, user_id, title, type, start_time, end_time, created_at, created_by, last_updated_at, last_updated_by`

func (r *AppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	query := `
        INSERT INTO appointments (appointment_id, user_id, title, type, start_time, end_time, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		appointment.AppointmentID,
		appointment.UserID,
		appointment.Title,
		appointment.Type,
		appointment.StartTime,
		appointment.EndTime,
		appointment.CreatedAt,
		appointment.CreatedBy,
		appointment.LastUpdatedAt,
		appointment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE appointment_id = $1;`
	var a domain.Appointment
	err := r.db.QueryRow(ctx, query, appointmentID).Scan(
		&a.AppointmentID,
		&a.UserID,
		&a.Title,
		&a.Type,
		&a.StartTime,
		&a.EndTime,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find appointment: %w", err)
	}
	return &a, nil
}

func (r *AppointmentRepository) FindAppointmentsByUser(ctx context.Context, userID string) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE user_id = $1 ORDER BY start_time;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user appointments: %w", err)
	}
	defer rows.Close()

	appointments := []domain.Appointment{}
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.AppointmentID,
			&a.UserID,
			&a.Title,
			&a.Type,
			&a.StartTime,
			&a.EndTime,
			&a.CreatedAt,
			&a.CreatedBy,
			&a.LastUpdatedAt,
			&a.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", rows.Err())
	}
	return appointments, nil
}

func (r *AppointmentRepository) UpdateAppointment(ctx context.Context, appointment domain.Appointment) error {
	query := `
        UPDATE appointments SET
            title = $2,
            type = $3,
            start_time = $4,
            end_time = $5,
            last_updated_at = $6,
            last_updated_by = $7
        WHERE appointment_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		appointment.AppointmentID,
		appointment.Title,
		appointment.Type,
		appointment.StartTime,
		appointment.EndTime,
		appointment.LastUpdatedAt,
		appointment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AppointmentRepository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1;`, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
