package repositories

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	SaveAppointment(ctx context.Context, appointment domain.Appointment) error
	FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	FindAppointmentsByUser(ctx context.Context, userID string) ([]domain.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment domain.Appointment) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
}
