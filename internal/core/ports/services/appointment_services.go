package services

import (
	"context"

	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/bookora/bookora_backend/internal/dto"
)

// AppointmentSvcFacade defines the appointment scheduling operations.
// Interval validation and the overlap scan run synchronously inside the
// mutating call; there is no background scheduler.
type AppointmentSvcFacade interface {
	CreateAppointment(ctx context.Context, actorUserID string, req dto.CreateAppointmentRequest) (*domain.Appointment, error)
	GetAppointment(ctx context.Context, actorUserID, appointmentID string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, actorUserID string) ([]domain.Appointment, error)
	UpdateAppointment(ctx context.Context, actorUserID, appointmentID string, req dto.UpdateAppointmentRequest) (*domain.Appointment, error)

	// DeleteAppointment removes a future appointment. Appointments whose
	// start time is already past cannot be deleted.
	DeleteAppointment(ctx context.Context, actorUserID, appointmentID string) error
}
