package dto

import (
	"time"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// CreateAppointmentRequest schedules an appointment for the calling user.
// Times are full ISO-8601 instants.
type CreateAppointmentRequest struct {
	Title     string    `json:"title" binding:"required"`
	Type      string    `json:"type"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// UpdateAppointmentRequest updates an appointment. Time and duration rules
// are re-validated only when a boundary actually changes.
type UpdateAppointmentRequest struct {
	Title     *string    `json:"title"`
	Type      *string    `json:"type"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// AppointmentResponse is the outward representation of an appointment.
type AppointmentResponse struct {
	AppointmentID string    `json:"appointmentID"`
	UserID        string    `json:"userID"`
	Title         string    `json:"title"`
	Type          string    `json:"type"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
}

// ToAppointmentResponse converts a domain.Appointment to its response DTO.
func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID: a.AppointmentID,
		UserID:        a.UserID,
		Title:         a.Title,
		Type:          a.Type,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
	}
}

// ToAppointmentResponses converts a slice of appointments.
func ToAppointmentResponses(appointments []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, len(appointments))
	for i := range appointments {
		out[i] = ToAppointmentResponse(&appointments[i])
	}
	return out
}
