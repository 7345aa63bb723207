package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bookora/bookora_backend/internal/apperrors"
	"github.com/bookora/bookora_backend/internal/core/domain"
	portsrepo "github.com/bookora/bookora_backend/internal/core/ports/repositories"
	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/bookora/bookora_backend/internal/middleware"
	"github.com/google/uuid"
)

// Business-hour and duration policy for appointments.
const (
	businessOpenHour  = 9
	businessCloseHour = 18
	minDuration       = 30 * time.Minute
	maxDuration       = 120 * time.Minute
)

// appointmentService implements the scheduler core: interval validation and
// conflict detection run synchronously inside each mutating call.
type appointmentService struct {
	appointmentRepo portsrepo.AppointmentRepository
	rbac            portssvc.PermissionChecker

	// updateConflictCheck enables the hardened update path that re-runs the
	// overlap scan when boundaries change. The historical behavior skips it.
	updateConflictCheck bool

	// now is swappable for tests.
	now func() time.Time
}

// NewAppointmentService creates a new appointmentService.
func NewAppointmentService(appointmentRepo portsrepo.AppointmentRepository, rbac portssvc.PermissionChecker, updateConflictCheck bool) portssvc.AppointmentSvcFacade {
	return &appointmentService{
		appointmentRepo:     appointmentRepo,
		rbac:                rbac,
		updateConflictCheck: updateConflictCheck,
		now:                 time.Now,
	}
}

var _ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)

// overlapsExisting reproduces the historical overlap predicate:
//
//	(existing.start <= new.start && existing.end > new.start) ||
//	(existing.start < new.end && existing.end >= new.end)
//
// This is not a full interval-intersection test: a new interval strictly
// containing an existing one, without touching either boundary, slips
// through. The predicate is kept verbatim for compatibility; the gap is
// documented in the test suite.
func overlapsExisting(existing domain.Appointment, start, end time.Time) bool {
	startsInside := !existing.StartTime.After(start) && existing.EndTime.After(start)
	endsInside := existing.StartTime.Before(end) && !existing.EndTime.Before(end)
	return startsInside || endsInside
}

// validateInterval runs the ordered validation pipeline. The first failing
// rule aborts with a validation error carrying a human-readable reason.
func (s *appointmentService) validateInterval(start, end time.Time) error {
	if !start.After(s.now()) {
		return fmt.Errorf("%w: start time must be in the future", apperrors.ErrValidation)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidation)
	}

	// Hour-of-day check on each endpoint independently, in server local
	// time. This is not a containment check of the whole interval.
	startHour := start.Local().Hour()
	endHour := end.Local().Hour()
	if startHour < businessOpenHour || startHour > businessCloseHour {
		return fmt.Errorf("%w: start time must be within business hours (9:00-18:00)", apperrors.ErrValidation)
	}
	if endHour < businessOpenHour || endHour > businessCloseHour {
		return fmt.Errorf("%w: end time must be within business hours (9:00-18:00)", apperrors.ErrValidation)
	}

	// Exact comparison: a sub-minute overshoot is still an overshoot.
	duration := end.Sub(start)
	if duration < minDuration {
		return fmt.Errorf("%w: appointment must be at least %d minutes", apperrors.ErrValidation, int(minDuration/time.Minute))
	}
	if duration > maxDuration {
		return fmt.Errorf("%w: appointment must be at most %d minutes", apperrors.ErrValidation, int(maxDuration/time.Minute))
	}
	return nil
}

// scanConflicts fetches the user's appointments and applies the overlap
// predicate, skipping the appointment being updated if any.
func (s *appointmentService) scanConflicts(ctx context.Context, userID string, start, end time.Time, excludeID string) error {
	existing, err := s.appointmentRepo.FindAppointmentsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load appointments for conflict scan: %w", err)
	}
	for _, a := range existing {
		if a.AppointmentID == excludeID {
			continue
		}
		if overlapsExisting(a, start, end) {
			return fmt.Errorf("%w: appointment overlaps an existing appointment", apperrors.ErrValidation)
		}
	}
	return nil
}

// CreateAppointment validates the proposed interval and schedules it for the
// calling user.
func (s *appointmentService) CreateAppointment(ctx context.Context, actorUserID string, req dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleAppointment, domain.ActionCreate); err != nil {
		return nil, err
	}

	if err := s.validateInterval(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if err := s.scanConflicts(ctx, actorUserID, req.StartTime, req.EndTime, ""); err != nil {
		return nil, err
	}

	now := s.now()
	appointment := domain.Appointment{
		AppointmentID: uuid.NewString(),
		UserID:        actorUserID,
		Title:         req.Title,
		Type:          req.Type,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.appointmentRepo.SaveAppointment(ctx, appointment); err != nil {
		logger.Error("Failed to save appointment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return &appointment, nil
}

// GetAppointment retrieves one of the actor's own appointments.
func (s *appointmentService) GetAppointment(ctx context.Context, actorUserID, appointmentID string) (*domain.Appointment, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleAppointment, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.loadOwnAppointment(ctx, actorUserID, appointmentID)
}

// ListAppointments lists the actor's own appointments.
func (s *appointmentService) ListAppointments(ctx context.Context, actorUserID string) ([]domain.Appointment, error) {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleAppointment, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.appointmentRepo.FindAppointmentsByUser(ctx, actorUserID)
}

// UpdateAppointment updates an appointment. Time and duration rules are
// re-validated only when a boundary actually changes; the conflict scan on
// update is gated behind the hardened-mode flag.
func (s *appointmentService) UpdateAppointment(ctx context.Context, actorUserID, appointmentID string, req dto.UpdateAppointmentRequest) (*domain.Appointment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleAppointment, domain.ActionUpdate); err != nil {
		return nil, err
	}

	appointment, err := s.loadOwnAppointment(ctx, actorUserID, appointmentID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		appointment.Title = *req.Title
	}
	if req.Type != nil {
		appointment.Type = *req.Type
	}

	boundaryChanged := false
	if req.StartTime != nil && !req.StartTime.Equal(appointment.StartTime) {
		appointment.StartTime = *req.StartTime
		boundaryChanged = true
	}
	if req.EndTime != nil && !req.EndTime.Equal(appointment.EndTime) {
		appointment.EndTime = *req.EndTime
		boundaryChanged = true
	}

	if boundaryChanged {
		if err := s.validateInterval(appointment.StartTime, appointment.EndTime); err != nil {
			return nil, err
		}
		if s.updateConflictCheck {
			if err := s.scanConflicts(ctx, actorUserID, appointment.StartTime, appointment.EndTime, appointmentID); err != nil {
				return nil, err
			}
		}
	}

	appointment.LastUpdatedAt = s.now()
	appointment.LastUpdatedBy = actorUserID

	if err := s.appointmentRepo.UpdateAppointment(ctx, *appointment); err != nil {
		logger.Error("Failed to update appointment", slog.String("error", err.Error()), slog.String("appointment_id", appointmentID))
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return appointment, nil
}

// DeleteAppointment removes a future appointment. Appointments that already
// started cannot be deleted.
func (s *appointmentService) DeleteAppointment(ctx context.Context, actorUserID, appointmentID string) error {
	if err := requirePermission(ctx, s.rbac, actorUserID, domain.ModuleAppointment, domain.ActionDelete); err != nil {
		return err
	}

	appointment, err := s.loadOwnAppointment(ctx, actorUserID, appointmentID)
	if err != nil {
		return err
	}
	if !appointment.StartTime.After(s.now()) {
		return fmt.Errorf("%w: cannot delete an appointment that has already started", apperrors.ErrValidation)
	}

	return s.appointmentRepo.DeleteAppointment(ctx, appointmentID)
}

// loadOwnAppointment loads an appointment and verifies it belongs to the
// actor. Someone else's appointment surfaces as not found.
func (s *appointmentService) loadOwnAppointment(ctx context.Context, actorUserID, appointmentID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load appointment %s: %w", appointmentID, err)
	}
	if appointment.UserID != actorUserID {
		return nil, apperrors.ErrNotFound
	}
	return appointment, nil
}
