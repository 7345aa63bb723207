package handlers

import (
	"net/http"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// appointmentHandler handles HTTP requests for the caller's appointments.
type appointmentHandler struct {
	appointmentService portssvc.AppointmentSvcFacade
}

func newAppointmentHandler(as portssvc.AppointmentSvcFacade) *appointmentHandler {
	return &appointmentHandler{appointmentService: as}
}

// RegisterAppointmentRoutes registers appointment routes.
func RegisterAppointmentRoutes(rg *gin.RouterGroup, appointmentService portssvc.AppointmentSvcFacade) {
	h := newAppointmentHandler(appointmentService)

	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.createAppointment)
		appointments.GET("", h.listAppointments)
		appointments.GET("/:id", h.getAppointment)
		appointments.PUT("/:id", h.updateAppointment)
		appointments.DELETE("/:id", h.deleteAppointment)
	}
}

// createAppointment godoc
// @Summary Create an appointment
// @Description Schedules an appointment for the calling user after interval validation and overlap scan
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body dto.CreateAppointmentRequest true "Appointment details"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} map[string]string "Invalid interval"
// @Failure 409 {object} map[string]string "Overlapping appointment"
// @Security BearerAuth
// @Router /appointments [post]
func (h *appointmentHandler) createAppointment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(appointment))
}

// listAppointments godoc
// @Summary List appointments
// @Description Lists the calling user's appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} dto.AppointmentResponse
// @Security BearerAuth
// @Router /appointments [get]
func (h *appointmentHandler) listAppointments(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAppointmentResponses(appointments))
}

// getAppointment godoc
// @Summary Get an appointment
// @Description Retrieves one of the calling user's appointments
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 404 {object} map[string]string "Appointment not found"
// @Security BearerAuth
// @Router /appointments/{id} [get]
func (h *appointmentHandler) getAppointment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}

// updateAppointment godoc
// @Summary Update an appointment
// @Description Updates an appointment; time rules re-validate only when a boundary changes
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param appointment body dto.UpdateAppointmentRequest true "Fields to update"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} map[string]string "Invalid interval"
// @Failure 404 {object} map[string]string "Appointment not found"
// @Security BearerAuth
// @Router /appointments/{id} [put]
func (h *appointmentHandler) updateAppointment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}

// deleteAppointment godoc
// @Summary Delete an appointment
// @Description Deletes a future appointment; started appointments cannot be deleted
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Appointment already started"
// @Failure 404 {object} map[string]string "Appointment not found"
// @Security BearerAuth
// @Router /appointments/{id} [delete]
func (h *appointmentHandler) deleteAppointment(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.appointmentService.DeleteAppointment(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
