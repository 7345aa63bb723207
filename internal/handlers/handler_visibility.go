package handlers

import (
	"net/http"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// visibilityHandler handles HTTP requests for the visibility graph.
type visibilityHandler struct {
	visibilityService portssvc.VisibilitySvcFacade
}

func newVisibilityHandler(vs portssvc.VisibilitySvcFacade) *visibilityHandler {
	return &visibilityHandler{visibilityService: vs}
}

// registerVisibilityRoutes registers visibility graph routes.
func registerVisibilityRoutes(rg *gin.RouterGroup, visibilityService portssvc.VisibilitySvcFacade) {
	h := newVisibilityHandler(visibilityService)

	visibility := rg.Group("/visibility")
	{
		visibility.PUT("", h.assignVisibility)
		visibility.GET("/:viewerID", h.getVisibility)
	}
}

// assignVisibility godoc
// @Summary Assign direct visibility
// @Description Replaces the viewer's full direct visibility set; SuperAdmin or Admin only
// @Tags visibility
// @Accept json
// @Produce json
// @Param request body dto.AssignVisibilityRequest true "Viewer and targets"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Viewer or target outside the company"
// @Failure 403 {object} map[string]string "Caller role may not assign visibility"
// @Security BearerAuth
// @Router /visibility [put]
func (h *visibilityHandler) assignVisibility(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.AssignVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.visibilityService.AssignVisibility(c.Request.Context(), userID, req.ViewerID, req.TargetIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "visibility assigned"})
}

// getVisibility godoc
// @Summary Get a viewer's direct visibility
// @Description Returns the viewer's direct visibility targets; non-admins may only query themselves
// @Tags visibility
// @Produce json
// @Param viewerID path string true "Viewer user ID"
// @Success 200 {object} dto.VisibilityResponse
// @Failure 403 {object} map[string]string "Cannot query another user's visibility"
// @Security BearerAuth
// @Router /visibility/{viewerID} [get]
func (h *visibilityHandler) getVisibility(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	viewerID := c.Param("viewerID")
	targets, err := h.visibilityService.GetVisibility(c.Request.Context(), userID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.UserResponse, len(targets))
	for i := range targets {
		out[i] = dto.ToUserResponse(&targets[i])
	}
	c.JSON(http.StatusOK, dto.VisibilityResponse{ViewerID: viewerID, Targets: out})
}
