package handlers

import (
	"net/http"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// roleHandler handles HTTP requests for roles and the permission catalog.
type roleHandler struct {
	roleService portssvc.RoleSvcFacade
}

func newRoleHandler(rs portssvc.RoleSvcFacade) *roleHandler {
	return &roleHandler{roleService: rs}
}

// registerRoleRoutes registers role and permission catalog routes.
func registerRoleRoutes(rg *gin.RouterGroup, roleService portssvc.RoleSvcFacade) {
	h := newRoleHandler(roleService)

	roles := rg.Group("/roles")
	{
		roles.POST("", h.createRole)
		roles.GET("", h.listRoles)
		roles.GET("/:id", h.getRole)
		roles.PUT("/:id", h.updateRole)
		roles.DELETE("/:id", h.deleteRole)
		roles.PUT("/:id/visibility", h.assignRoleVisibility)
	}
	rg.GET("/permissions", h.listPermissions)
}

// createRole godoc
// @Summary Create a role
// @Description Creates a role with an explicit permission set
// @Tags roles
// @Accept json
// @Produce json
// @Param role body dto.CreateRoleRequest true "Role details"
// @Success 201 {object} dto.RoleResponse
// @Failure 400 {object} map[string]string "Unknown permission ID"
// @Failure 409 {object} map[string]string "Role name already exists"
// @Security BearerAuth
// @Router /roles [post]
func (h *roleHandler) createRole(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoleResponse(role, nil))
}

// listRoles godoc
// @Summary List roles
// @Description Lists the roles of the caller's company
// @Tags roles
// @Produce json
// @Success 200 {array} dto.RoleResponse
// @Security BearerAuth
// @Router /roles [get]
func (h *roleHandler) listRoles(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	roles, err := h.roleService.ListRoles(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.RoleResponse, len(roles))
	for i := range roles {
		out[i] = dto.ToRoleResponse(&roles[i], nil)
	}
	c.JSON(http.StatusOK, out)
}

// getRole godoc
// @Summary Get a role
// @Description Retrieves a role of the caller's company with its permissions
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.RoleResponse
// @Failure 404 {object} map[string]string "Role not found"
// @Security BearerAuth
// @Router /roles/{id} [get]
func (h *roleHandler) getRole(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	role, perms, err := h.roleService.GetRole(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleResponse(role, perms))
}

// updateRole godoc
// @Summary Update a role
// @Description Updates a role; a provided permission set replaces the previous one wholesale
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param role body dto.UpdateRoleRequest true "Fields to update"
// @Success 200 {object} dto.RoleResponse
// @Failure 404 {object} map[string]string "Role not found"
// @Security BearerAuth
// @Router /roles/{id} [put]
func (h *roleHandler) updateRole(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleResponse(role, nil))
}

// deleteRole godoc
// @Summary Delete a role
// @Description Deletes a role and cascades its permission and visibility links
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Role not found"
// @Failure 409 {object} map[string]string "Role still assigned to users"
// @Security BearerAuth
// @Router /roles/{id} [delete]
func (h *roleHandler) deleteRole(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.roleService.DeleteRole(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// assignRoleVisibility godoc
// @Summary Assign role visibility
// @Description Replaces the role's visibility target set; requires the visibility.assign permission
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param request body dto.AssignRoleVisibilityRequest true "Target user IDs"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Target outside the company"
// @Failure 404 {object} map[string]string "Role not found"
// @Security BearerAuth
// @Router /roles/{id}/visibility [put]
func (h *roleHandler) assignRoleVisibility(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.AssignRoleVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.roleService.AssignRoleVisibility(c.Request.Context(), userID, c.Param("id"), req.TargetIDs); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role visibility assigned"})
}

// listPermissions godoc
// @Summary List the permission catalog
// @Description Returns the global permission catalog
// @Tags roles
// @Produce json
// @Success 200 {array} dto.PermissionResponse
// @Security BearerAuth
// @Router /permissions [get]
func (h *roleHandler) listPermissions(c *gin.Context) {
	perms, err := h.roleService.ListPermissions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPermissionResponses(perms))
}
