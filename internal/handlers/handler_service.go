package handlers

import (
	"net/http"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests for a store's service catalog.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers service catalog routes nested under a store.
func registerCatalogRoutes(stores *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	services := stores.Group("/:storeID/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)
		services.GET("/:serviceID", h.getService)
		services.PUT("/:serviceID", h.updateService)
		services.DELETE("/:serviceID", h.deleteService)
	}
}

// createService godoc
// @Summary Create a catalog service
// @Description Creates a bookable service within a store the caller manages
// @Tags services
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid price or deposit"
// @Failure 404 {object} map[string]string "Store or category not found"
// @Security BearerAuth
// @Router /stores/{storeID}/services [post]
func (h *catalogHandler) createService(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	service, err := h.catalogService.CreateService(c.Request.Context(), userID, c.Param("storeID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// listServices godoc
// @Summary List catalog services
// @Description Lists the services of a store the caller manages
// @Tags services
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 200 {array} dto.ServiceResponse
// @Security BearerAuth
// @Router /stores/{storeID}/services [get]
func (h *catalogHandler) listServices(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	services, err := h.catalogService.ListServices(c.Request.Context(), userID, c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponses(services))
}

// getService godoc
// @Summary Get a catalog service
// @Description Retrieves a service of a store the caller manages
// @Tags services
// @Produce json
// @Param storeID path string true "Store ID"
// @Param serviceID path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /stores/{storeID}/services/{serviceID} [get]
func (h *catalogHandler) getService(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	service, err := h.catalogService.GetService(c.Request.Context(), userID, c.Param("storeID"), c.Param("serviceID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// updateService godoc
// @Summary Update a catalog service
// @Description Updates a service of a store the caller manages
// @Tags services
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param serviceID path string true "Service ID"
// @Param service body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid price or deposit"
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /stores/{storeID}/services/{serviceID} [put]
func (h *catalogHandler) updateService(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	service, err := h.catalogService.UpdateService(c.Request.Context(), userID, c.Param("storeID"), c.Param("serviceID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// deleteService godoc
// @Summary Delete a catalog service
// @Description Deletes a service of a store the caller manages
// @Tags services
// @Produce json
// @Param storeID path string true "Store ID"
// @Param serviceID path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Service not found"
// @Security BearerAuth
// @Router /stores/{storeID}/services/{serviceID} [delete]
func (h *catalogHandler) deleteService(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), userID, c.Param("storeID"), c.Param("serviceID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
