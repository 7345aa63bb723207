package handlers

import (
	"net/http"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// storeHandler handles HTTP requests for stores.
type storeHandler struct {
	storeService portssvc.StoreSvcFacade
}

func newStoreHandler(ss portssvc.StoreSvcFacade) *storeHandler {
	return &storeHandler{storeService: ss}
}

// registerStoreRoutes registers store routes and delegates the nested
// category, service and client routes.
func registerStoreRoutes(
	rg *gin.RouterGroup,
	storeService portssvc.StoreSvcFacade,
	categoryService portssvc.CategorySvcFacade,
	catalogService portssvc.CatalogSvcFacade,
	clientService portssvc.ClientSvcFacade,
) {
	h := newStoreHandler(storeService)

	stores := rg.Group("/stores")
	{
		stores.POST("", h.createStore)
		stores.GET("", h.listStores)
		stores.GET("/:storeID", h.getStore)
		stores.PUT("/:storeID", h.updateStore)
		stores.DELETE("/:storeID", h.deleteStore)
	}

	registerCategoryRoutes(stores, categoryService)
	registerCatalogRoutes(stores, catalogService)
	registerClientRoutes(stores, clientService)
}

// createStore godoc
// @Summary Create a store
// @Description Creates a store managed by the calling user
// @Tags stores
// @Accept json
// @Produce json
// @Param store body dto.CreateStoreRequest true "Store details"
// @Success 201 {object} dto.StoreResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /stores [post]
func (h *storeHandler) createStore(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToStoreResponse(store))
}

// listStores godoc
// @Summary List stores
// @Description Lists the stores managed by the calling user
// @Tags stores
// @Produce json
// @Success 200 {array} dto.StoreResponse
// @Security BearerAuth
// @Router /stores [get]
func (h *storeHandler) listStores(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	stores, err := h.storeService.ListStores(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStoreResponses(stores))
}

// getStore godoc
// @Summary Get a store
// @Description Retrieves a store managed by the calling user
// @Tags stores
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} map[string]string "Store not found"
// @Security BearerAuth
// @Router /stores/{storeID} [get]
func (h *storeHandler) getStore(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), userID, c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// updateStore godoc
// @Summary Update a store
// @Description Updates a store managed by the calling user
// @Tags stores
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param store body dto.UpdateStoreRequest true "Fields to update"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} map[string]string "Store not found"
// @Security BearerAuth
// @Router /stores/{storeID} [put]
func (h *storeHandler) updateStore(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), userID, c.Param("storeID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStoreResponse(store))
}

// deleteStore godoc
// @Summary Delete a store
// @Description Deletes a store managed by the calling user
// @Tags stores
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Store not found"
// @Security BearerAuth
// @Router /stores/{storeID} [delete]
func (h *storeHandler) deleteStore(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.storeService.DeleteStore(c.Request.Context(), userID, c.Param("storeID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
