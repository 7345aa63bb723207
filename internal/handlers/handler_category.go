package handlers

import (
	"net/http"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests for store categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers category routes nested under a store.
func registerCategoryRoutes(stores *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := stores.Group("/:storeID/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:categoryID", h.getCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Description Creates a category within a store the caller manages
// @Tags categories
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Store not found"
// @Security BearerAuth
// @Router /stores/{storeID}/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, c.Param("storeID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Description Lists the categories of a store the caller manages
// @Tags categories
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /stores/{storeID}/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID, c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		out[i] = dto.ToCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, out)
}

// getCategory godoc
// @Summary Get a category
// @Description Retrieves a category of a store the caller manages
// @Tags categories
// @Produce json
// @Param storeID path string true "Store ID"
// @Param categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /stores/{storeID}/categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), userID, c.Param("storeID"), c.Param("categoryID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a category
// @Description Renames a category of a store the caller manages
// @Tags categories
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param categoryID path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /stores/{storeID}/categories/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), userID, c.Param("storeID"), c.Param("categoryID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes a category of a store the caller manages
// @Tags categories
// @Produce json
// @Param storeID path string true "Store ID"
// @Param categoryID path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /stores/{storeID}/categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), userID, c.Param("storeID"), c.Param("categoryID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
