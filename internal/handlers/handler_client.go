package handlers

import (
	"net/http"

	portssvc "github.com/bookora/bookora_backend/internal/core/ports/services"
	"github.com/bookora/bookora_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests for store clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers client routes nested under a store.
func registerClientRoutes(stores *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := stores.Group("/:storeID/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClient)
		clients.PUT("/:clientID", h.updateClient)
		clients.POST("/:clientID/information", h.appendClientNote)
		clients.DELETE("/:clientID", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create a client
// @Description Creates a client of a store the caller manages
// @Tags clients
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Store not found"
// @Failure 409 {object} map[string]string "Phone or email already exists for this store"
// @Security BearerAuth
// @Router /stores/{storeID}/clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), userID, c.Param("storeID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Lists the clients of a store the caller manages
// @Tags clients
// @Produce json
// @Param storeID path string true "Store ID"
// @Success 200 {array} dto.ClientResponse
// @Security BearerAuth
// @Router /stores/{storeID}/clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), userID, c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponses(clients))
}

// getClient godoc
// @Summary Get a client
// @Description Retrieves a client of a store the caller manages
// @Tags clients
// @Produce json
// @Param storeID path string true "Store ID"
// @Param clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /stores/{storeID}/clients/{clientID} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), userID, c.Param("storeID"), c.Param("clientID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Description Updates a client's identity fields
// @Tags clients
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param clientID path string true "Client ID"
// @Param client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 409 {object} map[string]string "Phone or email already exists for this store"
// @Security BearerAuth
// @Router /stores/{storeID}/clients/{clientID} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), userID, c.Param("storeID"), c.Param("clientID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// appendClientNote godoc
// @Summary Append an information entry
// @Description Appends one entry to the client's append-only information history
// @Tags clients
// @Accept json
// @Produce json
// @Param storeID path string true "Store ID"
// @Param clientID path string true "Client ID"
// @Param note body dto.AppendClientNoteRequest true "Information entry"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Empty entry"
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /stores/{storeID}/clients/{clientID}/information [post]
func (h *clientHandler) appendClientNote(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	var req dto.AppendClientNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := h.clientService.AppendClientNote(c.Request.Context(), userID, c.Param("storeID"), c.Param("clientID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Deletes a client of a store the caller manages
// @Tags clients
// @Produce json
// @Param storeID path string true "Store ID"
// @Param clientID path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Client not found"
// @Security BearerAuth
// @Router /stores/{storeID}/clients/{clientID} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), userID, c.Param("storeID"), c.Param("clientID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
