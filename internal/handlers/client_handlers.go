package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
)

// ClientHandler is the back-office surface over CRS client profiles
type ClientHandler struct {
	clientService interfaces.ClientService
	logger        *zap.Logger
}

// NewClientHandler creates a handler with interface dependencies
func NewClientHandler(clientService interfaces.ClientService, logger *zap.Logger) *ClientHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &ClientHandler{
		clientService: clientService,
		logger:        logger,
	}
}

// ListClients godoc
// @Summary List clients
// @Description Returns a page of client profiles, optionally filtered by free-text query
// @Tags clients
// @Produce json
// @Param q query string false "Free-text search over name, email and phone"
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.clientService.ListClients(c.Request.Context(), params.ListClientsParams{
		Query:  c.Query("q"),
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list clients", err)
		return
	}

	response := paginatedResponse(list.Clients, int(pagination.Page), int(pagination.Limit), int(list.TotalItems))
	sendSuccess(c, http.StatusOK, response)
}

// GetClient godoc
// @Summary Get client by ID
// @Description Returns one client profile with its booking history summary
// @Tags clients
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} business.Client
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/clients/{client_id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID := c.Param("client_id")
	if clientID == "" {
		sendError(c, http.StatusBadRequest, "Client ID is required", nil)
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), clientID)
	if err != nil {
		handleUpstreamError(c, err, "Client not found")
		return
	}

	sendSuccess(c, http.StatusOK, client)
}

// UpdateClient godoc
// @Summary Update a client profile
// @Description Amends a client's contact details
// @Tags clients
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param request body requests.UpdateClientRequest true "Profile amendment"
// @Success 200 {object} business.Client
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/clients/{client_id} [patch]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID := c.Param("client_id")
	if clientID == "" {
		sendError(c, http.StatusBadRequest, "Client ID is required", nil)
		return
	}

	var req requests.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid client payload", err)
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), clientID, req)
	if err != nil {
		handleUpstreamError(c, err, "Client not found")
		return
	}

	sendSuccess(c, http.StatusOK, client)
}
