package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/auth"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
)

// InboxHandler is the back-office WhatsApp inbox surface
type InboxHandler struct {
	inboxService interfaces.InboxService
	logger       *zap.Logger
}

// NewInboxHandler creates a handler with interface dependencies
func NewInboxHandler(inboxService interfaces.InboxService, logger *zap.Logger) *InboxHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &InboxHandler{
		inboxService: inboxService,
		logger:       logger,
	}
}

// ListConversations godoc
// @Summary List inbox conversations
// @Description Returns the conversation roster ordered by most recent activity
// @Tags inbox
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/inbox/conversations [get]
func (h *InboxHandler) ListConversations(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.inboxService.ListConversations(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list conversations", err)
		return
	}

	response := paginatedResponse(list.Conversations, int(pagination.Page), int(pagination.Limit), int(list.TotalItems))
	sendSuccess(c, http.StatusOK, response)
}

// ListMessages godoc
// @Summary List conversation messages
// @Description Returns a page of one conversation's history, newest first
// @Tags inbox
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/inbox/conversations/{conversation_id}/messages [get]
func (h *InboxHandler) ListMessages(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	if conversationID == "" {
		sendError(c, http.StatusBadRequest, "Conversation ID is required", nil)
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.inboxService.ListMessages(c.Request.Context(), conversationID, pagination.Limit, pagination.Offset)
	if err != nil {
		handleUpstreamError(c, err, "Conversation not found")
		return
	}

	response := paginatedResponse(list.Messages, int(pagination.Page), int(pagination.Limit), int(list.TotalItems))
	sendSuccess(c, http.StatusOK, response)
}

// SendMessage godoc
// @Summary Send an agent reply
// @Description Relays an agent reply into the conversation and mirrors it to connected dashboards
// @Tags inbox
// @Accept json
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Param request body requests.SendMessageRequest true "Reply body"
// @Success 201 {object} business.Message
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/inbox/conversations/{conversation_id}/messages [post]
func (h *InboxHandler) SendMessage(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	if conversationID == "" {
		sendError(c, http.StatusBadRequest, "Conversation ID is required", nil)
		return
	}

	var req requests.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid message payload", err)
		return
	}

	message, err := h.inboxService.SendMessage(c.Request.Context(), conversationID, req.Body, c.GetString(auth.UserIDKey))
	if err != nil {
		handleUpstreamError(c, err, "Conversation not found")
		return
	}

	sendSuccess(c, http.StatusCreated, message)
}

// MarkRead godoc
// @Summary Mark a conversation read
// @Description Clears a conversation's unread counter
// @Tags inbox
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/inbox/conversations/{conversation_id}/read [post]
func (h *InboxHandler) MarkRead(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	if conversationID == "" {
		sendError(c, http.StatusBadRequest, "Conversation ID is required", nil)
		return
	}

	if err := h.inboxService.MarkRead(c.Request.Context(), conversationID); err != nil {
		handleUpstreamError(c, err, "Conversation not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Conversation marked read")
}
