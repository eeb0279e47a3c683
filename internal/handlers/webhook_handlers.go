package handlers

import (
	"crypto/subtle"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// maxWebhookBody bounds webhook payload reads. Provider events are small;
// anything bigger is not one of ours.
const maxWebhookBody = 1 << 20

// WebhookHandler terminates provider callbacks. These routes authenticate by
// signature or shared token rather than JWT.
type WebhookHandler struct {
	paymentWebhookService interfaces.PaymentWebhookService
	inboxService          interfaces.InboxService
	stripeWebhookSecret   string
	whatsappWebhookToken  string
	logger                *zap.Logger
}

// NewWebhookHandler creates a handler with interface dependencies
func NewWebhookHandler(
	paymentWebhookService interfaces.PaymentWebhookService,
	inboxService interfaces.InboxService,
	stripeWebhookSecret string,
	whatsappWebhookToken string,
	logger *zap.Logger,
) *WebhookHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &WebhookHandler{
		paymentWebhookService: paymentWebhookService,
		inboxService:          inboxService,
		stripeWebhookSecret:   stripeWebhookSecret,
		whatsappWebhookToken:  whatsappWebhookToken,
		logger:                logger,
	}
}

// InboundMessageRequest is the WhatsApp gateway's inbound relay payload.
type InboundMessageRequest struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId" binding:"required"`
	Body           string    `json:"body"`
	MediaURL       string    `json:"mediaUrl,omitempty"`
	SentAt         time.Time `json:"sentAt"`
}

// HandleStripeWebhook godoc
// @Summary Stripe webhook
// @Description Verifies the provider signature and applies checkout-session events to reservations and invoices
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} object{received=bool}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /webhooks/payments/stripe [post]
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read webhook body", err)
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		sendError(c, http.StatusBadRequest, "Missing signature header", nil)
		return
	}

	event, err := webhook.ConstructEvent(body, signatureHeader, h.stripeWebhookSecret)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Webhook signature verification failed", err)
		return
	}

	h.logger.Info("Received payment webhook event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))

	// A non-2xx makes the provider redeliver, so only retryable failures
	// surface here.
	if err := h.paymentWebhookService.ProcessEvent(c.Request.Context(), event); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to process webhook event", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// HandleWhatsAppInbound godoc
// @Summary WhatsApp inbound webhook
// @Description Accepts a gateway-relayed customer message and fans it out to connected dashboards
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body InboundMessageRequest true "Inbound message"
// @Success 200 {object} object{received=bool}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /webhooks/whatsapp/inbound [post]
func (h *WebhookHandler) HandleWhatsAppInbound(c *gin.Context) {
	token := c.GetHeader("X-Webhook-Token")
	if h.whatsappWebhookToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(h.whatsappWebhookToken)) != 1 {
		sendError(c, http.StatusUnauthorized, "Invalid webhook token", nil)
		return
	}

	var req InboundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid inbound message payload", err)
		return
	}

	message := business.Message{
		ID:             req.ID,
		ConversationID: req.ConversationID,
		Direction:      constants.MessageInbound,
		Body:           req.Body,
		MediaURL:       req.MediaURL,
		SentAt:         req.SentAt,
	}
	if err := h.inboxService.HandleInboundMessage(c.Request.Context(), message); err != nil {
		sendError(c, http.StatusBadRequest, "Failed to relay inbound message", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
