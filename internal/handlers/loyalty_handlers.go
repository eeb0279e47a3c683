package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/auth"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
)

// LoyaltyHandler exposes the caller's loyalty balance and redemption previews
type LoyaltyHandler struct {
	loyaltyService interfaces.LoyaltyService
	logger         *zap.Logger
}

// NewLoyaltyHandler creates a handler with interface dependencies
func NewLoyaltyHandler(loyaltyService interfaces.LoyaltyService, logger *zap.Logger) *LoyaltyHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &LoyaltyHandler{
		loyaltyService: loyaltyService,
		logger:         logger,
	}
}

// GetBalance godoc
// @Summary Get loyalty balance
// @Description Returns the authenticated caller's loyalty point balance and per-point redemption value
// @Tags loyalty
// @Produce json
// @Success 200 {object} responses.LoyaltyBalance
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loyalty/balance [get]
func (h *LoyaltyHandler) GetBalance(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)
	if userID == "" {
		sendError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	balance, err := h.loyaltyService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to fetch loyalty balance", err)
		return
	}

	sendSuccess(c, http.StatusOK, balance)
}

// PreviewRedemption godoc
// @Summary Preview a points redemption
// @Description Returns the discount a redemption of the given points would fund, clamped to the caller's balance
// @Tags loyalty
// @Accept json
// @Produce json
// @Param request body requests.LoyaltyPreviewRequest true "Redemption preview"
// @Success 200 {object} responses.LoyaltyPreview
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loyalty/preview [post]
func (h *LoyaltyHandler) PreviewRedemption(c *gin.Context) {
	userID := c.GetString(auth.UserIDKey)
	if userID == "" {
		sendError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req requests.LoyaltyPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid redemption preview payload", err)
		return
	}

	preview, err := h.loyaltyService.PreviewRedemption(c.Request.Context(), params.LoyaltyPreviewParams{
		UserID: userID,
		Points: req.Points,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to preview redemption", err)
		return
	}

	sendSuccess(c, http.StatusOK, preview)
}
