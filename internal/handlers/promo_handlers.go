package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/auth"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
)

// PromoHandler handles promo validation for customers and promo definition
// management for the back office
type PromoHandler struct {
	promoService interfaces.PromoService
	logger       *zap.Logger
}

// NewPromoHandler creates a handler with interface dependencies
func NewPromoHandler(promoService interfaces.PromoService, logger *zap.Logger) *PromoHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &PromoHandler{
		promoService: promoService,
		logger:       logger,
	}
}

// ValidatePromo godoc
// @Summary Validate a promo code
// @Description Checks a promo code against the promo service and returns the discounted value when the code applies
// @Tags promos
// @Accept json
// @Produce json
// @Param request body requests.ValidatePromoRequest true "Promo validation"
// @Success 200 {object} responses.PromoValidation
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /promos/validate [post]
func (h *PromoHandler) ValidatePromo(c *gin.Context) {
	var req requests.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid promo validation payload", err)
		return
	}

	// The token identity outranks whatever user id the client claims.
	userID := c.GetString(auth.UserIDKey)
	if userID == "" {
		userID = req.UserID
	}

	validation, err := h.promoService.ValidatePromo(c.Request.Context(), params.PromoValidationParams{
		Code:         req.Code,
		BookingValue: req.BookingValue,
		HotelID:      req.HotelID,
		Destination:  req.Destination,
		UserID:       userID,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to validate promo code", err)
		return
	}

	sendSuccess(c, http.StatusOK, validation)
}

// ListPromos godoc
// @Summary List promo definitions
// @Description Returns a page of promo code definitions for the back office
// @Tags promos
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/promos [get]
func (h *PromoHandler) ListPromos(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.promoService.ListPromos(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list promo codes", err)
		return
	}

	response := paginatedResponse(list.Promos, int(pagination.Page), int(pagination.Limit), int(list.TotalItems))
	sendSuccess(c, http.StatusOK, response)
}

// CreatePromo godoc
// @Summary Create a promo definition
// @Description Registers a new promo code with the promo service
// @Tags promos
// @Accept json
// @Produce json
// @Param request body requests.CreatePromoRequest true "Promo definition"
// @Success 201 {object} responses.Promo
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/promos [post]
func (h *PromoHandler) CreatePromo(c *gin.Context) {
	var req requests.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid promo payload", err)
		return
	}

	promo, err := h.promoService.CreatePromo(c.Request.Context(), req)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create promo code", err)
		return
	}

	h.logger.Info("Promo code created", zap.String("code", promo.Code))
	sendSuccess(c, http.StatusCreated, promo)
}

// UpdatePromo godoc
// @Summary Update a promo definition
// @Description Amends an existing promo code definition
// @Tags promos
// @Accept json
// @Produce json
// @Param promo_id path string true "Promo ID"
// @Param request body requests.UpdatePromoRequest true "Promo amendment"
// @Success 200 {object} responses.Promo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/promos/{promo_id} [patch]
func (h *PromoHandler) UpdatePromo(c *gin.Context) {
	promoID := c.Param("promo_id")
	if promoID == "" {
		sendError(c, http.StatusBadRequest, "Promo ID is required", nil)
		return
	}

	var req requests.UpdatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid promo payload", err)
		return
	}

	promo, err := h.promoService.UpdatePromo(c.Request.Context(), promoID, req)
	if err != nil {
		handleUpstreamError(c, err, "Promo code not found")
		return
	}

	sendSuccess(c, http.StatusOK, promo)
}

// DeletePromo godoc
// @Summary Delete a promo definition
// @Description Removes a promo code so it can no longer be redeemed
// @Tags promos
// @Produce json
// @Param promo_id path string true "Promo ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/promos/{promo_id} [delete]
func (h *PromoHandler) DeletePromo(c *gin.Context) {
	promoID := c.Param("promo_id")
	if promoID == "" {
		sendError(c, http.StatusBadRequest, "Promo ID is required", nil)
		return
	}

	if err := h.promoService.DeletePromo(c.Request.Context(), promoID); err != nil {
		handleUpstreamError(c, err, "Promo code not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Promo code deleted")
}
