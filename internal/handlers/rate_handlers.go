package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
)

// RateHandler handles hotel rate search and refresh operations
type RateHandler struct {
	rateService interfaces.RateService
	logger      *zap.Logger
}

// NewRateHandler creates a handler with interface dependencies
func NewRateHandler(rateService interfaces.RateService, logger *zap.Logger) *RateHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &RateHandler{
		rateService: rateService,
		logger:      logger,
	}
}

// SearchRates godoc
// @Summary Search hotel rates
// @Description Fetches bookable rates for one hotel, stay window and occupancy in the requested display currency
// @Tags rates
// @Accept json
// @Produce json
// @Param request body requests.RateSearchRequest true "Rate search"
// @Success 200 {object} responses.RateSearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/search [post]
func (h *RateHandler) SearchRates(c *gin.Context) {
	var req requests.RateSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid rate search payload", err)
		return
	}

	result, err := h.rateService.SearchRates(c.Request.Context(), params.RateSearchParams{
		HotelID:      req.HotelID,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Adults:       req.Adults,
		ChildrenAges: req.ChildrenAges,
		Currency:     req.Currency,
		Language:     req.Language,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to search rates", err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// RefreshSelections godoc
// @Summary Refresh held selections
// @Description Re-fetches rates after a display-currency change and re-matches the held room selections against the fresh list
// @Tags rates
// @Accept json
// @Produce json
// @Param request body requests.RefreshSelectionsRequest true "Refresh request"
// @Success 200 {object} responses.RefreshOutcome
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/refresh [post]
func (h *RateHandler) RefreshSelections(c *gin.Context) {
	var req requests.RefreshSelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid refresh payload", err)
		return
	}

	outcome, err := h.rateService.RefreshSelections(c.Request.Context(), params.RefreshSelectionsParams{
		RefreshKey: req.RefreshKey,
		Search: params.RateSearchParams{
			HotelID:      req.Search.HotelID,
			CheckIn:      req.Search.CheckIn,
			CheckOut:     req.Search.CheckOut,
			Adults:       req.Search.Adults,
			ChildrenAges: req.Search.ChildrenAges,
			Currency:     req.Search.Currency,
			Language:     req.Search.Language,
		},
		Selections: req.Selections,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to refresh selections", err)
		return
	}

	sendSuccess(c, http.StatusOK, outcome)
}
