package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
)

// AnalyticsHandler serves the back-office dashboard KPIs
type AnalyticsHandler struct {
	analyticsService interfaces.AnalyticsService
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a handler with interface dependencies
func NewAnalyticsHandler(analyticsService interfaces.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// GetDashboardMetrics godoc
// @Summary Dashboard metrics
// @Description Aggregates booking counts, revenue by currency, top hotels and the monthly series for the admin dashboard
// @Tags analytics
// @Produce json
// @Param from query string false "Window start month (YYYY-MM), defaults to trailing twelve months"
// @Param to query string false "Window end month (YYYY-MM)"
// @Success 200 {object} business.DashboardMetrics
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboardMetrics(c *gin.Context) {
	metrics, err := h.analyticsService.GetDashboardMetrics(c.Request.Context(), params.AnalyticsParams{
		FromMonth: c.Query("from"),
		ToMonth:   c.Query("to"),
	})
	if err != nil {
		if strings.Contains(err.Error(), "invalid") || strings.Contains(err.Error(), "must precede") {
			sendError(c, http.StatusBadRequest, err.Error(), err)
		} else {
			sendError(c, http.StatusInternalServerError, "Failed to compute dashboard metrics", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, metrics)
}
