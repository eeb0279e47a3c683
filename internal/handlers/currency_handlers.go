package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
)

// CurrencyHandler serves the currency switcher's option list
type CurrencyHandler struct {
	currencyService interfaces.CurrencyService
	logger          *zap.Logger
}

// NewCurrencyHandler creates a handler with interface dependencies
func NewCurrencyHandler(currencyService interfaces.CurrencyService, logger *zap.Logger) *CurrencyHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &CurrencyHandler{
		currencyService: currencyService,
		logger:          logger,
	}
}

// ListCurrencies godoc
// @Summary List supported currencies
// @Description Returns the display currencies the site switcher offers, with their minor-unit digits
// @Tags currencies
// @Produce json
// @Success 200 {object} object{object=string,data=[]responses.Currency}
// @Failure 500 {object} ErrorResponse
// @Router /currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListSupportedCurrencies(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list currencies", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   currencies,
	})
}
