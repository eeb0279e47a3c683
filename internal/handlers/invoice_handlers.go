package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
)

// InvoiceHandler is the back-office surface over CRS invoices and their
// payment links
type InvoiceHandler struct {
	invoiceService interfaces.InvoiceService
	logger         *zap.Logger
}

// NewInvoiceHandler creates a handler with interface dependencies
func NewInvoiceHandler(invoiceService interfaces.InvoiceService, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &InvoiceHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// ListInvoices godoc
// @Summary List invoices
// @Description Returns a page of invoices, optionally filtered by status
// @Tags invoices
// @Produce json
// @Param status query string false "Invoice status filter" Enums(unpaid, paid, void)
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.invoiceService.ListInvoices(c.Request.Context(), params.ListInvoicesParams{
		Status: c.Query("status"),
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list invoices", err)
		return
	}

	response := paginatedResponse(list.Invoices, int(pagination.Page), int(pagination.Limit), int(list.TotalItems))
	sendSuccess(c, http.StatusOK, response)
}

// GetInvoice godoc
// @Summary Get invoice by ID
// @Description Returns one invoice with its payment state
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} business.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	if invoiceID == "" {
		sendError(c, http.StatusBadRequest, "Invoice ID is required", nil)
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		handleUpstreamError(c, err, "Invoice not found")
		return
	}

	sendSuccess(c, http.StatusOK, invoice)
}

// CreatePaymentLink godoc
// @Summary Create a payment link
// @Description Opens a hosted payment page for an unpaid invoice and returns the link with its QR code
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 201 {object} business.PaymentLink
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/invoices/{invoice_id}/payment-link [post]
func (h *InvoiceHandler) CreatePaymentLink(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	if invoiceID == "" {
		sendError(c, http.StatusBadRequest, "Invoice ID is required", nil)
		return
	}

	link, err := h.invoiceService.CreatePaymentLink(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatusTransition) {
			sendError(c, http.StatusConflict, err.Error(), err)
			return
		}
		handleUpstreamError(c, err, "Invoice not found")
		return
	}

	h.logger.Info("Payment link issued", zap.String("invoice_id", invoiceID))
	sendSuccess(c, http.StatusCreated, link)
}

// SendInvoice godoc
// @Summary Send an invoice
// @Description Creates a payment link and delivers the invoice notice to the client over the selected channels
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Param request body requests.SendInvoiceRequest true "Delivery channels"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/invoices/{invoice_id}/send [post]
func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	if invoiceID == "" {
		sendError(c, http.StatusBadRequest, "Invoice ID is required", nil)
		return
	}

	var req requests.SendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid send payload", err)
		return
	}

	err := h.invoiceService.SendInvoice(c.Request.Context(), params.SendInvoiceParams{
		InvoiceID: invoiceID,
		Channels:  req.Channels,
		Note:      req.Note,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatusTransition) {
			sendError(c, http.StatusConflict, err.Error(), err)
			return
		}
		handleUpstreamError(c, err, "Invoice not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Invoice sent")
}

// MarkInvoicePaid godoc
// @Summary Mark an invoice paid
// @Description Applies a manual payment to an invoice, for settlements taken outside the payment provider
// @Tags invoices
// @Produce json
// @Param invoice_id path string true "Invoice ID"
// @Success 200 {object} business.Invoice
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/invoices/{invoice_id}/mark-paid [post]
func (h *InvoiceHandler) MarkInvoicePaid(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	if invoiceID == "" {
		sendError(c, http.StatusBadRequest, "Invoice ID is required", nil)
		return
	}

	invoice, err := h.invoiceService.MarkInvoicePaid(c.Request.Context(), invoiceID)
	if err != nil {
		handleUpstreamError(c, err, "Invoice not found")
		return
	}

	h.logger.Info("Invoice manually settled",
		zap.String("invoice_id", invoiceID),
		zap.String("number", invoice.Number))
	sendSuccess(c, http.StatusOK, invoice)
}
