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

// ReservationHandler is the back-office surface over CRS reservations
type ReservationHandler struct {
	reservationService interfaces.ReservationService
	logger             *zap.Logger
}

// NewReservationHandler creates a handler with interface dependencies
func NewReservationHandler(reservationService interfaces.ReservationService, logger *zap.Logger) *ReservationHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &ReservationHandler{
		reservationService: reservationService,
		logger:             logger,
	}
}

// ListReservations godoc
// @Summary List reservations
// @Description Returns a page of reservations, optionally filtered by status and free-text query
// @Tags reservations
// @Produce json
// @Param status query string false "Reservation status filter"
// @Param q query string false "Free-text search over guest and hotel names"
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.reservationService.ListReservations(c.Request.Context(), params.ListReservationsParams{
		Status: c.Query("status"),
		Query:  c.Query("q"),
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list reservations", err)
		return
	}

	response := paginatedResponse(list.Reservations, int(pagination.Page), int(pagination.Limit), int(list.TotalItems))
	sendSuccess(c, http.StatusOK, response)
}

// GetReservation godoc
// @Summary Get reservation by ID
// @Description Returns one reservation with its full guest and payment detail
// @Tags reservations
// @Produce json
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} business.Reservation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/reservations/{reservation_id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	if reservationID == "" {
		sendError(c, http.StatusBadRequest, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.reservationService.GetReservation(c.Request.Context(), reservationID)
	if err != nil {
		handleUpstreamError(c, err, "Reservation not found")
		return
	}

	sendSuccess(c, http.StatusOK, reservation)
}

// ApproveReservation godoc
// @Summary Approve a reservation
// @Description Moves a pending reservation to approved so payment can be collected
// @Tags reservations
// @Produce json
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} business.Reservation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/reservations/{reservation_id}/approve [post]
func (h *ReservationHandler) ApproveReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	if reservationID == "" {
		sendError(c, http.StatusBadRequest, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.reservationService.ApproveReservation(c.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatusTransition) {
			sendError(c, http.StatusConflict, err.Error(), err)
			return
		}
		handleUpstreamError(c, err, "Reservation not found")
		return
	}

	h.logger.Info("Reservation approved",
		zap.String("reservation_id", reservationID),
		zap.String("reference", reservation.Reference))
	sendSuccess(c, http.StatusOK, reservation)
}

// CancelReservation godoc
// @Summary Cancel a reservation
// @Description Cancels a reservation, optionally recording the reason
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation_id path string true "Reservation ID"
// @Param request body requests.CancelReservationRequest false "Cancellation detail"
// @Success 200 {object} business.Reservation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/reservations/{reservation_id}/cancel [post]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	if reservationID == "" {
		sendError(c, http.StatusBadRequest, "Reservation ID is required", nil)
		return
	}

	// The body is optional; cancelling without a reason is fine.
	var req requests.CancelReservationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid cancellation payload", err)
			return
		}
	}

	reservation, err := h.reservationService.CancelReservation(c.Request.Context(), reservationID, req.Reason)
	if err != nil {
		handleUpstreamError(c, err, "Reservation not found")
		return
	}

	h.logger.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("reference", reservation.Reference))
	sendSuccess(c, http.StatusOK, reservation)
}

// AmendReservation godoc
// @Summary Amend a reservation
// @Description Updates a reservation's stay window, occupancy, price or notes
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation_id path string true "Reservation ID"
// @Param request body requests.UpdateReservationRequest true "Amendment"
// @Success 200 {object} business.Reservation
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/reservations/{reservation_id} [patch]
func (h *ReservationHandler) AmendReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")
	if reservationID == "" {
		sendError(c, http.StatusBadRequest, "Reservation ID is required", nil)
		return
	}

	var req requests.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid amendment payload", err)
		return
	}

	reservation, err := h.reservationService.AmendReservation(c.Request.Context(), reservationID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatusTransition) {
			sendError(c, http.StatusConflict, err.Error(), err)
			return
		}
		handleUpstreamError(c, err, "Reservation not found")
		return
	}

	sendSuccess(c, http.StatusOK, reservation)
}
