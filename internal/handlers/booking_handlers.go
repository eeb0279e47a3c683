package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/auth"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// BookingHandler handles quote previews and booking submission
type BookingHandler struct {
	bookingService interfaces.BookingService
	logger         *zap.Logger
}

// NewBookingHandler creates a handler with interface dependencies
func NewBookingHandler(bookingService interfaces.BookingService, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Quote godoc
// @Summary Quote held selections
// @Description Composes the displayed total for the held selections and applies any validated promo or loyalty discount
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body requests.QuoteRequest true "Quote request"
// @Success 200 {object} responses.QuoteResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req requests.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid quote payload", err)
		return
	}

	result := h.bookingService.QuoteSelections(req.Selections, req.Promo, req.Loyalty)
	sendSuccess(c, http.StatusOK, result)
}

// SubmitBooking godoc
// @Summary Submit a booking
// @Description Recomputes the charge server-side, takes the supplier hold and returns the payment session redirect
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body requests.SubmitBookingRequest true "Booking draft"
// @Success 201 {object} responses.BookingSubmission
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req requests.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid booking payload", err)
		return
	}

	guests := make([]business.Guest, 0, len(req.Guests))
	for _, g := range req.Guests {
		guests = append(guests, business.Guest{
			FirstName:   g.FirstName,
			LastName:    g.LastName,
			Email:       g.Email,
			Phone:       g.Phone,
			Nationality: g.Nationality,
			IsLead:      g.IsLead,
		})
	}

	draft := business.BookingDraft{
		HotelID:       req.HotelID,
		HotelName:     req.HotelName,
		Destination:   req.Destination,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Adults:        req.Adults,
		ChildrenAges:  req.ChildrenAges,
		Guests:        guests,
		Selections:    req.Selections,
		ArrivalTime:   req.ArrivalTime,
		Promo:         req.Promo,
		Loyalty:       req.Loyalty,
		SpecialNotes:  req.SpecialNotes,
		UserID:        c.GetString(auth.UserIDKey), // empty on guest checkout
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		PreferredLang: req.PreferredLang,
	}

	submission, err := h.bookingService.SubmitBooking(c.Request.Context(), params.SubmitBookingParams{
		Draft:       draft,
		ClientTotal: req.TotalPrice,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidDraft) {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to submit booking", err)
		return
	}

	h.logger.Info("Booking submitted",
		zap.String("reference", submission.Reference),
		zap.String("hotel_id", req.HotelID))
	sendSuccess(c, http.StatusCreated, submission)
}
