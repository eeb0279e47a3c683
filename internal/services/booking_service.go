package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/payments"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidDraft marks submissions rejected before any remote call is made;
// handlers map it to a client error rather than a gateway error.
var ErrInvalidDraft = errors.New("invalid booking draft")

const stayDateLayout = "2006-01-02"

// bookingReferencePrefix starts every customer-facing reservation reference.
// The payment webhook relies on it to tell booking checkouts apart from
// invoice payment links.
const bookingReferencePrefix = "GT-"

// clientTotalTolerance is the largest gap between the client's displayed
// total and the composed charge that is not worth a log line.
const clientTotalTolerance = 0.01

// BookingConfig carries the redirect URLs handed to the payment provider.
type BookingConfig struct {
	SuccessURL string
	CancelURL  string
}

// BookingService runs the submission pipeline: it re-prices the draft,
// re-validates its discounts, places the supplier hold and opens the hosted
// payment session. Nothing is persisted on this side; the CRS owns the
// reservation record and the provider owns the payment.
type BookingService struct {
	pricing  interfaces.PricingService
	promo    interfaces.PromoAPI
	loyalty  interfaces.LoyaltyAPI
	supplier interfaces.SupplierAPI
	payments interfaces.PaymentsAPI
	crs      interfaces.CRSAPI
	notifier interfaces.NotificationService
	config   BookingConfig
	logger   *zap.Logger
}

// NewBookingService creates a new booking service. A nil notifier skips the
// booking-received notice.
func NewBookingService(
	pricing interfaces.PricingService,
	promo interfaces.PromoAPI,
	loyalty interfaces.LoyaltyAPI,
	supplier interfaces.SupplierAPI,
	paymentsAPI interfaces.PaymentsAPI,
	crsAPI interfaces.CRSAPI,
	notifier interfaces.NotificationService,
	config BookingConfig,
) *BookingService {
	return &BookingService{
		pricing:  pricing,
		promo:    promo,
		loyalty:  loyalty,
		supplier: supplier,
		payments: paymentsAPI,
		crs:      crsAPI,
		notifier: notifier,
		config:   config,
		logger:   logger.Log,
	}
}

// QuoteSelections composes the price preview for the current selections and
// discounts. It never calls out; the promo figures are whatever the caller
// last validated.
func (s *BookingService) QuoteSelections(selections []business.RoomSelection, promo *business.PromoDiscount, loyalty *business.LoyaltyDiscount) *responses.QuoteResult {
	quote, charge := s.pricing.ComputeChargeAmount(selections, promo, loyalty, constants.SARCurrency)

	result := &responses.QuoteResult{
		Quote:       quote,
		FinalAmount: charge,
	}
	if promo != nil && promo.Valid {
		result.PromoCode = promo.Code
		result.PromoValue = promo.FinalValue
	}
	if loyalty != nil {
		result.Loyalty = loyalty.Amount
	}
	return result
}

// SubmitBooking runs a draft through the submission pipeline. The amount the
// provider is asked to charge is composed here from the draft's selections;
// the client's displayed total is cross-checked and logged, never trusted.
//
// Remote failures abort the submission and release any loyalty points that
// were already reserved. The caller may resubmit the same draft.
func (s *BookingService) SubmitBooking(ctx context.Context, p params.SubmitBookingParams) (*responses.BookingSubmission, error) {
	draft := p.Draft
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	reference := newBookingReference()
	displayed := s.pricing.ComputeDisplayedTotal(draft.Selections)

	promoDiscount := s.revalidatePromo(ctx, draft, displayed.Total)
	loyaltyDiscount := draft.Loyalty
	if loyaltyDiscount != nil && loyaltyDiscount.Points > 0 && draft.UserID == "" {
		s.logger.Warn("Dropping loyalty redemption on a draft without a user",
			zap.String("reference", reference))
		loyaltyDiscount = nil
	}

	// The recorded draft carries the discounts as they were actually applied.
	draft.Promo = promoDiscount
	draft.Loyalty = loyaltyDiscount

	quote, charge := s.pricing.ComputeChargeAmount(draft.Selections, promoDiscount, loyaltyDiscount, constants.SARCurrency)
	if math.Abs(charge-p.ClientTotal) > clientTotalTolerance {
		s.logger.Warn("Client displayed total differs from composed charge",
			zap.String("reference", reference),
			zap.Float64("client_total", p.ClientTotal),
			zap.Float64("charge", charge))
	}

	s.logger.Info("Submitting booking",
		zap.String("reference", reference),
		zap.String("hotel_id", draft.HotelID),
		zap.Int("selections", len(draft.Selections)),
		zap.Float64("charge", charge),
		zap.String("currency", quote.Currency))

	if loyaltyDiscount != nil && loyaltyDiscount.Points > 0 {
		if err := s.loyalty.Redeem(ctx, draft.UserID, loyaltyDiscount.Points, reference); err != nil {
			return nil, fmt.Errorf("failed to reserve loyalty points: %w", err)
		}
	}

	hold, err := s.supplier.Prebook(ctx, draft.Selections[0].Rate.MatchHash, draft.HotelID, draft.CheckIn, draft.CheckOut)
	if err != nil {
		s.releaseLoyalty(ctx, draft.UserID, loyaltyDiscount, reference)
		return nil, fmt.Errorf("failed to place supplier hold: %w", err)
	}
	if hold.Payment.Amount > 0 && math.Abs(hold.Payment.Amount-charge) > clientTotalTolerance {
		s.logger.Warn("Supplier hold amount differs from composed charge",
			zap.String("reference", reference),
			zap.Float64("hold_amount", hold.Payment.Amount),
			zap.Float64("charge", charge))
	}

	session, err := s.payments.CreateSession(ctx, payments.SessionRequest{
		Reference:  reference,
		TotalPrice: charge,
		Currency:   quote.Currency,
		Draft:      draft,
		BookHash:   hold.BookHash,
		CustomerInfo: map[string]interface{}{
			"name":  leadGuestName(draft.Guests),
			"email": draft.ContactEmail,
			"phone": draft.ContactPhone,
		},
		SuccessURL: s.config.SuccessURL,
		CancelURL:  s.config.CancelURL,
	})
	if err != nil {
		s.releaseLoyalty(ctx, draft.UserID, loyaltyDiscount, reference)
		return nil, fmt.Errorf("failed to open payment session: %w", err)
	}

	record := crs.CreateReservationRequest{
		Reference:   reference,
		Draft:       draft,
		Quote:       quote,
		FinalAmount: charge,
		BookHash:    hold.BookHash,
		PrebookData: hold.PrebookData,
		Status:      constants.ReservationStatusAwaitingPayment,
	}
	if promoDiscount != nil {
		record.PromoCode = promoDiscount.Code
	}
	if loyaltyDiscount != nil {
		record.LoyaltyValue = loyaltyDiscount.Amount
	}
	if _, err := s.crs.CreateReservation(ctx, record); err != nil {
		s.releaseLoyalty(ctx, draft.UserID, loyaltyDiscount, reference)
		return nil, fmt.Errorf("failed to record reservation: %w", err)
	}

	s.logger.Info("Booking submitted",
		zap.String("reference", reference),
		zap.String("book_hash", hold.BookHash),
		zap.Float64("charge", charge))

	s.sendBookingReceived(ctx, draft, reference, charge, quote.Currency)

	return &responses.BookingSubmission{
		SessionURL:  session.SessionURL,
		BookHash:    hold.BookHash,
		Reference:   reference,
		Quote:       quote,
		FinalAmount: charge,
		Currency:    quote.Currency,
	}, nil
}

// revalidatePromo re-checks the draft's promo against the promo engine at
// submission time. A code that no longer validates is dropped so the charge
// falls back to the undiscounted figures; the submission itself proceeds.
func (s *BookingService) revalidatePromo(ctx context.Context, draft business.BookingDraft, bookingValue float64) *business.PromoDiscount {
	if draft.Promo == nil || draft.Promo.Code == "" {
		return nil
	}

	verdict, err := s.promo.Validate(ctx, params.PromoValidationParams{
		Code:         draft.Promo.Code,
		BookingValue: bookingValue,
		HotelID:      draft.HotelID,
		Destination:  draft.Destination,
		UserID:       draft.UserID,
	})
	if err != nil {
		s.logger.Warn("Promo engine unreachable, dropping code from submission",
			zap.String("code", draft.Promo.Code),
			zap.Error(err))
		return nil
	}
	if !verdict.Success || verdict.Data == nil {
		s.logger.Warn("Promo code failed re-validation and was dropped",
			zap.String("code", draft.Promo.Code),
			zap.String("message", verdict.Message))
		return nil
	}

	return &business.PromoDiscount{
		Code:          verdict.Data.Code,
		Discount:      verdict.Data.Discount,
		FinalValue:    verdict.Data.FinalValue,
		OriginalValue: verdict.Data.OriginalValue,
		Valid:         true,
	}
}

// releaseLoyalty hands reserved points back after an aborted submission.
// Release failures are logged, not returned; the submission error that led
// here is the one the caller needs.
func (s *BookingService) releaseLoyalty(ctx context.Context, userID string, loyalty *business.LoyaltyDiscount, reference string) {
	if loyalty == nil || loyalty.Points <= 0 || userID == "" {
		return
	}
	if err := s.loyalty.Release(ctx, userID, loyalty.Points, reference); err != nil {
		s.logger.Error("Failed to release loyalty points after aborted submission",
			zap.String("reference", reference),
			zap.Int("points", loyalty.Points),
			zap.Error(err))
	}
}

// validateDraft applies the structural checks a submission must pass before
// any remote call is made.
func validateDraft(draft business.BookingDraft) error {
	if draft.HotelID == "" {
		return fmt.Errorf("%w: hotel id is required", ErrInvalidDraft)
	}
	checkIn, err := time.Parse(stayDateLayout, draft.CheckIn)
	if err != nil {
		return fmt.Errorf("%w: check-in %q is not a valid date", ErrInvalidDraft, draft.CheckIn)
	}
	checkOut, err := time.Parse(stayDateLayout, draft.CheckOut)
	if err != nil {
		return fmt.Errorf("%w: check-out %q is not a valid date", ErrInvalidDraft, draft.CheckOut)
	}
	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: check-out must fall after check-in", ErrInvalidDraft)
	}
	if draft.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidDraft)
	}
	if len(draft.Guests) == 0 {
		return fmt.Errorf("%w: at least one guest is required", ErrInvalidDraft)
	}
	for i, guest := range draft.Guests {
		if strings.TrimSpace(guest.FirstName) == "" {
			return fmt.Errorf("%w: guest %d is missing a first name", ErrInvalidDraft, i+1)
		}
	}
	if len(draft.Selections) == 0 {
		return fmt.Errorf("%w: at least one room selection is required", ErrInvalidDraft)
	}
	for _, sel := range draft.Selections {
		if sel.Count < 1 {
			return fmt.Errorf("%w: room counts must be positive", ErrInvalidDraft)
		}
	}
	if draft.Selections[0].Rate.MatchHash == "" {
		return fmt.Errorf("%w: the lead selection is missing its match hash", ErrInvalidDraft)
	}
	if draft.ContactEmail == "" || draft.ContactPhone == "" {
		return fmt.Errorf("%w: contact email and phone are required", ErrInvalidDraft)
	}
	return nil
}

// leadGuestName picks the lead guest's display name, falling back to the
// first guest when none is flagged.
func leadGuestName(guests []business.Guest) string {
	if len(guests) == 0 {
		return ""
	}
	lead := guests[0]
	for _, guest := range guests {
		if guest.IsLead {
			lead = guest
			break
		}
	}
	return strings.TrimSpace(lead.FirstName + " " + lead.LastName)
}

// sendBookingReceived tells the customer their request is in review. The
// booking is already recorded, so delivery problems are logged, not returned.
func (s *BookingService) sendBookingReceived(ctx context.Context, draft business.BookingDraft, reference string, charge float64, currency string) {
	if s.notifier == nil {
		return
	}

	data := map[string]interface{}{
		"guest_name": leadGuestName(draft.Guests),
		"reference":  reference,
		"hotel_name": draft.HotelName,
		"check_in":   draft.CheckIn,
		"check_out":  draft.CheckOut,
		"amount":     charge,
		"currency":   currency,
	}

	err := s.notifier.Notify(ctx, params.NotificationParams{
		Channel:   constants.EmailChannel,
		Recipient: draft.ContactEmail,
		Subject:   fmt.Sprintf("We received your booking %s", reference),
		Template:  TemplateBookingConfirmation,
		Reference: reference,
		Data:      data,
	})
	if err != nil {
		s.logger.Error("Failed to send booking-received email",
			zap.String("reference", reference),
			zap.Error(err))
	}

	err = s.notifier.Notify(ctx, params.NotificationParams{
		Channel:   constants.WhatsAppChannel,
		Recipient: draft.ContactPhone,
		Template:  TemplateBookingConfirmation,
		Reference: reference,
		Data:      data,
	})
	if err != nil {
		s.logger.Error("Failed to send booking-received WhatsApp message",
			zap.String("reference", reference),
			zap.Error(err))
	}
}

// newBookingReference mints the customer-facing reservation reference.
func newBookingReference() string {
	return bookingReferencePrefix + strings.ToUpper(uuid.NewString()[:8])
}
