package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// Checkout-session event types this tier reacts to. Everything else the
// provider sends is acknowledged and ignored.
const (
	eventCheckoutCompleted     = "checkout.session.completed"
	eventCheckoutExpired       = "checkout.session.expired"
	eventCheckoutPaymentFailed = "checkout.session.async_payment_failed"
)

// PaymentWebhookService applies verified checkout-session events to the
// records they settle. A session's client reference carries the booking
// reference for customer checkouts and the invoice record ID for back-office
// payment links; settlement itself stays the gateway's business.
type PaymentWebhookService struct {
	crs         interfaces.CRSAPI
	notifier    interfaces.NotificationService
	broadcaster interfaces.EventBroadcaster
	logger      *zap.Logger
}

// NewPaymentWebhookService creates a new payment webhook service
func NewPaymentWebhookService(crsAPI interfaces.CRSAPI, notifier interfaces.NotificationService, broadcaster interfaces.EventBroadcaster) *PaymentWebhookService {
	return &PaymentWebhookService{
		crs:         crsAPI,
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      logger.Log,
	}
}

// ProcessEvent routes one verified provider event. Returning an error makes
// the provider redeliver, so only failures that a retry can fix are returned;
// sessions we cannot attribute are logged and acknowledged.
func (s *PaymentWebhookService) ProcessEvent(ctx context.Context, event stripe.Event) error {
	var paymentStatus string
	switch string(event.Type) {
	case eventCheckoutCompleted:
		paymentStatus = constants.PaymentStatusPaid
	case eventCheckoutExpired:
		paymentStatus = constants.PaymentStatusExpired
	case eventCheckoutPaymentFailed:
		paymentStatus = constants.PaymentStatusFailed
	default:
		s.logger.Debug("Ignoring payment event", zap.String("type", string(event.Type)))
		return nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("failed to decode checkout session: %w", err)
	}

	reference := session.ClientReferenceID
	if reference == "" {
		reference = session.Metadata["reference"]
	}
	if reference == "" {
		s.logger.Warn("Checkout session carries no client reference",
			zap.String("event_id", event.ID),
			zap.String("session_id", session.ID))
		return nil
	}

	s.logger.Info("Processing payment event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("reference", reference))

	if strings.HasPrefix(reference, bookingReferencePrefix) {
		return s.applyBookingPayment(ctx, reference, paymentStatus, session.ID)
	}
	return s.applyInvoicePayment(ctx, reference, paymentStatus)
}

// applyBookingPayment records the verdict on the reservation, confirms it on
// settlement, and tells both the dashboards and the customer.
func (s *PaymentWebhookService) applyBookingPayment(ctx context.Context, reference, paymentStatus, sessionID string) error {
	reservation, err := s.crs.GetReservationByReference(ctx, reference)
	if err != nil {
		return fmt.Errorf("failed to resolve reservation %s: %w", reference, err)
	}

	if err := s.crs.RecordPaymentStatus(ctx, reservation.ID, paymentStatus, sessionID); err != nil {
		return err
	}

	if paymentStatus == constants.PaymentStatusPaid {
		if _, err := s.crs.UpdateReservationStatus(ctx, reservation.ID, constants.ReservationStatusConfirmed, ""); err != nil {
			return fmt.Errorf("failed to confirm reservation %s: %w", reference, err)
		}
	}

	s.broadcaster.Broadcast(business.InboxEvent{
		Type:      constants.EventPaymentUpdate,
		Reference: reference,
		Status:    paymentStatus,
	})

	s.notifyBookingPayment(ctx, reservation, paymentStatus)
	return nil
}

// applyInvoicePayment settles a back-office invoice paid through its link.
// Failed and expired link sessions change nothing on the invoice; the admin
// can always send a fresh link.
func (s *PaymentWebhookService) applyInvoicePayment(ctx context.Context, invoiceID, paymentStatus string) error {
	if paymentStatus != constants.PaymentStatusPaid {
		s.logger.Info("Invoice payment attempt did not settle",
			zap.String("invoice_id", invoiceID),
			zap.String("payment_status", paymentStatus))
		return nil
	}

	invoice, err := s.crs.UpdateInvoiceStatus(ctx, invoiceID, constants.InvoiceStatusPaid)
	if err != nil {
		return fmt.Errorf("failed to mark invoice %s paid: %w", invoiceID, err)
	}

	s.broadcaster.Broadcast(business.InboxEvent{
		Type:      constants.EventPaymentUpdate,
		Reference: invoice.Number,
		Status:    paymentStatus,
	})

	if invoice.ClientEmail != "" {
		notification := params.NotificationParams{
			Channel:   constants.EmailChannel,
			Recipient: invoice.ClientEmail,
			Subject:   fmt.Sprintf("Payment received for invoice %s", invoice.Number),
			Template:  TemplatePaymentReceived,
			Reference: invoice.Number,
			Data: map[string]interface{}{
				"guest_name": invoice.ClientName,
				"reference":  invoice.Number,
				"amount":     invoice.Amount,
				"currency":   invoice.Currency,
			},
		}
		if err := s.notifier.Notify(ctx, notification); err != nil {
			s.logger.Error("Failed to send invoice payment receipt",
				zap.String("invoice_id", invoiceID),
				zap.Error(err))
		}
	}

	s.logger.Info("Invoice settled",
		zap.String("invoice_id", invoiceID),
		zap.String("number", invoice.Number))
	return nil
}

// notifyBookingPayment tells the customer how their payment went. Delivery
// problems are logged, not returned; the provider event is already applied.
func (s *PaymentWebhookService) notifyBookingPayment(ctx context.Context, reservation *business.Reservation, paymentStatus string) {
	template := TemplatePaymentReceived
	subject := fmt.Sprintf("Payment received for booking %s", reservation.Reference)
	if paymentStatus != constants.PaymentStatusPaid {
		template = TemplatePaymentFailed
		subject = fmt.Sprintf("Payment issue with booking %s", reservation.Reference)
	}

	data := map[string]interface{}{
		"guest_name": reservation.ClientName,
		"reference":  reservation.Reference,
		"hotel_name": reservation.HotelName,
		"amount":     reservation.TotalPrice,
		"currency":   reservation.Currency,
	}

	if reservation.ClientEmail != "" {
		err := s.notifier.Notify(ctx, params.NotificationParams{
			Channel:   constants.EmailChannel,
			Recipient: reservation.ClientEmail,
			Subject:   subject,
			Template:  template,
			Reference: reservation.Reference,
			Data:      data,
		})
		if err != nil {
			s.logger.Error("Failed to send payment email",
				zap.String("reference", reservation.Reference),
				zap.Error(err))
		}
	}

	if reservation.ClientPhone != "" {
		err := s.notifier.Notify(ctx, params.NotificationParams{
			Channel:   constants.WhatsAppChannel,
			Recipient: reservation.ClientPhone,
			Template:  template,
			Reference: reservation.Reference,
			Data:      data,
		})
		if err != nil {
			s.logger.Error("Failed to send payment WhatsApp message",
				zap.String("reference", reservation.Reference),
				zap.Error(err))
		}
	}
}
