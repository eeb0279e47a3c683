package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
)

// NotificationService routes notification jobs to their delivery channel.
// In deployed stages jobs are published to SQS and drained by the notifier
// worker; locally, and whenever no queue is configured, delivery is inline.
type NotificationService struct {
	email    interfaces.EmailService
	whatsapp interfaces.WhatsAppAPI
	queue    interfaces.NotificationQueue
	logger   *zap.Logger
}

// NewNotificationService creates a new notification service. A nil queue
// makes Notify deliver inline.
func NewNotificationService(email interfaces.EmailService, whatsappAPI interfaces.WhatsAppAPI, queue interfaces.NotificationQueue) *NotificationService {
	return &NotificationService{
		email:    email,
		whatsapp: whatsappAPI,
		queue:    queue,
		logger:   logger.Log,
	}
}

// Notify enqueues the notification when a queue is configured and delivers
// inline otherwise. An enqueue failure falls back to inline delivery so a
// queue outage degrades latency, not the notification itself.
func (s *NotificationService) Notify(ctx context.Context, notification params.NotificationParams) error {
	if s.queue == nil {
		return s.Deliver(ctx, notification)
	}

	if err := s.queue.PublishNotification(ctx, notification); err != nil {
		s.logger.Error("failed to enqueue notification, delivering inline",
			zap.Error(err),
			zap.String("channel", notification.Channel),
			zap.String("reference", notification.Reference))
		return s.Deliver(ctx, notification)
	}

	s.logger.Debug("notification enqueued",
		zap.String("channel", notification.Channel),
		zap.String("reference", notification.Reference))
	return nil
}

// Deliver sends the notification immediately on its channel. The notifier
// worker calls this for each dequeued job.
func (s *NotificationService) Deliver(ctx context.Context, notification params.NotificationParams) error {
	switch notification.Channel {
	case constants.EmailChannel:
		err := s.email.SendTransactionalEmail(ctx, params.TransactionalEmailParams{
			To:           notification.Recipient,
			Subject:      notification.Subject,
			TemplateName: notification.Template,
			TemplateData: notification.Data,
			Tags:         notificationTags(notification),
		})
		if err != nil {
			return fmt.Errorf("failed to deliver email notification: %w", err)
		}
	case constants.WhatsAppChannel:
		if _, err := s.whatsapp.SendMessage(ctx, notification.Recipient, whatsAppText(notification)); err != nil {
			return fmt.Errorf("failed to deliver WhatsApp notification: %w", err)
		}
	default:
		return fmt.Errorf("unknown notification channel %q", notification.Channel)
	}

	s.logger.Info("notification delivered",
		zap.String("channel", notification.Channel),
		zap.String("template", notification.Template),
		zap.String("reference", notification.Reference))
	return nil
}

func notificationTags(notification params.NotificationParams) map[string]string {
	tags := map[string]string{"category": notification.Template}
	if notification.Reference != "" {
		tags["reference"] = notification.Reference
	}
	return tags
}

// whatsAppText renders the plain-text WhatsApp counterpart of each template.
// An explicit Body always wins over the template rendering.
func whatsAppText(notification params.NotificationParams) string {
	if notification.Body != "" {
		return notification.Body
	}

	get := func(key string) string {
		if notification.Data == nil {
			return ""
		}
		value, ok := notification.Data[key]
		if !ok || value == nil {
			return ""
		}
		return fmt.Sprintf("%v", value)
	}

	switch notification.Template {
	case TemplateBookingConfirmation:
		return fmt.Sprintf("Gaith Tours: we received your booking %s for %s (%s to %s), total %s %s. We will confirm shortly.",
			notification.Reference, get("hotel_name"), get("check_in"), get("check_out"), get("amount"), get("currency"))
	case TemplatePaymentReceived:
		return fmt.Sprintf("Gaith Tours: payment of %s %s received for booking %s. Your reservation is confirmed.",
			get("amount"), get("currency"), notification.Reference)
	case TemplatePaymentFailed:
		return fmt.Sprintf("Gaith Tours: the payment for booking %s did not go through. Please try again or contact our team.",
			notification.Reference)
	case TemplateInvoiceNotice:
		text := fmt.Sprintf("Gaith Tours: invoice %s for %s %s is ready. Pay here: %s",
			get("invoice_number"), get("amount"), get("currency"), get("session_url"))
		if note := get("note"); note != "" {
			text += "\n" + note
		}
		return text
	default:
		return notification.Subject
	}
}
