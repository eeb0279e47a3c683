package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
)

// Template names accepted by SendTransactionalEmail.
const (
	TemplateBookingConfirmation = "booking_confirmation"
	TemplatePaymentReceived     = "payment_received"
	TemplatePaymentFailed       = "payment_failed"
	TemplateInvoiceNotice       = "invoice_notice"
)

// emailTemplateBodies holds the HTML body for each transactional template.
// Templates render against the notification's Data map, so key names here
// must match what the producing service puts in that map.
var emailTemplateBodies = map[string]string{
	TemplateBookingConfirmation: `
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
  <h2 style="color:#1a3c6e;">Booking received</h2>
  <p>Dear {{.guest_name}},</p>
  <p>Thank you for booking with Gaith Tours. Your request
     <strong>{{.reference}}</strong> for <strong>{{.hotel_name}}</strong>
     ({{.check_in}} to {{.check_out}}) is being reviewed by our team.</p>
  <p>Total: <strong>{{.amount}} {{.currency}}</strong></p>
  <p>We will confirm your reservation shortly. You can reply to this email
     with any questions.</p>
  <p style="color:#888;font-size:12px;">Gaith Tours &middot; {{.reference}}</p>
</div>`,
	TemplatePaymentReceived: `
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
  <h2 style="color:#1a7e4b;">Payment received</h2>
  <p>Dear {{.guest_name}},</p>
  <p>We received your payment of <strong>{{.amount}} {{.currency}}</strong>
     for booking <strong>{{.reference}}</strong>. Your reservation is
     confirmed.</p>
  <p>We look forward to welcoming you.</p>
  <p style="color:#888;font-size:12px;">Gaith Tours &middot; {{.reference}}</p>
</div>`,
	TemplatePaymentFailed: `
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
  <h2 style="color:#b33;">Payment unsuccessful</h2>
  <p>Dear {{.guest_name}},</p>
  <p>The payment for booking <strong>{{.reference}}</strong> did not go
     through. Your reservation is still held; please try again or contact
     our team for assistance.</p>
  {{if .session_url}}<p><a href="{{.session_url}}">Retry payment</a></p>{{end}}
  <p style="color:#888;font-size:12px;">Gaith Tours &middot; {{.reference}}</p>
</div>`,
	TemplateInvoiceNotice: `
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
  <h2 style="color:#1a3c6e;">Invoice {{.invoice_number}}</h2>
  <p>Dear {{.client_name}},</p>
  <p>Your invoice for <strong>{{.amount}} {{.currency}}</strong> is ready.</p>
  <p><a href="{{.session_url}}" style="background:#1a3c6e;color:#fff;padding:10px 18px;text-decoration:none;border-radius:4px;">Pay now</a></p>
  {{if .qr_code_data}}<p>Or scan to pay:<br/><img src="{{.qr_code_data}}" alt="payment QR code" width="160" height="160"/></p>{{end}}
  {{if .note}}<p>{{.note}}</p>{{end}}
  <p style="color:#888;font-size:12px;">Gaith Tours &middot; {{.invoice_number}}</p>
</div>`,
}

// EmailService sends transactional email through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
	templates map[string]*template.Template
}

// NewEmailService creates a new email service
func NewEmailService(apiKey, fromEmail, fromName string) *EmailService {
	templates := make(map[string]*template.Template, len(emailTemplateBodies))
	for name, body := range emailTemplateBodies {
		templates[name] = template.Must(template.New(name).Parse(body))
	}
	return &EmailService{
		client:    resend.NewClient(apiKey),
		logger:    logger.Log,
		fromEmail: fromEmail,
		fromName:  fromName,
		templates: templates,
	}
}

// SendTransactionalEmail renders the named template and sends it. Every send
// carries an X-Entity-Ref-ID header so provider-side retries stay idempotent.
func (s *EmailService) SendTransactionalEmail(ctx context.Context, p params.TransactionalEmailParams) error {
	tmpl, ok := s.templates[p.TemplateName]
	if !ok {
		return fmt.Errorf("unknown email template %q", p.TemplateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, p.TemplateData); err != nil {
		return fmt.Errorf("failed to render email template %q: %w", p.TemplateName, err)
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	request := &resend.SendEmailRequest{
		From:    from,
		To:      []string{p.To},
		Subject: p.Subject,
		Html:    body.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: convertToResendTags(p.Tags),
	}

	sent, err := s.client.Emails.Send(request)
	if err != nil {
		s.logger.Error("failed to send transactional email",
			zap.Error(err),
			zap.String("to", p.To),
			zap.String("template", p.TemplateName))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("transactional email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", p.To),
		zap.String("template", p.TemplateName))
	return nil
}

func convertToResendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	resendTags := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		resendTags = append(resendTags, resend.Tag{Name: name, Value: value})
	}
	return resendTags
}
