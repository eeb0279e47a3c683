package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/payments"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// qrCodeSize is the pixel edge of the generated payment QR. 256 scans
// reliably from a phone screen inside a WhatsApp message.
const qrCodeSize = 256

// InvoiceService manages invoices and their payment links. Invoices live in
// the CRS; payment pages live with the provider. This tier ties the two
// together and handles delivery.
type InvoiceService struct {
	crs      interfaces.CRSAPI
	payments interfaces.PaymentsAPI
	notifier interfaces.NotificationService
	logger   *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(crsAPI interfaces.CRSAPI, paymentsAPI interfaces.PaymentsAPI, notifier interfaces.NotificationService) *InvoiceService {
	return &InvoiceService{
		crs:      crsAPI,
		payments: paymentsAPI,
		notifier: notifier,
		logger:   logger.Log,
	}
}

// ListInvoices pages through invoices, optionally filtered by status.
func (s *InvoiceService) ListInvoices(ctx context.Context, p params.ListInvoicesParams) (*responses.InvoiceList, error) {
	page, err := s.crs.ListInvoices(ctx, p.Status, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return &responses.InvoiceList{
		Invoices:   page.Invoices,
		TotalItems: page.TotalItems,
	}, nil
}

// GetInvoice fetches one invoice.
func (s *InvoiceService) GetInvoice(ctx context.Context, invoiceID string) (*business.Invoice, error) {
	invoice, err := s.crs.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	return invoice, nil
}

// CreatePaymentLink opens a hosted payment page for an unpaid invoice and
// renders its QR code. Paid and void invoices cannot be linked.
func (s *InvoiceService) CreatePaymentLink(ctx context.Context, invoiceID string) (*business.PaymentLink, error) {
	invoice, err := s.crs.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	if invoice.Status != constants.InvoiceStatusUnpaid {
		return nil, fmt.Errorf("%w: cannot link a %s invoice", ErrInvalidStatusTransition, invoice.Status)
	}

	link, err := s.payments.CreatePaymentLink(ctx, payments.PaymentLinkRequest{
		InvoiceID: invoice.ID,
		Amount:    invoice.Amount,
		Currency:  invoice.Currency,
		ClientRef: invoice.Number,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	s.logger.Info("Payment link created",
		zap.String("invoice_id", invoice.ID),
		zap.String("number", invoice.Number),
		zap.Float64("amount", invoice.Amount))

	return &business.PaymentLink{
		InvoiceID:  invoice.ID,
		SessionURL: link.SessionURL,
		QRCodeData: s.renderQRCode(link.SessionURL, invoice.ID),
		Amount:     invoice.Amount,
		Currency:   invoice.Currency,
		CreatedAt:  time.Now(),
	}, nil
}

// SendInvoice creates a payment link and delivers the invoice notice over
// each requested channel. Channels without a usable recipient on the invoice
// fail the send.
func (s *InvoiceService) SendInvoice(ctx context.Context, p params.SendInvoiceParams) error {
	invoice, err := s.crs.GetInvoice(ctx, p.InvoiceID)
	if err != nil {
		return fmt.Errorf("failed to fetch invoice: %w", err)
	}

	link, err := s.CreatePaymentLink(ctx, p.InvoiceID)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"invoice_number": invoice.Number,
		"client_name":    invoice.ClientName,
		"amount":         invoice.Amount,
		"currency":       invoice.Currency,
		"session_url":    link.SessionURL,
		"qr_code_data":   link.QRCodeData,
	}
	if p.Note != "" {
		data["note"] = p.Note
	}

	for _, channel := range p.Channels {
		notification := params.NotificationParams{
			Channel:   channel,
			Subject:   fmt.Sprintf("Invoice %s from Gaith Tours", invoice.Number),
			Template:  TemplateInvoiceNotice,
			Reference: invoice.Number,
			Data:      data,
		}
		switch channel {
		case constants.EmailChannel:
			if invoice.ClientEmail == "" {
				return fmt.Errorf("invoice %s has no client email on file", invoice.Number)
			}
			notification.Recipient = invoice.ClientEmail
		case constants.WhatsAppChannel:
			if invoice.ClientPhone == "" {
				return fmt.Errorf("invoice %s has no client phone on file", invoice.Number)
			}
			notification.Recipient = invoice.ClientPhone
		default:
			return fmt.Errorf("unknown delivery channel %q", channel)
		}

		if err := s.notifier.Notify(ctx, notification); err != nil {
			return fmt.Errorf("failed to send invoice over %s: %w", channel, err)
		}
	}

	s.logger.Info("Invoice sent",
		zap.String("invoice_id", invoice.ID),
		zap.String("number", invoice.Number),
		zap.Strings("channels", p.Channels))
	return nil
}

// MarkInvoicePaid transitions an invoice to paid. The payment webhook calls
// this when the provider settles; admins can also apply it manually for
// offline payments.
func (s *InvoiceService) MarkInvoicePaid(ctx context.Context, invoiceID string) (*business.Invoice, error) {
	invoice, err := s.crs.UpdateInvoiceStatus(ctx, invoiceID, constants.InvoiceStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	s.logger.Info("Invoice marked paid",
		zap.String("invoice_id", invoiceID),
		zap.String("number", invoice.Number))
	return invoice, nil
}

// renderQRCode renders the payment URL as a base64 PNG data URL. A render
// failure degrades to an empty QR rather than blocking the link.
func (s *InvoiceService) renderQRCode(url, invoiceID string) string {
	png, err := qrcode.Encode(url, qrcode.Medium, qrCodeSize)
	if err != nil {
		s.logger.Warn("Failed to render payment QR code",
			zap.String("invoice_id", invoiceID),
			zap.Error(err))
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
