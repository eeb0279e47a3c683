package interfaces

import (
	"context"

	"github.com/stripe/stripe-go/v82"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// PricingService computes booking totals. All methods are pure and never
// return an error; malformed inputs clamp to zero contributions.
type PricingService interface {
	ComputeBookingTaxes(rate business.Rate, roomCount int) float64
	ComputeDisplayedTotal(selections []business.RoomSelection) business.Quote
	ApplyDiscounts(total float64, promo *business.PromoDiscount, loyalty *business.LoyaltyDiscount) float64
	ComputeChargeAmount(selections []business.RoomSelection, promo *business.PromoDiscount, loyalty *business.LoyaltyDiscount, currency string) (business.Quote, float64)
}

// RateService searches supplier rates and re-matches selections when the
// display currency changes.
type RateService interface {
	SearchRates(ctx context.Context, search params.RateSearchParams) (*responses.RateSearchResult, error)
	RefreshSelections(ctx context.Context, p params.RefreshSelectionsParams) (*responses.RefreshOutcome, error)
}

// BookingService quotes and submits customer bookings.
type BookingService interface {
	QuoteSelections(selections []business.RoomSelection, promo *business.PromoDiscount, loyalty *business.LoyaltyDiscount) *responses.QuoteResult
	SubmitBooking(ctx context.Context, p params.SubmitBookingParams) (*responses.BookingSubmission, error)
}

// PromoService validates codes for customers and manages definitions for the
// back office.
type PromoService interface {
	ValidatePromo(ctx context.Context, p params.PromoValidationParams) (*responses.PromoValidation, error)
	ListPromos(ctx context.Context, limit, offset int32) (*responses.PromoList, error)
	CreatePromo(ctx context.Context, req requests.CreatePromoRequest) (*responses.Promo, error)
	UpdatePromo(ctx context.Context, promoID string, req requests.UpdatePromoRequest) (*responses.Promo, error)
	DeletePromo(ctx context.Context, promoID string) error
}

// LoyaltyService exposes point balances and redemption previews.
type LoyaltyService interface {
	GetBalance(ctx context.Context, userID string) (*responses.LoyaltyBalance, error)
	PreviewRedemption(ctx context.Context, p params.LoyaltyPreviewParams) (*responses.LoyaltyPreview, error)
}

// ReservationService is the back-office view over CRS reservations.
type ReservationService interface {
	ListReservations(ctx context.Context, p params.ListReservationsParams) (*responses.ReservationList, error)
	GetReservation(ctx context.Context, reservationID string) (*business.Reservation, error)
	ApproveReservation(ctx context.Context, reservationID string) (*business.Reservation, error)
	CancelReservation(ctx context.Context, reservationID, reason string) (*business.Reservation, error)
	AmendReservation(ctx context.Context, reservationID string, req requests.UpdateReservationRequest) (*business.Reservation, error)
}

// ClientService is the back-office view over CRS client profiles.
type ClientService interface {
	ListClients(ctx context.Context, p params.ListClientsParams) (*responses.ClientList, error)
	GetClient(ctx context.Context, clientID string) (*business.Client, error)
	UpdateClient(ctx context.Context, clientID string, req requests.UpdateClientRequest) (*business.Client, error)
}

// InvoiceService manages invoices and their payment links.
type InvoiceService interface {
	ListInvoices(ctx context.Context, p params.ListInvoicesParams) (*responses.InvoiceList, error)
	GetInvoice(ctx context.Context, invoiceID string) (*business.Invoice, error)
	CreatePaymentLink(ctx context.Context, invoiceID string) (*business.PaymentLink, error)
	SendInvoice(ctx context.Context, p params.SendInvoiceParams) error
	MarkInvoicePaid(ctx context.Context, invoiceID string) (*business.Invoice, error)
}

// AnalyticsService aggregates booking KPIs for the back-office dashboard.
type AnalyticsService interface {
	GetDashboardMetrics(ctx context.Context, p params.AnalyticsParams) (*business.DashboardMetrics, error)
}

// InboxService is the back-office WhatsApp inbox.
type InboxService interface {
	ListConversations(ctx context.Context, limit, offset int32) (*responses.ConversationList, error)
	ListMessages(ctx context.Context, conversationID string, limit, offset int32) (*responses.MessageList, error)
	SendMessage(ctx context.Context, conversationID, body, agentID string) (*business.Message, error)
	MarkRead(ctx context.Context, conversationID string) error
	HandleInboundMessage(ctx context.Context, msg business.Message) error
}

// BlogService manages the public site's blog content.
type BlogService interface {
	ListPublishedPosts(ctx context.Context, limit, offset int32) (*responses.BlogPostList, error)
	GetPostBySlug(ctx context.Context, slug string) (*business.BlogPost, error)
	ListAllPosts(ctx context.Context, limit, offset int32) (*responses.BlogPostList, error)
	CreatePost(ctx context.Context, req requests.CreateBlogPostRequest) (*business.BlogPost, error)
	UpdatePost(ctx context.Context, postID string, req requests.UpdateBlogPostRequest) (*business.BlogPost, error)
	DeletePost(ctx context.Context, postID string) error
	UploadImage(ctx context.Context, p params.UploadImageParams) (*responses.UploadedImage, error)
}

// EmailService handles email sending operations.
type EmailService interface {
	SendTransactionalEmail(ctx context.Context, p params.TransactionalEmailParams) error
}

// NotificationService routes notifications to their channel. Notify enqueues
// when a queue is configured and delivers inline otherwise; Deliver always
// sends immediately and is what the queue worker calls.
type NotificationService interface {
	Notify(ctx context.Context, notification params.NotificationParams) error
	Deliver(ctx context.Context, notification params.NotificationParams) error
}

// PaymentWebhookService applies verified payment provider events to
// reservations.
type PaymentWebhookService interface {
	ProcessEvent(ctx context.Context, event stripe.Event) error
}

// CurrencyService exposes the currencies offered by the site switcher.
type CurrencyService interface {
	ListSupportedCurrencies(ctx context.Context) ([]responses.Currency, error)
}

// EventBroadcaster pushes inbox events to connected back-office agents.
type EventBroadcaster interface {
	Broadcast(event business.InboxEvent)
}
