package interfaces

import (
	"context"
	"io"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/loyalty"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/media"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/payments"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/promo"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/supplier"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/whatsapp"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// SupplierAPI is the hotel rate supplier's search and prebook surface.
type SupplierAPI interface {
	FetchRates(ctx context.Context, search params.RateSearchParams) (*supplier.RateSearchResponse, error)
	Prebook(ctx context.Context, matchHash, hotelID, checkIn, checkOut string) (*supplier.PrebookResponse, error)
}

// PromoAPI is the promo engine's validation and management surface.
type PromoAPI interface {
	Validate(ctx context.Context, p params.PromoValidationParams) (*promo.ValidateResponse, error)
	List(ctx context.Context, limit, offset int32) (*promo.PromoListResponse, error)
	Create(ctx context.Context, req promo.CreatePromoRequest) (*promo.PromoDefinition, error)
	Update(ctx context.Context, promoID string, req promo.UpdatePromoRequest) (*promo.PromoDefinition, error)
	Delete(ctx context.Context, promoID string) error
}

// LoyaltyAPI is the loyalty program's balance and redemption surface.
type LoyaltyAPI interface {
	GetBalance(ctx context.Context, userID string) (*loyalty.BalanceResponse, error)
	PreviewRedemption(ctx context.Context, userID string, points int) (*loyalty.PreviewResponse, error)
	Redeem(ctx context.Context, userID string, points int, reference string) error
	Release(ctx context.Context, userID string, points int, reference string) error
}

// PaymentsAPI is the hosted payment provider's session surface.
type PaymentsAPI interface {
	CreateSession(ctx context.Context, req payments.SessionRequest) (*payments.SessionResponse, error)
	CreatePaymentLink(ctx context.Context, req payments.PaymentLinkRequest) (*payments.PaymentLinkResponse, error)
}

// CRSAPI is the central reservation system's record surface.
type CRSAPI interface {
	CreateReservation(ctx context.Context, req crs.CreateReservationRequest) (*business.Reservation, error)
	ListReservations(ctx context.Context, status, query string, limit, offset int32) (*crs.ReservationListResponse, error)
	GetReservation(ctx context.Context, reservationID string) (*business.Reservation, error)
	GetReservationByReference(ctx context.Context, reference string) (*business.Reservation, error)
	UpdateReservationStatus(ctx context.Context, reservationID, status, reason string) (*business.Reservation, error)
	RecordPaymentStatus(ctx context.Context, reservationID, paymentStatus, sessionID string) error
	AmendReservation(ctx context.Context, reservationID string, req crs.AmendReservationRequest) (*business.Reservation, error)
	ExportReservations(ctx context.Context, from, to time.Time) ([]business.Reservation, error)

	ListClients(ctx context.Context, query string, limit, offset int32) (*crs.ClientListResponse, error)
	GetClient(ctx context.Context, clientID string) (*business.Client, error)
	UpdateClient(ctx context.Context, clientID string, req crs.UpdateClientRequest) (*business.Client, error)

	CreateInvoice(ctx context.Context, req crs.CreateInvoiceRequest) (*business.Invoice, error)
	ListInvoices(ctx context.Context, status string, limit, offset int32) (*crs.InvoiceListResponse, error)
	GetInvoice(ctx context.Context, invoiceID string) (*business.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID, status string) (*business.Invoice, error)

	ListBlogPosts(ctx context.Context, publishedOnly bool, limit, offset int32) (*crs.BlogPostListResponse, error)
	GetBlogPost(ctx context.Context, postID string) (*business.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*business.BlogPost, error)
	CreateBlogPost(ctx context.Context, post business.BlogPost) (*business.BlogPost, error)
	UpdateBlogPost(ctx context.Context, postID string, post business.BlogPost) (*business.BlogPost, error)
	DeleteBlogPost(ctx context.Context, postID string) error
}

// WhatsAppAPI is the WhatsApp business gateway's messaging surface.
type WhatsAppAPI interface {
	SendMessage(ctx context.Context, to, body string) (*whatsapp.MessageResponse, error)
	Reply(ctx context.Context, conversationID, body string) (*whatsapp.MessageResponse, error)
	ListConversations(ctx context.Context, limit, offset int32) (*whatsapp.ConversationListResponse, error)
	ListMessages(ctx context.Context, conversationID string, limit, offset int32) (*whatsapp.MessageListResponse, error)
	MarkRead(ctx context.Context, conversationID string) error
}

// NotificationQueue enqueues notification jobs for the notifier worker.
type NotificationQueue interface {
	PublishNotification(ctx context.Context, notification params.NotificationParams) error
}

// ImageUploader stores blog images and returns their delivery URLs.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (*media.UploadResult, error)
}
