package responses

import (
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// ReservationList is a page of reservations with the total for pagination.
type ReservationList struct {
	Reservations []business.Reservation `json:"reservations"`
	TotalItems   int64                  `json:"total_items"`
}

// ClientList is a page of clients with the total for pagination.
type ClientList struct {
	Clients    []business.Client `json:"clients"`
	TotalItems int64             `json:"total_items"`
}

// InvoiceList is a page of invoices with the total for pagination.
type InvoiceList struct {
	Invoices   []business.Invoice `json:"invoices"`
	TotalItems int64              `json:"total_items"`
}

// Promo is a promo definition as returned by the admin surface.
type Promo struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	MinOrderValue float64    `json:"min_order_value,omitempty"`
	MaxUsage      int        `json:"max_usage,omitempty"`
	UsageCount    int        `json:"usage_count"`
	ValidFrom     *time.Time `json:"valid_from,omitempty"`
	ValidTo       *time.Time `json:"valid_to,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
}

// PromoList is a page of promo definitions.
type PromoList struct {
	Promos     []Promo `json:"promos"`
	TotalItems int64   `json:"total_items"`
}

// BlogPostList is a page of blog posts.
type BlogPostList struct {
	Posts      []business.BlogPost `json:"posts"`
	TotalItems int64               `json:"total_items"`
}

// Currency is a currency offered by the site switcher.
type Currency struct {
	Code       string `json:"code"`
	MinorUnits int    `json:"minor_units"`
}

// ConversationList is the inbox conversation roster.
type ConversationList struct {
	Conversations []business.Conversation `json:"conversations"`
	TotalItems    int64                   `json:"total_items"`
}

// MessageList is one conversation's message history.
type MessageList struct {
	Messages   []business.Message `json:"messages"`
	TotalItems int64              `json:"total_items"`
}

// UploadedImage is a stored CMS image with its optimized delivery URLs.
type UploadedImage struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}
