package requests

// UpdateReservationRequest amends a reservation's mutable fields.
type UpdateReservationRequest struct {
	CheckIn      string  `json:"check_in,omitempty"`
	CheckOut     string  `json:"check_out,omitempty"`
	Rooms        int     `json:"rooms,omitempty"`
	Adults       int     `json:"adults,omitempty"`
	TotalPrice   float64 `json:"total_price,omitempty"`
	SpecialNotes string  `json:"special_notes,omitempty"`
}

// CancelReservationRequest optionally records why a reservation was cancelled.
type CancelReservationRequest struct {
	Reason string `json:"reason,omitempty"`
}

// UpdateClientRequest amends a client's contact profile.
type UpdateClientRequest struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// CreatePromoRequest defines a promo code. Discount semantics follow the promo
// service: percentage codes carry a rate, fixed codes an absolute amount.
type CreatePromoRequest struct {
	Code          string  `json:"code" binding:"required"`
	DiscountType  string  `json:"discount_type" binding:"required"` // "percentage" or "fixed_amount"
	DiscountValue float64 `json:"discount_value" binding:"required"`
	MinOrderValue float64 `json:"min_order_value,omitempty"`
	MaxUsage      int     `json:"max_usage,omitempty"`
	ValidFrom     string  `json:"valid_from,omitempty"`
	ValidTo       string  `json:"valid_to,omitempty"`
	Active        bool    `json:"active"`
}

// UpdatePromoRequest amends a promo definition.
type UpdatePromoRequest struct {
	DiscountValue float64 `json:"discount_value,omitempty"`
	MinOrderValue float64 `json:"min_order_value,omitempty"`
	MaxUsage      int     `json:"max_usage,omitempty"`
	ValidTo       string  `json:"valid_to,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

// SendInvoiceRequest delivers an invoice notice over the selected channels.
type SendInvoiceRequest struct {
	Channels []string `json:"channels" binding:"required,min=1"`
	Note     string   `json:"note,omitempty"`
}

// SendMessageRequest is an agent reply in a WhatsApp conversation.
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// CreateBlogPostRequest creates a CMS article.
type CreateBlogPostRequest struct {
	Title     string   `json:"title" binding:"required"`
	Slug      string   `json:"slug,omitempty"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Body      string   `json:"body" binding:"required"`
	CoverURL  string   `json:"cover_url,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Author    string   `json:"author,omitempty"`
	Published bool     `json:"published"`
}

// UpdateBlogPostRequest amends a CMS article.
type UpdateBlogPostRequest struct {
	Title     string   `json:"title,omitempty"`
	Excerpt   string   `json:"excerpt,omitempty"`
	Body      string   `json:"body,omitempty"`
	CoverURL  string   `json:"cover_url,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Published *bool    `json:"published,omitempty"`
}
