package crs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	httpClient "github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/http"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// CRSConfig holds the connection settings for the agency's central
// reservation system.
type CRSConfig struct {
	BaseURL string
	APIKey  string
}

// CRSClient talks to the central reservation system. The CRS owns all
// persistent records: reservations, client profiles, invoices and the
// public site's blog content.
type CRSClient struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

func NewCRSClient(config CRSConfig) *CRSClient {
	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(config.BaseURL),
	)
	return &CRSClient{
		apiKey:     config.APIKey,
		httpClient: client,
	}
}

// CreateReservationRequest registers an accepted booking with the CRS.
type CreateReservationRequest struct {
	Reference    string                 `json:"reference"`
	Draft        business.BookingDraft  `json:"draft"`
	Quote        business.Quote         `json:"quote"`
	FinalAmount  float64                `json:"final_amount"`
	BookHash     string                 `json:"book_hash,omitempty"`
	PrebookData  map[string]interface{} `json:"prebook_data,omitempty"`
	Status       string                 `json:"status"`
	PromoCode    string                 `json:"promo_code,omitempty"`
	LoyaltyValue float64                `json:"loyalty_value,omitempty"`
}

// ReservationListResponse is a page of reservations.
type ReservationListResponse struct {
	Reservations []business.Reservation `json:"reservations"`
	TotalItems   int64                  `json:"total_items"`
}

// ClientListResponse is a page of client profiles.
type ClientListResponse struct {
	Clients    []business.Client `json:"clients"`
	TotalItems int64             `json:"total_items"`
}

// InvoiceListResponse is a page of invoices.
type InvoiceListResponse struct {
	Invoices   []business.Invoice `json:"invoices"`
	TotalItems int64              `json:"total_items"`
}

// CreateInvoiceRequest opens an invoice against a reservation.
type CreateInvoiceRequest struct {
	ReservationID string     `json:"reservation_id"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

// StatusUpdateRequest transitions a reservation or invoice status.
type StatusUpdateRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// RecordPaymentRequest stores the gateway's verdict for a checkout attempt.
type RecordPaymentRequest struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id,omitempty"`
}

// AmendReservationRequest mutates stay details on an existing reservation.
// Nil fields are left unchanged.
type AmendReservationRequest struct {
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	Rooms        *int     `json:"rooms,omitempty"`
	Adults       *int     `json:"adults,omitempty"`
	TotalPrice   *float64 `json:"total_price,omitempty"`
	SpecialNotes *string  `json:"special_notes,omitempty"`
}

// UpdateClientRequest mutates a client profile. Empty fields are left
// unchanged.
type UpdateClientRequest struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

// BlogPostListResponse is a page of blog posts.
type BlogPostListResponse struct {
	Posts      []business.BlogPost `json:"posts"`
	TotalItems int64               `json:"total_items"`
}

// CreateReservation registers a new reservation and returns the stored record.
func (c *CRSClient) CreateReservation(ctx context.Context, req CreateReservationRequest) (*business.Reservation, error) {
	resp, err := c.httpClient.Post(
		ctx,
		"/reservations",
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	var reservation business.Reservation
	if err := c.httpClient.ProcessJSONResponse(resp, &reservation); err != nil {
		return nil, fmt.Errorf("failed to process reservation response: %w", err)
	}

	return &reservation, nil
}

// ListReservations returns a page of reservations, optionally filtered by
// status and a free-text query over client and hotel names.
func (c *CRSClient) ListReservations(ctx context.Context, status, query string, limit, offset int32) (*ReservationListResponse, error) {
	options := []httpClient.RequestOption{
		httpClient.WithBearerToken(c.apiKey),
		httpClient.WithQueryParam("limit", strconv.Itoa(int(limit))),
		httpClient.WithQueryParam("offset", strconv.Itoa(int(offset))),
	}
	if status != "" {
		options = append(options, httpClient.WithQueryParam("status", status))
	}
	if query != "" {
		options = append(options, httpClient.WithQueryParam("q", query))
	}

	resp, err := c.httpClient.Get(ctx, "/reservations", options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	var listResponse ReservationListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, fmt.Errorf("failed to process reservation list response: %w", err)
	}

	return &listResponse, nil
}

// GetReservation returns a single reservation by ID.
func (c *CRSClient) GetReservation(ctx context.Context, reservationID string) (*business.Reservation, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("/reservations/%s", reservationID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	var reservation business.Reservation
	if err := c.httpClient.ProcessJSONResponse(resp, &reservation); err != nil {
		return nil, fmt.Errorf("failed to process reservation response: %w", err)
	}

	return &reservation, nil
}

// GetReservationByReference resolves a reservation via its booking reference.
// Payment webhooks only carry the reference, not the CRS ID.
func (c *CRSClient) GetReservationByReference(ctx context.Context, reference string) (*business.Reservation, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("/reservations/by-reference/%s", reference),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation by reference: %w", err)
	}

	var reservation business.Reservation
	if err := c.httpClient.ProcessJSONResponse(resp, &reservation); err != nil {
		return nil, fmt.Errorf("failed to process reservation response: %w", err)
	}

	return &reservation, nil
}

// UpdateReservationStatus transitions a reservation to a new status.
func (c *CRSClient) UpdateReservationStatus(ctx context.Context, reservationID, status, reason string) (*business.Reservation, error) {
	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/reservations/%s/status", reservationID),
		StatusUpdateRequest{Status: status, Reason: reason},
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update reservation status: %w", err)
	}

	var reservation business.Reservation
	if err := c.httpClient.ProcessJSONResponse(resp, &reservation); err != nil {
		return nil, fmt.Errorf("failed to process reservation response: %w", err)
	}

	return &reservation, nil
}

// RecordPaymentStatus stores the payment gateway's verdict for a
// reservation's checkout attempt.
func (c *CRSClient) RecordPaymentStatus(ctx context.Context, reservationID, paymentStatus, sessionID string) error {
	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/reservations/%s/payments", reservationID),
		RecordPaymentRequest{Status: paymentStatus, SessionID: sessionID},
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return fmt.Errorf("failed to record payment status: %w", err)
	}
	defer resp.Body.Close()

	return nil
}

// AmendReservation mutates stay details on an existing reservation.
func (c *CRSClient) AmendReservation(ctx context.Context, reservationID string, req AmendReservationRequest) (*business.Reservation, error) {
	resp, err := c.httpClient.Patch(
		ctx,
		fmt.Sprintf("/reservations/%s", reservationID),
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to amend reservation: %w", err)
	}

	var reservation business.Reservation
	if err := c.httpClient.ProcessJSONResponse(resp, &reservation); err != nil {
		return nil, fmt.Errorf("failed to process reservation response: %w", err)
	}

	return &reservation, nil
}

// ExportReservations returns all reservations created inside the window.
// The analytics service aggregates over this export.
func (c *CRSClient) ExportReservations(ctx context.Context, from, to time.Time) ([]business.Reservation, error) {
	resp, err := c.httpClient.Get(
		ctx,
		"/reservations/export",
		httpClient.WithBearerToken(c.apiKey),
		httpClient.WithQueryParam("from", from.Format(time.RFC3339)),
		httpClient.WithQueryParam("to", to.Format(time.RFC3339)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to export reservations: %w", err)
	}

	var export struct {
		Reservations []business.Reservation `json:"reservations"`
	}
	if err := c.httpClient.ProcessJSONResponse(resp, &export); err != nil {
		return nil, fmt.Errorf("failed to process reservation export response: %w", err)
	}

	return export.Reservations, nil
}

// ListClients returns a page of client profiles, optionally filtered by a
// free-text query over name, email and phone.
func (c *CRSClient) ListClients(ctx context.Context, query string, limit, offset int32) (*ClientListResponse, error) {
	options := []httpClient.RequestOption{
		httpClient.WithBearerToken(c.apiKey),
		httpClient.WithQueryParam("limit", strconv.Itoa(int(limit))),
		httpClient.WithQueryParam("offset", strconv.Itoa(int(offset))),
	}
	if query != "" {
		options = append(options, httpClient.WithQueryParam("q", query))
	}

	resp, err := c.httpClient.Get(ctx, "/clients", options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	var listResponse ClientListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, fmt.Errorf("failed to process client list response: %w", err)
	}

	return &listResponse, nil
}

// GetClient returns a single client profile by ID.
func (c *CRSClient) GetClient(ctx context.Context, clientID string) (*business.Client, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("/clients/%s", clientID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	var client business.Client
	if err := c.httpClient.ProcessJSONResponse(resp, &client); err != nil {
		return nil, fmt.Errorf("failed to process client response: %w", err)
	}

	return &client, nil
}

// UpdateClient mutates a client profile.
func (c *CRSClient) UpdateClient(ctx context.Context, clientID string, req UpdateClientRequest) (*business.Client, error) {
	resp, err := c.httpClient.Patch(
		ctx,
		fmt.Sprintf("/clients/%s", clientID),
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	var client business.Client
	if err := c.httpClient.ProcessJSONResponse(resp, &client); err != nil {
		return nil, fmt.Errorf("failed to process client response: %w", err)
	}

	return &client, nil
}

// CreateInvoice opens an invoice against a reservation.
func (c *CRSClient) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*business.Invoice, error) {
	resp, err := c.httpClient.Post(
		ctx,
		"/invoices",
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	var invoice business.Invoice
	if err := c.httpClient.ProcessJSONResponse(resp, &invoice); err != nil {
		return nil, fmt.Errorf("failed to process invoice response: %w", err)
	}

	return &invoice, nil
}

// ListInvoices returns a page of invoices, optionally filtered by status.
func (c *CRSClient) ListInvoices(ctx context.Context, status string, limit, offset int32) (*InvoiceListResponse, error) {
	options := []httpClient.RequestOption{
		httpClient.WithBearerToken(c.apiKey),
		httpClient.WithQueryParam("limit", strconv.Itoa(int(limit))),
		httpClient.WithQueryParam("offset", strconv.Itoa(int(offset))),
	}
	if status != "" {
		options = append(options, httpClient.WithQueryParam("status", status))
	}

	resp, err := c.httpClient.Get(ctx, "/invoices", options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	var listResponse InvoiceListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, fmt.Errorf("failed to process invoice list response: %w", err)
	}

	return &listResponse, nil
}

// GetInvoice returns a single invoice by ID.
func (c *CRSClient) GetInvoice(ctx context.Context, invoiceID string) (*business.Invoice, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("/invoices/%s", invoiceID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	var invoice business.Invoice
	if err := c.httpClient.ProcessJSONResponse(resp, &invoice); err != nil {
		return nil, fmt.Errorf("failed to process invoice response: %w", err)
	}

	return &invoice, nil
}

// UpdateInvoiceStatus transitions an invoice to a new status.
func (c *CRSClient) UpdateInvoiceStatus(ctx context.Context, invoiceID, status string) (*business.Invoice, error) {
	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/invoices/%s/status", invoiceID),
		StatusUpdateRequest{Status: status},
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	var invoice business.Invoice
	if err := c.httpClient.ProcessJSONResponse(resp, &invoice); err != nil {
		return nil, fmt.Errorf("failed to process invoice response: %w", err)
	}

	return &invoice, nil
}

// ListBlogPosts returns a page of blog posts. When publishedOnly is set,
// drafts are excluded.
func (c *CRSClient) ListBlogPosts(ctx context.Context, publishedOnly bool, limit, offset int32) (*BlogPostListResponse, error) {
	options := []httpClient.RequestOption{
		httpClient.WithBearerToken(c.apiKey),
		httpClient.WithQueryParam("limit", strconv.Itoa(int(limit))),
		httpClient.WithQueryParam("offset", strconv.Itoa(int(offset))),
	}
	if publishedOnly {
		options = append(options, httpClient.WithQueryParam("published", "true"))
	}

	resp, err := c.httpClient.Get(ctx, "/content/posts", options...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	var listResponse BlogPostListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, fmt.Errorf("failed to process blog post list response: %w", err)
	}

	return &listResponse, nil
}

// GetBlogPost returns a single blog post by its record ID.
func (c *CRSClient) GetBlogPost(ctx context.Context, postID string) (*business.BlogPost, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("/content/posts/id/%s", postID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	var post business.BlogPost
	if err := c.httpClient.ProcessJSONResponse(resp, &post); err != nil {
		return nil, fmt.Errorf("failed to process blog post response: %w", err)
	}

	return &post, nil
}

// GetBlogPostBySlug returns a single blog post by its URL slug.
func (c *CRSClient) GetBlogPostBySlug(ctx context.Context, slug string) (*business.BlogPost, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("/content/posts/%s", slug),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	var post business.BlogPost
	if err := c.httpClient.ProcessJSONResponse(resp, &post); err != nil {
		return nil, fmt.Errorf("failed to process blog post response: %w", err)
	}

	return &post, nil
}

// CreateBlogPost stores a new blog post.
func (c *CRSClient) CreateBlogPost(ctx context.Context, post business.BlogPost) (*business.BlogPost, error) {
	resp, err := c.httpClient.Post(
		ctx,
		"/content/posts",
		post,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	var created business.BlogPost
	if err := c.httpClient.ProcessJSONResponse(resp, &created); err != nil {
		return nil, fmt.Errorf("failed to process blog post response: %w", err)
	}

	return &created, nil
}

// UpdateBlogPost mutates an existing blog post.
func (c *CRSClient) UpdateBlogPost(ctx context.Context, postID string, post business.BlogPost) (*business.BlogPost, error) {
	resp, err := c.httpClient.Patch(
		ctx,
		fmt.Sprintf("/content/posts/%s", postID),
		post,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	var updated business.BlogPost
	if err := c.httpClient.ProcessJSONResponse(resp, &updated); err != nil {
		return nil, fmt.Errorf("failed to process blog post response: %w", err)
	}

	return &updated, nil
}

// DeleteBlogPost removes a blog post.
func (c *CRSClient) DeleteBlogPost(ctx context.Context, postID string) error {
	resp, err := c.httpClient.Delete(
		ctx,
		fmt.Sprintf("/content/posts/%s", postID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	defer resp.Body.Close()

	return nil
}
