package payments

import (
	"context"
	"fmt"
	"time"

	httpClient "github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/http"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// PaymentsConfig holds the connection settings for the hosted payment
// provider.
type PaymentsConfig struct {
	BaseURL string
	APIKey  string
}

// PaymentsClient talks to the hosted payment provider. The provider owns the
// checkout page, card handling and settlement; this client only opens
// sessions and payment links.
type PaymentsClient struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

func NewPaymentsClient(config PaymentsConfig) *PaymentsClient {
	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(config.BaseURL),
	)
	return &PaymentsClient{
		apiKey:     config.APIKey,
		httpClient: client,
	}
}

// SessionRequest opens a hosted checkout session for a booking. The draft is
// forwarded so the provider can render the stay summary on its page.
type SessionRequest struct {
	Reference    string                 `json:"reference"`
	TotalPrice   float64                `json:"totalPrice"`
	Currency     string                 `json:"currency"`
	Draft        business.BookingDraft  `json:"draft"`
	BookHash     string                 `json:"bookHash,omitempty"`
	CustomerInfo map[string]interface{} `json:"customerInfo,omitempty"`
	SuccessURL   string                 `json:"successUrl,omitempty"`
	CancelURL    string                 `json:"cancelUrl,omitempty"`
}

// SessionResponse carries the redirect URL for the hosted checkout page.
type SessionResponse struct {
	SessionURL string `json:"sessionUrl"`
	SessionID  string `json:"sessionId,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

// PaymentLinkRequest opens a standalone payment page for an invoice.
type PaymentLinkRequest struct {
	InvoiceID string  `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	ClientRef string  `json:"clientRef,omitempty"`
}

// PaymentLinkResponse carries the hosted payment page URL for an invoice.
type PaymentLinkResponse struct {
	SessionURL string     `json:"sessionUrl"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

// CreateSession opens a checkout session and returns the redirect URL the
// customer is sent to.
func (c *PaymentsClient) CreateSession(ctx context.Context, req SessionRequest) (*SessionResponse, error) {
	resp, err := c.httpClient.Post(
		ctx,
		"/checkout/sessions",
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment session: %w", err)
	}

	var session SessionResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &session); err != nil {
		return nil, fmt.Errorf("failed to process payment session response: %w", err)
	}

	return &session, nil
}

// CreatePaymentLink opens a hosted payment page for a back-office invoice.
func (c *PaymentsClient) CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLinkResponse, error) {
	resp, err := c.httpClient.Post(
		ctx,
		"/payment-links",
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	var link PaymentLinkResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &link); err != nil {
		return nil, fmt.Errorf("failed to process payment link response: %w", err)
	}

	return &link, nil
}
