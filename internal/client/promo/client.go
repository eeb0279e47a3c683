package promo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	httpClient "github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/http"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
)

// PromoConfig holds the connection settings for the promo engine.
type PromoConfig struct {
	BaseURL string
	APIKey  string
}

// PromoClient talks to the promo engine that owns coupon definitions and
// usage counting.
type PromoClient struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

func NewPromoClient(config PromoConfig) *PromoClient {
	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(config.BaseURL),
	)
	return &PromoClient{
		apiKey:     config.APIKey,
		httpClient: client,
	}
}

// ValidateRequest is the promo engine's validation payload.
type ValidateRequest struct {
	Code         string  `json:"code"`
	BookingValue float64 `json:"bookingValue"`
	HotelID      string  `json:"hotelId,omitempty"`
	Destination  string  `json:"destination,omitempty"`
	UserID       string  `json:"userId,omitempty"`
}

// ValidateData carries the discount figures for a valid code.
type ValidateData struct {
	Code          string  `json:"code"`
	Discount      float64 `json:"discount"`
	FinalValue    float64 `json:"finalValue"`
	OriginalValue float64 `json:"originalValue"`
}

// ValidateResponse is the promo engine's validation verdict. Message is only
// set when Success is false.
type ValidateResponse struct {
	Success bool          `json:"success"`
	Data    *ValidateData `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
}

// PromoDefinition is a coupon as stored by the promo engine.
type PromoDefinition struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	MinOrderValue float64    `json:"minOrderValue,omitempty"`
	MaxUsage      int        `json:"maxUsage,omitempty"`
	UsageCount    int        `json:"usageCount"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidTo       *time.Time `json:"validTo,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// PromoListResponse wraps a page of coupon definitions.
type PromoListResponse struct {
	Promos     []PromoDefinition `json:"promos"`
	TotalItems int64             `json:"totalItems"`
}

// CreatePromoRequest creates a new coupon in the promo engine.
type CreatePromoRequest struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	MinOrderValue float64    `json:"minOrderValue,omitempty"`
	MaxUsage      int        `json:"maxUsage,omitempty"`
	ValidFrom     *time.Time `json:"validFrom,omitempty"`
	ValidTo       *time.Time `json:"validTo,omitempty"`
	Active        bool       `json:"active"`
}

// UpdatePromoRequest mutates an existing coupon. Nil fields are left unchanged.
type UpdatePromoRequest struct {
	DiscountValue *float64   `json:"discountValue,omitempty"`
	MinOrderValue *float64   `json:"minOrderValue,omitempty"`
	MaxUsage      *int       `json:"maxUsage,omitempty"`
	ValidTo       *time.Time `json:"validTo,omitempty"`
	Active        *bool      `json:"active,omitempty"`
}

// Validate checks a coupon code against the booking value and scope. A
// rejected code comes back with Success=false and a human readable Message,
// not an error.
func (c *PromoClient) Validate(ctx context.Context, p params.PromoValidationParams) (*ValidateResponse, error) {
	req := ValidateRequest{
		Code:         p.Code,
		BookingValue: p.BookingValue,
		HotelID:      p.HotelID,
		Destination:  p.Destination,
		UserID:       p.UserID,
	}

	resp, err := c.httpClient.Post(
		ctx,
		"/coupons/validate",
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate promo code: %w", err)
	}

	var validateResponse ValidateResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &validateResponse); err != nil {
		return nil, fmt.Errorf("failed to process promo validation response: %w", err)
	}

	return &validateResponse, nil
}

// List returns a page of coupon definitions.
func (c *PromoClient) List(ctx context.Context, limit, offset int32) (*PromoListResponse, error) {
	resp, err := c.httpClient.Get(
		ctx,
		"/coupons",
		httpClient.WithBearerToken(c.apiKey),
		httpClient.WithQueryParam("limit", strconv.Itoa(int(limit))),
		httpClient.WithQueryParam("offset", strconv.Itoa(int(offset))),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list promo codes: %w", err)
	}

	var listResponse PromoListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, fmt.Errorf("failed to process promo list response: %w", err)
	}

	return &listResponse, nil
}

// Create registers a new coupon.
func (c *PromoClient) Create(ctx context.Context, req CreatePromoRequest) (*PromoDefinition, error) {
	resp, err := c.httpClient.Post(
		ctx,
		"/coupons",
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create promo code: %w", err)
	}

	var promo PromoDefinition
	if err := c.httpClient.ProcessJSONResponse(resp, &promo); err != nil {
		return nil, fmt.Errorf("failed to process promo create response: %w", err)
	}

	return &promo, nil
}

// Update mutates an existing coupon.
func (c *PromoClient) Update(ctx context.Context, promoID string, req UpdatePromoRequest) (*PromoDefinition, error) {
	resp, err := c.httpClient.Patch(
		ctx,
		fmt.Sprintf("/coupons/%s", promoID),
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update promo code: %w", err)
	}

	var promo PromoDefinition
	if err := c.httpClient.ProcessJSONResponse(resp, &promo); err != nil {
		return nil, fmt.Errorf("failed to process promo update response: %w", err)
	}

	return &promo, nil
}

// Delete removes a coupon.
func (c *PromoClient) Delete(ctx context.Context, promoID string) error {
	resp, err := c.httpClient.Delete(
		ctx,
		fmt.Sprintf("/coupons/%s", promoID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return fmt.Errorf("failed to delete promo code: %w", err)
	}
	defer resp.Body.Close()

	return nil
}
