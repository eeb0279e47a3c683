package loyalty

import (
	"context"
	"fmt"

	httpClient "github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/http"
)

// LoyaltyConfig holds the connection settings for the loyalty program service.
type LoyaltyConfig struct {
	BaseURL string
	APIKey  string
}

// LoyaltyClient talks to the loyalty program that owns point balances and
// redemption accounting.
type LoyaltyClient struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

func NewLoyaltyClient(config LoyaltyConfig) *LoyaltyClient {
	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(config.BaseURL),
	)
	return &LoyaltyClient{
		apiKey:     config.APIKey,
		httpClient: client,
	}
}

// BalanceResponse is a member's current point balance and its cash value.
type BalanceResponse struct {
	UserID          string  `json:"userId"`
	Points          int     `json:"points"`
	RedemptionValue float64 `json:"redemptionValue"`
	Currency        string  `json:"currency"`
}

// PreviewRequest asks the program to price a redemption without committing it.
type PreviewRequest struct {
	Points int `json:"points"`
}

// PreviewResponse is the cash value a redemption would yield.
type PreviewResponse struct {
	Points   int     `json:"points"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// RedeemRequest commits a redemption against a booking reference.
type RedeemRequest struct {
	Points    int    `json:"points"`
	Reference string `json:"reference"`
}

// GetBalance returns the member's current balance.
func (c *LoyaltyClient) GetBalance(ctx context.Context, userID string) (*BalanceResponse, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("/members/%s/balance", userID),
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get loyalty balance: %w", err)
	}

	var balance BalanceResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &balance); err != nil {
		return nil, fmt.Errorf("failed to process loyalty balance response: %w", err)
	}

	return &balance, nil
}

// PreviewRedemption prices a redemption without reserving points.
func (c *LoyaltyClient) PreviewRedemption(ctx context.Context, userID string, points int) (*PreviewResponse, error) {
	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/members/%s/preview", userID),
		PreviewRequest{Points: points},
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to preview loyalty redemption: %w", err)
	}

	var preview PreviewResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &preview); err != nil {
		return nil, fmt.Errorf("failed to process loyalty preview response: %w", err)
	}

	return &preview, nil
}

// Redeem reserves points against a booking reference. The reservation is
// released with Release if a later submission step fails.
func (c *LoyaltyClient) Redeem(ctx context.Context, userID string, points int, reference string) error {
	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/members/%s/redeem", userID),
		RedeemRequest{Points: points, Reference: reference},
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return fmt.Errorf("failed to redeem loyalty points: %w", err)
	}
	defer resp.Body.Close()

	return nil
}

// Release returns previously reserved points to the member.
func (c *LoyaltyClient) Release(ctx context.Context, userID string, points int, reference string) error {
	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/members/%s/release", userID),
		RedeemRequest{Points: points, Reference: reference},
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return fmt.Errorf("failed to release loyalty points: %w", err)
	}
	defer resp.Body.Close()

	return nil
}
