package supplier

import (
	"context"
	"fmt"
	"time"

	httpClient "github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/http"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// SupplierConfig holds the connection settings for the hotel rate supplier.
type SupplierConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// SupplierClient talks to the hotel rate supplier's search and prebook API.
type SupplierClient struct {
	apiKey     string
	httpClient *httpClient.HTTPClient
}

func NewSupplierClient(config SupplierConfig) *SupplierClient {
	timeout := config.Timeout
	if timeout == 0 {
		// Rate searches fan out to multiple providers upstream and can be slow
		timeout = 45 * time.Second
	}

	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(config.BaseURL),
		httpClient.WithTimeout(timeout),
	)
	return &SupplierClient{
		apiKey:     config.APIKey,
		httpClient: client,
	}
}

// RateSearchRequest is the supplier's search payload.
type RateSearchRequest struct {
	HotelID      string `json:"hotelId"`
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Adults       int    `json:"adults"`
	ChildrenAges []int  `json:"childrenAges,omitempty"`
	Currency     string `json:"currency"`
	Language     string `json:"language,omitempty"`
}

// RateSearchResponse wraps the rate list returned by the supplier.
type RateSearchResponse struct {
	Rates []business.Rate `json:"rates"`
}

// PrebookRequest asks the supplier to hold a rate before payment.
type PrebookRequest struct {
	MatchHash string `json:"matchHash"`
	HotelID   string `json:"hotelId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

// PrebookResponse is the supplier's hold confirmation.
type PrebookResponse struct {
	BookHash string `json:"bookHash"`
	Payment  struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	} `json:"payment"`
	PrebookData map[string]interface{} `json:"prebookData,omitempty"`
}

// FetchRates searches the supplier for available rates matching the stay.
func (c *SupplierClient) FetchRates(ctx context.Context, search params.RateSearchParams) (*RateSearchResponse, error) {
	req := RateSearchRequest{
		HotelID:      search.HotelID,
		CheckIn:      search.CheckIn,
		CheckOut:     search.CheckOut,
		Adults:       search.Adults,
		ChildrenAges: search.ChildrenAges,
		Currency:     search.Currency,
		Language:     search.Language,
	}

	resp, err := c.httpClient.Post(
		ctx,
		"/rates/search",
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}

	var rateResponse RateSearchResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &rateResponse); err != nil {
		return nil, fmt.Errorf("failed to process rate response: %w", err)
	}

	return &rateResponse, nil
}

// Prebook places a hold on the selected rate and returns the hash required to
// finalize the booking after payment.
func (c *SupplierClient) Prebook(ctx context.Context, matchHash, hotelID, checkIn, checkOut string) (*PrebookResponse, error) {
	req := PrebookRequest{
		MatchHash: matchHash,
		HotelID:   hotelID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}

	resp, err := c.httpClient.Post(
		ctx,
		"/rates/prebook",
		req,
		httpClient.WithBearerToken(c.apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prebook rate: %w", err)
	}

	var prebookResponse PrebookResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &prebookResponse); err != nil {
		return nil, fmt.Errorf("failed to process prebook response: %w", err)
	}

	return &prebookResponse, nil
}
