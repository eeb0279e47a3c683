package responses

import (
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// RateSearchResult is the rate-fetch contract's response body.
type RateSearchResult struct {
	Rates    []business.Rate `json:"rates"`
	Currency string          `json:"currency"`
	Cached   bool            `json:"cached,omitempty"`
}

// SelectionRefresh is one selection's outcome after a currency-triggered
// refresh. Stale selections keep their previous rate and currency.
type SelectionRefresh struct {
	Selection business.RoomSelection `json:"selection"`
	Matched   bool                   `json:"matched"`
	MatchKind string                 `json:"match_kind,omitempty"` // "exact", "room_name", ""
	Stale     bool                   `json:"stale"`
}

// RefreshOutcome reports a currency-triggered refresh. Superseded means a
// newer refresh for the same key started while this one was in flight and its
// result must be discarded by the caller.
type RefreshOutcome struct {
	Superseded bool               `json:"superseded"`
	Generation uint64             `json:"generation"`
	Currency   string             `json:"currency,omitempty"`
	Selections []SelectionRefresh `json:"selections,omitempty"`
	Rates      []business.Rate    `json:"rates,omitempty"`
}

// QuoteResult is the composed price preview plus the post-discount charge.
type QuoteResult struct {
	Quote       business.Quote `json:"quote"`
	FinalAmount float64        `json:"final_amount"`
	PromoCode   string         `json:"promo_code,omitempty"`
	PromoValue  float64        `json:"promo_value,omitempty"`
	Loyalty     float64        `json:"loyalty,omitempty"`
}

// PromoValidation mirrors the promo service's response contract.
type PromoValidation struct {
	Success bool                 `json:"success"`
	Data    *PromoValidationData `json:"data,omitempty"`
	Message string               `json:"message,omitempty"`
}

// PromoValidationData is the validated discount payload.
type PromoValidationData struct {
	Code          string  `json:"code"`
	Discount      float64 `json:"discount"`
	FinalValue    float64 `json:"finalValue"`
	OriginalValue float64 `json:"originalValue"`
}

// LoyaltyBalance is a user's loyalty wallet state.
type LoyaltyBalance struct {
	UserID          string  `json:"user_id"`
	Points          int     `json:"points"`
	RedemptionValue float64 `json:"redemption_value"` // discount funded per point
	Currency        string  `json:"currency"`
}

// LoyaltyPreview is the discount a redemption would fund.
type LoyaltyPreview struct {
	Points   int     `json:"points"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// BookingSubmission is the submission pipeline's outcome: the payment
// redirect plus the figures the charge was composed from.
type BookingSubmission struct {
	SessionURL  string         `json:"sessionUrl"`
	BookHash    string         `json:"bookHash,omitempty"`
	Reference   string         `json:"reference,omitempty"`
	Quote       business.Quote `json:"quote"`
	FinalAmount float64        `json:"final_amount"`
	Currency    string         `json:"currency"`
}
