package business

import "time"

// TaxLine is one entry of a rate's structured tax breakdown as returned by the
// hotel supplier. Included and IncludedBySupplier both mark taxes collected at
// booking time rather than at the property.
type TaxLine struct {
	Amount             float64 `json:"amount"`
	IncludedBySupplier bool    `json:"included_by_supplier"`
	Included           bool    `json:"included"`
}

// Rate is a priced room offer returned by the hotel supplier for a date range
// and occupancy. The price already includes the platform margin. A Rate is
// immutable once fetched; changing currency or search parameters fetches a new
// one.
type Rate struct {
	RoomName             string     `json:"room_name"`
	MealPlan             string     `json:"meal_plan"` // "no-meal", "breakfast", "half-board", "full-board", "all-inclusive"
	Price                float64    `json:"price"`
	Currency             string     `json:"currency"`
	TaxData              []TaxLine  `json:"tax_data,omitempty"`
	TotalTaxes           float64    `json:"total_taxes,omitempty"`
	FreeCancellation     bool       `json:"free_cancellation"`
	CancellationDeadline *time.Time `json:"cancellation_deadline,omitempty"`
	MatchHash            string     `json:"match_hash,omitempty"`
}

// RoomSelection is a Rate plus how many rooms of that type are being booked.
type RoomSelection struct {
	Rate  Rate `json:"rate"`
	Count int  `json:"count"`
}

// Quote is the displayed price breakdown for one or more room selections.
// All three figures share the currency of the underlying rates.
type Quote struct {
	Base     float64 `json:"base"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}
