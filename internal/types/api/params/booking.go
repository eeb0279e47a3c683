package params

import (
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// RateSearchParams identifies one hotel rate search.
type RateSearchParams struct {
	HotelID      string
	CheckIn      string
	CheckOut     string
	Adults       int
	ChildrenAges []int
	Currency     string
	Language     string
}

// RefreshSelectionsParams re-runs a search in a new currency and re-matches
// the previous selections against the fresh rate list. RefreshKey scopes the
// generation counter that discards superseded refreshes; callers use one key
// per booking draft.
type RefreshSelectionsParams struct {
	RefreshKey string
	Search     RateSearchParams
	Selections []business.RoomSelection
}

// PromoValidationParams mirrors the promo service's validation contract.
type PromoValidationParams struct {
	Code         string
	BookingValue float64
	HotelID      string
	Destination  string
	UserID       string
}

// LoyaltyPreviewParams asks how large a discount a redemption would fund.
type LoyaltyPreviewParams struct {
	UserID string
	Points int
}

// SubmitBookingParams carries a draft through the submission pipeline.
// ClientTotal is the amount the caller displayed; the composed amount is
// authoritative and a mismatch is logged, never trusted.
type SubmitBookingParams struct {
	Draft       business.BookingDraft
	ClientTotal float64
}
