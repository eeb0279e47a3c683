package requests

import (
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// RateSearchRequest is the rate-fetch contract: same hotel/date/occupancy
// key the front-end used against the legacy endpoint.
type RateSearchRequest struct {
	HotelID      string `json:"hotelId" binding:"required"`
	CheckIn      string `json:"checkIn" binding:"required"`
	CheckOut     string `json:"checkOut" binding:"required"`
	Adults       int    `json:"adults" binding:"required,min=1"`
	ChildrenAges []int  `json:"childrenAges"`
	Currency     string `json:"currency" binding:"required,len=3"`
	Language     string `json:"language"`
}

// RefreshSelectionsRequest re-fetches rates after a display-currency change
// and re-matches the held selections. RefreshKey must be stable per draft so
// overlapping refreshes can be sequenced.
type RefreshSelectionsRequest struct {
	RefreshKey string                   `json:"refreshKey" binding:"required"`
	Search     RateSearchRequest        `json:"search" binding:"required"`
	Selections []business.RoomSelection `json:"selections" binding:"required,min=1"`
}

// QuoteRequest previews the displayed total for the held selections.
type QuoteRequest struct {
	Selections []business.RoomSelection  `json:"selections" binding:"required,min=1"`
	Promo      *business.PromoDiscount   `json:"promo,omitempty"`
	Loyalty    *business.LoyaltyDiscount `json:"loyalty,omitempty"`
}

// ValidatePromoRequest mirrors the promo validation contract.
type ValidatePromoRequest struct {
	Code         string  `json:"code" binding:"required"`
	BookingValue float64 `json:"bookingValue" binding:"required"`
	HotelID      string  `json:"hotelId"`
	Destination  string  `json:"destination"`
	UserID       string  `json:"userId"`
}

// LoyaltyPreviewRequest previews the discount a points redemption would fund.
type LoyaltyPreviewRequest struct {
	Points int `json:"points" binding:"required,min=1"`
}

// GuestPayload is one traveler as submitted by the booking form.
type GuestPayload struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	IsLead      bool   `json:"isLead"`
}

// SubmitBookingRequest carries the full client-held draft, including the total
// the client displayed. The server recomputes the charge; totalPrice is
// cross-checked, not trusted.
type SubmitBookingRequest struct {
	HotelID       string                    `json:"hotelId" binding:"required"`
	HotelName     string                    `json:"hotelName" binding:"required"`
	Destination   string                    `json:"destination"`
	CheckIn       string                    `json:"checkIn" binding:"required"`
	CheckOut      string                    `json:"checkOut" binding:"required"`
	Adults        int                       `json:"adults" binding:"required,min=1"`
	ChildrenAges  []int                     `json:"childrenAges"`
	Guests        []GuestPayload            `json:"guests" binding:"required,min=1"`
	Selections    []business.RoomSelection  `json:"selections" binding:"required,min=1"`
	ArrivalTime   string                    `json:"arrivalTime"`
	Promo         *business.PromoDiscount   `json:"promo,omitempty"`
	Loyalty       *business.LoyaltyDiscount `json:"loyalty,omitempty"`
	SpecialNotes  string                    `json:"specialNotes"`
	ContactEmail  string                    `json:"contactEmail" binding:"required,email"`
	ContactPhone  string                    `json:"contactPhone" binding:"required"`
	PreferredLang string                    `json:"preferredLang"`
	TotalPrice    float64                   `json:"totalPrice" binding:"required"`
}
