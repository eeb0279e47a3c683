package business

// PromoDiscount is a server-validated absolute reduction tied to a
// user-entered code. FinalValue is the post-discount total the validation
// service computed from the pre-loyalty booking value; it replaces the
// composed total rather than being subtracted from it.
type PromoDiscount struct {
	Code          string  `json:"code"`
	Discount      float64 `json:"discount"`
	FinalValue    float64 `json:"finalValue"`
	OriginalValue float64 `json:"originalValue"`
	Valid         bool    `json:"valid"`
}

// LoyaltyDiscount is an absolute reduction funded by redeeming accumulated
// loyalty points.
type LoyaltyDiscount struct {
	Points int     `json:"points"`
	Amount float64 `json:"amount"`
}

// Guest is one traveler on the booking roster.
type Guest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	IsLead      bool   `json:"is_lead"`
}

// BookingDraft is the in-progress, client-held aggregate of a booking. It is
// never persisted by this tier; submission hands it to the reservation system
// of record.
type BookingDraft struct {
	HotelID       string           `json:"hotel_id"`
	HotelName     string           `json:"hotel_name,omitempty"`
	Destination   string           `json:"destination,omitempty"`
	CheckIn       string           `json:"check_in"`  // YYYY-MM-DD
	CheckOut      string           `json:"check_out"` // YYYY-MM-DD
	Adults        int              `json:"adults"`
	ChildrenAges  []int            `json:"children_ages,omitempty"`
	Guests        []Guest          `json:"guests"`
	Selections    []RoomSelection  `json:"selections"`
	ArrivalTime   string           `json:"arrival_time,omitempty"`
	Promo         *PromoDiscount   `json:"promo,omitempty"`
	Loyalty       *LoyaltyDiscount `json:"loyalty,omitempty"`
	SpecialNotes  string           `json:"special_notes,omitempty"`
	UserID        string           `json:"user_id,omitempty"`
	ContactEmail  string           `json:"contact_email,omitempty"`
	ContactPhone  string           `json:"contact_phone,omitempty"`
	PreferredLang string           `json:"preferred_lang,omitempty"`
}
