package business

import "time"

// Reservation is a booking record as held by the reservation system of
// record. This tier reads and transitions it but never stores it.
type Reservation struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email,omitempty"`
	ClientPhone string    `json:"client_phone,omitempty"`
	HotelID     string    `json:"hotel_id"`
	HotelName   string    `json:"hotel_name"`
	Destination string    `json:"destination,omitempty"`
	CheckIn     string    `json:"check_in"`
	CheckOut    string    `json:"check_out"`
	Rooms       int       `json:"rooms"`
	Adults      int       `json:"adults"`
	TotalPrice  float64   `json:"total_price"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"` // see constants.ReservationStatusLabels
	StatusLabel string    `json:"status_label,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Client is a customer profile owned by the reservation system of record.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Nationality  string    `json:"nationality,omitempty"`
	LoyaltyTier  string    `json:"loyalty_tier,omitempty"`
	TotalSpent   float64   `json:"total_spent"`
	BookingCount int       `json:"booking_count"`
	CreatedAt    time.Time `json:"created_at"`
}
