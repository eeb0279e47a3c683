package business

// StatusCount is one bar of the bookings-by-status chart.
type StatusCount struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

// RevenueByCurrency aggregates confirmed revenue per settlement currency.
type RevenueByCurrency struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// HotelCount ranks hotels by booking volume.
type HotelCount struct {
	HotelID   string `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	Count     int    `json:"count"`
}

// MonthlyPoint is one point of the monthly bookings/revenue series.
type MonthlyPoint struct {
	Month    string  `json:"month"` // YYYY-MM
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// DashboardMetrics is the admin dashboard KPI payload.
type DashboardMetrics struct {
	TotalReservations int                 `json:"total_reservations"`
	TotalClients      int                 `json:"total_clients"`
	UnpaidInvoices    int                 `json:"unpaid_invoices"`
	ByStatus          []StatusCount       `json:"by_status"`
	Revenue           []RevenueByCurrency `json:"revenue"`
	TopHotels         []HotelCount        `json:"top_hotels"`
	Monthly           []MonthlyPoint      `json:"monthly"`
}
