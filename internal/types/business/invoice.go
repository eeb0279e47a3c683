package business

import "time"

// Invoice is an invoice record owned by the reservation system of record.
type Invoice struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	ReservationID string     `json:"reservation_id"`
	ClientID      string     `json:"client_id"`
	ClientName    string     `json:"client_name"`
	ClientEmail   string     `json:"client_email,omitempty"`
	ClientPhone   string     `json:"client_phone,omitempty"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Status        string     `json:"status"` // "unpaid", "paid", "void"
	DueDate       *time.Time `json:"due_date,omitempty"`
	PDFURL        string     `json:"pdf_url,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// PaymentLink is a sharable payment-session URL for an invoice, with a QR
// rendering for WhatsApp delivery.
type PaymentLink struct {
	InvoiceID  string    `json:"invoice_id"`
	SessionURL string    `json:"session_url"`
	QRCodeData string    `json:"qr_code_data"` // data:image/png;base64 URL
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}
