package params

import "io"

// ListReservationsParams filters the admin reservations list.
type ListReservationsParams struct {
	Status string
	Query  string
	Limit  int32
	Offset int32
}

// ListClientsParams filters the admin clients list.
type ListClientsParams struct {
	Query  string
	Limit  int32
	Offset int32
}

// ListInvoicesParams filters the admin invoices list.
type ListInvoicesParams struct {
	Status string
	Limit  int32
	Offset int32
}

// SendInvoiceParams delivers an invoice notice over the selected channels.
type SendInvoiceParams struct {
	InvoiceID string
	Channels  []string // constants.EmailChannel, constants.WhatsAppChannel
	Note      string
}

// AnalyticsParams bounds the dashboard aggregation window.
type AnalyticsParams struct {
	FromMonth string // YYYY-MM, inclusive; empty means trailing twelve months
	ToMonth   string
}

// UploadImageParams carries a CMS image upload.
type UploadImageParams struct {
	File     io.Reader
	Filename string
	Folder   string
}
