package constants

// Message directions within a WhatsApp conversation
const (
	MessageInbound  = "inbound"
	MessageOutbound = "outbound"
)

// Event types pushed to back-office dashboards over the inbox websocket
const (
	EventMessageInbound  = "message.inbound"
	EventMessageOutbound = "message.outbound"
	EventPaymentUpdate   = "payment.update"
)
