package business

import "time"

// Conversation is a WhatsApp thread between the agency and one phone number.
type Conversation struct {
	ID          string    `json:"id"`
	Phone       string    `json:"phone"`
	ProfileName string    `json:"profile_name,omitempty"`
	LastMessage string    `json:"last_message,omitempty"`
	UnreadCount int       `json:"unread_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Message is one WhatsApp message within a conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Direction      string    `json:"direction"` // "inbound" or "outbound"
	Body           string    `json:"body"`
	MediaURL       string    `json:"media_url,omitempty"`
	AgentID        string    `json:"agent_id,omitempty"`
	SentAt         time.Time `json:"sent_at"`
}

// InboxEvent is what the inbox hub broadcasts to connected dashboards.
type InboxEvent struct {
	Type           string   `json:"type"` // "message.inbound", "message.outbound", "payment.update"
	ConversationID string   `json:"conversation_id,omitempty"`
	Message        *Message `json:"message,omitempty"`
	Reference      string   `json:"reference,omitempty"`
	Status         string   `json:"status,omitempty"`
}
