package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/whatsapp"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// InboxService is the back-office WhatsApp inbox. Conversation history lives
// on the gateway; this tier reads it, relays agent replies, and pushes live
// events to connected dashboards.
type InboxService struct {
	whatsapp    interfaces.WhatsAppAPI
	broadcaster interfaces.EventBroadcaster
	logger      *zap.Logger
}

// NewInboxService creates a new inbox service
func NewInboxService(whatsappAPI interfaces.WhatsAppAPI, broadcaster interfaces.EventBroadcaster) *InboxService {
	return &InboxService{
		whatsapp:    whatsappAPI,
		broadcaster: broadcaster,
		logger:      logger.Log,
	}
}

// ListConversations pages through the gateway's conversation roster, most
// recently active first.
func (s *InboxService) ListConversations(ctx context.Context, limit, offset int32) (*responses.ConversationList, error) {
	page, err := s.whatsapp.ListConversations(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	conversations := make([]business.Conversation, 0, len(page.Conversations))
	for _, conv := range page.Conversations {
		conversations = append(conversations, toConversation(conv))
	}
	return &responses.ConversationList{
		Conversations: conversations,
		TotalItems:    page.TotalItems,
	}, nil
}

// ListMessages pages through one conversation's history.
func (s *InboxService) ListMessages(ctx context.Context, conversationID string, limit, offset int32) (*responses.MessageList, error) {
	page, err := s.whatsapp.ListMessages(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]business.Message, 0, len(page.Messages))
	for _, msg := range page.Messages {
		messages = append(messages, toMessage(msg))
	}
	return &responses.MessageList{
		Messages:   messages,
		TotalItems: page.TotalItems,
	}, nil
}

// SendMessage relays an agent reply into the conversation and mirrors it to
// every connected dashboard so other agents see it immediately.
func (s *InboxService) SendMessage(ctx context.Context, conversationID, body, agentID string) (*business.Message, error) {
	sent, err := s.whatsapp.Reply(ctx, conversationID, body)
	if err != nil {
		return nil, fmt.Errorf("failed to send reply: %w", err)
	}

	message := toMessage(*sent)
	message.AgentID = agentID
	if message.ConversationID == "" {
		message.ConversationID = conversationID
	}

	s.broadcaster.Broadcast(business.InboxEvent{
		Type:           constants.EventMessageOutbound,
		ConversationID: message.ConversationID,
		Message:        &message,
	})

	s.logger.Info("Inbox reply sent",
		zap.String("conversation_id", message.ConversationID),
		zap.String("agent_id", agentID))
	return &message, nil
}

// MarkRead clears a conversation's unread counter on the gateway.
func (s *InboxService) MarkRead(ctx context.Context, conversationID string) error {
	if err := s.whatsapp.MarkRead(ctx, conversationID); err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}

// HandleInboundMessage fans a gateway-relayed customer message out to the
// dashboards. The gateway has already persisted it; a broadcast with no
// listeners is not an error.
func (s *InboxService) HandleInboundMessage(ctx context.Context, msg business.Message) error {
	if msg.ConversationID == "" {
		return fmt.Errorf("inbound message has no conversation id")
	}
	if msg.Direction == "" {
		msg.Direction = constants.MessageInbound
	}

	s.broadcaster.Broadcast(business.InboxEvent{
		Type:           constants.EventMessageInbound,
		ConversationID: msg.ConversationID,
		Message:        &msg,
	})

	s.logger.Info("Inbound message relayed",
		zap.String("conversation_id", msg.ConversationID),
		zap.String("message_id", msg.ID))
	return nil
}

func toConversation(conv whatsapp.ConversationResponse) business.Conversation {
	return business.Conversation{
		ID:          conv.ID,
		Phone:       conv.Phone,
		ProfileName: conv.ProfileName,
		LastMessage: conv.LastMessage,
		UnreadCount: conv.UnreadCount,
		UpdatedAt:   conv.UpdatedAt,
	}
}

func toMessage(msg whatsapp.MessageResponse) business.Message {
	return business.Message{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Direction:      msg.Direction,
		Body:           msg.Body,
		MediaURL:       msg.MediaURL,
		SentAt:         msg.SentAt,
	}
}
