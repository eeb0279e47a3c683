package whatsapp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"

	httpClient "github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/http"
)

// WhatsAppConfig holds the gateway credentials. The gateway authenticates
// with an account SID and auth token pair.
type WhatsAppConfig struct {
	BaseURL    string `json:"base_url"`
	AccountSID string `json:"account_sid"`
	AuthToken  string `json:"auth_token"`
	SenderID   string `json:"sender_id"`
}

// WhatsAppClient talks to the WhatsApp business gateway. The gateway stores
// conversation history and relays inbound messages to our webhook.
type WhatsAppClient struct {
	accountSID string
	authToken  string
	senderID   string
	httpClient *httpClient.HTTPClient
}

func NewWhatsAppClient(config WhatsAppConfig) *WhatsAppClient {
	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(config.BaseURL),
	)
	return &WhatsAppClient{
		accountSID: config.AccountSID,
		authToken:  config.AuthToken,
		senderID:   config.SenderID,
		httpClient: client,
	}
}

// SendMessageRequest is the gateway's outbound message payload.
type SendMessageRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// MessageResponse is a message as stored by the gateway.
type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Direction      string    `json:"direction"`
	Body           string    `json:"body"`
	MediaURL       string    `json:"mediaUrl,omitempty"`
	Status         string    `json:"status"`
	SentAt         time.Time `json:"sentAt"`
}

// ConversationResponse is a conversation summary from the gateway.
type ConversationResponse struct {
	ID          string    `json:"id"`
	Phone       string    `json:"phone"`
	ProfileName string    `json:"profileName,omitempty"`
	LastMessage string    `json:"lastMessage,omitempty"`
	UnreadCount int       `json:"unreadCount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ConversationListResponse is a page of conversations.
type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	TotalItems    int64                  `json:"totalItems"`
}

// MessageListResponse is a page of one conversation's messages.
type MessageListResponse struct {
	Messages   []MessageResponse `json:"messages"`
	TotalItems int64             `json:"totalItems"`
}

// SendMessage relays an outbound message through the gateway.
func (c *WhatsAppClient) SendMessage(ctx context.Context, to, body string) (*MessageResponse, error) {
	req := SendMessageRequest{
		From: c.senderID,
		To:   to,
		Body: body,
	}

	resp, err := c.httpClient.Post(
		ctx,
		"/messages",
		req,
		httpClient.WithBasicAuth(c.accountSID, c.authToken),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send WhatsApp message")
	}

	var message MessageResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &message); err != nil {
		return nil, errors.Wrap(err, "failed to process message response")
	}

	return &message, nil
}

// Reply posts an outbound message into an existing conversation.
func (c *WhatsAppClient) Reply(ctx context.Context, conversationID, body string) (*MessageResponse, error) {
	req := SendMessageRequest{
		From: c.senderID,
		Body: body,
	}

	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/conversations/%s/messages", conversationID),
		req,
		httpClient.WithBasicAuth(c.accountSID, c.authToken),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reply in conversation")
	}

	var message MessageResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &message); err != nil {
		return nil, errors.Wrap(err, "failed to process message response")
	}

	return &message, nil
}

// ListConversations returns a page of conversations ordered by most recent
// activity.
func (c *WhatsAppClient) ListConversations(ctx context.Context, limit, offset int32) (*ConversationListResponse, error) {
	resp, err := c.httpClient.Get(
		ctx,
		"/conversations",
		httpClient.WithBasicAuth(c.accountSID, c.authToken),
		httpClient.WithQueryParam("limit", strconv.Itoa(int(limit))),
		httpClient.WithQueryParam("offset", strconv.Itoa(int(offset))),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations")
	}

	var listResponse ConversationListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, errors.Wrap(err, "failed to process conversation list response")
	}

	return &listResponse, nil
}

// ListMessages returns a page of one conversation's history, newest first.
func (c *WhatsAppClient) ListMessages(ctx context.Context, conversationID string, limit, offset int32) (*MessageListResponse, error) {
	resp, err := c.httpClient.Get(
		ctx,
		fmt.Sprintf("/conversations/%s/messages", conversationID),
		httpClient.WithBasicAuth(c.accountSID, c.authToken),
		httpClient.WithQueryParam("limit", strconv.Itoa(int(limit))),
		httpClient.WithQueryParam("offset", strconv.Itoa(int(offset))),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	var listResponse MessageListResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &listResponse); err != nil {
		return nil, errors.Wrap(err, "failed to process message list response")
	}

	return &listResponse, nil
}

// MarkRead clears a conversation's unread counter.
func (c *WhatsAppClient) MarkRead(ctx context.Context, conversationID string) error {
	resp, err := c.httpClient.Post(
		ctx,
		fmt.Sprintf("/conversations/%s/read", conversationID),
		nil,
		httpClient.WithBasicAuth(c.accountSID, c.authToken),
	)
	if err != nil {
		return errors.Wrap(err, "failed to mark conversation read")
	}
	defer resp.Body.Close()

	return nil
}
