package handlers

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/mock/gomock"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/mocks"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

const (
	testStripeSecret = "whsec_test_4471"
	testInboundToken = "wht_inbound_9ern"
)

type webhookHandlerFixture struct {
	payments *mocks.MockPaymentWebhookService
	inbox    *mocks.MockInboxService
	handler  *WebhookHandler
}

func newWebhookHandlerFixture(t *testing.T, whatsappToken string) *webhookHandlerFixture {
	f := &webhookHandlerFixture{
		payments: mocks.NewMockPaymentWebhookServiceForTest(t),
		inbox:    mocks.NewMockInboxServiceForTest(t),
	}
	f.handler = NewWebhookHandler(f.payments, f.inbox, testStripeSecret, whatsappToken, nil)
	return f
}

// signedCheckoutPayload builds a provider event body plus the signature header
// the verifier expects for it.
func signedCheckoutPayload(t *testing.T) ([]byte, string) {
	payload, err := json.Marshal(map[string]interface{}{
		"id":          "evt_41",
		"object":      "event",
		"api_version": stripe.APIVersion,
		"type":        "checkout.session.completed",
		"data": map[string]interface{}{
			"object": map[string]interface{}{
				"id":                  "cs_test_871",
				"client_reference_id": "GT-7F3K9Q2M",
			},
		},
	})
	require.NoError(t, err)

	now := time.Now()
	signature := webhook.ComputeSignature(now, payload, testStripeSecret)
	header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(signature))
	return payload, header
}

func TestWebhookHandler_HandleStripeWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing signature header", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, testInboundToken)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/payments/stripe",
			bytes.NewBufferString(`{"id":"evt_41"}`))

		f.handler.HandleStripeWebhook(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Missing signature header")
	})

	t.Run("forged signature", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, testInboundToken)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/payments/stripe",
			bytes.NewBufferString(`{"id":"evt_41"}`))
		c.Request.Header.Set("Stripe-Signature",
			fmt.Sprintf("t=%d,v1=deadbeef", time.Now().Unix()))

		f.handler.HandleStripeWebhook(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Webhook signature verification failed")
	})

	t.Run("a verified event reaches the service", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, testInboundToken)
		f.payments.EXPECT().
			ProcessEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event stripe.Event) error {
				assert.Equal(t, "evt_41", event.ID)
				assert.Equal(t, stripe.EventType("checkout.session.completed"), event.Type)
				return nil
			})

		payload, header := signedCheckoutPayload(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/payments/stripe",
			bytes.NewBuffer(payload))
		c.Request.Header.Set("Stripe-Signature", header)

		f.handler.HandleStripeWebhook(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
	})

	t.Run("a retryable failure answers non-2xx so the provider redelivers", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, testInboundToken)
		f.payments.EXPECT().
			ProcessEvent(gomock.Any(), gomock.Any()).
			Return(errors.New("crs unreachable"))

		payload, header := signedCheckoutPayload(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/payments/stripe",
			bytes.NewBuffer(payload))
		c.Request.Header.Set("Stripe-Signature", header)

		f.handler.HandleStripeWebhook(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Failed to process webhook event")
	})
}

func TestWebhookHandler_HandleWhatsAppInbound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	inboundBody := func() []byte {
		body, _ := json.Marshal(InboundMessageRequest{
			ID:             "wamid.4471",
			ConversationID: "conv_5512",
			Body:           "Is breakfast included?",
			SentAt:         time.Date(2026, 3, 18, 11, 4, 0, 0, time.UTC),
		})
		return body
	}

	t.Run("no token configured rejects everything", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, "")

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp/inbound",
			bytes.NewBuffer(inboundBody()))
		c.Request.Header.Set("X-Webhook-Token", "anything")

		f.handler.HandleWhatsAppInbound(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, testInboundToken)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp/inbound",
			bytes.NewBuffer(inboundBody()))
		c.Request.Header.Set("X-Webhook-Token", "guessed")

		f.handler.HandleWhatsAppInbound(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Invalid webhook token")
	})

	t.Run("conversation id is required", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, testInboundToken)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp/inbound",
			bytes.NewBufferString(`{"body":"hello"}`))
		c.Request.Header.Set("X-Webhook-Token", testInboundToken)

		f.handler.HandleWhatsAppInbound(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Invalid inbound message payload")
	})

	t.Run("relays the message marked inbound", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, testInboundToken)
		f.inbox.EXPECT().
			HandleInboundMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg business.Message) error {
				assert.Equal(t, "conv_5512", msg.ConversationID)
				assert.Equal(t, constants.MessageInbound, msg.Direction)
				assert.Equal(t, "Is breakfast included?", msg.Body)
				return nil
			})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp/inbound",
			bytes.NewBuffer(inboundBody()))
		c.Request.Header.Set("X-Webhook-Token", testInboundToken)

		f.handler.HandleWhatsAppInbound(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"received":true}`, w.Body.String())
	})

	t.Run("relay failure", func(t *testing.T) {
		f := newWebhookHandlerFixture(t, testInboundToken)
		f.inbox.EXPECT().
			HandleInboundMessage(gomock.Any(), gomock.Any()).
			Return(errors.New("unknown conversation"))

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp/inbound",
			bytes.NewBuffer(inboundBody()))
		c.Request.Header.Set("X-Webhook-Token", testInboundToken)

		f.handler.HandleWhatsAppInbound(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Failed to relay inbound message")
	})
}
