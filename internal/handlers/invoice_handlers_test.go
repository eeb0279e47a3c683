package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/mocks"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status filter rides through to the service", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			ListInvoices(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.ListInvoicesParams) (*responses.InvoiceList, error) {
				assert.Equal(t, constants.InvoiceStatusUnpaid, p.Status)
				return &responses.InvoiceList{
					Invoices:   []business.Invoice{*unpaidInvoice()},
					TotalItems: 7,
				}, nil
			})
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/invoices?status=unpaid", nil)

		handler.ListInvoices(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response PaginatedResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, 7, response.Pagination.TotalItems)
		assert.False(t, response.HasMore)
	})

	t.Run("record service failure", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			ListInvoices(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("crs unreachable"))
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/invoices", nil)

		handler.ListInvoices(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Failed to list invoices")
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		invoiceID      string
		setupMock      func(m *mocks.MockInvoiceService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "empty invoice ID",
			invoiceID:      "",
			setupMock:      func(m *mocks.MockInvoiceService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invoice ID is required",
		},
		{
			name:      "unknown invoice",
			invoiceID: testInvoiceID,
			setupMock: func(m *mocks.MockInvoiceService) {
				m.EXPECT().
					GetInvoice(gomock.Any(), testInvoiceID).
					Return(nil, upstreamNotFound(http.MethodGet, "https://crs.example.com/invoices/"+testInvoiceID))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Invoice not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
			tt.setupMock(invoiceMock)
			handler := NewInvoiceHandler(invoiceMock, nil)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/admin/invoices/"+tt.invoiceID, nil)
			c.Params = gin.Params{
				{Key: "invoice_id", Value: tt.invoiceID},
			}

			handler.GetInvoice(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}

	t.Run("returns the invoice", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			GetInvoice(gomock.Any(), testInvoiceID).
			Return(unpaidInvoice(), nil)
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/invoices/"+testInvoiceID, nil)
		c.Params = gin.Params{
			{Key: "invoice_id", Value: testInvoiceID},
		}

		handler.GetInvoice(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var invoice business.Invoice
		err := json.Unmarshal(w.Body.Bytes(), &invoice)
		require.NoError(t, err)
		assert.Equal(t, "INV-2026-0047", invoice.Number)
		assert.Equal(t, constants.InvoiceStatusUnpaid, invoice.Status)
	})
}

func TestInvoiceHandler_CreatePaymentLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("issues a link with its QR rendering", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			CreatePaymentLink(gomock.Any(), testInvoiceID).
			Return(&business.PaymentLink{
				InvoiceID:  testInvoiceID,
				SessionURL: "https://pay.example.com/cs_884",
				QRCodeData: "data:image/png;base64,iVBOR",
				Amount:     3480,
				Currency:   "SAR",
				CreatedAt:  time.Now(),
			}, nil)
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/invoices/"+testInvoiceID+"/payment-link", nil)
		c.Params = gin.Params{
			{Key: "invoice_id", Value: testInvoiceID},
		}

		handler.CreatePaymentLink(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var link business.PaymentLink
		err := json.Unmarshal(w.Body.Bytes(), &link)
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/cs_884", link.SessionURL)
		assert.Contains(t, link.QRCodeData, "data:image/png;base64")
	})

	t.Run("a paid invoice cannot take a link", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			CreatePaymentLink(gomock.Any(), testInvoiceID).
			Return(nil, fmt.Errorf("%w: invoice is paid", services.ErrInvalidStatusTransition))
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/invoices/"+testInvoiceID+"/payment-link", nil)
		c.Params = gin.Params{
			{Key: "invoice_id", Value: testInvoiceID},
		}

		handler.CreatePaymentLink(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "invalid status transition")
	})
}

func TestInvoiceHandler_SendInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("channels are required", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/invoices/"+testInvoiceID+"/send",
			bytes.NewBufferString(`{"channels":[]}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{
			{Key: "invoice_id", Value: testInvoiceID},
		}

		handler.SendInvoice(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Invalid send payload")
	})

	t.Run("delivers over the selected channels", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			SendInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.SendInvoiceParams) error {
				assert.Equal(t, testInvoiceID, p.InvoiceID)
				assert.Equal(t, []string{"email", "whatsapp"}, p.Channels)
				assert.Equal(t, "Please settle before check-in.", p.Note)
				return nil
			})
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(requests.SendInvoiceRequest{
			Channels: []string{"email", "whatsapp"},
			Note:     "Please settle before check-in.",
		})
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/invoices/"+testInvoiceID+"/send", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{
			{Key: "invoice_id", Value: testInvoiceID},
		}

		handler.SendInvoice(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invoice sent")
	})

	t.Run("sending a void invoice conflicts", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			SendInvoice(gomock.Any(), gomock.Any()).
			Return(services.ErrInvalidStatusTransition)
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(requests.SendInvoiceRequest{Channels: []string{"email"}})
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/invoices/"+testInvoiceID+"/send", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{
			{Key: "invoice_id", Value: testInvoiceID},
		}

		handler.SendInvoice(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestInvoiceHandler_MarkInvoicePaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("applies a manual settlement", func(t *testing.T) {
		paid := unpaidInvoice()
		paid.Status = constants.InvoiceStatusPaid

		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			MarkInvoicePaid(gomock.Any(), testInvoiceID).
			Return(paid, nil)
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/invoices/"+testInvoiceID+"/mark-paid", nil)
		c.Params = gin.Params{
			{Key: "invoice_id", Value: testInvoiceID},
		}

		handler.MarkInvoicePaid(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var invoice business.Invoice
		err := json.Unmarshal(w.Body.Bytes(), &invoice)
		require.NoError(t, err)
		assert.Equal(t, constants.InvoiceStatusPaid, invoice.Status)
	})

	t.Run("unknown invoice", func(t *testing.T) {
		invoiceMock := mocks.NewMockInvoiceServiceForTest(t)
		invoiceMock.EXPECT().
			MarkInvoicePaid(gomock.Any(), testInvoiceID).
			Return(nil, upstreamNotFound(http.MethodPost, "https://crs.example.com/invoices/"+testInvoiceID+"/mark-paid"))
		handler := NewInvoiceHandler(invoiceMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/invoices/"+testInvoiceID+"/mark-paid", nil)
		c.Params = gin.Params{
			{Key: "invoice_id", Value: testInvoiceID},
		}

		handler.MarkInvoicePaid(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
