package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/auth"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/mocks"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

func submitBookingBody() requests.SubmitBookingRequest {
	return requests.SubmitBookingRequest{
		HotelID:   "htl_2211",
		HotelName: "Anjum Makkah",
		CheckIn:   "2026-09-12",
		CheckOut:  "2026-09-15",
		Adults:    2,
		Guests: []requests.GuestPayload{
			{FirstName: "Layla", LastName: "Farouk", IsLead: true},
		},
		Selections: []business.RoomSelection{
			{Rate: business.Rate{RoomName: "Deluxe King", Price: 500, Currency: "SAR"}, Count: 2},
		},
		ContactEmail: "layla@example.com",
		ContactPhone: "+966501234567",
		TotalPrice:   1040,
	}
}

func TestBookingHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		bookingMock := mocks.NewMockBookingServiceForTest(t)
		handler := NewBookingHandler(bookingMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings/quote",
			bytes.NewBufferString(`{"selections":[]}`))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Quote(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Invalid quote payload")
	})

	t.Run("returns the composed quote", func(t *testing.T) {
		bookingMock := mocks.NewMockBookingServiceForTest(t)
		bookingMock.EXPECT().
			QuoteSelections(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&responses.QuoteResult{
				Quote:       business.Quote{Base: 1000, Tax: 40, Total: 1040, Currency: "SAR"},
				FinalAmount: 940,
				PromoCode:   "RAMADAN10",
				PromoValue:  100,
			})
		handler := NewBookingHandler(bookingMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(requests.QuoteRequest{
			Selections: []business.RoomSelection{
				{Rate: business.Rate{RoomName: "Deluxe King", Price: 500, Currency: "SAR"}, Count: 2},
			},
			Promo: &business.PromoDiscount{Code: "RAMADAN10", Discount: 100, Valid: true},
		})
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings/quote", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.Quote(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var result responses.QuoteResult
		err := json.Unmarshal(w.Body.Bytes(), &result)
		require.NoError(t, err)
		assert.Equal(t, 1040.0, result.Quote.Total)
		assert.Equal(t, 940.0, result.FinalAmount)
		assert.Equal(t, "RAMADAN10", result.PromoCode)
	})
}

func TestBookingHandler_SubmitBooking_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	missingEmail := submitBookingBody()
	missingEmail.ContactEmail = ""

	malformedEmail := submitBookingBody()
	malformedEmail.ContactEmail = "not-an-email"

	noGuests := submitBookingBody()
	noGuests.Guests = nil

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid booking payload",
		},
		{
			name:           "missing contact email",
			requestBody:    missingEmail,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid booking payload",
		},
		{
			name:           "malformed contact email",
			requestBody:    malformedEmail,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid booking payload",
		},
		{
			name:           "no guests",
			requestBody:    noGuests,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid booking payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingMock := mocks.NewMockBookingServiceForTest(t)
			handler := NewBookingHandler(bookingMock, nil)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			var requestBody []byte
			if str, ok := tt.requestBody.(string); ok {
				requestBody = []byte(str)
			} else {
				requestBody, _ = json.Marshal(tt.requestBody)
			}

			c.Request = httptest.NewRequest(http.MethodPost, "/bookings",
				bytes.NewBuffer(requestBody))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.SubmitBooking(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestBookingHandler_SubmitBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("guest checkout submits with no user identity", func(t *testing.T) {
		bookingMock := mocks.NewMockBookingServiceForTest(t)
		bookingMock.EXPECT().
			SubmitBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.SubmitBookingParams) (*responses.BookingSubmission, error) {
				assert.Empty(t, p.Draft.UserID)
				assert.Equal(t, 1040.0, p.ClientTotal)
				assert.Equal(t, "htl_2211", p.Draft.HotelID)
				require.Len(t, p.Draft.Guests, 1)
				assert.True(t, p.Draft.Guests[0].IsLead)
				return &responses.BookingSubmission{
					SessionURL:  "https://pay.example.com/cs_771",
					Reference:   "GT-7F3K9Q2M",
					FinalAmount: 1040,
					Currency:    "SAR",
				}, nil
			})
		handler := NewBookingHandler(bookingMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(submitBookingBody())
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.SubmitBooking(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var submission responses.BookingSubmission
		err := json.Unmarshal(w.Body.Bytes(), &submission)
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example.com/cs_771", submission.SessionURL)
		assert.Equal(t, "GT-7F3K9Q2M", submission.Reference)
	})

	t.Run("authenticated caller's identity rides on the draft", func(t *testing.T) {
		bookingMock := mocks.NewMockBookingServiceForTest(t)
		bookingMock.EXPECT().
			SubmitBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.SubmitBookingParams) (*responses.BookingSubmission, error) {
				assert.Equal(t, testUserID, p.Draft.UserID)
				return &responses.BookingSubmission{SessionURL: "https://pay.example.com/cs_772"}, nil
			})
		handler := NewBookingHandler(bookingMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(auth.UserIDKey, testUserID)

		body, _ := json.Marshal(submitBookingBody())
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.SubmitBooking(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejected draft is the caller's fault", func(t *testing.T) {
		bookingMock := mocks.NewMockBookingServiceForTest(t)
		bookingMock.EXPECT().
			SubmitBooking(gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidDraft)
		handler := NewBookingHandler(bookingMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(submitBookingBody())
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.SubmitBooking(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "invalid booking draft")
	})

	t.Run("pipeline failure is an internal error", func(t *testing.T) {
		bookingMock := mocks.NewMockBookingServiceForTest(t)
		bookingMock.EXPECT().
			SubmitBooking(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("prebook hold failed"))
		handler := NewBookingHandler(bookingMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(submitBookingBody())
		c.Request = httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.SubmitBooking(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Failed to submit booking")
	})
}
