package handlers

import (
	"bytes"
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
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
)

func TestLoyaltyHandler_GetBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("anonymous caller", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyServiceForTest(t)
		handler := NewLoyaltyHandler(loyaltyMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/loyalty/balance", nil)

		handler.GetBalance(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Authentication required")
	})

	t.Run("returns the caller's wallet", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyServiceForTest(t)
		loyaltyMock.EXPECT().
			GetBalance(gomock.Any(), testUserID).
			Return(&responses.LoyaltyBalance{
				UserID:          testUserID,
				Points:          1200,
				RedemptionValue: 0.05,
				Currency:        "SAR",
			}, nil)
		handler := NewLoyaltyHandler(loyaltyMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(auth.UserIDKey, testUserID)
		c.Request = httptest.NewRequest(http.MethodGet, "/loyalty/balance", nil)

		handler.GetBalance(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var balance responses.LoyaltyBalance
		err := json.Unmarshal(w.Body.Bytes(), &balance)
		require.NoError(t, err)
		assert.Equal(t, testUserID, balance.UserID)
		assert.Equal(t, 1200, balance.Points)
	})

	t.Run("loyalty service failure", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyServiceForTest(t)
		loyaltyMock.EXPECT().
			GetBalance(gomock.Any(), testUserID).
			Return(nil, errors.New("loyalty service unreachable"))
		handler := NewLoyaltyHandler(loyaltyMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(auth.UserIDKey, testUserID)
		c.Request = httptest.NewRequest(http.MethodGet, "/loyalty/balance", nil)

		handler.GetBalance(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Failed to fetch loyalty balance")
	})
}

func TestLoyaltyHandler_PreviewRedemption(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("anonymous caller", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyServiceForTest(t)
		handler := NewLoyaltyHandler(loyaltyMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/loyalty/preview",
			bytes.NewBufferString(`{"points":500}`))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.PreviewRedemption(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("points must be positive", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyServiceForTest(t)
		handler := NewLoyaltyHandler(loyaltyMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(auth.UserIDKey, testUserID)
		c.Request = httptest.NewRequest(http.MethodPost, "/loyalty/preview",
			bytes.NewBufferString(`{"points":-10}`))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.PreviewRedemption(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Invalid redemption preview payload")
	})

	t.Run("previews the funded discount", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyServiceForTest(t)
		loyaltyMock.EXPECT().
			PreviewRedemption(gomock.Any(), params.LoyaltyPreviewParams{UserID: testUserID, Points: 500}).
			Return(&responses.LoyaltyPreview{Points: 500, Amount: 25, Currency: "SAR"}, nil)
		handler := NewLoyaltyHandler(loyaltyMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(auth.UserIDKey, testUserID)

		body, _ := json.Marshal(requests.LoyaltyPreviewRequest{Points: 500})
		c.Request = httptest.NewRequest(http.MethodPost, "/loyalty/preview", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.PreviewRedemption(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var preview responses.LoyaltyPreview
		err := json.Unmarshal(w.Body.Bytes(), &preview)
		require.NoError(t, err)
		assert.Equal(t, 500, preview.Points)
		assert.Equal(t, 25.0, preview.Amount)
	})

	t.Run("loyalty service failure", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyServiceForTest(t)
		loyaltyMock.EXPECT().
			PreviewRedemption(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("loyalty service unreachable"))
		handler := NewLoyaltyHandler(loyaltyMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set(auth.UserIDKey, testUserID)

		body, _ := json.Marshal(requests.LoyaltyPreviewRequest{Points: 500})
		c.Request = httptest.NewRequest(http.MethodPost, "/loyalty/preview", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.PreviewRedemption(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Failed to preview redemption")
	})
}
