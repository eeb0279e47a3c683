package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

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

func TestReservationHandler_ListReservations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters ride through to the service", func(t *testing.T) {
		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			ListReservations(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.ListReservationsParams) (*responses.ReservationList, error) {
				assert.Equal(t, constants.ReservationStatusPending, p.Status)
				assert.Equal(t, "layla", p.Query)
				assert.Equal(t, int32(20), p.Limit)
				assert.Equal(t, int32(20), p.Offset)
				return &responses.ReservationList{
					Reservations: []business.Reservation{*pendingReservation()},
					TotalItems:   41,
				}, nil
			})
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet,
			"/admin/reservations?status=pending&q=layla&page=2&limit=20", nil)

		handler.ListReservations(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response PaginatedResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "list", response.Object)
		assert.Equal(t, 2, response.Pagination.CurrentPage)
		assert.Equal(t, 41, response.Pagination.TotalItems)
		assert.Equal(t, 3, response.Pagination.TotalPages)
		assert.True(t, response.HasMore)
	})

	t.Run("rejects a malformed page", func(t *testing.T) {
		reservationMock := mocks.NewMockReservationServiceForTest(t)
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/reservations?page=two", nil)

		handler.ListReservations(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("record service failure", func(t *testing.T) {
		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			ListReservations(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("crs unreachable"))
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/reservations", nil)

		handler.ListReservations(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Failed to list reservations")
	})
}

func TestReservationHandler_GetReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		reservationID  string
		setupMock      func(m *mocks.MockReservationService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "empty reservation ID",
			reservationID:  "",
			setupMock:      func(m *mocks.MockReservationService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Reservation ID is required",
		},
		{
			name:          "unknown reservation",
			reservationID: testReservationID,
			setupMock: func(m *mocks.MockReservationService) {
				m.EXPECT().
					GetReservation(gomock.Any(), testReservationID).
					Return(nil, upstreamNotFound(http.MethodGet, "https://crs.example.com/reservations/"+testReservationID))
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Reservation not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservationMock := mocks.NewMockReservationServiceForTest(t)
			tt.setupMock(reservationMock)
			handler := NewReservationHandler(reservationMock, nil)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/admin/reservations/"+tt.reservationID, nil)
			c.Params = gin.Params{
				{Key: "reservation_id", Value: tt.reservationID},
			}

			handler.GetReservation(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}

	t.Run("returns the reservation", func(t *testing.T) {
		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			GetReservation(gomock.Any(), testReservationID).
			Return(pendingReservation(), nil)
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/reservations/"+testReservationID, nil)
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.GetReservation(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var reservation business.Reservation
		err := json.Unmarshal(w.Body.Bytes(), &reservation)
		require.NoError(t, err)
		assert.Equal(t, "GT-7F3K9Q2M", reservation.Reference)
		assert.Equal(t, constants.ReservationStatusPending, reservation.Status)
	})
}

func TestReservationHandler_ApproveReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approves a pending reservation", func(t *testing.T) {
		approved := pendingReservation()
		approved.Status = constants.ReservationStatusAwaitingPayment

		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			ApproveReservation(gomock.Any(), testReservationID).
			Return(approved, nil)
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/reservations/"+testReservationID+"/approve", nil)
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.ApproveReservation(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var reservation business.Reservation
		err := json.Unmarshal(w.Body.Bytes(), &reservation)
		require.NoError(t, err)
		assert.Equal(t, constants.ReservationStatusAwaitingPayment, reservation.Status)
	})

	t.Run("approving a cancelled reservation conflicts", func(t *testing.T) {
		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			ApproveReservation(gomock.Any(), testReservationID).
			Return(nil, fmt.Errorf("%w: cancelled -> awaiting_payment", services.ErrInvalidStatusTransition))
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/reservations/"+testReservationID+"/approve", nil)
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.ApproveReservation(c)

		assert.Equal(t, http.StatusConflict, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "invalid status transition")
	})
}

func TestReservationHandler_CancelReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancelling without a body is allowed", func(t *testing.T) {
		cancelled := pendingReservation()
		cancelled.Status = constants.ReservationStatusCancelled

		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			CancelReservation(gomock.Any(), testReservationID, "").
			Return(cancelled, nil)
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/reservations/"+testReservationID+"/cancel", nil)
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.CancelReservation(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("the recorded reason reaches the service", func(t *testing.T) {
		cancelled := pendingReservation()
		cancelled.Status = constants.ReservationStatusCancelled

		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			CancelReservation(gomock.Any(), testReservationID, "guest request").
			Return(cancelled, nil)
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(requests.CancelReservationRequest{Reason: "guest request"})
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/reservations/"+testReservationID+"/cancel", bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.CancelReservation(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			CancelReservation(gomock.Any(), testReservationID, "").
			Return(nil, upstreamNotFound(http.MethodPost, "https://crs.example.com/reservations/"+testReservationID+"/cancel"))
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost,
			"/admin/reservations/"+testReservationID+"/cancel", nil)
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.CancelReservation(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReservationHandler_AmendReservation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid JSON", func(t *testing.T) {
		reservationMock := mocks.NewMockReservationServiceForTest(t)
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPatch,
			"/admin/reservations/"+testReservationID, bytes.NewBufferString("{"))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.AmendReservation(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "Invalid amendment payload")
	})

	t.Run("applies the amendment", func(t *testing.T) {
		amended := pendingReservation()
		amended.Rooms = 3
		amended.TotalPrice = 5220

		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			AmendReservation(gomock.Any(), testReservationID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req requests.UpdateReservationRequest) (*business.Reservation, error) {
				assert.Equal(t, 3, req.Rooms)
				assert.Equal(t, 5220.0, req.TotalPrice)
				return amended, nil
			})
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(requests.UpdateReservationRequest{Rooms: 3, TotalPrice: 5220})
		c.Request = httptest.NewRequest(http.MethodPatch,
			"/admin/reservations/"+testReservationID, bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.AmendReservation(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var reservation business.Reservation
		err := json.Unmarshal(w.Body.Bytes(), &reservation)
		require.NoError(t, err)
		assert.Equal(t, 3, reservation.Rooms)
	})

	t.Run("amending a cancelled reservation conflicts", func(t *testing.T) {
		reservationMock := mocks.NewMockReservationServiceForTest(t)
		reservationMock.EXPECT().
			AmendReservation(gomock.Any(), testReservationID, gomock.Any()).
			Return(nil, services.ErrInvalidStatusTransition)
		handler := NewReservationHandler(reservationMock, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body, _ := json.Marshal(requests.UpdateReservationRequest{Rooms: 3})
		c.Request = httptest.NewRequest(http.MethodPatch,
			"/admin/reservations/"+testReservationID, bytes.NewBuffer(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{
			{Key: "reservation_id", Value: testReservationID},
		}

		handler.AmendReservation(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
