package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/mocks"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storedReservation(status string) *business.Reservation {
	return &business.Reservation{
		ID:         "res_1",
		Reference:  "GT-AB12CD34",
		ClientName: "Omar Hassan",
		HotelID:    "hotel_makkah_01",
		HotelName:  "Swissotel Al Maqam",
		CheckIn:    "2026-09-12",
		CheckOut:   "2026-09-15",
		Rooms:      2,
		Adults:     4,
		TotalPrice: 1040,
		Currency:   "SAR",
		Status:     status,
	}
}

func TestReservationService_ListReservations(t *testing.T) {
	crsMock := mocks.NewMockCRSAPIForTest(t)
	svc := services.NewReservationService(crsMock)

	crsMock.EXPECT().
		ListReservations(gomock.Any(), constants.ReservationStatusPending, "omar", int32(20), int32(40)).
		Return(&crs.ReservationListResponse{
			Reservations: []business.Reservation{*storedReservation(constants.ReservationStatusPending)},
			TotalItems:   41,
		}, nil)

	result, err := svc.ListReservations(context.Background(), params.ListReservationsParams{
		Status: constants.ReservationStatusPending,
		Query:  "omar",
		Limit:  20,
		Offset: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(41), result.TotalItems)
	require.Len(t, result.Reservations, 1)
	assert.Equal(t, "Pending review", result.Reservations[0].StatusLabel)
}

func TestReservationService_GetReservation(t *testing.T) {
	t.Run("decorates the record with its label", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation(constants.ReservationStatusAwaitingPayment), nil)

		reservation, err := svc.GetReservation(context.Background(), "res_1")

		require.NoError(t, err)
		assert.Equal(t, "Awaiting payment", reservation.StatusLabel)
	})

	t.Run("a status this build does not know still gets a label", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation("on_hold"), nil)

		reservation, err := svc.GetReservation(context.Background(), "res_1")

		require.NoError(t, err)
		assert.Equal(t, constants.LabelUnknown, reservation.StatusLabel)
	})
}

func TestReservationService_ApproveReservation(t *testing.T) {
	t.Run("confirms a pending reservation", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation(constants.ReservationStatusPending), nil)
		crsMock.EXPECT().
			UpdateReservationStatus(gomock.Any(), "res_1", constants.ReservationStatusConfirmed, "").
			Return(storedReservation(constants.ReservationStatusConfirmed), nil)

		reservation, err := svc.ApproveReservation(context.Background(), "res_1")

		require.NoError(t, err)
		assert.Equal(t, constants.ReservationStatusConfirmed, reservation.Status)
		assert.Equal(t, "Confirmed", reservation.StatusLabel)
	})

	t.Run("approving an already confirmed reservation is a no-op", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation(constants.ReservationStatusConfirmed), nil)
		// No status update expected.

		reservation, err := svc.ApproveReservation(context.Background(), "res_1")

		require.NoError(t, err)
		assert.Equal(t, constants.ReservationStatusConfirmed, reservation.Status)
	})

	t.Run("a cancelled reservation cannot be approved", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation(constants.ReservationStatusCancelled), nil)

		reservation, err := svc.ApproveReservation(context.Background(), "res_1")

		assert.Nil(t, reservation)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidStatusTransition)
	})
}

func TestReservationService_CancelReservation(t *testing.T) {
	t.Run("cancels with the audit reason", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation(constants.ReservationStatusConfirmed), nil)
		crsMock.EXPECT().
			UpdateReservationStatus(gomock.Any(), "res_1", constants.ReservationStatusCancelled, "guest request").
			Return(storedReservation(constants.ReservationStatusCancelled), nil)

		reservation, err := svc.CancelReservation(context.Background(), "res_1", "guest request")

		require.NoError(t, err)
		assert.Equal(t, constants.ReservationStatusCancelled, reservation.Status)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation(constants.ReservationStatusCancelled), nil)

		reservation, err := svc.CancelReservation(context.Background(), "res_1", "again")

		require.NoError(t, err)
		assert.Equal(t, constants.ReservationStatusCancelled, reservation.Status)
	})
}

func TestReservationService_AmendReservation(t *testing.T) {
	t.Run("forwards only the set fields", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation(constants.ReservationStatusConfirmed), nil)
		crsMock.EXPECT().
			AmendReservation(gomock.Any(), "res_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, amendment crs.AmendReservationRequest) (*business.Reservation, error) {
				require.NotNil(t, amendment.CheckOut)
				assert.Equal(t, "2026-09-16", *amendment.CheckOut)
				require.NotNil(t, amendment.TotalPrice)
				assert.Equal(t, 1390.0, *amendment.TotalPrice)
				assert.Nil(t, amendment.CheckIn)
				assert.Nil(t, amendment.Rooms)
				assert.Nil(t, amendment.Adults)
				assert.Nil(t, amendment.SpecialNotes)
				return storedReservation(constants.ReservationStatusConfirmed), nil
			})

		_, err := svc.AmendReservation(context.Background(), "res_1", requests.UpdateReservationRequest{
			CheckOut:   "2026-09-16",
			TotalPrice: 1390,
		})

		require.NoError(t, err)
	})

	t.Run("a rejected reservation cannot be amended", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(storedReservation(constants.ReservationStatusRejected), nil)

		reservation, err := svc.AmendReservation(context.Background(), "res_1", requests.UpdateReservationRequest{
			Rooms: 3,
		})

		assert.Nil(t, reservation)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrInvalidStatusTransition)
	})

	t.Run("a CRS outage surfaces as an error", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewReservationService(crsMock)

		crsMock.EXPECT().
			GetReservation(gomock.Any(), "res_1").
			Return(nil, errors.New("504 gateway timeout"))

		reservation, err := svc.AmendReservation(context.Background(), "res_1", requests.UpdateReservationRequest{})

		assert.Nil(t, reservation)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch reservation")
	})
}
