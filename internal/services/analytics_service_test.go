package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/mocks"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func exportedReservation(status, hotelID, hotelName, currency string, price float64, created time.Time) business.Reservation {
	return business.Reservation{
		ID:         "res_" + hotelID,
		Status:     status,
		HotelID:    hotelID,
		HotelName:  hotelName,
		Currency:   currency,
		TotalPrice: price,
		CreatedAt:  created,
	}
}

func expectCounts(crsMock *mocks.MockCRSAPI, clients, unpaid int64) {
	crsMock.EXPECT().
		ListClients(gomock.Any(), "", int32(1), int32(0)).
		Return(&crs.ClientListResponse{TotalItems: clients}, nil)
	crsMock.EXPECT().
		ListInvoices(gomock.Any(), constants.InvoiceStatusUnpaid, int32(1), int32(0)).
		Return(&crs.InvoiceListResponse{TotalItems: unpaid}, nil)
}

func TestAnalyticsService_GetDashboardMetrics(t *testing.T) {
	t.Run("aggregates the requested window", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewAnalyticsService(crsMock)

		reservations := []business.Reservation{
			exportedReservation(constants.ReservationStatusConfirmed, "hotel_a", "Swissotel Al Maqam", "SAR", 1000,
				time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)),
			exportedReservation(constants.ReservationStatusConfirmed, "hotel_b", "Anjum Makkah", "SAR", 500,
				time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)),
			exportedReservation(constants.ReservationStatusPending, "hotel_a", "Swissotel Al Maqam", "SAR", 800,
				time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC)),
			exportedReservation(constants.ReservationStatusConfirmed, "hotel_b", "Anjum Makkah", "USD", 300,
				time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)),
			exportedReservation("on_hold", "hotel_c", "Elaf Kinda", "SAR", 100,
				time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)),
		}
		crsMock.EXPECT().
			ExportReservations(gomock.Any(),
				time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)).
			Return(reservations, nil)
		expectCounts(crsMock, 57, 3)

		metrics, err := svc.GetDashboardMetrics(context.Background(), params.AnalyticsParams{
			FromMonth: "2026-01",
			ToMonth:   "2026-03",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, metrics.TotalReservations)
		assert.Equal(t, 57, metrics.TotalClients)
		assert.Equal(t, 3, metrics.UnpaidInvoices)

		// Known statuses in chart order, then whatever else the CRS reported.
		assert.Equal(t, []business.StatusCount{
			{Status: constants.ReservationStatusPending, Label: "Pending review", Count: 1},
			{Status: constants.ReservationStatusConfirmed, Label: "Confirmed", Count: 3},
			{Status: "on_hold", Label: constants.LabelUnknown, Count: 1},
		}, metrics.ByStatus)

		// Confirmed revenue only, per settlement currency.
		assert.Equal(t, []business.RevenueByCurrency{
			{Currency: "SAR", Amount: 1500},
			{Currency: "USD", Amount: 300},
		}, metrics.Revenue)

		// Ties on count break alphabetically.
		assert.Equal(t, []business.HotelCount{
			{HotelID: "hotel_b", HotelName: "Anjum Makkah", Count: 2},
			{HotelID: "hotel_a", HotelName: "Swissotel Al Maqam", Count: 2},
			{HotelID: "hotel_c", HotelName: "Elaf Kinda", Count: 1},
		}, metrics.TopHotels)

		assert.Equal(t, []business.MonthlyPoint{
			{Month: "2026-01", Bookings: 1, Revenue: 1000},
			{Month: "2026-02", Bookings: 2, Revenue: 500},
			{Month: "2026-03", Bookings: 2, Revenue: 300},
		}, metrics.Monthly)
	})

	t.Run("caps the hotels leaderboard", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewAnalyticsService(crsMock)

		var reservations []business.Reservation
		for i := 1; i <= 7; i++ {
			reservations = append(reservations, exportedReservation(
				constants.ReservationStatusConfirmed,
				fmt.Sprintf("hotel_%d", i),
				fmt.Sprintf("Hotel %d", i),
				"SAR", 100,
				time.Date(2026, 3, i, 0, 0, 0, 0, time.UTC)))
		}
		crsMock.EXPECT().
			ExportReservations(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(reservations, nil)
		expectCounts(crsMock, 7, 0)

		metrics, err := svc.GetDashboardMetrics(context.Background(), params.AnalyticsParams{
			FromMonth: "2026-03",
			ToMonth:   "2026-03",
		})

		require.NoError(t, err)
		require.Len(t, metrics.TopHotels, 5)
		assert.Equal(t, "Hotel 1", metrics.TopHotels[0].HotelName)
		assert.Equal(t, "Hotel 5", metrics.TopHotels[4].HotelName)
	})

	t.Run("an empty window means the trailing twelve months", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewAnalyticsService(crsMock)

		crsMock.EXPECT().
			ExportReservations(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) ([]business.Reservation, error) {
				assert.Equal(t, to, from.AddDate(1, 0, 0))
				assert.Equal(t, 1, from.Day())
				return nil, nil
			})
		expectCounts(crsMock, 0, 0)

		metrics, err := svc.GetDashboardMetrics(context.Background(), params.AnalyticsParams{})

		require.NoError(t, err)
		assert.Len(t, metrics.Monthly, 12)
	})

	t.Run("malformed months never reach the CRS", func(t *testing.T) {
		svc := services.NewAnalyticsService(mocks.NewMockCRSAPIForTest(t))

		_, err := svc.GetDashboardMetrics(context.Background(), params.AnalyticsParams{FromMonth: "Jan 2026"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid from_month")

		_, err = svc.GetDashboardMetrics(context.Background(), params.AnalyticsParams{ToMonth: "2026-13"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid to_month")
	})

	t.Run("an inverted window is rejected", func(t *testing.T) {
		svc := services.NewAnalyticsService(mocks.NewMockCRSAPIForTest(t))

		_, err := svc.GetDashboardMetrics(context.Background(), params.AnalyticsParams{
			FromMonth: "2026-06",
			ToMonth:   "2026-03",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "from_month must precede to_month")
	})
}
