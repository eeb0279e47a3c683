package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/loyalty"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/mocks"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoyaltyService_GetBalance(t *testing.T) {
	t.Run("maps the program's balance", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyAPIForTest(t)
		svc := services.NewLoyaltyService(loyaltyMock)

		loyaltyMock.EXPECT().
			GetBalance(gomock.Any(), "user_42").
			Return(&loyalty.BalanceResponse{
				UserID:          "user_42",
				Points:          3200,
				RedemptionValue: 0.05,
				Currency:        "SAR",
			}, nil)

		balance, err := svc.GetBalance(context.Background(), "user_42")

		require.NoError(t, err)
		assert.Equal(t, "user_42", balance.UserID)
		assert.Equal(t, 3200, balance.Points)
		assert.Equal(t, 0.05, balance.RedemptionValue)
		assert.Equal(t, "SAR", balance.Currency)
	})

	t.Run("an empty user id never reaches the program", func(t *testing.T) {
		svc := services.NewLoyaltyService(mocks.NewMockLoyaltyAPIForTest(t))

		balance, err := svc.GetBalance(context.Background(), "")

		assert.Nil(t, balance)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user id is required")
	})

	t.Run("a program outage surfaces as an error", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyAPIForTest(t)
		svc := services.NewLoyaltyService(loyaltyMock)

		loyaltyMock.EXPECT().
			GetBalance(gomock.Any(), "user_42").
			Return(nil, errors.New("503 service unavailable"))

		balance, err := svc.GetBalance(context.Background(), "user_42")

		assert.Nil(t, balance)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch loyalty balance")
	})
}

func TestLoyaltyService_PreviewRedemption(t *testing.T) {
	t.Run("maps the program's pricing", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyAPIForTest(t)
		svc := services.NewLoyaltyService(loyaltyMock)

		loyaltyMock.EXPECT().
			PreviewRedemption(gomock.Any(), "user_42", 3000).
			Return(&loyalty.PreviewResponse{
				Points:   3000,
				Amount:   150,
				Currency: "SAR",
			}, nil)

		preview, err := svc.PreviewRedemption(context.Background(), params.LoyaltyPreviewParams{
			UserID: "user_42",
			Points: 3000,
		})

		require.NoError(t, err)
		assert.Equal(t, 3000, preview.Points)
		assert.Equal(t, 150.0, preview.Amount)
		assert.Equal(t, "SAR", preview.Currency)
	})

	t.Run("non-positive points preview as no discount without calling out", func(t *testing.T) {
		svc := services.NewLoyaltyService(mocks.NewMockLoyaltyAPIForTest(t))

		for _, points := range []int{0, -500} {
			preview, err := svc.PreviewRedemption(context.Background(), params.LoyaltyPreviewParams{
				UserID: "user_42",
				Points: points,
			})

			require.NoError(t, err)
			assert.Zero(t, preview.Points)
			assert.Zero(t, preview.Amount)
		}
	})

	t.Run("an empty user id never reaches the program", func(t *testing.T) {
		svc := services.NewLoyaltyService(mocks.NewMockLoyaltyAPIForTest(t))

		preview, err := svc.PreviewRedemption(context.Background(), params.LoyaltyPreviewParams{Points: 3000})

		assert.Nil(t, preview)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user id is required")
	})

	t.Run("a program outage surfaces as an error", func(t *testing.T) {
		loyaltyMock := mocks.NewMockLoyaltyAPIForTest(t)
		svc := services.NewLoyaltyService(loyaltyMock)

		loyaltyMock.EXPECT().
			PreviewRedemption(gomock.Any(), "user_42", 3000).
			Return(nil, errors.New("timeout"))

		preview, err := svc.PreviewRedemption(context.Background(), params.LoyaltyPreviewParams{
			UserID: "user_42",
			Points: 3000,
		})

		assert.Nil(t, preview)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to preview redemption")
	})
}
