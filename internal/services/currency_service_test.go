package services_test

import (
	"context"
	"testing"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyService_ListSupportedCurrencies(t *testing.T) {
	t.Run("a configured list is served with minor unit digits", func(t *testing.T) {
		svc := services.NewCurrencyService("sar, usd, KWD, JPY")

		currencies, err := svc.ListSupportedCurrencies(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []responses.Currency{
			{Code: "SAR", MinorUnits: 2},
			{Code: "USD", MinorUnits: 2},
			{Code: "KWD", MinorUnits: 3},
			{Code: "JPY", MinorUnits: 0},
		}, currencies)
	})

	t.Run("no configuration selects the major set", func(t *testing.T) {
		svc := services.NewCurrencyService("")

		currencies, err := svc.ListSupportedCurrencies(context.Background())

		require.NoError(t, err)
		assert.Len(t, currencies, 10)
		assert.Equal(t, "SAR", currencies[0].Code)
	})

	t.Run("a malformed list falls back to the major set", func(t *testing.T) {
		svc := services.NewCurrencyService("SAR,notacurrency")

		currencies, err := svc.ListSupportedCurrencies(context.Background())

		require.NoError(t, err)
		assert.Len(t, currencies, 10)
	})
}
