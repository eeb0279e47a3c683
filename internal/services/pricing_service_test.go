package services_test

import (
	"testing"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"github.com/stretchr/testify/assert"
)

func init() {
	logger.InitLogger("test")
}

func TestPricingService_ComputeBookingTaxes(t *testing.T) {
	pricing := services.NewPricingService()

	tests := []struct {
		name      string
		rate      business.Rate
		roomCount int
		expected  float64
	}{
		{
			name: "breakdown sums only booking-time lines",
			rate: business.Rate{
				Price:    500,
				Currency: "SAR",
				TaxData: []business.TaxLine{
					{Amount: 20, IncludedBySupplier: true},
					{Amount: 5, IncludedBySupplier: false, Included: false},
				},
			},
			roomCount: 2,
			expected:  40, // 20 per room, pay-at-property 5 excluded
		},
		{
			name: "included flag counts like included_by_supplier",
			rate: business.Rate{
				Price: 300,
				TaxData: []business.TaxLine{
					{Amount: 10, Included: true},
					{Amount: 8, IncludedBySupplier: true},
				},
			},
			roomCount: 1,
			expected:  18,
		},
		{
			name: "breakdown with no booking-time lines is zero, not fallback",
			rate: business.Rate{
				Price: 400,
				TaxData: []business.TaxLine{
					{Amount: 25},
					{Amount: 10},
				},
			},
			roomCount: 2,
			expected:  0,
		},
		{
			name: "breakdown wins over total_taxes",
			rate: business.Rate{
				Price:      500,
				TotalTaxes: 99,
				TaxData: []business.TaxLine{
					{Amount: 20, IncludedBySupplier: true},
				},
			},
			roomCount: 1,
			expected:  20,
		},
		{
			name: "total_taxes used when no breakdown",
			rate: business.Rate{
				Price:      500,
				TotalTaxes: 30,
			},
			roomCount: 2,
			expected:  60,
		},
		{
			name: "fallback rate when supplier reports nothing",
			rate: business.Rate{
				Price: 200,
			},
			roomCount: 3,
			expected:  84, // 14% of 200, three rooms
		},
		{
			name: "zero total_taxes falls through to fallback",
			rate: business.Rate{
				Price:      100,
				TotalTaxes: 0,
			},
			roomCount: 1,
			expected:  14,
		},
		{
			name: "negative total_taxes falls through to fallback",
			rate: business.Rate{
				Price:      100,
				TotalTaxes: -5,
			},
			roomCount: 1,
			expected:  14,
		},
		{
			name: "zero rooms yields zero tax",
			rate: business.Rate{
				Price:      500,
				TotalTaxes: 30,
			},
			roomCount: 0,
			expected:  0,
		},
		{
			name: "negative room count clamps to zero",
			rate: business.Rate{
				Price:      500,
				TotalTaxes: 30,
			},
			roomCount: -2,
			expected:  0,
		},
		{
			name: "negative breakdown sum clamps to zero",
			rate: business.Rate{
				Price: 500,
				TaxData: []business.TaxLine{
					{Amount: -40, IncludedBySupplier: true},
				},
			},
			roomCount: 2,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxes := pricing.ComputeBookingTaxes(tt.rate, tt.roomCount)
			assert.InDelta(t, tt.expected, taxes, 0.0001)
			assert.GreaterOrEqual(t, taxes, 0.0)
		})
	}
}

func TestPricingService_ComputeDisplayedTotal(t *testing.T) {
	pricing := services.NewPricingService()

	tests := []struct {
		name             string
		selections       []business.RoomSelection
		expectedBase     float64
		expectedTax      float64
		expectedTotal    float64
		expectedCurrency string
	}{
		{
			name: "two rooms with supplier tax breakdown",
			selections: []business.RoomSelection{
				{
					Rate: business.Rate{
						RoomName: "Deluxe King",
						Price:    500,
						Currency: "SAR",
						TaxData: []business.TaxLine{
							{Amount: 20, IncludedBySupplier: true},
							{Amount: 5},
						},
					},
					Count: 2,
				},
			},
			expectedBase:     1000,
			expectedTax:      40,
			expectedTotal:    1040,
			expectedCurrency: "SAR",
		},
		{
			name: "three rooms on the fallback rate",
			selections: []business.RoomSelection{
				{
					Rate: business.Rate{
						RoomName: "Standard Twin",
						Price:    200,
						Currency: "SAR",
					},
					Count: 3,
				},
			},
			expectedBase:     600,
			expectedTax:      84,
			expectedTotal:    684,
			expectedCurrency: "SAR",
		},
		{
			name: "mixed selections accumulate",
			selections: []business.RoomSelection{
				{
					Rate:  business.Rate{RoomName: "Deluxe King", Price: 500, Currency: "SAR", TotalTaxes: 25},
					Count: 1,
				},
				{
					Rate:  business.Rate{RoomName: "Standard Twin", Price: 200, Currency: "SAR", TotalTaxes: 10},
					Count: 2,
				},
			},
			expectedBase:     900, // 500 + 400
			expectedTax:      45,  // 25 + 20
			expectedTotal:    945,
			expectedCurrency: "SAR",
		},
		{
			name:             "empty selections produce a zero quote",
			selections:       nil,
			expectedBase:     0,
			expectedTax:      0,
			expectedTotal:    0,
			expectedCurrency: "",
		},
		{
			name: "currency comes from the first selection",
			selections: []business.RoomSelection{
				{Rate: business.Rate{Price: 100, Currency: "USD", TotalTaxes: 5}, Count: 1},
				{Rate: business.Rate{Price: 100, Currency: "EUR", TotalTaxes: 5}, Count: 1},
			},
			expectedBase:     200,
			expectedTax:      10,
			expectedTotal:    210,
			expectedCurrency: "USD",
		},
		{
			name: "negative count contributes nothing",
			selections: []business.RoomSelection{
				{Rate: business.Rate{Price: 500, Currency: "SAR", TotalTaxes: 20}, Count: -1},
				{Rate: business.Rate{Price: 200, Currency: "SAR", TotalTaxes: 10}, Count: 1},
			},
			expectedBase:     200,
			expectedTax:      10,
			expectedTotal:    210,
			expectedCurrency: "SAR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := pricing.ComputeDisplayedTotal(tt.selections)
			assert.InDelta(t, tt.expectedBase, quote.Base, 0.0001)
			assert.InDelta(t, tt.expectedTax, quote.Tax, 0.0001)
			assert.InDelta(t, tt.expectedTotal, quote.Total, 0.0001)
			assert.Equal(t, tt.expectedCurrency, quote.Currency)
		})
	}
}

func TestPricingService_ApplyDiscounts(t *testing.T) {
	pricing := services.NewPricingService()

	tests := []struct {
		name     string
		total    float64
		promo    *business.PromoDiscount
		loyalty  *business.LoyaltyDiscount
		expected float64
	}{
		{
			name:     "no discounts",
			total:    1040,
			expected: 1040,
		},
		{
			name:  "valid promo replaces the total",
			total: 1040,
			promo: &business.PromoDiscount{
				Code:          "SUMMER26",
				FinalValue:    900,
				OriginalValue: 1040,
				Valid:         true,
			},
			expected: 900,
		},
		{
			name:  "promo then loyalty",
			total: 1040,
			promo: &business.PromoDiscount{
				Code:       "SUMMER26",
				FinalValue: 900,
				Valid:      true,
			},
			loyalty:  &business.LoyaltyDiscount{Points: 1500, Amount: 150},
			expected: 750,
		},
		{
			name:     "loyalty only subtracts",
			total:    1040,
			loyalty:  &business.LoyaltyDiscount{Points: 400, Amount: 40},
			expected: 1000,
		},
		{
			name:  "invalid promo is ignored",
			total: 1040,
			promo: &business.PromoDiscount{
				Code:       "EXPIRED",
				FinalValue: 1,
				Valid:      false,
			},
			expected: 1040,
		},
		{
			name:     "loyalty larger than total floors at zero",
			total:    100,
			loyalty:  &business.LoyaltyDiscount{Points: 2000, Amount: 200},
			expected: 0,
		},
		{
			name:  "promo final value of zero stands",
			total: 500,
			promo: &business.PromoDiscount{
				Code:       "FREESTAY",
				FinalValue: 0,
				Valid:      true,
			},
			expected: 0,
		},
		{
			name:  "negative final value floors at zero",
			total: 500,
			promo: &business.PromoDiscount{
				Code:       "BROKEN",
				FinalValue: -50,
				Valid:      true,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pricing.ApplyDiscounts(tt.total, tt.promo, tt.loyalty)
			assert.InDelta(t, tt.expected, result, 0.0001)
			assert.GreaterOrEqual(t, result, 0.0)
		})
	}
}

func TestPricingService_ComputeChargeAmount(t *testing.T) {
	pricing := services.NewPricingService()

	t.Run("full booking with promo and loyalty", func(t *testing.T) {
		selections := []business.RoomSelection{
			{
				Rate: business.Rate{
					RoomName: "Deluxe King",
					Price:    500,
					Currency: "SAR",
					TaxData: []business.TaxLine{
						{Amount: 20, IncludedBySupplier: true},
						{Amount: 5},
					},
				},
				Count: 2,
			},
		}
		promo := &business.PromoDiscount{Code: "SUMMER26", FinalValue: 900, OriginalValue: 1040, Valid: true}
		loyalty := &business.LoyaltyDiscount{Points: 1500, Amount: 150}

		quote, charge := pricing.ComputeChargeAmount(selections, promo, loyalty, "SAR")

		assert.InDelta(t, 1000.0, quote.Base, 0.0001)
		assert.InDelta(t, 40.0, quote.Tax, 0.0001)
		assert.InDelta(t, 1040.0, quote.Total, 0.0001)
		assert.Equal(t, "SAR", quote.Currency)
		assert.InDelta(t, 750.0, charge, 0.0001)
	})

	t.Run("charge rounds to the currency minor unit", func(t *testing.T) {
		selections := []business.RoomSelection{
			{
				Rate: business.Rate{
					Price:    1000,
					Currency: "JPY",
					TaxData:  []business.TaxLine{{Amount: 40.4, IncludedBySupplier: true}},
				},
				Count: 1,
			},
		}

		quote, charge := pricing.ComputeChargeAmount(selections, nil, nil, "JPY")

		assert.InDelta(t, 1040.4, quote.Total, 0.0001)
		assert.InDelta(t, 1040.0, charge, 0.0001) // yen has no minor unit
	})

	t.Run("three decimal currencies keep the extra digit", func(t *testing.T) {
		selections := []business.RoomSelection{
			{
				Rate: business.Rate{
					Price:    100,
					Currency: "KWD",
					TaxData:  []business.TaxLine{{Amount: 1.2344, IncludedBySupplier: true}},
				},
				Count: 1,
			},
		}

		_, charge := pricing.ComputeChargeAmount(selections, nil, nil, "KWD")

		assert.InDelta(t, 101.234, charge, 0.0001) // 101.2344 rounded to 3 places
	})

	t.Run("empty selections fall back to the requested currency", func(t *testing.T) {
		quote, charge := pricing.ComputeChargeAmount(nil, nil, nil, "SAR")

		assert.Equal(t, "SAR", quote.Currency)
		assert.Equal(t, 0.0, quote.Total)
		assert.Equal(t, 0.0, charge)
	})

	t.Run("discounts below zero charge nothing", func(t *testing.T) {
		selections := []business.RoomSelection{
			{Rate: business.Rate{Price: 100, Currency: "SAR", TotalTaxes: 10}, Count: 1},
		}
		loyalty := &business.LoyaltyDiscount{Points: 5000, Amount: 500}

		quote, charge := pricing.ComputeChargeAmount(selections, nil, loyalty, "SAR")

		assert.InDelta(t, 110.0, quote.Total, 0.0001)
		assert.Equal(t, 0.0, charge)
	})
}

func TestPricingService_EdgeCases(t *testing.T) {
	pricing := services.NewPricingService()

	t.Run("taxes never negative across adversarial inputs", func(t *testing.T) {
		rates := []business.Rate{
			{Price: -100},
			{Price: -100, TotalTaxes: -50},
			{Price: 0, TaxData: []business.TaxLine{{Amount: -1, Included: true}}},
			{Price: 100, TaxData: []business.TaxLine{{Amount: -200, IncludedBySupplier: true}, {Amount: 50, Included: true}}},
		}
		for _, rate := range rates {
			for _, count := range []int{-3, 0, 1, 7} {
				assert.GreaterOrEqual(t, pricing.ComputeBookingTaxes(rate, count), 0.0)
			}
		}
	})

	t.Run("charge never negative across discount combinations", func(t *testing.T) {
		selections := []business.RoomSelection{
			{Rate: business.Rate{Price: 50, Currency: "SAR"}, Count: 1},
		}
		promos := []*business.PromoDiscount{
			nil,
			{FinalValue: -1000, Valid: true},
			{FinalValue: 10, Valid: true},
			{FinalValue: 10, Valid: false},
		}
		loyalties := []*business.LoyaltyDiscount{
			nil,
			{Amount: 1e9},
			{Amount: -5},
		}
		for _, promo := range promos {
			for _, loyalty := range loyalties {
				_, charge := pricing.ComputeChargeAmount(selections, promo, loyalty, "SAR")
				assert.GreaterOrEqual(t, charge, 0.0)
			}
		}
	})

	t.Run("concurrent access safety", func(t *testing.T) {
		// PricingService should be safe for concurrent use
		done := make(chan bool, 10)

		selections := []business.RoomSelection{
			{
				Rate: business.Rate{
					Price:    500,
					Currency: "SAR",
					TaxData:  []business.TaxLine{{Amount: 20, IncludedBySupplier: true}},
				},
				Count: 2,
			},
		}

		for i := 0; i < 10; i++ {
			go func() {
				defer func() { done <- true }()

				quote, charge := pricing.ComputeChargeAmount(selections, nil, nil, "SAR")
				assert.InDelta(t, 1040.0, quote.Total, 0.0001)
				assert.InDelta(t, 1040.0, charge, 0.0001)
			}()
		}

		// Wait for all goroutines to complete
		for i := 0; i < 10; i++ {
			<-done
		}
	})
}
