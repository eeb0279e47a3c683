package services

import (
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// fallbackTaxRate is applied to the room price when the supplier returns
// neither a tax breakdown nor a total. It matches the margin-inclusive rate
// the legacy booking flow displayed.
const fallbackTaxRate = 0.14

// PricingService computes displayed totals and charge amounts for room
// selections. All methods are pure: bad input degrades to a zero or clamped
// figure, never an error.
type PricingService struct {
	// Stateless; rounding rules come from the currency helpers.
}

// NewPricingService creates a new pricing service
func NewPricingService() *PricingService {
	return &PricingService{}
}

// ComputeBookingTaxes returns the booking-time tax for roomCount rooms of the
// given rate.
//
// Precedence: a structured tax breakdown wins, counting only lines collected
// at booking time (included_by_supplier or included); otherwise a positive
// total_taxes figure is used; otherwise the fallback rate is applied to the
// room price. The result is never negative.
func (s *PricingService) ComputeBookingTaxes(rate business.Rate, roomCount int) float64 {
	if roomCount < 0 {
		roomCount = 0
	}

	var perRoom float64
	switch {
	case len(rate.TaxData) > 0:
		for _, line := range rate.TaxData {
			if line.IncludedBySupplier || line.Included {
				perRoom += line.Amount
			}
		}
	case rate.TotalTaxes > 0:
		perRoom = rate.TotalTaxes
	default:
		perRoom = rate.Price * fallbackTaxRate
	}

	taxes := perRoom * float64(roomCount)
	if taxes < 0 {
		return 0
	}
	return taxes
}

// ComputeDisplayedTotal sums the selections into the quote shown to the
// customer. No currency conversion happens here; the quote carries the
// currency of the first selection and assumes the rest match it.
func (s *PricingService) ComputeDisplayedTotal(selections []business.RoomSelection) business.Quote {
	var quote business.Quote
	for i, sel := range selections {
		if i == 0 {
			quote.Currency = sel.Rate.Currency
		}
		count := sel.Count
		if count < 0 {
			count = 0
		}
		quote.Base += sel.Rate.Price * float64(count)
		quote.Tax += s.ComputeBookingTaxes(sel.Rate, count)
	}
	quote.Total = quote.Base + quote.Tax
	return quote
}

// ApplyDiscounts reduces total by the booking's discounts. A valid promo
// replaces the total with its FinalValue (the promo engine already computed
// the post-discount figure from the pre-loyalty total); loyalty value is then
// subtracted. The result is floored at zero.
func (s *PricingService) ApplyDiscounts(total float64, promo *business.PromoDiscount, loyalty *business.LoyaltyDiscount) float64 {
	if promo != nil && promo.Valid {
		total = promo.FinalValue
	}
	if loyalty != nil {
		total -= loyalty.Amount
	}
	if total < 0 {
		return 0
	}
	return total
}

// ComputeChargeAmount produces the displayed quote and the final amount to
// charge, rounded to the currency's minor unit. The currency argument is only
// a fallback for empty selections; priced selections carry their own.
func (s *PricingService) ComputeChargeAmount(selections []business.RoomSelection, promo *business.PromoDiscount, loyalty *business.LoyaltyDiscount, currency string) (business.Quote, float64) {
	quote := s.ComputeDisplayedTotal(selections)
	if quote.Currency == "" {
		quote.Currency = currency
	}

	charge := s.ApplyDiscounts(quote.Total, promo, loyalty)
	charge = helpers.RoundToMinorUnit(charge, quote.Currency)
	if charge < 0 {
		charge = 0
	}
	return quote, charge
}
