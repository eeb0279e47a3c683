package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
)

// CurrencyService backs the site's currency switcher. The offered list comes
// from configuration, falling back to the major-currency set.
type CurrencyService struct {
	currencies []string
	logger     *zap.Logger
}

// NewCurrencyService creates a new currency service. rawList is the
// comma-separated SUPPORTED_CURRENCIES value; empty selects the default set.
func NewCurrencyService(rawList string) *CurrencyService {
	currencies := helpers.GetMajorCurrencies()
	if rawList != "" {
		parsed, err := helpers.ParseSupportedCurrencies(rawList)
		if err != nil {
			logger.Log.Warn("invalid SUPPORTED_CURRENCIES, using default set",
				zap.Error(err),
				zap.String("raw", rawList))
		} else {
			currencies = parsed
		}
	}

	return &CurrencyService{
		currencies: currencies,
		logger:     logger.Log,
	}
}

// ListSupportedCurrencies returns the switcher's currencies with their minor
// unit digits so the front end can format amounts without its own table.
func (s *CurrencyService) ListSupportedCurrencies(ctx context.Context) ([]responses.Currency, error) {
	list := make([]responses.Currency, 0, len(s.currencies))
	for _, code := range s.currencies {
		list = append(list, responses.Currency{
			Code:       code,
			MinorUnits: helpers.MinorUnitDigits(code),
		})
	}
	return list, nil
}
