package helpers

import (
	"fmt"
	"math"
	"strings"
)

// minorUnits maps ISO 4217 currency codes to the number of decimal places of
// their minor unit. Currencies missing from the map use the default of 2.
var minorUnits = map[string]int{
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"TND": 3,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
}

// MinorUnitDigits returns the number of decimal places for a currency's minor
// unit (e.g. 2 for SAR, 3 for KWD, 0 for JPY).
func MinorUnitDigits(currency string) int {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if digits, ok := minorUnits[code]; ok {
		return digits
	}
	return 2
}

// RoundToMinorUnit rounds amount to the currency's minor unit, half away from
// zero.
func RoundToMinorUnit(amount float64, currency string) float64 {
	factor := math.Pow(10, float64(MinorUnitDigits(currency)))
	return math.Round(amount*factor) / factor
}

// ValidateCurrencyCode validates a currency code format
func ValidateCurrencyCode(code string) error {
	// Trim and convert to uppercase
	code = strings.TrimSpace(strings.ToUpper(code))

	// Check length (ISO 4217 currency codes are 3 characters)
	if len(code) != 3 {
		return fmt.Errorf("currency code must be exactly 3 characters")
	}

	// Check for valid characters (A-Z only)
	for _, char := range code {
		if char < 'A' || char > 'Z' {
			return fmt.Errorf("currency code must contain only uppercase letters")
		}
	}

	return nil
}

// ParseSupportedCurrencies parses a comma-separated currency list from
// configuration, falling back to SAR when the value is empty.
func ParseSupportedCurrencies(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{"SAR"}, nil // Default fallback
	}

	parts := strings.Split(raw, ",")
	currencies := make([]string, 0, len(parts))
	for _, part := range parts {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code == "" {
			continue
		}
		if err := ValidateCurrencyCode(code); err != nil {
			return []string{"SAR"}, fmt.Errorf("invalid currency code '%s': %w", code, err)
		}
		currencies = append(currencies, code)
	}

	if len(currencies) == 0 {
		return []string{"SAR"}, nil
	}

	return RemoveDuplicateCurrencies(currencies), nil
}

// IsCurrencyInList checks if a currency code exists in a currency list
func IsCurrencyInList(currencyCode string, currencyList []string) bool {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))

	for _, currency := range currencyList {
		if strings.ToUpper(strings.TrimSpace(currency)) == currencyCode {
			return true
		}
	}

	return false
}

// RemoveDuplicateCurrencies removes duplicate currency codes from a list
func RemoveDuplicateCurrencies(currencies []string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, currency := range currencies {
		normalized := strings.ToUpper(strings.TrimSpace(currency))
		if !seen[normalized] {
			seen[normalized] = true
			result = append(result, normalized)
		}
	}

	return result
}

// GetMajorCurrencies returns the currencies the booking front-end offers in
// its currency selector by default.
func GetMajorCurrencies() []string {
	return []string{
		"SAR", // Saudi Riyal
		"USD", // US Dollar
		"EUR", // Euro
		"GBP", // British Pound
		"AED", // UAE Dirham
		"KWD", // Kuwaiti Dinar
		"BHD", // Bahraini Dinar
		"QAR", // Qatari Riyal
		"OMR", // Omani Rial
		"EGP", // Egyptian Pound
	}
}
