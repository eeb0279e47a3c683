package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Common validation configurations for different endpoints

// validateCalendarDate returns a validator for YYYY-MM-DD calendar dates. The
// pattern check alone lets impossible dates like 2025-02-30 through, so the
// value is also parsed.
func validateCalendarDate(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if !DateRegex.MatchString(str) {
		return fmt.Errorf("must be a date in YYYY-MM-DD format")
	}
	if _, err := time.Parse("2006-01-02", str); err != nil {
		return fmt.Errorf("must be a valid calendar date")
	}
	return nil
}

// validateCurrencyField wraps the shared currency code check for rule configs.
func validateCurrencyField(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	return helpers.ValidateCurrencyCode(str)
}

// Rate search validation rules
var RateSearchValidation = ValidationConfig{
	MaxBodySize:        256 * 1024, // 256KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "hotelId",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 100,
			Sanitize:  true,
		},
		{
			Field:    "checkIn",
			Type:     "string",
			Required: true,
			Custom:   validateCalendarDate,
		},
		{
			Field:    "checkOut",
			Type:     "string",
			Required: true,
			Custom:   validateCalendarDate,
		},
		{
			Field:    "adults",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(1),
			Max:      float64Ptr(20),
		},
		{
			Field:    "childrenAges",
			Type:     "array",
			Required: false,
			Custom: func(value interface{}) error {
				ages, ok := value.([]interface{})
				if !ok {
					return fmt.Errorf("must be an array")
				}
				if len(ages) > 10 {
					return fmt.Errorf("maximum 10 children allowed")
				}
				for _, age := range ages {
					num, ok := age.(float64)
					if !ok {
						return fmt.Errorf("ages must be numbers")
					}
					if num < 0 || num > 17 {
						return fmt.Errorf("ages must be between 0 and 17")
					}
				}
				return nil
			},
		},
		{
			Field:    "currency",
			Type:     "string",
			Required: true,
			Custom:   validateCurrencyField,
		},
		{
			Field:         "language",
			Type:          "string",
			Required:      false,
			AllowedValues: []string{"en", "ar"},
		},
	},
}

// Selection refresh validation rules
var RefreshSelectionsValidation = ValidationConfig{
	MaxBodySize:        512 * 1024, // 512KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "refreshKey",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 255,
		},
		{
			Field:    "search",
			Type:     "object",
			Required: true,
			Custom: func(value interface{}) error {
				search, ok := value.(map[string]interface{})
				if !ok {
					return fmt.Errorf("search must be an object")
				}
				requiredFields := []string{"hotelId", "checkIn", "checkOut", "adults", "currency"}
				for _, field := range requiredFields {
					if _, exists := search[field]; !exists {
						return fmt.Errorf("search.%s is required", field)
					}
				}
				return nil
			},
		},
		{
			Field:    "selections",
			Type:     "array",
			Required: true,
			Custom: func(value interface{}) error {
				selections, ok := value.([]interface{})
				if !ok {
					return fmt.Errorf("selections must be an array")
				}
				if len(selections) > 20 {
					return fmt.Errorf("maximum 20 room selections allowed")
				}
				return nil
			},
		},
	},
}

// Quote validation rules
var QuoteValidation = ValidationConfig{
	MaxBodySize:        512 * 1024, // 512KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "selections",
			Type:     "array",
			Required: true,
			Custom: func(value interface{}) error {
				selections, ok := value.([]interface{})
				if !ok {
					return fmt.Errorf("selections must be an array")
				}
				if len(selections) < 1 {
					return fmt.Errorf("at least one room selection is required")
				}
				if len(selections) > 20 {
					return fmt.Errorf("maximum 20 room selections allowed")
				}
				return nil
			},
		},
		{
			Field:    "promo",
			Type:     "object",
			Required: false,
		},
		{
			Field:    "loyalty",
			Type:     "object",
			Required: false,
		},
	},
}

// Promo code validation rules (the customer-facing validate call)
var ValidatePromoValidation = ValidationConfig{
	MaxBodySize:        64 * 1024, // 64KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "code",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 50,
			Pattern:   `^[a-zA-Z0-9\-_]+$`,
			Sanitize:  true,
		},
		{
			Field:    "bookingValue",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(0),
		},
		{
			Field:     "hotelId",
			Type:      "string",
			Required:  false,
			MaxLength: 100,
			Sanitize:  true,
		},
		{
			Field:     "destination",
			Type:      "string",
			Required:  false,
			MaxLength: 100,
			Sanitize:  true,
		},
		{
			Field:     "userId",
			Type:      "string",
			Required:  false,
			MaxLength: 100,
		},
	},
}

// Loyalty redemption preview validation rules
var LoyaltyPreviewValidation = ValidationConfig{
	MaxBodySize:        64 * 1024, // 64KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "points",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(1),
			Custom: func(value interface{}) error {
				num, ok := value.(float64)
				if !ok {
					return fmt.Errorf("must be a number")
				}
				if num != float64(int64(num)) {
					return fmt.Errorf("must be a whole number of points")
				}
				return nil
			},
		},
	},
}

// Booking submission validation rules. Guest, selection and pricing details are
// re-checked in the booking service; this layer rejects malformed payloads
// before they reach it.
var SubmitBookingValidation = ValidationConfig{
	MaxBodySize:        1024 * 1024, // 1MB for drafts with many rooms and guests
	AllowUnknownFields: true,        // Drafts carry optional fields (promo, loyalty, notes)
	Rules: []ValidationRule{
		{
			Field:     "hotelId",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 100,
			Sanitize:  true,
		},
		{
			Field:     "hotelName",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:    "checkIn",
			Type:     "string",
			Required: true,
			Custom:   validateCalendarDate,
		},
		{
			Field:    "checkOut",
			Type:     "string",
			Required: true,
			Custom:   validateCalendarDate,
		},
		{
			Field:    "adults",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(1),
			Max:      float64Ptr(20),
		},
		{
			Field:    "guests",
			Type:     "array",
			Required: true,
			Custom: func(value interface{}) error {
				guests, ok := value.([]interface{})
				if !ok {
					return fmt.Errorf("guests must be an array")
				}
				if len(guests) < 1 {
					return fmt.Errorf("at least one guest is required")
				}
				for _, g := range guests {
					guest, ok := g.(map[string]interface{})
					if !ok {
						return fmt.Errorf("each guest must be an object")
					}
					name, _ := guest["firstName"].(string)
					if strings.TrimSpace(name) == "" {
						return fmt.Errorf("each guest needs a firstName")
					}
				}
				return nil
			},
		},
		{
			Field:    "selections",
			Type:     "array",
			Required: true,
			Custom: func(value interface{}) error {
				selections, ok := value.([]interface{})
				if !ok {
					return fmt.Errorf("selections must be an array")
				}
				if len(selections) < 1 {
					return fmt.Errorf("at least one room selection is required")
				}
				if len(selections) > 20 {
					return fmt.Errorf("maximum 20 room selections allowed")
				}
				return nil
			},
		},
		{
			Field:    "contactEmail",
			Type:     "email",
			Required: true,
			Sanitize: true,
		},
		{
			Field:    "contactPhone",
			Type:     "string",
			Required: true,
			Pattern:  `^\+?[1-9]\d{1,14}$`,
			Sanitize: true,
		},
		{
			Field:    "totalPrice",
			Type:     "number",
			Required: true,
			Min:      float64Ptr(0),
		},
		{
			Field:     "arrivalTime",
			Type:      "string",
			Required:  false,
			MaxLength: 50,
			Sanitize:  true,
		},
		{
			Field:     "specialNotes",
			Type:      "string",
			Required:  false,
			MaxLength: 1000,
			Sanitize:  true,
		},
		{
			Field:         "preferredLang",
			Type:          "string",
			Required:      false,
			AllowedValues: []string{"en", "ar"},
		},
	},
}

// Reservation amendment validation rules (admin). Every field is optional;
// an empty body is a no-op amendment.
var AmendReservationValidation = ValidationConfig{
	MaxBodySize:        64 * 1024, // 64KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "check_in",
			Type:     "string",
			Required: false,
			Custom:   validateCalendarDate,
		},
		{
			Field:    "check_out",
			Type:     "string",
			Required: false,
			Custom:   validateCalendarDate,
		},
		{
			Field:    "rooms",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(1),
			Max:      float64Ptr(20),
		},
		{
			Field:    "adults",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(1),
			Max:      float64Ptr(20),
		},
		{
			Field:    "total_price",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(0),
		},
		{
			Field:     "special_notes",
			Type:      "string",
			Required:  false,
			MaxLength: 1000,
			Sanitize:  true,
		},
	},
}

// Reservation cancellation validation rules (admin)
var CancelReservationValidation = ValidationConfig{
	MaxBodySize:        64 * 1024, // 64KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "reason",
			Type:      "string",
			Required:  false,
			MinLength: 1,
			MaxLength: 500,
			Sanitize:  true,
		},
	},
}

// Promo code management validation rules (admin)
var CreatePromoValidation = ValidationConfig{
	MaxBodySize:        64 * 1024, // 64KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "code",
			Type:      "string",
			Required:  true,
			MinLength: 3,
			MaxLength: 50,
			Pattern:   `^[a-zA-Z0-9\-_]+$`,
			Sanitize:  true,
		},
		{
			Field:         "discount_type",
			Type:          "string",
			Required:      true,
			AllowedValues: []string{"percentage", "fixed_amount"},
		},
		{
			Field:    "discount_value",
			Type:     "number",
			Required: true,
			Custom: func(value interface{}) error {
				num, ok := value.(float64)
				if !ok {
					return fmt.Errorf("must be a number")
				}
				if num <= 0 {
					return fmt.Errorf("must be positive")
				}
				return nil
			},
		},
		{
			Field:    "min_order_value",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(0),
		},
		{
			Field:    "max_usage",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(1),
		},
		{
			Field:    "valid_from",
			Type:     "string",
			Required: false,
			Custom:   validateCalendarDate,
		},
		{
			Field:    "valid_to",
			Type:     "string",
			Required: false,
			Custom:   validateCalendarDate,
		},
		{
			Field:    "active",
			Type:     "boolean",
			Required: false,
		},
	},
}

// Invoice delivery validation rules (admin)
var SendInvoiceValidation = ValidationConfig{
	MaxBodySize:        64 * 1024, // 64KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:    "channels",
			Type:     "array",
			Required: true,
			Custom: func(value interface{}) error {
				channels, ok := value.([]interface{})
				if !ok {
					return fmt.Errorf("channels must be an array")
				}
				if len(channels) < 1 {
					return fmt.Errorf("at least one delivery channel is required")
				}
				for _, ch := range channels {
					str, ok := ch.(string)
					if !ok {
						return fmt.Errorf("channels must be strings")
					}
					if str != "email" && str != "whatsapp" {
						return fmt.Errorf("channel must be 'email' or 'whatsapp'")
					}
				}
				return nil
			},
		},
		{
			Field:     "note",
			Type:      "string",
			Required:  false,
			MaxLength: 500,
			Sanitize:  true,
		},
	},
}

// Inbox message validation rules (admin)
var SendMessageValidation = ValidationConfig{
	MaxBodySize:        64 * 1024, // 64KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "body",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 4096, // WhatsApp message body ceiling
		},
	},
}

// Blog post validation rules (admin)
var CreateBlogPostValidation = ValidationConfig{
	MaxBodySize:        2 * 1024 * 1024, // 2MB for long-form content
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "title",
			Type:      "string",
			Required:  true,
			MinLength: 1,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:     "slug",
			Type:      "string",
			Required:  false,
			MaxLength: 255,
			Pattern:   `^[a-z0-9]+(-[a-z0-9]+)*$`,
		},
		{
			Field:     "excerpt",
			Type:      "string",
			Required:  false,
			MaxLength: 500,
			Sanitize:  true,
		},
		{
			Field:     "body",
			Type:      "string",
			Required:  true,
			MinLength: 1,
		},
		{
			Field:    "cover_url",
			Type:     "string",
			Required: false,
			Custom: func(value interface{}) error {
				str, ok := value.(string)
				if !ok {
					return fmt.Errorf("must be a string")
				}
				if str == "" {
					return nil // Empty string is allowed
				}
				if !URLRegex.MatchString(str) {
					return fmt.Errorf("must be a valid URL")
				}
				return nil
			},
		},
		{
			Field:     "author",
			Type:      "string",
			Required:  false,
			MaxLength: 100,
			Sanitize:  true,
		},
		{
			Field:    "tags",
			Type:     "array",
			Required: false,
			Custom: func(value interface{}) error {
				tags, ok := value.([]interface{})
				if !ok {
					return fmt.Errorf("must be an array")
				}
				if len(tags) > 20 {
					return fmt.Errorf("maximum 20 tags allowed")
				}
				for _, tag := range tags {
					if _, ok := tag.(string); !ok {
						return fmt.Errorf("tags must be strings")
					}
				}
				return nil
			},
		},
		{
			Field:    "published",
			Type:     "boolean",
			Required: false,
		},
	},
}

// Client profile update validation rules (admin)
var UpdateClientValidation = ValidationConfig{
	MaxBodySize:        256 * 1024, // 256KB
	AllowUnknownFields: false,
	Rules: []ValidationRule{
		{
			Field:     "name",
			Type:      "string",
			Required:  false,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:    "email",
			Type:     "email",
			Required: false,
			Sanitize: true,
		},
		{
			Field:    "phone",
			Type:     "string",
			Required: false,
			Pattern:  `^\+?[1-9]\d{1,14}$`,
			Sanitize: true,
		},
		{
			Field:     "nationality",
			Type:      "string",
			Required:  false,
			MaxLength: 100,
			Sanitize:  true,
		},
	},
}

// Reservation list query validation
var ListReservationsQueryValidation = ValidationConfig{
	Rules: []ValidationRule{
		{
			Field:    "status",
			Type:     "string",
			Required: false,
			Custom: func(value interface{}) error {
				str, ok := value.(string)
				if !ok {
					return fmt.Errorf("must be a string")
				}
				if !constants.IsValidReservationStatus(str) {
					return fmt.Errorf("unknown reservation status")
				}
				return nil
			},
		},
		{
			Field:     "q",
			Type:      "string",
			Required:  false,
			MaxLength: 255,
			Sanitize:  true,
		},
		{
			Field:    "limit",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(1),
			Max:      float64Ptr(100),
		},
		{
			Field:    "offset",
			Type:     "number",
			Required: false,
			Min:      float64Ptr(0),
		},
	},
}

// ValidateQueryParams creates validation for URL query parameters
func ValidateQueryParams(config ValidationConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse query parameters into a map
		params := make(map[string]interface{})
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				// Try to parse as number if it looks like one
				if num, err := strconv.ParseFloat(values[0], 64); err == nil {
					params[key] = num
				} else {
					params[key] = values[0]
				}
			}
		}

		// Validate fields
		errors := validateFields(params, config.Rules, config.AllowUnknownFields)
		if len(errors) > 0 {
			if logger.Log != nil {
				logger.Log.Error("Query validation failed",
					zap.Any("errors", errors),
					zap.Any("params", params),
					zap.String("correlation_id", c.GetHeader("X-Correlation-ID")),
				)
			}
			c.JSON(http.StatusBadRequest, ValidationErrors{Errors: errors})
			c.Abort()
			return
		}

		// Store validated params in context
		c.Set("validatedQuery", params)
		c.Next()
	}
}
