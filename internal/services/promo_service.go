package services

import (
	"context"
	"fmt"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/promo"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"go.uber.org/zap"
)

// PromoService fronts the promo engine: validation for the customer flow,
// definition management for the back office.
type PromoService struct {
	promo  interfaces.PromoAPI
	logger *zap.Logger
}

// NewPromoService creates a new promo service
func NewPromoService(promoAPI interfaces.PromoAPI) *PromoService {
	return &PromoService{
		promo:  promoAPI,
		logger: logger.Log,
	}
}

// ValidatePromo checks a code against the promo engine and mirrors its
// verdict contract. An unknown or exhausted code is a failed validation in
// the response body, not an error.
func (s *PromoService) ValidatePromo(ctx context.Context, p params.PromoValidationParams) (*responses.PromoValidation, error) {
	verdict, err := s.promo.Validate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to validate promo code: %w", err)
	}

	result := &responses.PromoValidation{
		Success: verdict.Success,
		Message: verdict.Message,
	}
	if verdict.Data != nil {
		result.Data = &responses.PromoValidationData{
			Code:          verdict.Data.Code,
			Discount:      verdict.Data.Discount,
			FinalValue:    verdict.Data.FinalValue,
			OriginalValue: verdict.Data.OriginalValue,
		}
	}

	if verdict.Success {
		s.logger.Info("Promo code validated",
			zap.String("code", p.Code),
			zap.Float64("booking_value", p.BookingValue))
	} else {
		s.logger.Info("Promo code rejected",
			zap.String("code", p.Code),
			zap.String("message", verdict.Message))
	}
	return result, nil
}

// ListPromos pages through the engine's promo definitions.
func (s *PromoService) ListPromos(ctx context.Context, limit, offset int32) (*responses.PromoList, error) {
	page, err := s.promo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list promo codes: %w", err)
	}

	promos := make([]responses.Promo, 0, len(page.Promos))
	for _, def := range page.Promos {
		promos = append(promos, toPromoResponse(def))
	}
	return &responses.PromoList{
		Promos:     promos,
		TotalItems: page.TotalItems,
	}, nil
}

// CreatePromo registers a new code with the promo engine.
func (s *PromoService) CreatePromo(ctx context.Context, req requests.CreatePromoRequest) (*responses.Promo, error) {
	validFrom, err := parsePromoDate(req.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("invalid valid_from: %w", err)
	}
	validTo, err := parsePromoDate(req.ValidTo)
	if err != nil {
		return nil, fmt.Errorf("invalid valid_to: %w", err)
	}

	def, err := s.promo.Create(ctx, promo.CreatePromoRequest{
		Code:          req.Code,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		MinOrderValue: req.MinOrderValue,
		MaxUsage:      req.MaxUsage,
		ValidFrom:     validFrom,
		ValidTo:       validTo,
		Active:        req.Active,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create promo code: %w", err)
	}

	s.logger.Info("Promo code created",
		zap.String("code", def.Code),
		zap.String("discount_type", def.DiscountType),
		zap.Float64("discount_value", def.DiscountValue))

	result := toPromoResponse(*def)
	return &result, nil
}

// UpdatePromo amends an existing code. Zero-valued request fields are left
// unchanged on the engine side.
func (s *PromoService) UpdatePromo(ctx context.Context, promoID string, req requests.UpdatePromoRequest) (*responses.Promo, error) {
	update := promo.UpdatePromoRequest{Active: req.Active}
	if req.DiscountValue > 0 {
		update.DiscountValue = &req.DiscountValue
	}
	if req.MinOrderValue > 0 {
		update.MinOrderValue = &req.MinOrderValue
	}
	if req.MaxUsage > 0 {
		update.MaxUsage = &req.MaxUsage
	}
	if req.ValidTo != "" {
		validTo, err := parsePromoDate(req.ValidTo)
		if err != nil {
			return nil, fmt.Errorf("invalid valid_to: %w", err)
		}
		update.ValidTo = validTo
	}

	def, err := s.promo.Update(ctx, promoID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update promo code: %w", err)
	}

	s.logger.Info("Promo code updated", zap.String("promo_id", promoID))

	result := toPromoResponse(*def)
	return &result, nil
}

// DeletePromo removes a code from the engine.
func (s *PromoService) DeletePromo(ctx context.Context, promoID string) error {
	if err := s.promo.Delete(ctx, promoID); err != nil {
		return fmt.Errorf("failed to delete promo code: %w", err)
	}
	s.logger.Info("Promo code deleted", zap.String("promo_id", promoID))
	return nil
}

func toPromoResponse(def promo.PromoDefinition) responses.Promo {
	return responses.Promo{
		ID:            def.ID,
		Code:          def.Code,
		DiscountType:  def.DiscountType,
		DiscountValue: def.DiscountValue,
		MinOrderValue: def.MinOrderValue,
		MaxUsage:      def.MaxUsage,
		UsageCount:    def.UsageCount,
		ValidFrom:     def.ValidFrom,
		ValidTo:       def.ValidTo,
		Active:        def.Active,
		CreatedAt:     def.CreatedAt,
	}
}

// parsePromoDate converts an optional YYYY-MM-DD field into the engine's
// timestamp form. Empty stays nil.
func parsePromoDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(stayDateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
