package services

import (
	"context"
	"fmt"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"go.uber.org/zap"
)

// LoyaltyService fronts the loyalty program for the customer flow. Reserving
// and releasing points happens inside the booking pipeline, not here.
type LoyaltyService struct {
	loyalty interfaces.LoyaltyAPI
	logger  *zap.Logger
}

// NewLoyaltyService creates a new loyalty service
func NewLoyaltyService(loyaltyAPI interfaces.LoyaltyAPI) *LoyaltyService {
	return &LoyaltyService{
		loyalty: loyaltyAPI,
		logger:  logger.Log,
	}
}

// GetBalance reads a member's point balance.
func (s *LoyaltyService) GetBalance(ctx context.Context, userID string) (*responses.LoyaltyBalance, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	balance, err := s.loyalty.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch loyalty balance: %w", err)
	}

	return &responses.LoyaltyBalance{
		UserID:          balance.UserID,
		Points:          balance.Points,
		RedemptionValue: balance.RedemptionValue,
		Currency:        balance.Currency,
	}, nil
}

// PreviewRedemption asks the program how large a discount a redemption would
// fund. Non-positive point counts preview as no discount without calling out.
func (s *LoyaltyService) PreviewRedemption(ctx context.Context, p params.LoyaltyPreviewParams) (*responses.LoyaltyPreview, error) {
	if p.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if p.Points <= 0 {
		return &responses.LoyaltyPreview{}, nil
	}

	preview, err := s.loyalty.PreviewRedemption(ctx, p.UserID, p.Points)
	if err != nil {
		return nil, fmt.Errorf("failed to preview redemption: %w", err)
	}

	s.logger.Debug("Previewed loyalty redemption",
		zap.String("user_id", p.UserID),
		zap.Int("points", preview.Points),
		zap.Float64("amount", preview.Amount))

	return &responses.LoyaltyPreview{
		Points:   preview.Points,
		Amount:   preview.Amount,
		Currency: preview.Currency,
	}, nil
}
