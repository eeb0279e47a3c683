package services

import (
	"context"
	"fmt"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"go.uber.org/zap"
)

// ClientService is the back-office view over CRS client profiles.
type ClientService struct {
	crs    interfaces.CRSAPI
	logger *zap.Logger
}

// NewClientService creates a new client service
func NewClientService(crsAPI interfaces.CRSAPI) *ClientService {
	return &ClientService{
		crs:    crsAPI,
		logger: logger.Log,
	}
}

// ListClients pages through client profiles, optionally filtered by a
// free-text query over names, emails and phone numbers.
func (s *ClientService) ListClients(ctx context.Context, p params.ListClientsParams) (*responses.ClientList, error) {
	page, err := s.crs.ListClients(ctx, p.Query, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return &responses.ClientList{
		Clients:    page.Clients,
		TotalItems: page.TotalItems,
	}, nil
}

// GetClient fetches one client profile.
func (s *ClientService) GetClient(ctx context.Context, clientID string) (*business.Client, error) {
	client, err := s.crs.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return client, nil
}

// UpdateClient amends a client's contact profile. Empty request fields are
// left unchanged.
func (s *ClientService) UpdateClient(ctx context.Context, clientID string, req requests.UpdateClientRequest) (*business.Client, error) {
	client, err := s.crs.UpdateClient(ctx, clientID, crs.UpdateClientRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Nationality: req.Nationality,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	s.logger.Info("Client profile updated", zap.String("client_id", clientID))
	return client, nil
}
