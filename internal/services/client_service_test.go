package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/mocks"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientService_ListClients(t *testing.T) {
	crsMock := mocks.NewMockCRSAPIForTest(t)
	svc := services.NewClientService(crsMock)

	crsMock.EXPECT().
		ListClients(gomock.Any(), "hassan", int32(20), int32(0)).
		Return(&crs.ClientListResponse{
			Clients: []business.Client{{
				ID:           "client_1",
				Name:         "Omar Hassan",
				Email:        "omar@example.com",
				BookingCount: 4,
			}},
			TotalItems: 1,
		}, nil)

	result, err := svc.ListClients(context.Background(), params.ListClientsParams{
		Query: "hassan",
		Limit: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.TotalItems)
	require.Len(t, result.Clients, 1)
	assert.Equal(t, "Omar Hassan", result.Clients[0].Name)
}

func TestClientService_GetClient(t *testing.T) {
	t.Run("returns the stored profile", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewClientService(crsMock)

		crsMock.EXPECT().
			GetClient(gomock.Any(), "client_1").
			Return(&business.Client{ID: "client_1", Name: "Omar Hassan"}, nil)

		client, err := svc.GetClient(context.Background(), "client_1")

		require.NoError(t, err)
		assert.Equal(t, "Omar Hassan", client.Name)
	})

	t.Run("a CRS outage surfaces as an error", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewClientService(crsMock)

		crsMock.EXPECT().
			GetClient(gomock.Any(), "client_404").
			Return(nil, errors.New("404 not found"))

		client, err := svc.GetClient(context.Background(), "client_404")

		assert.Nil(t, client)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch client")
	})
}

func TestClientService_UpdateClient(t *testing.T) {
	crsMock := mocks.NewMockCRSAPIForTest(t)
	svc := services.NewClientService(crsMock)

	crsMock.EXPECT().
		UpdateClient(gomock.Any(), "client_1", crs.UpdateClientRequest{
			Phone: "+966501234567",
		}).
		Return(&business.Client{
			ID:    "client_1",
			Name:  "Omar Hassan",
			Phone: "+966501234567",
		}, nil)

	client, err := svc.UpdateClient(context.Background(), "client_1", requests.UpdateClientRequest{
		Phone: "+966501234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "+966501234567", client.Phone)
}
