package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/constants"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"go.uber.org/zap"
)

// ErrInvalidStatusTransition marks back-office actions that the
// reservation's current status does not allow; handlers map it to a
// conflict rather than a gateway error.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// ReservationService is the back-office view over CRS reservations. It
// decorates records with presentation labels and guards status transitions;
// the CRS remains the system of record.
type ReservationService struct {
	crs    interfaces.CRSAPI
	logger *zap.Logger
}

// NewReservationService creates a new reservation service
func NewReservationService(crsAPI interfaces.CRSAPI) *ReservationService {
	return &ReservationService{
		crs:    crsAPI,
		logger: logger.Log,
	}
}

// ListReservations pages through reservations, optionally filtered by status
// and a free-text query over client and hotel names.
func (s *ReservationService) ListReservations(ctx context.Context, p params.ListReservationsParams) (*responses.ReservationList, error) {
	page, err := s.crs.ListReservations(ctx, p.Status, p.Query, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	reservations := make([]business.Reservation, 0, len(page.Reservations))
	for _, reservation := range page.Reservations {
		reservations = append(reservations, withStatusLabel(reservation))
	}
	return &responses.ReservationList{
		Reservations: reservations,
		TotalItems:   page.TotalItems,
	}, nil
}

// GetReservation fetches one reservation with its presentation label.
func (s *ReservationService) GetReservation(ctx context.Context, reservationID string) (*business.Reservation, error) {
	reservation, err := s.crs.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	labeled := withStatusLabel(*reservation)
	return &labeled, nil
}

// ApproveReservation confirms a reservation. Approving an already confirmed
// reservation is a no-op; cancelled and rejected reservations cannot be
// approved.
func (s *ReservationService) ApproveReservation(ctx context.Context, reservationID string) (*business.Reservation, error) {
	reservation, err := s.crs.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}

	switch reservation.Status {
	case constants.ReservationStatusConfirmed:
		s.logger.Info("Reservation already confirmed",
			zap.String("reservation_id", reservationID))
		labeled := withStatusLabel(*reservation)
		return &labeled, nil
	case constants.ReservationStatusCancelled, constants.ReservationStatusRejected:
		return nil, fmt.Errorf("%w: cannot approve a %s reservation", ErrInvalidStatusTransition, reservation.Status)
	}

	updated, err := s.crs.UpdateReservationStatus(ctx, reservationID, constants.ReservationStatusConfirmed, "")
	if err != nil {
		return nil, fmt.Errorf("failed to approve reservation: %w", err)
	}

	s.logger.Info("Reservation approved",
		zap.String("reservation_id", reservationID),
		zap.String("reference", updated.Reference))

	labeled := withStatusLabel(*updated)
	return &labeled, nil
}

// CancelReservation cancels a reservation with an audit reason. Cancelling an
// already cancelled reservation is a no-op.
func (s *ReservationService) CancelReservation(ctx context.Context, reservationID, reason string) (*business.Reservation, error) {
	reservation, err := s.crs.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}

	if reservation.Status == constants.ReservationStatusCancelled {
		s.logger.Info("Reservation already cancelled",
			zap.String("reservation_id", reservationID))
		labeled := withStatusLabel(*reservation)
		return &labeled, nil
	}

	updated, err := s.crs.UpdateReservationStatus(ctx, reservationID, constants.ReservationStatusCancelled, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.logger.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("reference", updated.Reference),
		zap.String("reason", reason))

	labeled := withStatusLabel(*updated)
	return &labeled, nil
}

// AmendReservation applies stay amendments to an active reservation.
// Cancelled and rejected reservations cannot be amended.
func (s *ReservationService) AmendReservation(ctx context.Context, reservationID string, req requests.UpdateReservationRequest) (*business.Reservation, error) {
	reservation, err := s.crs.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}

	switch reservation.Status {
	case constants.ReservationStatusCancelled, constants.ReservationStatusRejected:
		return nil, fmt.Errorf("%w: cannot amend a %s reservation", ErrInvalidStatusTransition, reservation.Status)
	}

	amendment := crs.AmendReservationRequest{}
	if req.CheckIn != "" {
		amendment.CheckIn = &req.CheckIn
	}
	if req.CheckOut != "" {
		amendment.CheckOut = &req.CheckOut
	}
	if req.Rooms > 0 {
		amendment.Rooms = &req.Rooms
	}
	if req.Adults > 0 {
		amendment.Adults = &req.Adults
	}
	if req.TotalPrice > 0 {
		amendment.TotalPrice = &req.TotalPrice
	}
	if req.SpecialNotes != "" {
		amendment.SpecialNotes = &req.SpecialNotes
	}

	updated, err := s.crs.AmendReservation(ctx, reservationID, amendment)
	if err != nil {
		return nil, fmt.Errorf("failed to amend reservation: %w", err)
	}

	s.logger.Info("Reservation amended",
		zap.String("reservation_id", reservationID),
		zap.String("reference", updated.Reference))

	labeled := withStatusLabel(*updated)
	return &labeled, nil
}

// withStatusLabel decorates a reservation with its presentation label.
func withStatusLabel(reservation business.Reservation) business.Reservation {
	reservation.StatusLabel = constants.ReservationStatusLabel(reservation.Status)
	return reservation
}
