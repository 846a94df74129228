package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/db/repositories"
	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/models/dtos"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

// BidService manages route reservations. Bids expire 24 hours after
// creation; the sweeper worker removes stale rows and every read
// filters on the deadline so a lagging sweep never shows one.
type BidService struct {
	bids     *repositories.BidRepository
	airports AirportResolver
}

// NewBidService creates a new BidService
func NewBidService(bids *repositories.BidRepository, airports AirportResolver) *BidService {
	return &BidService{
		bids:     bids,
		airports: airports,
	}
}

// Create reserves a route for the pilot.
func (s *BidService) Create(ctx context.Context, pilotID string, req *dtos.CreateBidRequest) (*dtos.BidResponse, error) {
	if req.FlightNumber == "" {
		return nil, newValidationError("flight_number", "must not be empty")
	}
	for _, field := range []struct{ name, icao string }{
		{"departure_icao", req.DepartureICAO},
		{"arrival_icao", req.ArrivalICAO},
	} {
		airport, err := s.airports.ResolveAirport(ctx, field.icao)
		if err != nil {
			return nil, err
		}
		if airport == nil {
			return nil, newValidationError(field.name, "unknown airport code")
		}
	}

	now := time.Now().UTC()
	bid := &gormModels.Bid{
		ID:            uuid.NewString(),
		PilotID:       pilotID,
		FlightNumber:  req.FlightNumber,
		DepartureICAO: req.DepartureICAO,
		ArrivalICAO:   req.ArrivalICAO,
		Aircraft:      req.Aircraft,
		CreatedAt:     now,
		ExpiresAt:     now.Add(constants.BidTTL),
	}
	if err := s.bids.Create(ctx, bid); err != nil {
		return nil, err
	}

	logging.Info("Bid created", "pilot_id", pilotID, "bid_id", bid.ID, "flight_number", bid.FlightNumber)
	return bidResponse(bid), nil
}

// List returns the pilot's unexpired bids.
func (s *BidService) List(ctx context.Context, pilotID string) ([]dtos.BidResponse, error) {
	bids, err := s.bids.ListActiveForPilot(ctx, pilotID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	out := make([]dtos.BidResponse, 0, len(bids))
	for i := range bids {
		out = append(out, *bidResponse(&bids[i]))
	}
	return out, nil
}

// Delete removes a bid owned by the pilot. Deleting someone else's bid
// is reported as not found rather than forbidden.
func (s *BidService) Delete(ctx context.Context, pilotID, bidID string) error {
	bid, err := s.bids.Get(ctx, bidID)
	if err != nil {
		return err
	}
	if bid == nil || bid.PilotID != pilotID {
		return ErrNotFound
	}
	return s.bids.Delete(ctx, bidID)
}

func bidResponse(bid *gormModels.Bid) *dtos.BidResponse {
	return &dtos.BidResponse{
		ID:            bid.ID,
		FlightNumber:  bid.FlightNumber,
		DepartureICAO: bid.DepartureICAO,
		ArrivalICAO:   bid.ArrivalICAO,
		Aircraft:      bid.Aircraft,
		CreatedAt:     bid.CreatedAt,
		ExpiresAt:     bid.ExpiresAt,
	}
}
