package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/db/repositories"
	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/models/dtos"
	"skyward-va/horizon/internal/models/entities"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

const (
	jumpseatBaseCost  = 50
	jumpseatCostPerNM = 0.25
)

// PilotService serves pilot-facing read models (stats, leaderboard,
// awards) and the jumpseat relocation.
type PilotService struct {
	pilots   PilotStore
	reports  ReportStore
	awards   *repositories.AwardRepository
	airports AirportResolver
	ledger   *CreditService
	registry *FlightRegistryService
}

// NewPilotService creates a new PilotService with dependencies
func NewPilotService(
	pilots PilotStore,
	reports ReportStore,
	awards *repositories.AwardRepository,
	airports AirportResolver,
	ledger *CreditService,
	registry *FlightRegistryService,
) *PilotService {
	return &PilotService{
		pilots:   pilots,
		reports:  reports,
		awards:   awards,
		airports: airports,
		ledger:   ledger,
		registry: registry,
	}
}

// Stats returns the totals snapshot for a pilot.
func (s *PilotService) Stats(ctx context.Context, pilotID string) (*dtos.PilotStatsResponse, error) {
	pilot, err := s.pilots.GetByID(ctx, pilotID)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, ErrNotFound
	}

	return &dtos.PilotStatsResponse{
		PilotID:         pilot.ID,
		Callsign:        pilot.Callsign,
		Name:            pilot.Name,
		Rank:            pilot.Rank,
		TotalHours:      pilot.TotalHours,
		TotalFlights:    pilot.TotalFlights,
		TotalCredits:    pilot.TotalCredits,
		LandingAvg:      pilot.LandingAvg,
		CurrentLocation: pilot.CurrentLocation,
		LastActivity:    pilot.LastActivity,
	}, nil
}

// RecentReports lists the pilot's latest submissions, newest first.
func (s *PilotService) RecentReports(ctx context.Context, pilotID string, limit int) ([]entities.FlightReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reports.ListByPilot(ctx, pilotID, limit)
}

// Awards lists the badges granted to a pilot.
func (s *PilotService) Awards(ctx context.Context, pilotID string) ([]gormModels.PilotAward, error) {
	return s.awards.ListForPilot(ctx, pilotID)
}

// Leaderboard returns the top pilots by hours, each flagged with their
// live-flight status from the ephemeral registry. A missing registry
// record simply means "not flying".
func (s *PilotService) Leaderboard(ctx context.Context, limit int) ([]dtos.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	pilots, err := s.pilots.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]dtos.LeaderboardEntry, 0, len(pilots))
	for _, pilot := range pilots {
		flying, err := s.registry.IsFlying(ctx, pilot.ID)
		if err != nil {
			logging.Warn("Live flight lookup failed", "pilot_id", pilot.ID, "error", err)
			flying = false
		}
		entries = append(entries, dtos.LeaderboardEntry{
			PilotID:      pilot.ID,
			Callsign:     pilot.Callsign,
			Name:         pilot.Name,
			Rank:         pilot.Rank,
			TotalHours:   pilot.TotalHours,
			TotalFlights: pilot.TotalFlights,
			Flying:       flying,
		})
	}
	return entries, nil
}

// Jumpseat relocates a pilot for a distance-derived credit cost. The
// debit goes through the ledger first; a refused debit leaves the
// location untouched.
func (s *PilotService) Jumpseat(ctx context.Context, pilotID, destinationICAO string) (*dtos.JumpseatResponse, error) {
	pilot, err := s.pilots.GetByID(ctx, pilotID)
	if err != nil {
		return nil, err
	}
	if pilot == nil {
		return nil, ErrNotFound
	}

	dest, err := s.airports.ResolveAirport(ctx, destinationICAO)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, newValidationError("destination_icao", "unknown airport code")
	}
	if pilot.CurrentLocation == dest.ICAO {
		return nil, newValidationError("destination_icao", "already at destination")
	}

	origin, err := s.airports.ResolveAirport(ctx, pilot.CurrentLocation)
	if err != nil {
		return nil, err
	}

	cost := int64(jumpseatBaseCost)
	if origin != nil {
		distance := common.HaversineNM(origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude)
		cost += int64(math.Ceil(distance * jumpseatCostPerNM))
	}

	reason := fmt.Sprintf("jumpseat %s -> %s", pilot.CurrentLocation, dest.ICAO)
	balance, err := s.ledger.Adjust(ctx, pilotID, -cost, reason)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.pilots.UpdateLocation(ctx, pilotID, dest.ICAO, now); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	logging.Info("Jumpseat completed",
		"pilot_id", pilotID,
		"from", pilot.CurrentLocation,
		"to", dest.ICAO,
		"cost", cost,
	)

	return &dtos.JumpseatResponse{
		ReceiptID:   uuid.NewString(),
		From:        pilot.CurrentLocation,
		To:          dest.ICAO,
		Cost:        cost,
		NewBalance:  balance,
		NewLocation: dest.ICAO,
	}, nil
}
