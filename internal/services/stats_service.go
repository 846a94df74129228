package services

import (
	"context"
	"fmt"
	"time"

	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/models/entities"
)

// StatsService folds an approved report into the owning pilot's
// cumulative totals. The fold is a single database-side update; it is
// triggered at most once per report by the propagation ledger.
type StatsService struct {
	pilots PilotStore
}

func NewStatsService(pilots PilotStore) *StatsService {
	return &StatsService{pilots: pilots}
}

// Apply adds the report's hours, flight count and landing rate to the
// pilot's running totals.
func (s *StatsService) Apply(ctx context.Context, report *entities.FlightReport, now time.Time) error {
	err := s.pilots.ApplyFlightTotals(ctx, report.PilotID, report.FlightTimeMinutes, report.LandingRate, now)
	if err != nil {
		return fmt.Errorf("failed to apply flight totals: %w", err)
	}

	logging.Info("Pilot totals updated",
		"report_id", report.ID,
		"pilot_id", report.PilotID,
		"hours_added", float64(report.FlightTimeMinutes)/60.0,
	)
	return nil
}
