package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/metrics"
	"skyward-va/horizon/internal/models/dtos"
	"skyward-va/horizon/internal/models/entities"
)

// Landing scoring: full marks up to the soft threshold, then a smooth
// quadratic penalty, floored at zero.
const (
	landingSoftThreshold = 250.0 // fpm
	landingPenaltyDiv    = 500.0
	maxLandingScore      = 100.0
)

// ScoreLandingRate converts a touchdown rate into a report score.
func ScoreLandingRate(rate float64) float64 {
	mag := math.Abs(rate)
	if mag <= landingSoftThreshold {
		return maxLandingScore
	}

	excess := mag - landingSoftThreshold
	score := maxLandingScore - (excess*excess)/landingPenaltyDiv
	if score < 0 {
		return 0
	}
	return score
}

// IntakeService validates submitted flight metrics and files the
// resulting report in Pending state.
type IntakeService struct {
	reports    ReportStore
	pilots     PilotStore
	ranks      RankLadder
	airports   AirportResolver
	metricsReg *metrics.MetricsRegistry
}

// NewIntakeService creates a new IntakeService with dependencies
func NewIntakeService(
	reports ReportStore,
	pilots PilotStore,
	ranks RankLadder,
	airports AirportResolver,
	metricsReg *metrics.MetricsRegistry,
) *IntakeService {
	return &IntakeService{
		reports:    reports,
		pilots:     pilots,
		ranks:      ranks,
		airports:   airports,
		metricsReg: metricsReg,
	}
}

// SubmitReport builds and persists a Pending report. On a failed
// constraint nothing is persisted and the first failure is returned.
func (s *IntakeService) SubmitReport(ctx context.Context, pilotID string, req *dtos.SubmitReportRequest) (*entities.FlightReport, error) {
	pilot, err := s.pilots.GetByID(ctx, pilotID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pilot: %w", err)
	}
	if pilot == nil {
		return nil, ErrNotFound
	}

	if req.FlightTimeMinutes <= 0 {
		return nil, newValidationError("flight_time_minutes", "must be greater than zero")
	}
	if math.IsNaN(req.LandingRate) || math.IsInf(req.LandingRate, 0) {
		return nil, newValidationError("landing_rate", "must be a finite number")
	}

	if err := s.requireAirport(ctx, "departure_icao", req.DepartureICAO); err != nil {
		return nil, err
	}
	if err := s.requireAirport(ctx, "arrival_icao", req.ArrivalICAO); err != nil {
		return nil, err
	}
	if req.AlternateICAO != nil && *req.AlternateICAO != "" {
		if err := s.requireAirport(ctx, "alternate_icao", *req.AlternateICAO); err != nil {
			return nil, err
		}
	}

	if err := s.checkAircraftPermitted(ctx, pilot, req.Aircraft); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report := &entities.FlightReport{
		ID:                uuid.NewString(),
		PilotID:           pilot.ID,
		FlightNumber:      strings.TrimSpace(req.FlightNumber),
		Callsign:          strings.TrimSpace(req.Callsign),
		DepartureICAO:     strings.ToUpper(strings.TrimSpace(req.DepartureICAO)),
		ArrivalICAO:       strings.ToUpper(strings.TrimSpace(req.ArrivalICAO)),
		Route:             req.Route,
		Aircraft:          strings.TrimSpace(req.Aircraft),
		FlightTimeMinutes: req.FlightTimeMinutes,
		FuelUsedKg:        req.FuelUsedKg,
		DistanceNM:        req.DistanceNM,
		LandingRate:       req.LandingRate,
		Passengers:        req.Passengers,
		CargoKg:           req.CargoKg,
		Score:             ScoreLandingRate(req.LandingRate),
		Status:            constants.ReportPending,
		Remarks:           req.Remarks,
		SubmittedAt:       now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if req.AlternateICAO != nil && *req.AlternateICAO != "" {
		alt := strings.ToUpper(strings.TrimSpace(*req.AlternateICAO))
		report.AlternateICAO = &alt
	}

	if err := s.reports.Insert(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to file report: %w", err)
	}

	if s.metricsReg != nil {
		s.metricsReg.ReportsSubmittedTotal.Inc()
	}
	logging.Info("PIREP filed",
		"report_id", report.ID,
		"pilot_id", pilot.ID,
		"route", fmt.Sprintf("%s-%s", report.DepartureICAO, report.ArrivalICAO),
		"score", report.Score,
	)
	return report, nil
}

func (s *IntakeService) requireAirport(ctx context.Context, field, icao string) error {
	code := strings.TrimSpace(icao)
	if code == "" {
		return newValidationError(field, "is required")
	}

	airport, err := s.airports.ResolveAirport(ctx, code)
	if err != nil {
		return fmt.Errorf("airport lookup failed for %s: %w", code, err)
	}
	if airport == nil {
		return newValidationError(field, fmt.Sprintf("unknown ICAO %s", strings.ToUpper(code)))
	}
	return nil
}

// checkAircraftPermitted enforces the rank's aircraft restrictions.
// A rank without an allowed list permits everything.
func (s *IntakeService) checkAircraftPermitted(ctx context.Context, pilot *entities.Pilot, aircraft string) error {
	if strings.TrimSpace(aircraft) == "" {
		return newValidationError("aircraft", "is required")
	}

	ladder, err := s.ranks.Ladder(ctx)
	if err != nil {
		return fmt.Errorf("failed to load rank ladder: %w", err)
	}

	for _, rank := range ladder {
		if rank.RankOrder != pilot.RankOrder {
			continue
		}
		if len(rank.AllowedAircraft) == 0 {
			return nil
		}
		for _, allowed := range rank.AllowedAircraft {
			if strings.EqualFold(allowed, aircraft) {
				return nil
			}
		}
		return newValidationError("aircraft", fmt.Sprintf("%s is not permitted at rank %s", aircraft, rank.Name))
	}

	// Pilot's rank is not on the ladder; nothing to restrict against.
	return nil
}
