package services

import (
	"context"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/metrics"
	"skyward-va/horizon/internal/models/dtos"
)

// FlightRegistryService fronts the ephemeral live-flight registry.
// Every telemetry tick rewrites the pilot's record and resets its TTL;
// a pilot that stops reporting simply ages out.
type FlightRegistryService struct {
	store      LiveFlightStore
	metricsReg *metrics.MetricsRegistry
}

// NewFlightRegistryService creates a new FlightRegistryService
func NewFlightRegistryService(store LiveFlightStore, metricsReg *metrics.MetricsRegistry) *FlightRegistryService {
	return &FlightRegistryService{
		store:      store,
		metricsReg: metricsReg,
	}
}

// RecordTelemetry upserts the pilot's live record with the standard TTL.
func (s *FlightRegistryService) RecordTelemetry(ctx context.Context, pilotID string, req *dtos.TelemetryRequest) error {
	if req.Latitude < -90 || req.Latitude > 90 {
		return newValidationError("latitude", "out of range")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return newValidationError("longitude", "out of range")
	}

	rec := &common.LiveFlightRecord{
		PilotID:        pilotID,
		Callsign:       req.Callsign,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		AltitudeFt:     req.AltitudeFt,
		Heading:        req.Heading,
		GroundSpeedKts: req.GroundSpeedKts,
		Status:         req.Status,
		DepartureICAO:  req.DepartureICAO,
		ArrivalICAO:    req.ArrivalICAO,
		LastUpdate:     time.Now().UTC(),
	}
	if err := s.store.Upsert(ctx, rec, constants.LiveFlightTTL); err != nil {
		return err
	}

	logging.Debug("Telemetry recorded", "pilot_id", pilotID, "callsign", req.Callsign)
	return nil
}

// LiveFlights lists every unexpired record for the live map.
func (s *FlightRegistryService) LiveFlights(ctx context.Context) ([]dtos.LiveFlightResponse, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.LiveFlightResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, dtos.LiveFlightResponse{
			PilotID:        rec.PilotID,
			Callsign:       rec.Callsign,
			Latitude:       rec.Latitude,
			Longitude:      rec.Longitude,
			AltitudeFt:     rec.AltitudeFt,
			Heading:        rec.Heading,
			GroundSpeedKts: rec.GroundSpeedKts,
			Status:         rec.Status,
			DepartureICAO:  rec.DepartureICAO,
			ArrivalICAO:    rec.ArrivalICAO,
			LastUpdate:     rec.LastUpdate,
		})
	}

	if s.metricsReg != nil {
		s.metricsReg.LiveFlightsActive.Set(float64(len(out)))
	}
	return out, nil
}

// IsFlying reports whether the pilot has a live record. Absence is the
// normal "not flying" answer, never an error.
func (s *FlightRegistryService) IsFlying(ctx context.Context, pilotID string) (bool, error) {
	rec, err := s.store.Get(ctx, pilotID)
	if err != nil {
		return false, err
	}
	return rec != nil, nil
}

// EndFlight drops the pilot's record ahead of its TTL, typically right
// after a report is filed.
func (s *FlightRegistryService) EndFlight(ctx context.Context, pilotID string) error {
	return s.store.Remove(ctx, pilotID)
}
