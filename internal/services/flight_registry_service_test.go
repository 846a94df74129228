package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/dtos"
)

// fakeFlightStore honors TTLs against an adjustable clock so expiry
// can be observed without waiting.
type fakeFlightStore struct {
	now      time.Time
	lastTTL  time.Duration
	records  map[string]common.LiveFlightRecord
	deadline map[string]time.Time
}

func newFakeFlightStore() *fakeFlightStore {
	return &fakeFlightStore{
		now:      time.Now().UTC(),
		records:  make(map[string]common.LiveFlightRecord),
		deadline: make(map[string]time.Time),
	}
}

func (f *fakeFlightStore) Upsert(ctx context.Context, rec *common.LiveFlightRecord, ttl time.Duration) error {
	f.lastTTL = ttl
	f.records[rec.PilotID] = *rec
	f.deadline[rec.PilotID] = f.now.Add(ttl)
	return nil
}

func (f *fakeFlightStore) Get(ctx context.Context, pilotID string) (*common.LiveFlightRecord, error) {
	rec, ok := f.records[pilotID]
	if !ok || !f.now.Before(f.deadline[pilotID]) {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeFlightStore) List(ctx context.Context) ([]common.LiveFlightRecord, error) {
	var out []common.LiveFlightRecord
	for id, rec := range f.records {
		if f.now.Before(f.deadline[id]) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeFlightStore) Remove(ctx context.Context, pilotID string) error {
	delete(f.records, pilotID)
	delete(f.deadline, pilotID)
	return nil
}

func validTelemetry() *dtos.TelemetryRequest {
	return &dtos.TelemetryRequest{
		Callsign:       "SKW101",
		Latitude:       47.45,
		Longitude:      -122.31,
		AltitudeFt:     34000,
		Heading:        274,
		GroundSpeedKts: 447,
		Status:         "enroute",
		DepartureICAO:  "KSEA",
		ArrivalICAO:    "PANC",
	}
}

func TestRecordTelemetry_UsesStandardTTL(t *testing.T) {
	store := newFakeFlightStore()
	svc := NewFlightRegistryService(store, nil)

	if err := svc.RecordTelemetry(context.Background(), "pilot-1", validTelemetry()); err != nil {
		t.Fatalf("RecordTelemetry failed: %v", err)
	}
	if store.lastTTL != constants.LiveFlightTTL {
		t.Errorf("expected TTL %v, got %v", constants.LiveFlightTTL, store.lastTTL)
	}

	flying, err := svc.IsFlying(context.Background(), "pilot-1")
	if err != nil {
		t.Fatalf("IsFlying failed: %v", err)
	}
	if !flying {
		t.Error("expected pilot to be flying after telemetry")
	}
}

func TestRecordTelemetry_RejectsBadCoordinates(t *testing.T) {
	svc := NewFlightRegistryService(newFakeFlightStore(), nil)

	cases := []struct {
		name  string
		lat   float64
		lon   float64
		field string
	}{
		{"latitude too high", 91, 0, "latitude"},
		{"latitude too low", -90.5, 0, "latitude"},
		{"longitude too high", 0, 180.1, "longitude"},
		{"longitude too low", 0, -181, "longitude"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validTelemetry()
			req.Latitude = tc.lat
			req.Longitude = tc.lon

			err := svc.RecordTelemetry(context.Background(), "pilot-1", req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}
}

func TestLiveFlights_StaleRecordAgesOut(t *testing.T) {
	store := newFakeFlightStore()
	svc := NewFlightRegistryService(store, nil)

	if err := svc.RecordTelemetry(context.Background(), "pilot-1", validTelemetry()); err != nil {
		t.Fatalf("RecordTelemetry failed: %v", err)
	}

	// Eleven minutes of radio silence: the record must be gone from
	// both the map listing and the presence check.
	store.now = store.now.Add(11 * time.Minute)

	flights, err := svc.LiveFlights(context.Background())
	if err != nil {
		t.Fatalf("LiveFlights failed: %v", err)
	}
	if len(flights) != 0 {
		t.Errorf("expected no live flights, got %d", len(flights))
	}

	flying, err := svc.IsFlying(context.Background(), "pilot-1")
	if err != nil {
		t.Fatalf("IsFlying failed: %v", err)
	}
	if flying {
		t.Error("expected stale pilot to read as not flying")
	}
}

func TestRecordTelemetry_RefreshesTTL(t *testing.T) {
	store := newFakeFlightStore()
	svc := NewFlightRegistryService(store, nil)

	if err := svc.RecordTelemetry(context.Background(), "pilot-1", validTelemetry()); err != nil {
		t.Fatalf("RecordTelemetry failed: %v", err)
	}

	// A fresh tick nine minutes in pushes the deadline out again.
	store.now = store.now.Add(9 * time.Minute)
	if err := svc.RecordTelemetry(context.Background(), "pilot-1", validTelemetry()); err != nil {
		t.Fatalf("RecordTelemetry failed: %v", err)
	}

	store.now = store.now.Add(9 * time.Minute)
	flying, err := svc.IsFlying(context.Background(), "pilot-1")
	if err != nil {
		t.Fatalf("IsFlying failed: %v", err)
	}
	if !flying {
		t.Error("expected refreshed record to still be live")
	}
}

func TestEndFlight_RemovesRecord(t *testing.T) {
	store := newFakeFlightStore()
	svc := NewFlightRegistryService(store, nil)

	if err := svc.RecordTelemetry(context.Background(), "pilot-1", validTelemetry()); err != nil {
		t.Fatalf("RecordTelemetry failed: %v", err)
	}
	if err := svc.EndFlight(context.Background(), "pilot-1"); err != nil {
		t.Fatalf("EndFlight failed: %v", err)
	}

	flying, err := svc.IsFlying(context.Background(), "pilot-1")
	if err != nil {
		t.Fatalf("IsFlying failed: %v", err)
	}
	if flying {
		t.Error("expected ended flight to be gone")
	}
}
