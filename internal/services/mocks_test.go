package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/db"
	"skyward-va/horizon/internal/models/entities"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

func strp(s string) *string {
	return &s
}

// Setup test database
func setupTestDB(t *testing.T) *gormlib.DB {
	gdb, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(db.Models()...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return gdb
}

// memReportStore keeps reports in a map and enforces the same guarded
// transitions the SQL repository does.
type memReportStore struct {
	mu      sync.Mutex
	reports map[string]*entities.FlightReport
}

func newMemReportStore() *memReportStore {
	return &memReportStore{reports: make(map[string]*entities.FlightReport)}
}

func (m *memReportStore) Insert(ctx context.Context, report *entities.FlightReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *report
	m.reports[report.ID] = &clone
	return nil
}

func (m *memReportStore) GetByID(ctx context.Context, id string) (*entities.FlightReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	report, ok := m.reports[id]
	if !ok {
		return nil, nil
	}
	clone := *report
	return &clone, nil
}

func (m *memReportStore) ListByPilot(ctx context.Context, pilotID string, limit int) ([]entities.FlightReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.FlightReport
	for _, r := range m.reports {
		if r.PilotID == pilotID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReportStore) ListPending(ctx context.Context) ([]entities.FlightReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.FlightReport
	for _, r := range m.reports {
		if r.Status == constants.ReportPending {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memReportStore) transition(id string, from, to constants.ReportStatus, reviewerID *string, now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	report, ok := m.reports[id]
	if !ok || report.Status != from {
		return false
	}
	report.Status = to
	report.UpdatedAt = now
	if to == constants.ReportPending {
		report.ReviewedAt = nil
		report.ReviewerID = nil
	} else {
		report.ReviewedAt = &now
		report.ReviewerID = reviewerID
	}
	return true
}

func (m *memReportStore) MarkApproved(ctx context.Context, id, reviewerID string, now time.Time) (bool, error) {
	return m.transition(id, constants.ReportPending, constants.ReportApproved, &reviewerID, now), nil
}

func (m *memReportStore) MarkRejected(ctx context.Context, id, reviewerID string, now time.Time) (bool, error) {
	return m.transition(id, constants.ReportPending, constants.ReportRejected, &reviewerID, now), nil
}

func (m *memReportStore) ReopenRejected(ctx context.Context, id string, now time.Time) (bool, error) {
	return m.transition(id, constants.ReportRejected, constants.ReportPending, nil, now), nil
}

// memPilotStore mirrors the field-level arithmetic of the SQL pilot
// repository, including the conditional debit and promote guards.
type memPilotStore struct {
	mu     sync.Mutex
	pilots map[string]*entities.Pilot
	txs    []entities.CreditTransaction
}

func newMemPilotStore(pilots ...*entities.Pilot) *memPilotStore {
	store := &memPilotStore{pilots: make(map[string]*entities.Pilot)}
	for _, p := range pilots {
		clone := *p
		store.pilots[p.ID] = &clone
	}
	return store
}

func (m *memPilotStore) GetByID(ctx context.Context, id string) (*entities.Pilot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pilot, ok := m.pilots[id]
	if !ok {
		return nil, nil
	}
	clone := *pilot
	return &clone, nil
}

func (m *memPilotStore) ApplyFlightTotals(ctx context.Context, pilotID string, flightMinutes int, landingRate float64, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pilot := m.pilots[pilotID]
	pilot.LandingAvg = (pilot.LandingAvg*float64(pilot.TotalFlights) + landingRate) / float64(pilot.TotalFlights+1)
	pilot.TotalHours += float64(flightMinutes) / 60.0
	pilot.TotalFlights++
	pilot.LastActivity = &now
	return nil
}

func (m *memPilotStore) PromoteRank(ctx context.Context, pilotID, rank string, rankOrder int, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pilot := m.pilots[pilotID]
	if pilot.RankOrder >= rankOrder {
		return false, nil
	}
	pilot.Rank = rank
	pilot.RankOrder = rankOrder
	return true, nil
}

func (m *memPilotStore) UpdateLocation(ctx context.Context, pilotID, icao string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pilots[pilotID].CurrentLocation = icao
	return nil
}

func (m *memPilotStore) Leaderboard(ctx context.Context, limit int) ([]entities.Pilot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Pilot
	for _, p := range m.pilots {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memPilotStore) ApplyCredit(ctx context.Context, pilotID string, amount int64, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pilot := m.pilots[pilotID]
	pilot.TotalCredits += amount
	return pilot.TotalCredits, nil
}

func (m *memPilotStore) ApplyDebit(ctx context.Context, pilotID string, amount int64, now time.Time) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pilot := m.pilots[pilotID]
	if pilot.TotalCredits < amount {
		return 0, false, nil
	}
	pilot.TotalCredits -= amount
	return pilot.TotalCredits, true, nil
}

func (m *memPilotStore) RecordTransaction(ctx context.Context, tx *entities.CreditTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = append(m.txs, *tx)
	return nil
}

// memPropagationStore is the claim table: Claim succeeds only the
// first time per (report, step).
type memPropagationStore struct {
	mu     sync.Mutex
	claims map[string]bool
}

func newMemPropagationStore() *memPropagationStore {
	return &memPropagationStore{claims: make(map[string]bool)}
}

func (m *memPropagationStore) Claim(ctx context.Context, reportID, step string, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := reportID + "/" + step
	if m.claims[key] {
		return false, nil
	}
	m.claims[key] = true
	return true, nil
}

func (m *memPropagationStore) Release(ctx context.Context, reportID, step string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.claims, reportID+"/"+step)
	return nil
}

func (m *memPropagationStore) CompletedSteps(ctx context.Context, reportID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for key, claimed := range m.claims {
		if claimed && len(key) > len(reportID) && key[:len(reportID)] == reportID {
			out = append(out, key[len(reportID)+1:])
		}
	}
	return out, nil
}

// staticLadder serves a fixed rank ladder.
type staticLadder struct {
	ranks []gormModels.Rank
}

func (s *staticLadder) Ladder(ctx context.Context) ([]gormModels.Rank, error) {
	return s.ranks, nil
}

// mockAirportResolver resolves via a function field.
type mockAirportResolver struct {
	resolveFunc func(ctx context.Context, icao string) (*gormModels.Airport, error)
}

func (m *mockAirportResolver) ResolveAirport(ctx context.Context, icao string) (*gormModels.Airport, error) {
	return m.resolveFunc(ctx, icao)
}

// knownAirports builds a resolver that knows the given codes.
func knownAirports(codes ...string) *mockAirportResolver {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return &mockAirportResolver{
		resolveFunc: func(ctx context.Context, icao string) (*gormModels.Airport, error) {
			if !set[icao] {
				return nil, nil
			}
			return &gormModels.Airport{ID: icao, ICAO: icao, Latitude: 0, Longitude: 0}, nil
		},
	}
}

// captureNotifier records every event.
type captureNotifier struct {
	mu     sync.Mutex
	events []struct {
		Kind    string
		PilotID string
	}
}

func (c *captureNotifier) Notify(ctx context.Context, kind, pilotID string, payload map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, struct {
		Kind    string
		PilotID string
	}{kind, pilotID})
}

func (c *captureNotifier) count(kind string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
