package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"skyward-va/horizon/internal/models/entities"
)

func TestApplyFlightTotals(t *testing.T) {
	sdb := openTestDB(t)
	repo := NewPilotRepository(sdb)
	ctx := context.Background()

	seedPilot(t, sdb, &entities.Pilot{
		ID: "pilot-1", TotalHours: 40, TotalFlights: 9, LandingAvg: -200,
	})

	if err := repo.ApplyFlightTotals(ctx, "pilot-1", 90, -150, time.Now().UTC()); err != nil {
		t.Fatalf("ApplyFlightTotals failed: %v", err)
	}

	pilot, err := repo.GetByID(ctx, "pilot-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if pilot.TotalHours != 41.5 {
		t.Errorf("expected 41.5 hours, got %v", pilot.TotalHours)
	}
	if pilot.TotalFlights != 10 {
		t.Errorf("expected 10 flights, got %d", pilot.TotalFlights)
	}
	want := (-200.0*9 + -150.0) / 10.0
	if pilot.LandingAvg != want {
		t.Errorf("expected landing avg %v, got %v", want, pilot.LandingAvg)
	}
	if pilot.LastActivity == nil {
		t.Error("expected last_activity to be set")
	}
}

func TestPromoteRank(t *testing.T) {
	sdb := openTestDB(t)
	repo := NewPilotRepository(sdb)
	ctx := context.Background()
	now := time.Now().UTC()

	seedPilot(t, sdb, &entities.Pilot{ID: "pilot-1", Rank: "Cadet", RankOrder: 1})

	ok, err := repo.PromoteRank(ctx, "pilot-1", "First Officer", 2, now)
	if err != nil || !ok {
		t.Fatalf("promotion: ok=%v err=%v", ok, err)
	}

	pilot, _ := repo.GetByID(ctx, "pilot-1")
	if pilot.Rank != "First Officer" || pilot.RankOrder != 2 {
		t.Errorf("expected First Officer/2, got %s/%d", pilot.Rank, pilot.RankOrder)
	}

	// Equal or lower tiers are no-ops, never demotions.
	if ok, _ := repo.PromoteRank(ctx, "pilot-1", "First Officer", 2, now); ok {
		t.Error("re-promoting to the same tier must not win")
	}
	if ok, _ := repo.PromoteRank(ctx, "pilot-1", "Cadet", 1, now); ok {
		t.Error("demotion must not win")
	}

	pilot, _ = repo.GetByID(ctx, "pilot-1")
	if pilot.RankOrder != 2 {
		t.Errorf("rank order changed to %d", pilot.RankOrder)
	}
}

func TestCreditAndDebit(t *testing.T) {
	sdb := openTestDB(t)
	repo := NewPilotRepository(sdb)
	ctx := context.Background()
	now := time.Now().UTC()

	seedPilot(t, sdb, &entities.Pilot{ID: "pilot-1", TotalCredits: 100})

	balance, err := repo.ApplyCredit(ctx, "pilot-1", 250, now)
	if err != nil {
		t.Fatalf("ApplyCredit failed: %v", err)
	}
	if balance != 350 {
		t.Errorf("expected balance 350, got %d", balance)
	}

	balance, ok, err := repo.ApplyDebit(ctx, "pilot-1", 300, now)
	if err != nil {
		t.Fatalf("ApplyDebit failed: %v", err)
	}
	if !ok || balance != 50 {
		t.Errorf("expected ok with balance 50, got ok=%v balance=%d", ok, balance)
	}

	// Overdrafts affect zero rows and leave the balance alone.
	_, ok, err = repo.ApplyDebit(ctx, "pilot-1", 51, now)
	if err != nil {
		t.Fatalf("ApplyDebit failed: %v", err)
	}
	if ok {
		t.Error("overdraft must not succeed")
	}

	pilot, _ := repo.GetByID(ctx, "pilot-1")
	if pilot.TotalCredits != 50 {
		t.Errorf("expected balance 50 after refused debit, got %d", pilot.TotalCredits)
	}
}

func TestRecordTransaction(t *testing.T) {
	sdb := openTestDB(t)
	repo := NewPilotRepository(sdb)
	ctx := context.Background()

	seedPilot(t, sdb, &entities.Pilot{ID: "pilot-1"})

	tx := &entities.CreditTransaction{
		ID:           uuid.NewString(),
		PilotID:      "pilot-1",
		Delta:        75,
		Reason:       "flight reward: SH101",
		BalanceAfter: 75,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.RecordTransaction(ctx, tx); err != nil {
		t.Fatalf("RecordTransaction failed: %v", err)
	}

	var count int
	if err := sdb.Get(&count, "SELECT COUNT(*) FROM credit_transactions WHERE pilot_id = $1", "pilot-1"); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 transaction, got %d", count)
	}
}

func TestLeaderboard(t *testing.T) {
	sdb := openTestDB(t)
	repo := NewPilotRepository(sdb)
	ctx := context.Background()

	seedPilot(t, sdb, &entities.Pilot{ID: "p1", Callsign: "SKW001", TotalHours: 120})
	seedPilot(t, sdb, &entities.Pilot{ID: "p2", Callsign: "SKW002", TotalHours: 300})
	seedPilot(t, sdb, &entities.Pilot{ID: "p3", Callsign: "SKW003", TotalHours: 40})

	pilots, err := repo.Leaderboard(ctx, 2)
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(pilots) != 2 {
		t.Fatalf("expected 2 pilots, got %d", len(pilots))
	}
	if pilots[0].ID != "p2" || pilots[1].ID != "p1" {
		t.Errorf("expected p2, p1 order, got %s, %s", pilots[0].ID, pilots[1].ID)
	}
}
