package services

import (
	"context"
	"testing"
	"time"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/entities"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

func testLadder() *staticLadder {
	return &staticLadder{ranks: []gormModels.Rank{
		{ID: "r1", Name: "Cadet", RankOrder: 1, RequirementHours: 0, RequirementFlights: 0, AutoPromote: true},
		{ID: "r2", Name: "First Officer", RankOrder: 2, RequirementHours: 41, RequirementFlights: 10, AutoPromote: true},
		{ID: "r3", Name: "Captain", RankOrder: 3, RequirementHours: 200, RequirementFlights: 80, AutoPromote: true},
		{ID: "r4", Name: "Check Airman", RankOrder: 4, RequirementHours: 0, RequirementFlights: 0, AutoPromote: false},
	}}
}

func TestRankEvaluator_RequiresBothHoursAndFlights(t *testing.T) {
	// Plenty of hours, not enough flights: AND semantics means no
	// promotion.
	pilots := newMemPilotStore(&entities.Pilot{
		ID: "pilot-1", Rank: "Cadet", RankOrder: 1,
		TotalHours: 300, TotalFlights: 9,
	})
	notify := &captureNotifier{}
	svc := NewRankService(pilots, testLadder(), notify)

	change, err := svc.Evaluate(context.Background(), "pilot-1", time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if change != nil {
		t.Errorf("Expected no promotion, got %+v", change)
	}
	if notify.count(constants.NotifyRankPromoted) != 0 {
		t.Error("No promotion event expected")
	}
}

func TestRankEvaluator_PromotesToHighestEligible(t *testing.T) {
	pilots := newMemPilotStore(&entities.Pilot{
		ID: "pilot-1", Rank: "Cadet", RankOrder: 1,
		TotalHours: 250, TotalFlights: 120,
	})
	notify := &captureNotifier{}
	svc := NewRankService(pilots, testLadder(), notify)

	change, err := svc.Evaluate(context.Background(), "pilot-1", time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if change == nil || change.ToRank != "Captain" {
		t.Fatalf("Expected promotion to Captain, got %+v", change)
	}

	pilot, _ := pilots.GetByID(context.Background(), "pilot-1")
	if pilot.Rank != "Captain" || pilot.RankOrder != 3 {
		t.Errorf("Pilot rank not applied: %s (%d)", pilot.Rank, pilot.RankOrder)
	}
	if notify.count(constants.NotifyRankPromoted) != 1 {
		t.Error("Expected exactly one promotion event")
	}
}

func TestRankEvaluator_ManualRanksNeverAutoAssigned(t *testing.T) {
	// Check Airman has no requirements but autoPromote=false; the
	// evaluator must stop at Captain.
	pilots := newMemPilotStore(&entities.Pilot{
		ID: "pilot-1", Rank: "Captain", RankOrder: 3,
		TotalHours: 10000, TotalFlights: 5000,
	})
	svc := NewRankService(pilots, testLadder(), &captureNotifier{})

	change, err := svc.Evaluate(context.Background(), "pilot-1", time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if change != nil {
		t.Errorf("Expected no change past Captain, got %+v", change)
	}
}

func TestRankEvaluator_NeverDowngrades(t *testing.T) {
	// Manually promoted above anything the totals justify.
	pilots := newMemPilotStore(&entities.Pilot{
		ID: "pilot-1", Rank: "Check Airman", RankOrder: 4,
		TotalHours: 50, TotalFlights: 12,
	})
	svc := NewRankService(pilots, testLadder(), &captureNotifier{})

	change, err := svc.Evaluate(context.Background(), "pilot-1", time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if change != nil {
		t.Errorf("Expected no downgrade, got %+v", change)
	}

	pilot, _ := pilots.GetByID(context.Background(), "pilot-1")
	if pilot.RankOrder != 4 {
		t.Errorf("Rank order must be non-decreasing, got %d", pilot.RankOrder)
	}
}
