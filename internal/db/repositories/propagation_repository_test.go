package repositories

import (
	"context"
	"sort"
	"testing"
	"time"

	"skyward-va/horizon/internal/constants"
)

func TestClaimIsFirstWins(t *testing.T) {
	sdb := openTestDB(t)
	repo := NewPropagationRepository(sdb)
	ctx := context.Background()
	now := time.Now().UTC()

	claimed, err := repo.Claim(ctx, "report-1", constants.StepStats, now)
	if err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if !claimed {
		t.Fatal("expected first claim to win")
	}

	claimed, err = repo.Claim(ctx, "report-1", constants.StepStats, now)
	if err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if claimed {
		t.Error("expected repeat claim to lose")
	}

	// Distinct steps and distinct reports claim independently.
	if claimed, _ := repo.Claim(ctx, "report-1", constants.StepRank, now); !claimed {
		t.Error("expected a different step to claim")
	}
	if claimed, _ := repo.Claim(ctx, "report-2", constants.StepStats, now); !claimed {
		t.Error("expected a different report to claim")
	}
}

func TestReleaseReopensClaim(t *testing.T) {
	sdb := openTestDB(t)
	repo := NewPropagationRepository(sdb)
	ctx := context.Background()
	now := time.Now().UTC()

	if claimed, _ := repo.Claim(ctx, "report-1", constants.StepFlightCredit, now); !claimed {
		t.Fatal("expected claim to win")
	}
	if err := repo.Release(ctx, "report-1", constants.StepFlightCredit); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if claimed, _ := repo.Claim(ctx, "report-1", constants.StepFlightCredit, now); !claimed {
		t.Error("expected released step to be claimable again")
	}
}

func TestCompletedSteps(t *testing.T) {
	sdb := openTestDB(t)
	repo := NewPropagationRepository(sdb)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, step := range []string{constants.StepStats, constants.StepRank} {
		if claimed, err := repo.Claim(ctx, "report-1", step, now); err != nil || !claimed {
			t.Fatalf("claim %s: claimed=%v err=%v", step, claimed, err)
		}
	}

	steps, err := repo.CompletedSteps(ctx, "report-1")
	if err != nil {
		t.Fatalf("CompletedSteps failed: %v", err)
	}
	sort.Strings(steps)
	if len(steps) != 2 || steps[0] != constants.StepRank || steps[1] != constants.StepStats {
		t.Errorf("unexpected steps %v", steps)
	}

	steps, err = repo.CompletedSteps(ctx, "report-2")
	if err != nil {
		t.Fatalf("CompletedSteps failed: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("expected no steps for untouched report, got %v", steps)
	}
}
