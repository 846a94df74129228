package repositories

import (
	"context"
	"time"

	"skyward-va/horizon/internal/constants"

	"github.com/jmoiron/sqlx"
)

// PropagationRepository owns the (report, step) ledger that keeps every
// propagation step at-most-once across retries and replays.
type PropagationRepository struct {
	db *sqlx.DB
}

func NewPropagationRepository(db *sqlx.DB) *PropagationRepository {
	return &PropagationRepository{db}
}

// Claim records that a step is about to run. Returns false when the
// step already ran for this report; the caller must skip it.
func (r *PropagationRepository) Claim(ctx context.Context, reportID, step string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, constants.ClaimPropagationStep, reportID, step, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Release drops a claim after a step failed so a later re-drive can
// run it again.
func (r *PropagationRepository) Release(ctx context.Context, reportID, step string) error {
	_, err := r.db.ExecContext(ctx, constants.ReleasePropagationStep, reportID, step)
	return err
}

// CompletedSteps lists the steps already applied for a report.
func (r *PropagationRepository) CompletedSteps(ctx context.Context, reportID string) ([]string, error) {
	var steps []string
	err := r.db.SelectContext(ctx, &steps, constants.ListCompletedSteps, reportID)
	return steps, err
}
