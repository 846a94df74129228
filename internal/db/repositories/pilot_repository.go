package repositories

import (
	"context"
	"database/sql"
	"time"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type PilotRepository struct {
	db *sqlx.DB
}

func NewPilotRepository(db *sqlx.DB) *PilotRepository {
	return &PilotRepository{db}
}

func (r *PilotRepository) GetByID(ctx context.Context, id string) (*entities.Pilot, error) {
	var pilot entities.Pilot

	err := r.db.QueryRowxContext(ctx, constants.GetPilotByID, id).StructScan(&pilot)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pilot, nil
}

// ApplyFlightTotals folds one approved flight into the pilot's
// cumulative totals. All arithmetic happens in the database so two
// concurrent approvals for the same pilot both land.
func (r *PilotRepository) ApplyFlightTotals(ctx context.Context, pilotID string, flightMinutes int, landingRate float64, now time.Time) error {
	hours := float64(flightMinutes) / 60.0
	_, err := r.db.ExecContext(ctx, constants.ApplyFlightTotals, landingRate, hours, now, pilotID)
	return err
}

// PromoteRank raises the pilot to the given ladder tier. The guard on
// rank_order makes a stale evaluation a no-op instead of a demotion.
func (r *PilotRepository) PromoteRank(ctx context.Context, pilotID, rank string, rankOrder int, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, constants.PromotePilotRank, rank, rankOrder, now, pilotID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *PilotRepository) UpdateLocation(ctx context.Context, pilotID, icao string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, constants.UpdatePilotLocation, icao, now, pilotID)
	return err
}

// ApplyCredit increments the balance unconditionally and returns the
// new balance.
func (r *PilotRepository) ApplyCredit(ctx context.Context, pilotID string, amount int64, now time.Time) (int64, error) {
	var balance int64
	err := r.db.QueryRowxContext(ctx, constants.CreditPilot, amount, now, pilotID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, sql.ErrNoRows
	}
	return balance, err
}

// ApplyDebit decrements the balance only when the result stays
// non-negative. ok is false when the funds were insufficient; the
// balance is untouched in that case.
func (r *PilotRepository) ApplyDebit(ctx context.Context, pilotID string, amount int64, now time.Time) (int64, bool, error) {
	var balance int64
	err := r.db.QueryRowxContext(ctx, constants.DebitPilot, amount, now, pilotID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return balance, true, nil
}

func (r *PilotRepository) RecordTransaction(ctx context.Context, tx *entities.CreditTransaction) error {
	_, err := r.db.ExecContext(ctx, constants.InsertCreditTransaction,
		tx.ID, tx.PilotID, tx.Delta, tx.Reason, tx.BalanceAfter, tx.CreatedAt)
	return err
}

func (r *PilotRepository) Leaderboard(ctx context.Context, limit int) ([]entities.Pilot, error) {
	var pilots []entities.Pilot
	err := r.db.SelectContext(ctx, &pilots, constants.LeaderboardByHours, limit)
	return pilots, err
}
