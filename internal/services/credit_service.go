package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/metrics"
	"skyward-va/horizon/internal/models/entities"
)

// CreditService is the single choke point for every balance mutation:
// flight and activity rewards, jumpseat costs, store purchases and
// admin adjustments all pass through Adjust.
type CreditService struct {
	store      CreditStore
	metricsReg *metrics.MetricsRegistry
}

func NewCreditService(store CreditStore, metricsReg *metrics.MetricsRegistry) *CreditService {
	return &CreditService{
		store:      store,
		metricsReg: metricsReg,
	}
}

// Adjust applies a signed delta to the pilot's balance and returns the
// new balance. Debits are conditional on the post-balance staying
// non-negative; a refused debit changes nothing and returns
// ErrInsufficientFunds.
func (s *CreditService) Adjust(ctx context.Context, pilotID string, delta int64, reason string) (int64, error) {
	now := time.Now().UTC()

	var (
		balance int64
		err     error
	)

	if delta >= 0 {
		balance, err = s.store.ApplyCredit(ctx, pilotID, delta, now)
		if err != nil {
			return 0, fmt.Errorf("failed to credit pilot: %w", err)
		}
	} else {
		var ok bool
		balance, ok, err = s.store.ApplyDebit(ctx, pilotID, -delta, now)
		if err != nil {
			return 0, fmt.Errorf("failed to debit pilot: %w", err)
		}
		if !ok {
			logging.Warn("Debit refused",
				"pilot_id", pilotID,
				"delta", delta,
				"reason", reason,
			)
			return 0, ErrInsufficientFunds
		}
	}

	if s.metricsReg != nil {
		direction := "credit"
		if delta < 0 {
			direction = "debit"
		}
		s.metricsReg.CreditMutationsTotal.WithLabelValues(direction).Inc()
	}

	// The transaction row is an audit record; losing one never blocks
	// the mutation that already landed.
	tx := &entities.CreditTransaction{
		ID:           uuid.NewString(),
		PilotID:      pilotID,
		Delta:        delta,
		Reason:       reason,
		BalanceAfter: balance,
		CreatedAt:    now,
	}
	if err := s.store.RecordTransaction(ctx, tx); err != nil {
		logging.Error("Failed to record credit transaction",
			"pilot_id", pilotID,
			"delta", delta,
			"error", err.Error(),
		)
	}

	logging.Info("Credits adjusted",
		"pilot_id", pilotID,
		"delta", delta,
		"balance", balance,
		"reason", reason,
	)
	return balance, nil
}
