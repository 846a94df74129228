package workers

import (
	"context"
	"time"

	"skyward-va/horizon/internal/db/repositories"
	"skyward-va/horizon/internal/logging"
)

// BidSweeper periodically deletes expired bids. Reads filter on
// expires_at anyway, so the sweeper only reclaims rows.
type BidSweeper struct {
	bids     *repositories.BidRepository
	interval time.Duration
}

// NewBidSweeper creates a new bid sweeper
func NewBidSweeper(bids *repositories.BidRepository, interval time.Duration) *BidSweeper {
	return &BidSweeper{
		bids:     bids,
		interval: interval,
	}
}

// Start runs the sweep loop until the context is cancelled.
func (s *BidSweeper) Start(ctx context.Context) error {
	logging.Info("Bid sweeper starting", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Bid sweeper shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *BidSweeper) sweep(ctx context.Context) {
	removed, err := s.bids.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		logging.Error("Bid sweep failed", "error", err)
		return
	}
	if removed > 0 {
		logging.Info("Expired bids removed", "count", removed)
	}
}
