package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/db/repositories"
	"skyward-va/horizon/internal/logging"
)

const bidSweepInterval = 15 * time.Minute

// InitWorkers starts the background loops under one errgroup so a
// caller can cancel and wait for all of them together.
func InitWorkers(
	ctx context.Context,
	bids *repositories.BidRepository,
	stream *common.NotificationStreamService,
) (*errgroup.Group, context.Context) {

	group, groupCtx := errgroup.WithContext(ctx)

	sweeper := NewBidSweeper(bids, bidSweepInterval)
	group.Go(func() error {
		return sweeper.Start(groupCtx)
	})

	if stream != nil {
		consumer := NewNotificationWorker(stream, "notifier-1")
		group.Go(func() error {
			return consumer.Start(groupCtx)
		})
	}

	logging.Info("Background workers started")
	return group, groupCtx
}
