package services

import (
	"context"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

const rankLadderCacheTTL = 10 * time.Minute

// CachedRankLadder fronts the ladder with a short-lived cache. The
// ladder changes only through admin seeding, so a stale read for a few
// minutes is acceptable.
type CachedRankLadder struct {
	source RankLadder
	cache  common.CacheInterface
}

// NewCachedRankLadder wraps a ladder source with a read-through cache
func NewCachedRankLadder(source RankLadder, cache common.CacheInterface) *CachedRankLadder {
	return &CachedRankLadder{
		source: source,
		cache:  cache,
	}
}

func (c *CachedRankLadder) Ladder(ctx context.Context) ([]gormModels.Rank, error) {
	if cached, found := c.cache.Get(constants.CachePrefixRankLadder); found {
		if ladder, ok := cached.([]gormModels.Rank); ok {
			return ladder, nil
		}
	}

	ladder, err := c.source.Ladder(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(constants.CachePrefixRankLadder, ladder, rankLadderCacheTTL)
	return ladder, nil
}
