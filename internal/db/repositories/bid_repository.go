package repositories

import (
	"context"
	"fmt"
	"time"

	gormModels "skyward-va/horizon/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

type BidRepository struct {
	db *gormlib.DB
}

func NewBidRepository(db *gormlib.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) Create(ctx context.Context, bid *gormModels.Bid) error {
	return r.db.WithContext(ctx).Create(bid).Error
}

// ListActiveForPilot returns the pilot's unexpired bids. The query
// filters on the deadline so a lagging sweep never leaks expired rows.
func (r *BidRepository) ListActiveForPilot(ctx context.Context, pilotID string, now time.Time) ([]gormModels.Bid, error) {
	var bids []gormModels.Bid

	err := r.db.WithContext(ctx).
		Where("pilot_id = ? AND expires_at > ?", pilotID, now).
		Order("created_at ASC").
		Find(&bids).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}
	return bids, nil
}

// Get returns a bid by id, or nil
func (r *BidRepository) Get(ctx context.Context, id string) (*gormModels.Bid, error) {
	var bid gormModels.Bid

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bid).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Bid{}).Error
}

// DeleteExpired removes every bid past its deadline and returns how
// many rows went away. Called by the sweeper worker.
func (r *BidRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&gormModels.Bid{})

	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete expired bids: %w", res.Error)
	}
	return res.RowsAffected, nil
}
