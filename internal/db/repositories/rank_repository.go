package repositories

import (
	"context"

	gormModels "skyward-va/horizon/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// RankRepository reads the promotion ladder. The ladder is reference
// data; it is only ever written by seeding or admin tooling.
type RankRepository struct {
	db *gormlib.DB
}

func NewRankRepository(db *gormlib.DB) *RankRepository {
	return &RankRepository{db: db}
}

// Ladder returns every rank in ascending ladder order
func (r *RankRepository) Ladder(ctx context.Context) ([]gormModels.Rank, error) {
	var ranks []gormModels.Rank

	err := r.db.WithContext(ctx).
		Order("rank_order ASC").
		Find(&ranks).Error

	if err != nil {
		return nil, err
	}
	return ranks, nil
}

// FindByOrder returns the rank at the given ladder position, or nil
func (r *RankRepository) FindByOrder(ctx context.Context, order int) (*gormModels.Rank, error) {
	var rank gormModels.Rank

	err := r.db.WithContext(ctx).
		Where("rank_order = ?", order).
		First(&rank).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rank, nil
}
