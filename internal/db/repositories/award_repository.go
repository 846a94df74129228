package repositories

import (
	"context"
	"fmt"
	"time"

	gormModels "skyward-va/horizon/internal/models/gorm"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AwardRepository struct {
	db *gormlib.DB
}

func NewAwardRepository(db *gormlib.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

// Grant issues an award to a pilot. A duplicate grant is swallowed by
// the unique (pilot, award) index; granted reports whether this call
// actually created the record.
func (r *AwardRepository) Grant(ctx context.Context, pilotID, awardID string, now time.Time) (bool, error) {
	grant := gormModels.PilotAward{
		ID:        uuid.NewString(),
		PilotID:   pilotID,
		AwardID:   awardID,
		GrantedAt: now,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&grant)

	if res.Error != nil {
		return false, fmt.Errorf("failed to grant award: %w", res.Error)
	}
	return res.RowsAffected == 1, nil
}

// ListForPilot returns all awards granted to a pilot
func (r *AwardRepository) ListForPilot(ctx context.Context, pilotID string) ([]gormModels.PilotAward, error) {
	var grants []gormModels.PilotAward

	err := r.db.WithContext(ctx).
		Preload("Award").
		Where("pilot_id = ?", pilotID).
		Order("granted_at DESC").
		Find(&grants).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list awards: %w", err)
	}
	return grants, nil
}
