package repositories

import (
	"context"
	"fmt"

	gormModels "skyward-va/horizon/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

type ActivityRepository struct {
	db *gormlib.DB
}

func NewActivityRepository(db *gormlib.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetByID fetches an activity with its legs in sequence order
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*gormModels.Activity, error) {
	var activity gormModels.Activity

	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("activity_legs.seq ASC")
		}).
		Where("id = ?", id).
		First(&activity).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}
	return &activity, nil
}

// ListActive returns all active activities with legs preloaded
func (r *ActivityRepository) ListActive(ctx context.Context) ([]gormModels.Activity, error) {
	var activities []gormModels.Activity

	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("activity_legs.seq ASC")
		}).
		Where("is_active = ?", true).
		Find(&activities).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// ActivityProgressRepository manages the per (pilot, activity)
// progress records.
type ActivityProgressRepository struct {
	db *gormlib.DB
}

func NewActivityProgressRepository(db *gormlib.DB) *ActivityProgressRepository {
	return &ActivityProgressRepository{db: db}
}

// OpenForPilot returns the pilot's unfinished progress records with the
// owning activity and its ordered legs preloaded.
func (r *ActivityProgressRepository) OpenForPilot(ctx context.Context, pilotID string) ([]gormModels.ActivityProgress, error) {
	var progress []gormModels.ActivityProgress

	err := r.db.WithContext(ctx).
		Preload("Activity").
		Preload("Activity.Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("activity_legs.seq ASC")
		}).
		Where("pilot_id = ? AND date_complete IS NULL", pilotID).
		Find(&progress).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch open progress: %w", err)
	}
	return progress, nil
}

// Get returns the (pilot, activity) progress record, or nil
func (r *ActivityProgressRepository) Get(ctx context.Context, pilotID, activityID string) (*gormModels.ActivityProgress, error) {
	var progress gormModels.ActivityProgress

	err := r.db.WithContext(ctx).
		Preload("Activity").
		Preload("Activity.Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("activity_legs.seq ASC")
		}).
		Where("pilot_id = ? AND activity_id = ?", pilotID, activityID).
		First(&progress).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch progress: %w", err)
	}
	return &progress, nil
}

func (r *ActivityProgressRepository) Create(ctx context.Context, progress *gormModels.ActivityProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *ActivityProgressRepository) Save(ctx context.Context, progress *gormModels.ActivityProgress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}

// StartedActivityIDs lists activity ids the pilot already has progress
// for, finished or not.
func (r *ActivityProgressRepository) StartedActivityIDs(ctx context.Context, pilotID string) ([]string, error) {
	var ids []string

	err := r.db.WithContext(ctx).
		Model(&gormModels.ActivityProgress{}).
		Where("pilot_id = ?", pilotID).
		Pluck("activity_id", &ids).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch started activities: %w", err)
	}
	return ids, nil
}
