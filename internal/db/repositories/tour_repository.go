package repositories

import (
	"context"
	"fmt"

	"skyward-va/horizon/internal/constants"
	gormModels "skyward-va/horizon/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

type TourRepository struct {
	db *gormlib.DB
}

func NewTourRepository(db *gormlib.DB) *TourRepository {
	return &TourRepository{db: db}
}

// GetByID fetches a tour with its legs in path order
func (r *TourRepository) GetByID(ctx context.Context, id string) (*gormModels.Tour, error) {
	var tour gormModels.Tour

	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("tour_legs.seq ASC")
		}).
		Where("id = ?", id).
		First(&tour).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour: %w", err)
	}
	return &tour, nil
}

type TourProgressRepository struct {
	db *gormlib.DB
}

func NewTourProgressRepository(db *gormlib.DB) *TourProgressRepository {
	return &TourProgressRepository{db: db}
}

// InProgressForPilot returns the pilot's tours still being flown, with
// the tour and its ordered legs preloaded.
func (r *TourProgressRepository) InProgressForPilot(ctx context.Context, pilotID string) ([]gormModels.TourProgress, error) {
	var progress []gormModels.TourProgress

	err := r.db.WithContext(ctx).
		Preload("Tour").
		Preload("Tour.Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("tour_legs.seq ASC")
		}).
		Where("pilot_id = ? AND status = ?", pilotID, constants.TourInProgress).
		Find(&progress).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch tour progress: %w", err)
	}
	return progress, nil
}

// Get returns the (pilot, tour) progress record, or nil
func (r *TourProgressRepository) Get(ctx context.Context, pilotID, tourID string) (*gormModels.TourProgress, error) {
	var progress gormModels.TourProgress

	err := r.db.WithContext(ctx).
		Preload("Tour").
		Preload("Tour.Legs", func(db *gormlib.DB) *gormlib.DB {
			return db.Order("tour_legs.seq ASC")
		}).
		Where("pilot_id = ? AND tour_id = ?", pilotID, tourID).
		First(&progress).Error

	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour progress: %w", err)
	}
	return &progress, nil
}

func (r *TourProgressRepository) Create(ctx context.Context, progress *gormModels.TourProgress) error {
	return r.db.WithContext(ctx).Create(progress).Error
}

func (r *TourProgressRepository) Save(ctx context.Context, progress *gormModels.TourProgress) error {
	return r.db.WithContext(ctx).Save(progress).Error
}
