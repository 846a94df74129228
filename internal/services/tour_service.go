package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/db/repositories"
	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/models/dtos"
	"skyward-va/horizon/internal/models/entities"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

// TourService advances pilots along strictly ordered tours. Unlike
// activities a tour must be started explicitly, and only the leg at
// the current pointer can match.
type TourService struct {
	tours    *repositories.TourRepository
	progress *repositories.TourProgressRepository
	awards   *repositories.AwardRepository
	ledger   *CreditService
	notify   Notifier
}

// NewTourService creates a new TourService with dependencies
func NewTourService(
	tours *repositories.TourRepository,
	progress *repositories.TourProgressRepository,
	awards *repositories.AwardRepository,
	ledger *CreditService,
	notify Notifier,
) *TourService {
	return &TourService{
		tours:    tours,
		progress: progress,
		awards:   awards,
		ledger:   ledger,
		notify:   notify,
	}
}

// StartTour enrolls a pilot in a tour. A pilot already enrolled gets
// ErrConflict; the unique (pilot, tour) index backs this up.
func (s *TourService) StartTour(ctx context.Context, pilotID, tourID string, now time.Time) (*gormModels.TourProgress, error) {
	tour, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if tour == nil || !tour.IsActive {
		return nil, ErrNotFound
	}

	existing, err := s.progress.Get(ctx, pilotID, tourID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	progress := &gormModels.TourProgress{
		ID:        uuid.NewString(),
		PilotID:   pilotID,
		TourID:    tourID,
		Status:    constants.TourInProgress,
		StartedAt: now,
	}
	if err := s.progress.Create(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to start tour: %w", err)
	}
	progress.Tour = *tour

	logging.Info("Tour started", "pilot_id", pilotID, "tour_id", tourID)
	return progress, nil
}

// MatchReport advances every in-progress tour of the pilot whose
// current leg matches the approved report.
func (s *TourService) MatchReport(ctx context.Context, report *entities.FlightReport, now time.Time) (*MatchResult, error) {
	result := &MatchResult{}

	inProgress, err := s.progress.InProgressForPilot(ctx, report.PilotID)
	if err != nil {
		return nil, err
	}

	for i := range inProgress {
		progress := &inProgress[i]
		tour := &progress.Tour
		if progress.CurrentLeg >= len(tour.Legs) {
			continue
		}

		leg := &tour.Legs[progress.CurrentLeg]
		if !legMatchesReport(leg.Departure, leg.Arrival, leg.FlightNumber, leg.Aircraft, report) {
			continue
		}

		progress.CurrentLeg++
		finished := progress.CurrentLeg == len(tour.Legs)
		if finished {
			completedAt := now
			progress.Status = constants.TourCompleted
			progress.CompletedAt = &completedAt
		}

		if err := s.progress.Save(ctx, progress); err != nil {
			return result, fmt.Errorf("failed to save tour progress: %w", err)
		}
		result.Advanced++

		logging.Info("Tour leg matched",
			"report_id", report.ID,
			"pilot_id", report.PilotID,
			"tour_id", tour.ID,
			"current_leg", progress.CurrentLeg,
			"completed", finished,
		)

		if finished {
			result.Completed++
			if err := s.reward(ctx, tour, report.PilotID, now); err != nil {
				return result, err
			}
		}
	}

	return result, nil
}

func (s *TourService) reward(ctx context.Context, tour *gormModels.Tour, pilotID string, now time.Time) error {
	if tour.RewardPoints > 0 {
		reason := fmt.Sprintf("tour reward: %s", tour.Name)
		if _, err := s.ledger.Adjust(ctx, pilotID, tour.RewardPoints, reason); err != nil {
			return fmt.Errorf("failed to credit tour reward: %w", err)
		}
	}

	if tour.RewardAwardID != nil {
		granted, err := s.awards.Grant(ctx, pilotID, *tour.RewardAwardID, now)
		if err != nil {
			return err
		}
		if granted {
			s.notify.Notify(ctx, constants.NotifyAwardGranted, pilotID, map[string]any{
				"award_id": *tour.RewardAwardID,
				"source":   tour.Name,
			})
		}
	}

	s.notify.Notify(ctx, constants.NotifyTourCompleted, pilotID, map[string]any{
		"tour_id":   tour.ID,
		"tour_name": tour.Name,
	})
	return nil
}

// Snapshot builds the read model for a (pilot, tour) pair.
func (s *TourService) Snapshot(ctx context.Context, pilotID, tourID string) (*dtos.TourSnapshot, error) {
	tour, err := s.tours.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if tour == nil {
		return nil, ErrNotFound
	}

	progress, err := s.progress.Get(ctx, pilotID, tourID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, ErrNotFound
	}

	return &dtos.TourSnapshot{
		TourID:      tour.ID,
		TourName:    tour.Name,
		LegsTotal:   len(tour.Legs),
		CurrentLeg:  progress.CurrentLeg,
		Status:      string(progress.Status),
		StartedAt:   progress.StartedAt,
		CompletedAt: progress.CompletedAt,
	}, nil
}
