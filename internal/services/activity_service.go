package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/db/repositories"
	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/models/dtos"
	"skyward-va/horizon/internal/models/entities"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

// MatchResult summarizes one matcher pass over a pilot's activities or
// tours.
type MatchResult struct {
	Advanced  int
	Completed int
}

// ActivityService matches approved reports against multi-leg
// activities and advances the pilot's progress records.
type ActivityService struct {
	activities *repositories.ActivityRepository
	progress   *repositories.ActivityProgressRepository
	awards     *repositories.AwardRepository
	ledger     *CreditService
	notify     Notifier
}

// NewActivityService creates a new ActivityService with dependencies
func NewActivityService(
	activities *repositories.ActivityRepository,
	progress *repositories.ActivityProgressRepository,
	awards *repositories.AwardRepository,
	ledger *CreditService,
	notify Notifier,
) *ActivityService {
	return &ActivityService{
		activities: activities,
		progress:   progress,
		awards:     awards,
		ledger:     ledger,
		notify:     notify,
	}
}

// MatchReport runs the leg matcher for one approved report. Every open
// progress record of the pilot is considered, plus active activities
// the pilot has not started yet (a matching first leg starts them).
func (s *ActivityService) MatchReport(ctx context.Context, report *entities.FlightReport, now time.Time) (*MatchResult, error) {
	result := &MatchResult{}

	open, err := s.progress.OpenForPilot(ctx, report.PilotID)
	if err != nil {
		return nil, err
	}

	for i := range open {
		advanced, completed, err := s.advance(ctx, &open[i], report, now)
		if err != nil {
			return result, err
		}
		if advanced {
			result.Advanced++
		}
		if completed {
			result.Completed++
		}
	}

	// Activities not started yet: a report matching an eligible leg
	// opens a fresh progress record.
	startedIDs, err := s.progress.StartedActivityIDs(ctx, report.PilotID)
	if err != nil {
		return result, err
	}
	started := make(map[string]struct{}, len(startedIDs))
	for _, id := range startedIDs {
		started[id] = struct{}{}
	}

	candidates, err := s.activities.ListActive(ctx)
	if err != nil {
		return result, err
	}

	for i := range candidates {
		activity := &candidates[i]
		if _, ok := started[activity.ID]; ok {
			continue
		}
		if len(activity.Legs) == 0 {
			continue
		}
		if s.matchableLeg(activity, nil, report) == nil {
			continue
		}

		fresh := &gormModels.ActivityProgress{
			ID:         uuid.NewString(),
			PilotID:    report.PilotID,
			ActivityID: activity.ID,
			StartDate:  now,
		}
		if err := s.progress.Create(ctx, fresh); err != nil {
			return result, fmt.Errorf("failed to start activity: %w", err)
		}
		fresh.Activity = *activity

		advanced, completed, err := s.advance(ctx, fresh, report, now)
		if err != nil {
			return result, err
		}
		if advanced {
			result.Advanced++
		}
		if completed {
			result.Completed++
		}
	}

	return result, nil
}

// advance applies the report to a single progress record. Returns
// whether a leg was completed and whether the activity finished.
func (s *ActivityService) advance(ctx context.Context, progress *gormModels.ActivityProgress, report *entities.FlightReport, now time.Time) (bool, bool, error) {
	activity := &progress.Activity
	leg := s.matchableLeg(activity, progress, report)
	if leg == nil {
		return false, false, nil
	}

	// Idempotent append; a replayed report never duplicates a leg id.
	for _, id := range progress.CompletedLegIDs {
		if id == leg.ID {
			return false, false, nil
		}
	}
	progress.CompletedLegIDs = append(progress.CompletedLegIDs, leg.ID)

	total := len(activity.Legs)
	progress.LegsComplete = len(progress.CompletedLegIDs)
	progress.PercentComplete = float64(progress.LegsComplete) / float64(total) * 100
	progress.LastLegFlownDate = &now

	finished := progress.LegsComplete == total
	if finished {
		completedAt := now
		days := int(completedAt.Sub(progress.StartDate).Hours() / 24)
		progress.DateComplete = &completedAt
		progress.DaysToComplete = &days
	}

	if err := s.progress.Save(ctx, progress); err != nil {
		return false, false, fmt.Errorf("failed to save progress: %w", err)
	}

	logging.Info("Activity leg matched",
		"report_id", report.ID,
		"pilot_id", report.PilotID,
		"activity_id", activity.ID,
		"leg_id", leg.ID,
		"legs_complete", progress.LegsComplete,
	)

	if finished {
		if err := s.reward(ctx, activity, report.PilotID, now); err != nil {
			return true, true, err
		}
	}
	return true, finished, nil
}

// matchableLeg finds the leg the report may complete. For strictly
// ordered activities only the next leg in sequence is eligible; for
// unordered ones any leg not yet completed qualifies.
func (s *ActivityService) matchableLeg(activity *gormModels.Activity, progress *gormModels.ActivityProgress, report *entities.FlightReport) *gormModels.ActivityLeg {
	var completed map[string]struct{}
	if progress != nil {
		completed = make(map[string]struct{}, len(progress.CompletedLegIDs))
		for _, id := range progress.CompletedLegIDs {
			completed[id] = struct{}{}
		}
	}

	if activity.LegsInOrder {
		next := 0
		if progress != nil {
			next = progress.LegsComplete
		}
		if next >= len(activity.Legs) {
			return nil
		}
		leg := &activity.Legs[next]
		if legMatchesReport(leg.Departure, leg.Arrival, leg.FlightNumber, leg.Aircraft, report) {
			return leg
		}
		return nil
	}

	for i := range activity.Legs {
		leg := &activity.Legs[i]
		if _, done := completed[leg.ID]; done {
			continue
		}
		if legMatchesReport(leg.Departure, leg.Arrival, leg.FlightNumber, leg.Aircraft, report) {
			return leg
		}
	}
	return nil
}

func (s *ActivityService) reward(ctx context.Context, activity *gormModels.Activity, pilotID string, now time.Time) error {
	if activity.RewardPoints > 0 {
		reason := fmt.Sprintf("activity reward: %s", activity.Name)
		if _, err := s.ledger.Adjust(ctx, pilotID, activity.RewardPoints, reason); err != nil {
			return fmt.Errorf("failed to credit activity reward: %w", err)
		}
	}

	if activity.RewardAwardID != nil {
		granted, err := s.awards.Grant(ctx, pilotID, *activity.RewardAwardID, now)
		if err != nil {
			return err
		}
		if granted {
			s.notify.Notify(ctx, constants.NotifyAwardGranted, pilotID, map[string]any{
				"award_id": *activity.RewardAwardID,
				"source":   activity.Name,
			})
		}
	}

	s.notify.Notify(ctx, constants.NotifyActivityCompleted, pilotID, map[string]any{
		"activity_id":   activity.ID,
		"activity_name": activity.Name,
	})
	return nil
}

// Snapshot builds the read model for a (pilot, activity) pair. An
// activity the pilot never started still yields a zeroed snapshot.
func (s *ActivityService) Snapshot(ctx context.Context, pilotID, activityID string) (*dtos.ProgressSnapshot, error) {
	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrNotFound
	}

	snapshot := &dtos.ProgressSnapshot{
		ActivityID:      activity.ID,
		ActivityName:    activity.Name,
		LegsInOrder:     activity.LegsInOrder,
		LegsTotal:       len(activity.Legs),
		CompletedLegIDs: []string{},
	}

	progress, err := s.progress.Get(ctx, pilotID, activityID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return snapshot, nil
	}

	snapshot.LegsComplete = progress.LegsComplete
	snapshot.PercentComplete = progress.PercentComplete
	snapshot.CompletedLegIDs = progress.CompletedLegIDs
	snapshot.StartDate = &progress.StartDate
	snapshot.LastLegFlownDate = progress.LastLegFlownDate
	snapshot.DateComplete = progress.DateComplete
	snapshot.DaysToComplete = progress.DaysToComplete
	return snapshot, nil
}

// legMatchesReport checks every defined leg field against the report;
// an unset field matches anything.
func legMatchesReport(departure, arrival, flightNumber, aircraft *string, report *entities.FlightReport) bool {
	if departure != nil && !strings.EqualFold(*departure, report.DepartureICAO) {
		return false
	}
	if arrival != nil && !strings.EqualFold(*arrival, report.ArrivalICAO) {
		return false
	}
	if flightNumber != nil && !strings.EqualFold(*flightNumber, report.FlightNumber) {
		return false
	}
	if aircraft != nil && !strings.EqualFold(*aircraft, report.Aircraft) {
		return false
	}
	return true
}
