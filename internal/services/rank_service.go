package services

import (
	"context"
	"fmt"
	"time"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/logging"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

// RankChange describes an auto-promotion that took effect.
type RankChange struct {
	PilotID  string
	FromRank string
	ToRank   string
	ToOrder  int
}

// RankService recomputes a pilot's eligible rank from their updated
// totals. Promotions only ever move up the ladder; manual ranks
// (autoPromote=false) are never assigned here.
type RankService struct {
	pilots PilotStore
	ranks  RankLadder
	notify Notifier
}

func NewRankService(pilots PilotStore, ranks RankLadder, notify Notifier) *RankService {
	return &RankService{
		pilots: pilots,
		ranks:  ranks,
		notify: notify,
	}
}

// Evaluate selects the highest auto-promote rank whose hours AND
// flights requirements are both met, and upgrades the pilot when that
// rank sits above their current tier. Returns nil when nothing changed.
func (s *RankService) Evaluate(ctx context.Context, pilotID string, now time.Time) (*RankChange, error) {
	pilot, err := s.pilots.GetByID(ctx, pilotID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pilot: %w", err)
	}
	if pilot == nil {
		return nil, ErrNotFound
	}

	ladder, err := s.ranks.Ladder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rank ladder: %w", err)
	}

	var best *gormModels.Rank
	for i := range ladder {
		rank := &ladder[i]
		if !rank.AutoPromote {
			continue
		}
		if pilot.TotalHours >= rank.RequirementHours && pilot.TotalFlights >= rank.RequirementFlights {
			best = rank
		}
	}

	if best == nil || best.RankOrder <= pilot.RankOrder {
		return nil, nil
	}

	promoted, err := s.pilots.PromoteRank(ctx, pilot.ID, best.Name, best.RankOrder, now)
	if err != nil {
		return nil, fmt.Errorf("failed to promote pilot: %w", err)
	}
	if !promoted {
		// A concurrent evaluation already moved the pilot at least
		// this far up; nothing to report.
		return nil, nil
	}

	change := &RankChange{
		PilotID:  pilot.ID,
		FromRank: pilot.Rank,
		ToRank:   best.Name,
		ToOrder:  best.RankOrder,
	}

	logging.Info("Pilot promoted",
		"pilot_id", pilot.ID,
		"from", change.FromRank,
		"to", change.ToRank,
	)
	s.notify.Notify(ctx, constants.NotifyRankPromoted, pilot.ID, map[string]any{
		"from_rank": change.FromRank,
		"to_rank":   change.ToRank,
	})
	return change, nil
}
