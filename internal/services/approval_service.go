package services

import (
	"context"
	"fmt"
	"time"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/logging"
	"skyward-va/horizon/internal/metrics"
	"skyward-va/horizon/internal/models/dtos"
	"skyward-va/horizon/internal/models/entities"
)

// ApprovalService owns the report state machine and the propagation
// that follows a Pending→Approved transition. The conditional status
// update is the sole serialization point: whichever reviewer wins the
// race propagates, everyone else gets ErrConflict.
type ApprovalService struct {
	reports     ReportStore
	propagation PropagationStore
	stats       *StatsService
	ranks       *RankService
	ledger      *CreditService
	activities  *ActivityService
	tours       *TourService
	notify      Notifier
	metricsReg  *metrics.MetricsRegistry
}

// NewApprovalService creates a new ApprovalService with dependencies
func NewApprovalService(
	reports ReportStore,
	propagation PropagationStore,
	stats *StatsService,
	ranks *RankService,
	ledger *CreditService,
	activities *ActivityService,
	tours *TourService,
	notify Notifier,
	metricsReg *metrics.MetricsRegistry,
) *ApprovalService {
	return &ApprovalService{
		reports:     reports,
		propagation: propagation,
		stats:       stats,
		ranks:       ranks,
		ledger:      ledger,
		activities:  activities,
		tours:       tours,
		notify:      notify,
		metricsReg:  metricsReg,
	}
}

// Decide applies a reviewer's verdict. Approval propagates into pilot
// stats, rank, credits and activity/tour progress; rejection only
// flips the status. A report that is no longer pending yields
// ErrConflict and nothing is propagated.
func (s *ApprovalService) Decide(ctx context.Context, reportID, reviewerID, decision string) (*dtos.PropagationSummary, error) {
	if decision != string(constants.ReportApproved) && decision != string(constants.ReportRejected) {
		return nil, newValidationError("decision", "must be approved or rejected")
	}

	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	summary := &dtos.PropagationSummary{
		ReportID: reportID,
		Decision: decision,
	}

	if decision == string(constants.ReportRejected) {
		ok, err := s.reports.MarkRejected(ctx, reportID, reviewerID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to reject report: %w", err)
		}
		if !ok {
			return nil, ErrConflict
		}

		if s.metricsReg != nil {
			s.metricsReg.ReportsDecidedTotal.WithLabelValues(decision).Inc()
		}
		logging.Info("Report rejected", "report_id", reportID, "reviewer_id", reviewerID)
		s.notify.Notify(ctx, constants.NotifyReportRejected, report.PilotID, map[string]any{
			"report_id": reportID,
		})
		return summary, nil
	}

	ok, err := s.reports.MarkApproved(ctx, reportID, reviewerID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to approve report: %w", err)
	}
	if !ok {
		return nil, ErrConflict
	}

	if s.metricsReg != nil {
		s.metricsReg.ReportsDecidedTotal.WithLabelValues(decision).Inc()
	}
	logging.Info("Report approved", "report_id", reportID, "reviewer_id", reviewerID)
	s.notify.Notify(ctx, constants.NotifyReportApproved, report.PilotID, map[string]any{
		"report_id": reportID,
		"score":     report.Score,
	})

	report.Status = constants.ReportApproved
	s.propagate(ctx, report, now, summary)
	return summary, nil
}

// Reopen moves a rejected report back to pending for another review
// pass. It never touches the propagation log, so steps that already
// ran stay done if the report gets approved again.
func (s *ApprovalService) Reopen(ctx context.Context, reportID string) error {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrNotFound
	}

	ok, err := s.reports.ReopenRejected(ctx, reportID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to reopen report: %w", err)
	}
	if !ok {
		return ErrConflict
	}

	logging.Info("Report reopened", "report_id", reportID)
	return nil
}

// Redrive re-runs propagation for an already approved report,
// completing only the steps that never finished. Safe to call any
// number of times.
func (s *ApprovalService) Redrive(ctx context.Context, reportID string) (*dtos.PropagationSummary, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNotFound
	}
	if report.Status != constants.ReportApproved {
		return nil, ErrConflict
	}

	summary := &dtos.PropagationSummary{
		ReportID: reportID,
		Decision: string(constants.ReportApproved),
	}
	s.propagate(ctx, report, time.Now().UTC(), summary)
	return summary, nil
}

// propagate walks the step sequence, claiming each step before
// applying it. A claimed step that fails is released so a re-drive
// can retry it; the approval itself is never rolled back.
func (s *ApprovalService) propagate(ctx context.Context, report *entities.FlightReport, now time.Time, summary *dtos.PropagationSummary) {
	for _, step := range constants.PropagationSteps {
		claimed, err := s.propagation.Claim(ctx, report.ID, step, now)
		if err != nil {
			s.recordStepError(summary, report.ID, step, err)
			continue
		}
		if !claimed {
			summary.SkippedSteps = append(summary.SkippedSteps, step)
			continue
		}

		start := time.Now()
		err = s.runStep(ctx, step, report, now, summary)
		if s.metricsReg != nil {
			s.metricsReg.PropagationStepDuration.WithLabelValues(step).Observe(time.Since(start).Seconds())
		}
		if err != nil {
			if relErr := s.propagation.Release(ctx, report.ID, step); relErr != nil {
				logging.Error("Failed to release propagation step",
					"report_id", report.ID, "step", step, "error", relErr)
			}
			s.recordStepError(summary, report.ID, step, err)
		}
	}
}

func (s *ApprovalService) runStep(ctx context.Context, step string, report *entities.FlightReport, now time.Time, summary *dtos.PropagationSummary) error {
	switch step {
	case constants.StepStats:
		if err := s.stats.Apply(ctx, report, now); err != nil {
			return err
		}
		summary.StatsApplied = true

	case constants.StepRank:
		change, err := s.ranks.Evaluate(ctx, report.PilotID, now)
		if err != nil {
			return err
		}
		if change != nil {
			summary.RankChanged = true
			summary.NewRank = change.ToRank
			if s.metricsReg != nil {
				s.metricsReg.RankPromotionsTotal.Inc()
			}
		}

	case constants.StepFlightCredit:
		reward := int64(report.Score)
		if reward > 0 {
			reason := fmt.Sprintf("flight reward: %s", report.FlightNumber)
			if _, err := s.ledger.Adjust(ctx, report.PilotID, reward, reason); err != nil {
				return err
			}
			summary.CreditsAwarded += reward
		}

	case constants.StepActivities:
		res, err := s.activities.MatchReport(ctx, report, now)
		if res != nil {
			summary.ActivitiesAdvanced = res.Advanced
			summary.ActivitiesCompleted = res.Completed
		}
		if err != nil {
			return err
		}

	case constants.StepTours:
		res, err := s.tours.MatchReport(ctx, report, now)
		if res != nil {
			summary.ToursAdvanced = res.Advanced
			summary.ToursCompleted = res.Completed
		}
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown propagation step %q", step)
	}
	return nil
}

func (s *ApprovalService) recordStepError(summary *dtos.PropagationSummary, reportID, step string, err error) {
	logging.Error("Propagation step failed",
		"report_id", reportID,
		"step", step,
		"error", err,
	)
	if s.metricsReg != nil {
		s.metricsReg.PropagationStepErrors.WithLabelValues(step).Inc()
	}
	summary.StepErrors = append(summary.StepErrors, fmt.Sprintf("%s: %v", step, err))
}
