package repositories

import (
	"context"
	"database/sql"
	"time"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db}
}

func (r *ReportRepository) Insert(ctx context.Context, report *entities.FlightReport) error {
	_, err := r.db.ExecContext(ctx, constants.InsertFlightReport,
		report.ID,
		report.PilotID,
		report.FlightNumber,
		report.Callsign,
		report.DepartureICAO,
		report.ArrivalICAO,
		report.AlternateICAO,
		report.Route,
		report.Aircraft,
		report.FlightTimeMinutes,
		report.FuelUsedKg,
		report.DistanceNM,
		report.LandingRate,
		report.Passengers,
		report.CargoKg,
		report.Score,
		report.Status,
		report.Remarks,
		report.SubmittedAt,
		report.CreatedAt,
		report.UpdatedAt,
	)
	return err
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (*entities.FlightReport, error) {
	var report entities.FlightReport

	err := r.db.QueryRowxContext(ctx, constants.GetFlightReportByID, id).StructScan(&report)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) ListByPilot(ctx context.Context, pilotID string, limit int) ([]entities.FlightReport, error) {
	var reports []entities.FlightReport
	err := r.db.SelectContext(ctx, &reports, constants.ListFlightReportsByPilot, pilotID, limit)
	return reports, err
}

func (r *ReportRepository) ListPending(ctx context.Context) ([]entities.FlightReport, error) {
	var reports []entities.FlightReport
	err := r.db.SelectContext(ctx, &reports, constants.ListPendingFlightReports)
	return reports, err
}

// MarkApproved flips the report to approved only if it is still
// pending. Returns false when another decision won the race.
func (r *ReportRepository) MarkApproved(ctx context.Context, id, reviewerID string, now time.Time) (bool, error) {
	return r.guardedTransition(ctx, constants.MarkReportApproved, now, reviewerID, id)
}

// MarkRejected flips the report to rejected only if it is still pending.
func (r *ReportRepository) MarkRejected(ctx context.Context, id, reviewerID string, now time.Time) (bool, error) {
	return r.guardedTransition(ctx, constants.MarkReportRejected, now, reviewerID, id)
}

// ReopenRejected moves a rejected report back to pending. It never
// touches approved reports and has no other side effects.
func (r *ReportRepository) ReopenRejected(ctx context.Context, id string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, constants.ReopenRejectedReport, now, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *ReportRepository) guardedTransition(ctx context.Context, query string, now time.Time, reviewerID, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, now, reviewerID, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
