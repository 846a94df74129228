package services

import (
	"context"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/models/entities"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

// Storage contracts consumed by the pipeline services. The production
// implementations live in internal/db/repositories; tests swap in
// sqlite-backed or in-memory ones.

type ReportStore interface {
	Insert(ctx context.Context, report *entities.FlightReport) error
	GetByID(ctx context.Context, id string) (*entities.FlightReport, error)
	ListByPilot(ctx context.Context, pilotID string, limit int) ([]entities.FlightReport, error)
	ListPending(ctx context.Context) ([]entities.FlightReport, error)
	MarkApproved(ctx context.Context, id, reviewerID string, now time.Time) (bool, error)
	MarkRejected(ctx context.Context, id, reviewerID string, now time.Time) (bool, error)
	ReopenRejected(ctx context.Context, id string, now time.Time) (bool, error)
}

type PilotStore interface {
	GetByID(ctx context.Context, id string) (*entities.Pilot, error)
	ApplyFlightTotals(ctx context.Context, pilotID string, flightMinutes int, landingRate float64, now time.Time) error
	PromoteRank(ctx context.Context, pilotID, rank string, rankOrder int, now time.Time) (bool, error)
	UpdateLocation(ctx context.Context, pilotID, icao string, now time.Time) error
	Leaderboard(ctx context.Context, limit int) ([]entities.Pilot, error)
}

type CreditStore interface {
	ApplyCredit(ctx context.Context, pilotID string, amount int64, now time.Time) (int64, error)
	ApplyDebit(ctx context.Context, pilotID string, amount int64, now time.Time) (int64, bool, error)
	RecordTransaction(ctx context.Context, tx *entities.CreditTransaction) error
}

type PropagationStore interface {
	Claim(ctx context.Context, reportID, step string, now time.Time) (bool, error)
	Release(ctx context.Context, reportID, step string) error
	CompletedSteps(ctx context.Context, reportID string) ([]string, error)
}

type RankLadder interface {
	Ladder(ctx context.Context) ([]gormModels.Rank, error)
}

// AirportResolver is the reference-lookup collaborator. A nil airport
// with a nil error means the code is unknown.
type AirportResolver interface {
	ResolveAirport(ctx context.Context, icao string) (*gormModels.Airport, error)
}

// LiveFlightStore is the ephemeral registry behind telemetry. Records
// expire on the storage side; absence means "not flying".
type LiveFlightStore interface {
	Upsert(ctx context.Context, rec *common.LiveFlightRecord, ttl time.Duration) error
	Get(ctx context.Context, pilotID string) (*common.LiveFlightRecord, error)
	List(ctx context.Context) ([]common.LiveFlightRecord, error)
	Remove(ctx context.Context, pilotID string) error
}

// Notifier is fire-and-forget; implementations log failures and never
// surface them to the pipeline.
type Notifier interface {
	Notify(ctx context.Context, kind, pilotID string, payload map[string]any)
}
