package constants

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ReportStatus mirrors the flight_reports.status column
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportApproved ReportStatus = "approved"
	ReportRejected ReportStatus = "rejected"
)

func (s ReportStatus) String() string { return string(s) }

// Scan implements the sql.Scanner interface
func (s *ReportStatus) Scan(src interface{}) error {
	if src == nil {
		*s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*s = ReportStatus(v)
	case []byte:
		*s = ReportStatus(v)
	default:
		return fmt.Errorf("ReportStatus: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (s ReportStatus) Value() (driver.Value, error) { return string(s), nil }

// TourStatus mirrors the tour_progress.status column
type TourStatus string

const (
	TourInProgress TourStatus = "in_progress"
	TourCompleted  TourStatus = "completed"
	TourAbandoned  TourStatus = "abandoned"
)

func (s TourStatus) String() string { return string(s) }

// Propagation step names. Each (report, step) pair runs at most once.
const (
	StepStats        = "stats"
	StepRank         = "rank"
	StepFlightCredit = "flight_credit"
	StepActivities   = "activities"
	StepTours        = "tours"
)

// PropagationSteps is the canonical execution order
var PropagationSteps = []string{StepStats, StepRank, StepFlightCredit, StepActivities, StepTours}

const (
	// LiveFlightTTL is the inactivity window after which a live flight
	// record expires from the registry.
	LiveFlightTTL = 10 * time.Minute

	// BidTTL is how long a route bid stays valid after creation.
	BidTTL = 24 * time.Hour
)

// Cache key prefixes
const (
	CachePrefixAirport    = "airport:"
	CachePrefixRankLadder = "rank_ladder"
)

// Notification kinds published to the dispatch stream
const (
	NotifyReportApproved    = "report_approved"
	NotifyReportRejected    = "report_rejected"
	NotifyRankPromoted      = "rank_promoted"
	NotifyActivityCompleted = "activity_completed"
	NotifyTourCompleted     = "tour_completed"
	NotifyAwardGranted      = "award_granted"
)
