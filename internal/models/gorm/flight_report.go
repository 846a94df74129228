package gorm

import (
	"time"

	"skyward-va/horizon/internal/constants"
)

// FlightReport is the schema definition for the flight_reports table.
// The approval and propagation paths mutate it through guarded sqlx
// updates; this model exists for migration and read-side queries.
type FlightReport struct {
	ID                string                 `gorm:"column:id;primaryKey;type:uuid"`
	PilotID           string                 `gorm:"column:pilot_id;type:uuid;index"`
	FlightNumber      string                 `gorm:"column:flight_number"`
	Callsign          string                 `gorm:"column:callsign"`
	DepartureICAO     string                 `gorm:"column:departure_icao;type:varchar(4)"`
	ArrivalICAO       string                 `gorm:"column:arrival_icao;type:varchar(4)"`
	AlternateICAO     *string                `gorm:"column:alternate_icao;type:varchar(4)"`
	Route             string                 `gorm:"column:route;type:text"`
	Aircraft          string                 `gorm:"column:aircraft"`
	FlightTimeMinutes int                    `gorm:"column:flight_time_minutes"`
	FuelUsedKg        float64                `gorm:"column:fuel_used_kg"`
	DistanceNM        float64                `gorm:"column:distance_nm"`
	LandingRate       float64                `gorm:"column:landing_rate"`
	Passengers        int                    `gorm:"column:passengers"`
	CargoKg           float64                `gorm:"column:cargo_kg"`
	Score             float64                `gorm:"column:score"`
	Status            constants.ReportStatus `gorm:"column:status;index;default:pending"`
	Remarks           string                 `gorm:"column:remarks;type:text"`
	SubmittedAt       time.Time              `gorm:"column:submitted_at"`
	ReviewedAt        *time.Time             `gorm:"column:reviewed_at"`
	ReviewerID        *string                `gorm:"column:reviewer_id;type:uuid"`
	CreatedAt         time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time              `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Pilot Pilot `gorm:"foreignKey:PilotID"`
}

// TableName specifies the table name for GORM
func (FlightReport) TableName() string {
	return "flight_reports"
}

// PropagationLog records which propagation steps already ran for a
// report. The unique (report_id, step) pair makes every step
// at-most-once across retries and admin replays.
type PropagationLog struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	ReportID  string    `gorm:"column:report_id;type:uuid;uniqueIndex:idx_report_step"`
	Step      string    `gorm:"column:step;uniqueIndex:idx_report_step"`
	AppliedAt time.Time `gorm:"column:applied_at"`
}

// TableName specifies the table name for GORM
func (PropagationLog) TableName() string {
	return "propagation_logs"
}

// CreditTransaction is the audit trail behind the credit ledger.
type CreditTransaction struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	PilotID      string    `gorm:"column:pilot_id;type:uuid;index"`
	Delta        int64     `gorm:"column:delta"`
	Reason       string    `gorm:"column:reason"`
	BalanceAfter int64     `gorm:"column:balance_after"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
