package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/models/entities"
)

// The guarded UPDATE and ON CONFLICT shapes these repositories rely on
// are plain SQL, so an in-memory SQLite file with the same columns is
// enough to exercise them.
const testSchema = `
CREATE TABLE pilots (
	id TEXT PRIMARY KEY,
	callsign TEXT NOT NULL DEFAULT '',
	name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT 'pilot',
	status TEXT NOT NULL DEFAULT 'active',
	rank TEXT NOT NULL DEFAULT '',
	rank_order INTEGER NOT NULL DEFAULT 0,
	total_hours REAL NOT NULL DEFAULT 0,
	total_flights INTEGER NOT NULL DEFAULT 0,
	total_credits INTEGER NOT NULL DEFAULT 0,
	landing_avg REAL NOT NULL DEFAULT 0,
	current_location TEXT NOT NULL DEFAULT '',
	last_activity TIMESTAMP,
	created_at TIMESTAMP,
	updated_at TIMESTAMP
);

CREATE TABLE flight_reports (
	id TEXT PRIMARY KEY,
	pilot_id TEXT NOT NULL,
	flight_number TEXT NOT NULL DEFAULT '',
	callsign TEXT NOT NULL DEFAULT '',
	departure_icao TEXT NOT NULL DEFAULT '',
	arrival_icao TEXT NOT NULL DEFAULT '',
	alternate_icao TEXT,
	route TEXT NOT NULL DEFAULT '',
	aircraft TEXT NOT NULL DEFAULT '',
	flight_time_minutes INTEGER NOT NULL DEFAULT 0,
	fuel_used_kg REAL NOT NULL DEFAULT 0,
	distance_nm REAL NOT NULL DEFAULT 0,
	landing_rate REAL NOT NULL DEFAULT 0,
	passengers INTEGER NOT NULL DEFAULT 0,
	cargo_kg REAL NOT NULL DEFAULT 0,
	score REAL NOT NULL DEFAULT 0,
	status TEXT NOT NULL DEFAULT 'pending',
	remarks TEXT NOT NULL DEFAULT '',
	submitted_at TIMESTAMP,
	reviewed_at TIMESTAMP,
	reviewer_id TEXT,
	created_at TIMESTAMP,
	updated_at TIMESTAMP
);

CREATE TABLE propagation_logs (
	report_id TEXT NOT NULL,
	step TEXT NOT NULL,
	applied_at TIMESTAMP,
	UNIQUE (report_id, step)
);

CREATE TABLE credit_transactions (
	id TEXT PRIMARY KEY,
	pilot_id TEXT NOT NULL,
	delta INTEGER NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	balance_after INTEGER NOT NULL,
	created_at TIMESTAMP
);
`

func openTestDB(t *testing.T) *sqlx.DB {
	sdb, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { sdb.Close() })

	// A single connection keeps every statement on the same in-memory
	// database.
	sdb.SetMaxOpenConns(1)

	if _, err := sdb.Exec(testSchema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return sdb
}

func seedPilot(t *testing.T, sdb *sqlx.DB, pilot *entities.Pilot) {
	_, err := sdb.Exec(`
		INSERT INTO pilots (id, callsign, name, status, rank, rank_order,
			total_hours, total_flights, total_credits, landing_avg, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
		pilot.ID, pilot.Callsign, pilot.Name, "active", pilot.Rank, pilot.RankOrder,
		pilot.TotalHours, pilot.TotalFlights, pilot.TotalCredits, pilot.LandingAvg, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to seed pilot: %v", err)
	}
}

func seedReport(t *testing.T, sdb *sqlx.DB, report *entities.FlightReport) {
	if report.Status == "" {
		report.Status = constants.ReportPending
	}
	now := time.Now().UTC()
	report.SubmittedAt = now
	report.CreatedAt = now
	report.UpdatedAt = now

	repo := NewReportRepository(sdb)
	if err := repo.Insert(context.Background(), report); err != nil {
		t.Fatalf("Failed to seed report: %v", err)
	}
}
