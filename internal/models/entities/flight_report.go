package entities

import (
	"time"

	"skyward-va/horizon/internal/constants"
)

type FlightReport struct {
	ID                string                 `db:"id"`
	PilotID           string                 `db:"pilot_id"`
	FlightNumber      string                 `db:"flight_number"`
	Callsign          string                 `db:"callsign"`
	DepartureICAO     string                 `db:"departure_icao"`
	ArrivalICAO       string                 `db:"arrival_icao"`
	AlternateICAO     *string                `db:"alternate_icao"`
	Route             string                 `db:"route"`
	Aircraft          string                 `db:"aircraft"`
	FlightTimeMinutes int                    `db:"flight_time_minutes"`
	FuelUsedKg        float64                `db:"fuel_used_kg"`
	DistanceNM        float64                `db:"distance_nm"`
	LandingRate       float64                `db:"landing_rate"`
	Passengers        int                    `db:"passengers"`
	CargoKg           float64                `db:"cargo_kg"`
	Score             float64                `db:"score"`
	Status            constants.ReportStatus `db:"status"`
	Remarks           string                 `db:"remarks"`
	SubmittedAt       time.Time              `db:"submitted_at"`
	ReviewedAt        *time.Time             `db:"reviewed_at"`
	ReviewerID        *string                `db:"reviewer_id"`
	CreatedAt         time.Time              `db:"created_at"`
	UpdatedAt         time.Time              `db:"updated_at"`
}
