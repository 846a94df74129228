package entities

import (
	"time"

	"skyward-va/horizon/internal/constants"
)

type Pilot struct {
	ID              string         `db:"id"`
	Callsign        string         `db:"callsign"`
	Name            string         `db:"name"`
	Email           string         `db:"email"`
	Role            constants.Role `db:"role"`
	Status          string         `db:"status"`
	Rank            string         `db:"rank"`
	RankOrder       int            `db:"rank_order"`
	TotalHours      float64        `db:"total_hours"`
	TotalFlights    int            `db:"total_flights"`
	TotalCredits    int64          `db:"total_credits"`
	LandingAvg      float64        `db:"landing_avg"`
	CurrentLocation string         `db:"current_location"`
	LastActivity    *time.Time     `db:"last_activity"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type CreditTransaction struct {
	ID           string    `db:"id"`
	PilotID      string    `db:"pilot_id"`
	Delta        int64     `db:"delta"`
	Reason       string    `db:"reason"`
	BalanceAfter int64     `db:"balance_after"`
	CreatedAt    time.Time `db:"created_at"`
}
