package dtos

import "time"

// APIResponse is the standard JSON envelope for every endpoint
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// PropagationSummary reports what a Pending→Approved transition applied.
// Steps already marked done (a replayed approval) show up in SkippedSteps.
type PropagationSummary struct {
	ReportID            string   `json:"report_id"`
	Decision            string   `json:"decision"`
	StatsApplied        bool     `json:"stats_applied"`
	CreditsAwarded      int64    `json:"credits_awarded"`
	RankChanged         bool     `json:"rank_changed"`
	NewRank             string   `json:"new_rank,omitempty"`
	ActivitiesAdvanced  int      `json:"activities_advanced"`
	ActivitiesCompleted int      `json:"activities_completed"`
	ToursAdvanced       int      `json:"tours_advanced"`
	ToursCompleted      int      `json:"tours_completed"`
	SkippedSteps        []string `json:"skipped_steps,omitempty"`
	StepErrors          []string `json:"step_errors,omitempty"`
}

// ProgressSnapshot is the read model for activity progress
type ProgressSnapshot struct {
	ActivityID       string     `json:"activity_id"`
	ActivityName     string     `json:"activity_name"`
	LegsInOrder      bool       `json:"legs_in_order"`
	LegsTotal        int        `json:"legs_total"`
	LegsComplete     int        `json:"legs_complete"`
	PercentComplete  float64    `json:"percent_complete"`
	CompletedLegIDs  []string   `json:"completed_leg_ids"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	LastLegFlownDate *time.Time `json:"last_leg_flown_date,omitempty"`
	DateComplete     *time.Time `json:"date_complete,omitempty"`
	DaysToComplete   *int       `json:"days_to_complete,omitempty"`
}

// TourSnapshot is the read model for tour progress
type TourSnapshot struct {
	TourID      string     `json:"tour_id"`
	TourName    string     `json:"tour_name"`
	LegsTotal   int        `json:"legs_total"`
	CurrentLeg  int        `json:"current_leg"`
	Status      string     `json:"status"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// PilotStatsResponse is the totals snapshot for a pilot
type PilotStatsResponse struct {
	PilotID         string     `json:"pilot_id"`
	Callsign        string     `json:"callsign"`
	Name            string     `json:"name"`
	Rank            string     `json:"rank"`
	TotalHours      float64    `json:"total_hours"`
	TotalFlights    int        `json:"total_flights"`
	TotalCredits    int64      `json:"total_credits"`
	LandingAvg      float64    `json:"landing_avg"`
	CurrentLocation string     `json:"current_location"`
	LastActivity    *time.Time `json:"last_activity,omitempty"`
}

// LiveFlightResponse is one record from the ephemeral flight registry
type LiveFlightResponse struct {
	PilotID        string    `json:"pilot_id"`
	Callsign       string    `json:"callsign"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AltitudeFt     int       `json:"altitude_ft"`
	Heading        float64   `json:"heading"`
	GroundSpeedKts int       `json:"ground_speed_kts"`
	Status         string    `json:"status"`
	DepartureICAO  string    `json:"departure_icao,omitempty"`
	ArrivalICAO    string    `json:"arrival_icao,omitempty"`
	LastUpdate     time.Time `json:"last_update"`
}

// LeaderboardEntry is one row of the hours leaderboard
type LeaderboardEntry struct {
	PilotID      string  `json:"pilot_id"`
	Callsign     string  `json:"callsign"`
	Name         string  `json:"name"`
	Rank         string  `json:"rank"`
	TotalHours   float64 `json:"total_hours"`
	TotalFlights int     `json:"total_flights"`
	Flying       bool    `json:"flying"`
}

// JumpseatResponse is the receipt for a jumpseat relocation
type JumpseatResponse struct {
	ReceiptID   string `json:"receipt_id"`
	From        string `json:"from"`
	To          string `json:"to"`
	Cost        int64  `json:"cost"`
	NewBalance  int64  `json:"new_balance"`
	NewLocation string `json:"new_location"`
}

// BidResponse is one route reservation
type BidResponse struct {
	ID            string    `json:"id"`
	FlightNumber  string    `json:"flight_number"`
	DepartureICAO string    `json:"departure_icao"`
	ArrivalICAO   string    `json:"arrival_icao"`
	Aircraft      string    `json:"aircraft,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}
