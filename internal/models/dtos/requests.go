package dtos

// SubmitReportRequest is the payload for POST /api/v1/pireps
type SubmitReportRequest struct {
	FlightNumber      string  `json:"flight_number"`
	Callsign          string  `json:"callsign"`
	DepartureICAO     string  `json:"departure_icao"`
	ArrivalICAO       string  `json:"arrival_icao"`
	AlternateICAO     *string `json:"alternate_icao,omitempty"`
	Route             string  `json:"route,omitempty"`
	Aircraft          string  `json:"aircraft"`
	FlightTimeMinutes int     `json:"flight_time_minutes"`
	FuelUsedKg        float64 `json:"fuel_used_kg"`
	DistanceNM        float64 `json:"distance_nm"`
	LandingRate       float64 `json:"landing_rate"`
	Passengers        int     `json:"passengers"`
	CargoKg           float64 `json:"cargo_kg"`
	Remarks           string  `json:"remarks,omitempty"`
}

// DecideReportRequest carries the admin decision for a pending report
type DecideReportRequest struct {
	Decision string `json:"decision"` // "approve" or "reject"
}

// AdjustCreditsRequest is the payload for POST /api/v1/credits/adjust
type AdjustCreditsRequest struct {
	PilotID string `json:"pilot_id"`
	Delta   int64  `json:"delta"`
	Reason  string `json:"reason"`
}

// TelemetryRequest is one live-flight position tick
type TelemetryRequest struct {
	Callsign       string  `json:"callsign"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AltitudeFt     int     `json:"altitude_ft"`
	Heading        float64 `json:"heading"`
	GroundSpeedKts int     `json:"ground_speed_kts"`
	Status         string  `json:"status"` // boarding, enroute, approach, landed
	DepartureICAO  string  `json:"departure_icao,omitempty"`
	ArrivalICAO    string  `json:"arrival_icao,omitempty"`
}

// JumpseatRequest relocates a pilot for a credit cost
type JumpseatRequest struct {
	DestinationICAO string `json:"destination_icao"`
}

// CreateBidRequest reserves a route for the calling pilot
type CreateBidRequest struct {
	FlightNumber  string `json:"flight_number"`
	DepartureICAO string `json:"departure_icao"`
	ArrivalICAO   string `json:"arrival_icao"`
	Aircraft      string `json:"aircraft,omitempty"`
}
