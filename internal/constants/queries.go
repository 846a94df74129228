package constants

const (
	InsertFlightReport = `
	INSERT INTO flight_reports (
		id, pilot_id, flight_number, callsign, departure_icao, arrival_icao,
		alternate_icao, route, aircraft, flight_time_minutes, fuel_used_kg,
		distance_nm, landing_rate, passengers, cargo_kg, score, status,
		remarks, submitted_at, created_at, updated_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		$12, $13, $14, $15, $16, $17, $18, $19, $20, $21
	)
	`

	GetFlightReportByID = `
	SELECT id, pilot_id, flight_number, callsign, departure_icao, arrival_icao,
	       alternate_icao, route, aircraft, flight_time_minutes, fuel_used_kg,
	       distance_nm, landing_rate, passengers, cargo_kg, score, status,
	       remarks, submitted_at, reviewed_at, reviewer_id, created_at, updated_at
	FROM flight_reports WHERE id = $1
	`

	ListFlightReportsByPilot = `
	SELECT id, pilot_id, flight_number, callsign, departure_icao, arrival_icao,
	       alternate_icao, route, aircraft, flight_time_minutes, fuel_used_kg,
	       distance_nm, landing_rate, passengers, cargo_kg, score, status,
	       remarks, submitted_at, reviewed_at, reviewer_id, created_at, updated_at
	FROM flight_reports WHERE pilot_id = $1 ORDER BY submitted_at DESC LIMIT $2
	`

	ListPendingFlightReports = `
	SELECT id, pilot_id, flight_number, callsign, departure_icao, arrival_icao,
	       alternate_icao, route, aircraft, flight_time_minutes, fuel_used_kg,
	       distance_nm, landing_rate, passengers, cargo_kg, score, status,
	       remarks, submitted_at, reviewed_at, reviewer_id, created_at, updated_at
	FROM flight_reports WHERE status = 'pending' ORDER BY submitted_at ASC
	`

	// Guarded transitions. Zero rows affected means the report was not in
	// the required state and the caller must treat the call as a conflict.
	MarkReportApproved = `
	UPDATE flight_reports
	SET status = 'approved', reviewed_at = $1, reviewer_id = $2, updated_at = $1
	WHERE id = $3 AND status = 'pending'
	`

	MarkReportRejected = `
	UPDATE flight_reports
	SET status = 'rejected', reviewed_at = $1, reviewer_id = $2, updated_at = $1
	WHERE id = $3 AND status = 'pending'
	`

	ReopenRejectedReport = `
	UPDATE flight_reports
	SET status = 'pending', reviewed_at = NULL, reviewer_id = NULL, updated_at = $1
	WHERE id = $2 AND status = 'rejected'
	`

	GetPilotByID = `
	SELECT id, callsign, name, email, role, status, rank, rank_order,
	       total_hours, total_flights, total_credits, landing_avg,
	       current_location, last_activity, created_at, updated_at
	FROM pilots WHERE id = $1
	`

	// Field-level arithmetic so concurrent approvals for the same pilot
	// never clobber each other with stale reads.
	ApplyFlightTotals = `
	UPDATE pilots
	SET landing_avg  = (landing_avg * total_flights + $1) / (total_flights + 1),
	    total_hours  = total_hours + $2,
	    total_flights = total_flights + 1,
	    last_activity = $3,
	    updated_at    = $3
	WHERE id = $4
	`

	// Guarded on rank_order so a stale evaluation can never demote.
	PromotePilotRank = `
	UPDATE pilots
	SET rank = $1, rank_order = $2, updated_at = $3
	WHERE id = $4 AND rank_order < $2
	`

	UpdatePilotLocation = `
	UPDATE pilots SET current_location = $1, updated_at = $2 WHERE id = $3
	`

	CreditPilot = `
	UPDATE pilots
	SET total_credits = total_credits + $1, updated_at = $2
	WHERE id = $3
	RETURNING total_credits
	`

	// Debits are conditional on the post-balance staying non-negative.
	DebitPilot = `
	UPDATE pilots
	SET total_credits = total_credits - $1, updated_at = $2
	WHERE id = $3 AND total_credits >= $1
	RETURNING total_credits
	`

	LeaderboardByHours = `
	SELECT id, callsign, name, email, role, status, rank, rank_order,
	       total_hours, total_flights, total_credits, landing_avg,
	       current_location, last_activity, created_at, updated_at
	FROM pilots WHERE status = 'active' ORDER BY total_hours DESC LIMIT $1
	`

	// The unique (report_id, step) index is the at-most-once guard for
	// propagation. A conflicting insert means the step already ran.
	ClaimPropagationStep = `
	INSERT INTO propagation_logs (report_id, step, applied_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (report_id, step) DO NOTHING
	`

	ReleasePropagationStep = `
	DELETE FROM propagation_logs WHERE report_id = $1 AND step = $2
	`

	ListCompletedSteps = `
	SELECT step FROM propagation_logs WHERE report_id = $1
	`

	InsertCreditTransaction = `
	INSERT INTO credit_transactions (id, pilot_id, delta, reason, balance_after, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`
)
