package constants

const (
	MsgReportNotFound    = "Flight report not found"
	MsgReportDecided     = "Report has already been decided"
	MsgPilotNotFound     = "Pilot not found"
	MsgActivityNotFound  = "Activity not found"
	MsgTourNotFound      = "Tour not found"
	MsgBidNotFound       = "Bid not found"
	MsgInvalidDecision   = "Decision must be approve or reject"
	MsgInsufficientFunds = "Insufficient credits"
	MsgInvalidPayload    = "Invalid request payload"
)
