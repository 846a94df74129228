package gorm

import "time"

// Bid is a pilot's reservation of a route. Rows past ExpiresAt are
// removed by the sweeper worker; reads always filter on the deadline so
// a lagging sweep never leaks an expired bid.
type Bid struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	PilotID       string    `gorm:"column:pilot_id;type:uuid;index"`
	FlightNumber  string    `gorm:"column:flight_number"`
	DepartureICAO string    `gorm:"column:departure_icao;type:varchar(4)"`
	ArrivalICAO   string    `gorm:"column:arrival_icao;type:varchar(4)"`
	Aircraft      string    `gorm:"column:aircraft"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	ExpiresAt     time.Time `gorm:"column:expires_at;index"`
}

// TableName specifies the table name for GORM
func (Bid) TableName() string {
	return "bids"
}
