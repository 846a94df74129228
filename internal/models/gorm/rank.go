package gorm

import (
	"time"

	"gorm.io/datatypes"
)

// Rank is one tier of the promotion ladder. Ordering is monotonic by
// RankOrder; a pilot is eligible only when both the hours and flights
// requirements are met.
type Rank struct {
	ID                 string                       `gorm:"column:id;primaryKey;type:uuid"`
	Name               string                       `gorm:"column:name;uniqueIndex"`
	RankOrder          int                          `gorm:"column:rank_order;uniqueIndex"`
	RequirementHours   float64                      `gorm:"column:requirement_hours"`
	RequirementFlights int                          `gorm:"column:requirement_flights"`
	AutoPromote        bool                         `gorm:"column:auto_promote;default:true"`
	AllowedAircraft    datatypes.JSONSlice[string]  `gorm:"column:allowed_aircraft"`
	CreatedAt          time.Time                    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                    `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Rank) TableName() string {
	return "ranks"
}
