package gorm

import (
	"time"

	"skyward-va/horizon/internal/constants"
)

type Pilot struct {
	ID              string         `gorm:"column:id;primaryKey;type:uuid"`
	Callsign        string         `gorm:"column:callsign;uniqueIndex"`
	Name            string         `gorm:"column:name"`
	Email           string         `gorm:"column:email"`
	Role            constants.Role `gorm:"column:role;default:pilot"`
	Status          string         `gorm:"column:status;default:active"`
	Rank            string         `gorm:"column:rank"`
	RankOrder       int            `gorm:"column:rank_order;default:0"`
	TotalHours      float64        `gorm:"column:total_hours;default:0"`
	TotalFlights    int            `gorm:"column:total_flights;default:0"`
	TotalCredits    int64          `gorm:"column:total_credits;default:0"`
	LandingAvg      float64        `gorm:"column:landing_avg;default:0"`
	CurrentLocation string         `gorm:"column:current_location"`
	LastActivity    *time.Time     `gorm:"column:last_activity"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Awards []PilotAward `gorm:"foreignKey:PilotID"`
}

// TableName specifies the table name for GORM
func (Pilot) TableName() string {
	return "pilots"
}
