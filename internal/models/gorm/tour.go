package gorm

import (
	"time"

	"skyward-va/horizon/internal/constants"
)

// Tour is a strictly ordered path of legs flown one after another.
type Tour struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description;type:text"`
	RewardPoints  int64     `gorm:"column:reward_points;default:0"`
	RewardAwardID *string   `gorm:"column:reward_award_id;type:uuid"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Legs []TourLeg `gorm:"foreignKey:TourID"`
}

// TableName specifies the table name for GORM
func (Tour) TableName() string {
	return "tours"
}

type TourLeg struct {
	ID           string  `gorm:"column:id;primaryKey;type:uuid"`
	TourID       string  `gorm:"column:tour_id;type:uuid;index"`
	Seq          int     `gorm:"column:seq"`
	Departure    *string `gorm:"column:departure;type:varchar(4)"`
	Arrival      *string `gorm:"column:arrival;type:varchar(4)"`
	FlightNumber *string `gorm:"column:flight_number"`
	Aircraft     *string `gorm:"column:aircraft"`
}

// TableName specifies the table name for GORM
func (TourLeg) TableName() string {
	return "tour_legs"
}

// TourProgress tracks a pilot's position along a tour with a single
// ordered leg pointer.
type TourProgress struct {
	ID          string               `gorm:"column:id;primaryKey;type:uuid"`
	PilotID     string               `gorm:"column:pilot_id;type:uuid;uniqueIndex:idx_pilot_tour"`
	TourID      string               `gorm:"column:tour_id;type:uuid;uniqueIndex:idx_pilot_tour"`
	CurrentLeg  int                  `gorm:"column:current_leg;default:0"`
	Status      constants.TourStatus `gorm:"column:status;default:in_progress"`
	StartedAt   time.Time            `gorm:"column:started_at"`
	CompletedAt *time.Time           `gorm:"column:completed_at"`
	CreatedAt   time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time            `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Tour Tour `gorm:"foreignKey:TourID"`
}

// TableName specifies the table name for GORM
func (TourProgress) TableName() string {
	return "tour_progress"
}
