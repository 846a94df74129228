package gorm

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is a multi-leg event pilots progress through by flying
// approved reports that match its legs.
type Activity struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	Name          string    `gorm:"column:name"`
	Description   string    `gorm:"column:description;type:text"`
	LegsInOrder   bool      `gorm:"column:legs_in_order;default:false"`
	RewardPoints  int64     `gorm:"column:reward_points;default:0"`
	RewardAwardID *string   `gorm:"column:reward_award_id;type:uuid"`
	IsActive      bool      `gorm:"column:is_active;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Legs []ActivityLeg `gorm:"foreignKey:ActivityID"`
}

// TableName specifies the table name for GORM
func (Activity) TableName() string {
	return "activities"
}

// ActivityLeg is one matchable segment. A nil field matches any value
// on the report; only defined fields constrain the match.
type ActivityLeg struct {
	ID           string  `gorm:"column:id;primaryKey;type:uuid"`
	ActivityID   string  `gorm:"column:activity_id;type:uuid;index"`
	Seq          int     `gorm:"column:seq"`
	Departure    *string `gorm:"column:departure;type:varchar(4)"`
	Arrival      *string `gorm:"column:arrival;type:varchar(4)"`
	FlightNumber *string `gorm:"column:flight_number"`
	Aircraft     *string `gorm:"column:aircraft"`
}

// TableName specifies the table name for GORM
func (ActivityLeg) TableName() string {
	return "activity_legs"
}

// ActivityProgress is the unique per (pilot, activity) progress record.
type ActivityProgress struct {
	ID               string                      `gorm:"column:id;primaryKey;type:uuid"`
	PilotID          string                      `gorm:"column:pilot_id;type:uuid;uniqueIndex:idx_pilot_activity"`
	ActivityID       string                      `gorm:"column:activity_id;type:uuid;uniqueIndex:idx_pilot_activity"`
	LegsComplete     int                         `gorm:"column:legs_complete;default:0"`
	PercentComplete  float64                     `gorm:"column:percent_complete;default:0"`
	CompletedLegIDs  datatypes.JSONSlice[string] `gorm:"column:completed_leg_ids"`
	StartDate        time.Time                   `gorm:"column:start_date"`
	LastLegFlownDate *time.Time                  `gorm:"column:last_leg_flown_date"`
	DateComplete     *time.Time                  `gorm:"column:date_complete"`
	DaysToComplete   *int                        `gorm:"column:days_to_complete"`
	CreatedAt        time.Time                   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time                   `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Activity Activity `gorm:"foreignKey:ActivityID"`
}

// TableName specifies the table name for GORM
func (ActivityProgress) TableName() string {
	return "activity_progress"
}
