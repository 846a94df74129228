package gorm

import "time"

type Award struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid"`
	Name        string    `gorm:"column:name;uniqueIndex"`
	Description string    `gorm:"column:description;type:text"`
	ImageURL    string    `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Award) TableName() string {
	return "awards"
}

// PilotAward is a unique (pilot, award) grant. Duplicate issuance is a
// silent no-op through the unique index.
type PilotAward struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	PilotID   string    `gorm:"column:pilot_id;type:uuid;uniqueIndex:idx_pilot_award"`
	AwardID   string    `gorm:"column:award_id;type:uuid;uniqueIndex:idx_pilot_award"`
	GrantedAt time.Time `gorm:"column:granted_at"`

	// Relationships
	Award Award `gorm:"foreignKey:AwardID"`
}

// TableName specifies the table name for GORM
func (PilotAward) TableName() string {
	return "pilot_awards"
}
