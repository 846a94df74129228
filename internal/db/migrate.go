package db

import (
	gormModels "skyward-va/horizon/internal/models/gorm"

	"gorm.io/gorm"
)

// Models is the explicit schema registry. Every table the system owns
// is listed here and migrated once at process start.
func Models() []any {
	return []any{
		&gormModels.Pilot{},
		&gormModels.FlightReport{},
		&gormModels.PropagationLog{},
		&gormModels.CreditTransaction{},
		&gormModels.Rank{},
		&gormModels.Activity{},
		&gormModels.ActivityLeg{},
		&gormModels.ActivityProgress{},
		&gormModels.Tour{},
		&gormModels.TourLeg{},
		&gormModels.TourProgress{},
		&gormModels.Award{},
		&gormModels.PilotAward{},
		&gormModels.Airport{},
		&gormModels.Bid{},
	}
}

// Migrate applies the schema registry to the given database.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(Models()...)
}
