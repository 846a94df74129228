package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/db/repositories"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

func newAirportFixture(t *testing.T) (*AirportLookupService, *gormlib.DB) {
	gdb := setupTestDB(t)
	repo := repositories.NewAirportRepository(gdb)
	svc := NewAirportLookupService(repo, common.NewCacheService(60, 120))

	err := repo.BatchInsert(context.Background(), []gormModels.Airport{
		{ID: uuid.NewString(), ICAO: "KSEA", IATA: "SEA", Name: "Seattle-Tacoma Intl", Latitude: 47.449, Longitude: -122.309},
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return svc, gdb
}

func TestResolveAirport(t *testing.T) {
	svc, _ := newAirportFixture(t)

	airport, err := svc.ResolveAirport(context.Background(), "ksea")
	if err != nil {
		t.Fatalf("ResolveAirport failed: %v", err)
	}
	if airport == nil || airport.ICAO != "KSEA" {
		t.Fatalf("expected KSEA, got %+v", airport)
	}

	airport, err = svc.ResolveAirport(context.Background(), "ZZZZ")
	if err != nil {
		t.Fatalf("ResolveAirport failed: %v", err)
	}
	if airport != nil {
		t.Errorf("expected nil for unknown code, got %+v", airport)
	}

	airport, err = svc.ResolveAirport(context.Background(), "  ")
	if err != nil || airport != nil {
		t.Errorf("expected nil,nil for blank code, got %+v, %v", airport, err)
	}
}

func TestResolveAirport_ServedFromCache(t *testing.T) {
	svc, gdb := newAirportFixture(t)
	ctx := context.Background()

	if _, err := svc.ResolveAirport(ctx, "KSEA"); err != nil {
		t.Fatalf("ResolveAirport failed: %v", err)
	}

	// Drop the row; a cached code must still resolve.
	if err := gdb.Where("icao = ?", "KSEA").Delete(&gormModels.Airport{}).Error; err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	airport, err := svc.ResolveAirport(ctx, "KSEA")
	if err != nil {
		t.Fatalf("ResolveAirport failed: %v", err)
	}
	if airport == nil {
		t.Error("expected cached airport after row deletion")
	}
}
