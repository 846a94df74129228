package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/db/repositories"
	"skyward-va/horizon/internal/models/dtos"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

func newBidFixture(t *testing.T) (*BidService, *repositories.BidRepository) {
	repo := repositories.NewBidRepository(setupTestDB(t))
	return NewBidService(repo, knownAirports("KSEA", "KPDX")), repo
}

func TestCreateBid(t *testing.T) {
	svc, _ := newBidFixture(t)

	before := time.Now().UTC()
	bid, err := svc.Create(context.Background(), "pilot-1", &dtos.CreateBidRequest{
		FlightNumber:  "SKW500",
		DepartureICAO: "KSEA",
		ArrivalICAO:   "KPDX",
		Aircraft:      "E175",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if got := bid.ExpiresAt.Sub(before); got < constants.BidTTL-time.Minute || got > constants.BidTTL+time.Minute {
		t.Errorf("expected ~%v lifetime, got %v", constants.BidTTL, got)
	}

	bids, err := svc.List(context.Background(), "pilot-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(bids) != 1 || bids[0].FlightNumber != "SKW500" {
		t.Errorf("unexpected listing %+v", bids)
	}
}

func TestCreateBid_Validation(t *testing.T) {
	svc, _ := newBidFixture(t)
	var vErr *ValidationError

	_, err := svc.Create(context.Background(), "pilot-1", &dtos.CreateBidRequest{
		DepartureICAO: "KSEA", ArrivalICAO: "KPDX",
	})
	if !errors.As(err, &vErr) || vErr.Field != "flight_number" {
		t.Errorf("expected flight_number validation error, got %v", err)
	}

	_, err = svc.Create(context.Background(), "pilot-1", &dtos.CreateBidRequest{
		FlightNumber: "SKW500", DepartureICAO: "XXXX", ArrivalICAO: "KPDX",
	})
	if !errors.As(err, &vErr) || vErr.Field != "departure_icao" {
		t.Errorf("expected departure_icao validation error, got %v", err)
	}
}

func TestListBids_FiltersExpired(t *testing.T) {
	svc, repo := newBidFixture(t)
	now := time.Now().UTC()

	stale := &gormModels.Bid{
		ID: uuid.NewString(), PilotID: "pilot-1", FlightNumber: "SKW400",
		DepartureICAO: "KSEA", ArrivalICAO: "KPDX",
		CreatedAt: now.Add(-25 * time.Hour), ExpiresAt: now.Add(-time.Hour),
	}
	if err := repo.Create(context.Background(), stale); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	bids, err := svc.List(context.Background(), "pilot-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(bids) != 0 {
		t.Errorf("expired bid leaked into listing: %+v", bids)
	}

	// The sweeper path removes it for good.
	removed, err := repo.DeleteExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed bid, got %d", removed)
	}
}

func TestDeleteBid_OwnershipScoped(t *testing.T) {
	svc, _ := newBidFixture(t)

	bid, err := svc.Create(context.Background(), "pilot-1", &dtos.CreateBidRequest{
		FlightNumber: "SKW500", DepartureICAO: "KSEA", ArrivalICAO: "KPDX",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), "pilot-2", bid.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign bid, got %v", err)
	}
	if err := svc.Delete(context.Background(), "pilot-1", bid.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "pilot-1", bid.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
