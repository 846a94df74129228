package services

import (
	"context"
	"strings"
	"time"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/constants"
	"skyward-va/horizon/internal/db/repositories"
	gormModels "skyward-va/horizon/internal/models/gorm"
)

const airportCacheTTL = 6 * time.Hour

// AirportLookupService resolves ICAO codes against the airports table
// with a read-through cache in front. Unknown codes are a nil result,
// not an error.
type AirportLookupService struct {
	repo  *repositories.AirportRepository
	cache common.CacheInterface
}

// NewAirportLookupService creates a new AirportLookupService
func NewAirportLookupService(repo *repositories.AirportRepository, cache common.CacheInterface) *AirportLookupService {
	return &AirportLookupService{
		repo:  repo,
		cache: cache,
	}
}

// ResolveAirport implements the AirportResolver contract.
func (s *AirportLookupService) ResolveAirport(ctx context.Context, icao string) (*gormModels.Airport, error) {
	code := strings.ToUpper(strings.TrimSpace(icao))
	if code == "" {
		return nil, nil
	}

	key := constants.CachePrefixAirport + code
	if cached, found := s.cache.Get(key); found {
		if airport, ok := cached.(*gormModels.Airport); ok {
			return airport, nil
		}
	}

	airport, err := s.repo.FindByICAO(ctx, code)
	if err != nil {
		return nil, err
	}
	if airport != nil {
		s.cache.Set(key, airport, airportCacheTTL)
	}
	return airport, nil
}
