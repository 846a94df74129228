package api

import (
	"time"

	"github.com/redis/go-redis/v9"

	"skyward-va/horizon/internal/common"
	"skyward-va/horizon/internal/db"
	"skyward-va/horizon/internal/db/repositories"
	"skyward-va/horizon/internal/metrics"
	"skyward-va/horizon/internal/services"
)

type Repositories struct {
	Reports          *repositories.ReportRepository
	Pilots           *repositories.PilotRepository
	Propagation      *repositories.PropagationRepository
	Ranks            *repositories.RankRepository
	Activities       *repositories.ActivityRepository
	ActivityProgress *repositories.ActivityProgressRepository
	Tours            *repositories.TourRepository
	TourProgress     *repositories.TourProgressRepository
	Awards           *repositories.AwardRepository
	Airports         *repositories.AirportRepository
	Bids             *repositories.BidRepository
}

type Services struct {
	Cache      common.CacheInterface
	Stream     *common.NotificationStreamService
	Notifier   services.Notifier
	Airports   *services.AirportLookupService
	Intake     *services.IntakeService
	Approval   *services.ApprovalService
	Credits    *services.CreditService
	Activities *services.ActivityService
	Tours      *services.TourService
	Registry   *services.FlightRegistryService
	Pilots     *services.PilotService
	Bids       *services.BidService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services off the global DB
// handles and the shared Redis client.
func InitDependencies(metricsReg *metrics.MetricsRegistry, redisClient *redis.Client) (*Dependencies, error) {

	repos := &Repositories{
		Reports:          repositories.NewReportRepository(db.DB),
		Pilots:           repositories.NewPilotRepository(db.DB),
		Propagation:      repositories.NewPropagationRepository(db.DB),
		Ranks:            repositories.NewRankRepository(db.PgDB),
		Activities:       repositories.NewActivityRepository(db.PgDB),
		ActivityProgress: repositories.NewActivityProgressRepository(db.PgDB),
		Tours:            repositories.NewTourRepository(db.PgDB),
		TourProgress:     repositories.NewTourProgressRepository(db.PgDB),
		Awards:           repositories.NewAwardRepository(db.PgDB),
		Airports:         repositories.NewAirportRepository(db.PgDB),
		Bids:             repositories.NewBidRepository(db.PgDB),
	}

	cacheSvc := common.NewCacheService(3600, 600)

	var notifier services.Notifier = services.NoopNotifier{}
	var stream *common.NotificationStreamService
	if redisClient != nil {
		stream = common.NewNotificationStreamService(redisClient)
		notifier = services.NewNotificationService(stream)
	}

	airportSvc := services.NewAirportLookupService(repos.Airports, cacheSvc)
	creditSvc := services.NewCreditService(repos.Pilots, metricsReg)
	statsSvc := services.NewStatsService(repos.Pilots)
	rankSvc := services.NewRankService(repos.Pilots, services.NewCachedRankLadder(repos.Ranks, cacheSvc), notifier)
	activitySvc := services.NewActivityService(repos.Activities, repos.ActivityProgress, repos.Awards, creditSvc, notifier)
	tourSvc := services.NewTourService(repos.Tours, repos.TourProgress, repos.Awards, creditSvc, notifier)

	var flightStore services.LiveFlightStore = common.NewMemoryFlightStore(time.Minute)
	if redisClient != nil {
		flightStore = common.NewRedisFlightStore(redisClient)
	}
	registrySvc := services.NewFlightRegistryService(flightStore, metricsReg)

	svcs := &Services{
		Cache:      cacheSvc,
		Stream:     stream,
		Notifier:   notifier,
		Airports:   airportSvc,
		Intake:     services.NewIntakeService(repos.Reports, repos.Pilots, repos.Ranks, airportSvc, metricsReg),
		Approval:   services.NewApprovalService(repos.Reports, repos.Propagation, statsSvc, rankSvc, creditSvc, activitySvc, tourSvc, notifier, metricsReg),
		Credits:    creditSvc,
		Activities: activitySvc,
		Tours:      tourSvc,
		Registry:   registrySvc,
		Pilots:     services.NewPilotService(repos.Pilots, repos.Reports, repos.Awards, airportSvc, creditSvc, registrySvc),
		Bids:       services.NewBidService(repos.Bids, airportSvc),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
