package dependency

import (
	"context"

	"github.com/gobid/auctionhouse/internal/auction"
	"github.com/gobid/auctionhouse/internal/cache"
	"github.com/gobid/auctionhouse/internal/handlers"
	"github.com/gobid/auctionhouse/internal/identity"
	"github.com/gobid/auctionhouse/internal/notify"
	"github.com/gobid/auctionhouse/internal/profile"
	"github.com/gobid/auctionhouse/internal/store"
	"github.com/gobid/auctionhouse/pkg/logger"
)

// Dependencies holds all the intialized instances required by the application.
type Dependencies struct {
	Store          *store.PGStore
	Cache          cache.Cacher
	Dispatcher     *notify.Dispatcher
	Verifier       identity.Verifier
	AuctionService auction.Servicer
	AuctionHandler *handlers.AuctionHandler
	Logger         *logger.Logger
}

// NewDependencies connects to the store and cache, and wires up all services.
func NewDependencies(ctx context.Context, dbDsn string, log *logger.Logger) (*Dependencies, error) {
	pg, err := store.NewPGStore(ctx, dbDsn, log)
	if err != nil {
		log.Errorw("[DB] connection failed", "error", err)
		return nil, err
	}

	redisCache, err := cache.NewRedisClient(ctx)
	if err != nil {
		log.Errorw("[Cache] failed to initialize", "error", err)
		pg.Close()
		return nil, err
	}
	log.Info("[Cache] connected")

	verifier, err := identity.NewManager()
	if err != nil {
		log.Errorw("[Identity] failed to initialize", "error", err)
		pg.Close()
		_ = redisCache.Close()
		return nil, err
	}

	resolver := profile.NewResolver(pg, redisCache, log)
	dispatcher := notify.NewDispatcher(redisCache, log)

	auctionService, err := auction.NewService(pg, resolver, dispatcher, auction.SystemClock(), log)
	if err != nil {
		log.Errorw("[Service] failed to initialize", "error", err)
		return nil, err
	}

	auctionHandler, err := handlers.NewAuctionHandler(auctionService)
	if err != nil {
		log.Errorw("[Auction Handler] failed to initialize", "error", err)
		return nil, err
	}

	return &Dependencies{
		Store:          pg,
		Cache:          redisCache,
		Dispatcher:     dispatcher,
		Verifier:       verifier,
		AuctionService: auctionService,
		AuctionHandler: auctionHandler,
		Logger:         log,
	}, nil
}

// Close releases everything in reverse wiring order. The dispatcher drains
// its queue before the cache connection goes away.
func (d *Dependencies) Close() {
	if d.Dispatcher != nil {
		d.Dispatcher.Close()
	}
	if d.Cache != nil {
		_ = d.Cache.Close()
	}
	if d.Store != nil {
		d.Store.Close()
	}
}
