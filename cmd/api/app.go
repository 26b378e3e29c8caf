package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	rediscache "github.com/srgjo27/hotel_inventory/internal/adapter/cache/redis"
	"github.com/srgjo27/hotel_inventory/internal/adapter/events/amqp"
	"github.com/srgjo27/hotel_inventory/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_inventory/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_inventory/internal/core/domain"
	"github.com/srgjo27/hotel_inventory/internal/core/ports"
	"github.com/srgjo27/hotel_inventory/internal/core/services"
	"github.com/srgjo27/hotel_inventory/internal/platform/config"
	"github.com/srgjo27/hotel_inventory/internal/platform/database"
	"github.com/srgjo27/hotel_inventory/internal/platform/logger"
)

type repositories struct {
	tx        ports.Transactor
	catalog   ports.CatalogRepository
	inventory ports.InventoryRepository
	bookings  ports.BookingRepository
	contracts ports.ContractRepository
}

type app struct {
	cfg *config.Config
	log *zap.Logger

	inventory    *services.InventoryService
	availability *services.AvailabilityService
	bookings     *services.BookingService
	stays        *services.StayService

	closers []func() error
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return log, nil
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}

	repos, err := a.openStore(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	var cache ports.AvailabilityCache
	if c := a.openCache(ctx); c != nil {
		cache = c
	}

	var publisher ports.EventPublisher
	if cfg.AMQPURL != "" {
		p, err := amqp.Dial(cfg.AMQPURL, cfg.AMQPExchange, log)
		if err != nil {
			a.Close()
			return nil, err
		}

		a.closers = append(a.closers, p.Close)
		publisher = p
	}

	pricing := domain.PricingPolicy{DefaultNightPrice: cfg.DefaultPrice}

	a.inventory = services.NewInventoryService(repos.tx, repos.catalog, repos.inventory, cache, publisher, log)
	a.availability = services.NewAvailabilityService(repos.catalog, repos.inventory, cache, pricing, log)
	a.bookings = services.NewBookingService(repos.tx, repos.catalog, repos.inventory, repos.bookings, repos.contracts, cache, publisher, pricing, log)
	a.stays = services.NewStayService(repos.tx, repos.bookings, repos.contracts, publisher, log)

	return a, nil
}

func (a *app) openStore(ctx context.Context) (*repositories, error) {
	if a.cfg.Store == config.StoreMemory {
		a.log.Warn("using in-memory store; data is lost on exit")

		store := memory.New()

		return &repositories{
			tx:        store,
			catalog:   store.Catalog(),
			inventory: store.Inventory(),
			bookings:  store.Bookings(),
			contracts: store.Contracts(),
		}, nil
	}

	db, err := database.NewPostgresDB(ctx, a.cfg.Database, a.log)
	if err != nil {
		return nil, err
	}

	a.closers = append(a.closers, db.Close)

	return postgresRepositories(db, a.cfg), nil
}

func postgresRepositories(db *sql.DB, cfg *config.Config) *repositories {
	return &repositories{
		tx:        postgres.NewTransactor(db, cfg.LockTimeout),
		catalog:   postgres.NewCatalogRepository(db),
		inventory: postgres.NewInventoryRepository(db),
		bookings:  postgres.NewBookingRepository(db),
		contracts: postgres.NewContractRepository(db),
	}
}

// openCache returns nil when the cache is disabled or unreachable; reads then go to the store.
func (a *app) openCache(ctx context.Context) *rediscache.AvailabilityCache {
	if !a.cfg.RedisEnabled {
		return nil
	}

	a.log.Info("connecting to redis", zap.String("addr", a.cfg.RedisAddr))

	client := goredis.NewClient(&goredis.Options{
		Addr: a.cfg.RedisAddr,
		DB:   0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		a.log.Warn("redis unavailable, availability cache disabled", zap.Error(err))
		client.Close()

		return nil
	}

	a.closers = append(a.closers, client.Close)

	return rediscache.NewAvailabilityCache(client, a.cfg.CacheTTL)
}

func (a *app) Close() error {
	var errs []error

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	_ = a.log.Sync()

	return errors.Join(errs...)
}
