package main

import (
	"context"
	"fmt"

	"github.com/mmynk/ecotracker/internal/config"
	"github.com/mmynk/ecotracker/internal/storage"
	"github.com/mmynk/ecotracker/internal/storage/memory"
	"github.com/mmynk/ecotracker/internal/storage/postgres"
	"github.com/mmynk/ecotracker/internal/storage/redis"
	"github.com/mmynk/ecotracker/internal/storage/sqlite"
)

// openStore opens the backend selected by cfg.StoreDriver and returns a
// description for the startup log.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, string, error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		s, err := sqlite.New(cfg.DBPath)
		return s, cfg.DBPath, err
	case config.DriverPostgres:
		s, err := postgres.Open(ctx, cfg.PostgresDSN)
		return s, "postgres", err
	case config.DriverRedis:
		s, err := redis.Open(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return s, cfg.RedisAddr, err
	case config.DriverMemory:
		return memory.New(), "in-memory", nil
	default:
		return nil, "", fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// pingFunc returns the store's health check, or nil if it has none.
func pingFunc(s storage.Store) func(context.Context) error {
	if p, ok := s.(storage.Pinger); ok {
		return p.Ping
	}
	return nil
}
