package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mmynk/ecotracker/internal/auth"
	"github.com/mmynk/ecotracker/internal/config"
	"github.com/mmynk/ecotracker/internal/metrics"
	"github.com/mmynk/ecotracker/internal/middleware"
	"github.com/mmynk/ecotracker/internal/server"
	"github.com/mmynk/ecotracker/internal/storage"
	"github.com/mmynk/ecotracker/internal/wastelog"
	"github.com/mmynk/ecotracker/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store, where, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Storage initialized", "driver", cfg.StoreDriver, "location", where)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	repo := storage.NewRepository(store, storage.WithCorruptHook(m.CorruptState))
	credentials := auth.NewCredentialStore(repo)
	if profile, err := credentials.RestoreSession(ctx); err != nil {
		logger.Warn("Failed to restore session", "error", err)
	} else if profile != nil {
		logger.Info("Session restored", "user_id", profile.ID)
	}

	srv := server.New(server.Deps{
		Authenticator: credentials,
		Log:           wastelog.New(repo, wastelog.WithLocation(loc)),
		JWT:           auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL),
		Limiter:       middleware.NewRateLimiter(cfg.LoginRatePerSecond, cfg.LoginBurst).TrustProxies(cfg.TrustedProxies...),
		Metrics:       m,
		Logger:        logger,
		StaticDir:     cfg.StaticDir,
		Ping:          pingFunc(store),
	})
	if cfg.StaticDir != "" {
		logger.Info("Serving static files", "path", cfg.StaticDir)
	}

	return srv.Run(ctx, cfg.HTTPAddr)
}
