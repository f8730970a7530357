package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/RyanLee0396/SVDiscordBot/config"
	_ "github.com/RyanLee0396/SVDiscordBot/docs"
	"github.com/RyanLee0396/SVDiscordBot/internal/interaction"
	"github.com/RyanLee0396/SVDiscordBot/internal/metrics"
	"github.com/RyanLee0396/SVDiscordBot/internal/middleware"
	"github.com/RyanLee0396/SVDiscordBot/internal/scrim"
	"github.com/RyanLee0396/SVDiscordBot/internal/storage"
	"github.com/RyanLee0396/SVDiscordBot/pkg/logger"
	"github.com/RyanLee0396/SVDiscordBot/routes"
)

// @title Scrim Registry REST API
// @version 1.0
// @description Capacity-bounded scrim slot registration for teams.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	zlog, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := scrim.Migrate(config.DB); err != nil {
		zlog.Fatal("AutoMigrate failed", zap.Error(err))
	}
	zlog.Info("AutoMigrate successful")

	metrics.Register(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	window, err := scrim.NewWindow(cfg.Scrim.Timezone, cfg.Scrim.WindowDays, cfg.Scrim.PeriodLayout)
	if err != nil {
		zlog.Fatal("invalid signup window", zap.Error(err))
	}
	transactor := storage.NewTransactor(config.DB, storage.Policy{
		MaxAttempts:     cfg.Tx.MaxAttempts,
		InitialInterval: cfg.Tx.InitialInterval,
		MaxInterval:     cfg.Tx.MaxInterval,
	}, zlog.Named("storage"))
	svc := scrim.NewService(scrim.NewScrimRepository(transactor),
		scrim.WithSettings(scrim.Settings{
			SlotCapacity:   cfg.Scrim.SlotCapacity,
			MaxMembers:     cfg.Scrim.MaxMembers,
			TeamNameMaxLen: cfg.Scrim.TeamNameMaxLen,
		}),
		scrim.WithWindow(window),
		scrim.WithLogger(zlog.Named("scrim")),
	)

	var store interaction.Store
	switch cfg.Interaction.Store {
	case "redis":
		rdb := config.NewRedisClient(*cfg)
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Fatal("redis ping failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		store = interaction.NewRedisStore(rdb, interaction.WithKeyPrefix(cfg.Redis.KeyPrefix))
	default:
		mem := interaction.NewMemoryStore()
		defer mem.Close()
		store = mem
	}
	coord := interaction.NewCoordinator(svc, store, cfg.Interaction.TTL, zlog.Named("interaction"))

	var limiter *middleware.LimiterStore
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewLimiterStore(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		limiter.StartJanitor(ctx)
	}

	r := routes.SetupRoutes(routes.Dependencies{
		Config:       cfg,
		Log:          zlog.Named("http"),
		DB:           config.DB,
		Scrim:        svc,
		Interactions: coord,
		Limiter:      limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("Starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
