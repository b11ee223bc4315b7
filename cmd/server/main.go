// Package main is the entry point for the device gateway server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"face-gateway/internal/config"
	"face-gateway/internal/db"
	"face-gateway/internal/device"
	"face-gateway/internal/esx"
	"face-gateway/internal/httpx"
	"face-gateway/internal/httpx/kit"
	"face-gateway/internal/ingest"
	"face-gateway/internal/logx"
	"face-gateway/internal/mqx"
	"face-gateway/internal/redisx"
	"face-gateway/internal/server"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	// Init global logger first
	logx.Init(cfg.Log.Level, cfg.Log.Format)

	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("device", cfg.Device.BaseURL),
		zap.Bool("device.simulated", cfg.Device.Simulated),
		zap.String("log.level", cfg.Log.Level),
		zap.String("log.format", cfg.Log.Format),
	)

	// Open DB (Ent + pgx)
	client, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Error("open db error", "err", err)
		panic(err)
	}
	defer closeDB()

	// Auto-migrate
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		mainLogger.Sugar().Error("auto migrate error", "err", err)
		panic(err)
	}

	// Optional deps: Redis, MQ, ES
	rdb, rclose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else {
		defer rclose()
	}

	var publisher mqx.Publisher
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, "events"); err != nil {
			mainLogger.Sugar().Warn("mq init failed", "err", err)
		} else {
			publisher = pub
			defer func() { _ = pub.Close() }()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		defer esClose()
	}

	// Appliance transport is chosen exactly once, from configuration. Every
	// caller downstream gets the same transport: there is no per-request
	// simulated/real branching anywhere else.
	var transport device.Transport
	if cfg.Device.Simulated {
		mainLogger.Warn("running with SIMULATED device transport; no appliance will be contacted")
		transport = device.NewSimulatedTransport()
	} else {
		transport = device.NewRealTransport(cfg.Device.BaseURL, cfg.Device.Username, cfg.Device.Password)
	}
	gateway := device.NewGateway(transport)

	guard := ingest.NewGuard(
		time.Duration(cfg.Dedup.CacheWindowSec)*time.Second,
		cfg.Dedup.CacheMaxEntries,
	)
	ingestSvc := ingest.NewService(client, guard, ingest.Options{
		FacilityID:  cfg.Device.FacilityID,
		StoreWindow: time.Duration(cfg.Dedup.StoreWindowMin) * time.Minute,
		Publisher:   publisher,
		Search:      esClient,
		SearchIndex: httpx.ReadingsIndex,
	})

	// Fiber app and routes
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	httpx.Register(app, client, &httpx.Providers{
		Config:  cfg,
		Gateway: gateway,
		Ingest:  ingestSvc,
		ES:      esClient,
		RDB:     rdb,
	})

	// Watch for dynamic config changes (Apollo)
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		if changed["dedup.cache_window_sec"] && newCfg.Dedup.CacheWindowSec <= 0 {
			return fmt.Errorf("DEDUP_CACHE_WINDOW_SEC must be positive")
		}
		if changed["dedup.store_window_min"] && newCfg.Dedup.StoreWindowMin <= 0 {
			return fmt.Errorf("DEDUP_STORE_WINDOW_MIN must be positive")
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["device.base_url"] || changed["device.simulated"] {
			mainLogger.Warn("device transport config changed; restart required to take effect",
				zap.String("base_url", newCfg.Device.BaseURL),
				zap.Bool("simulated", newCfg.Device.Simulated),
			)
		}
		if changed["dedup.cache_window_sec"] || changed["dedup.store_window_min"] {
			mainLogger.Warn("dedup windows changed; restart required to take effect",
				zap.Int("cache_window_sec", newCfg.Dedup.CacheWindowSec),
				zap.Int("store_window_min", newCfg.Dedup.StoreWindowMin),
			)
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	_ = app.Shutdown()
}
