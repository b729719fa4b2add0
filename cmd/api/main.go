package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mem "pet-care-scheduler/internal/adapters/storage/memory"
	pg "pet-care-scheduler/internal/adapters/storage/postgres"
	rdb "pet-care-scheduler/internal/adapters/storage/redis"
	"pet-care-scheduler/internal/config"
	"pet-care-scheduler/internal/platform/logger"
	"pet-care-scheduler/internal/ports/storage"
	"pet-care-scheduler/internal/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Pet Care Scheduler API
// @version 1.0
// @description Reservas, calendario y avisos por sesión. Cada pestaña envía su id en X-Session-ID.
// @BasePath /
func main() {
	if err := config.LoadDotEnv(); err != nil {
		logger.NewFromEnv().Warn("failed to load .env", map[string]any{"error": err})
	}
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid APP_TIMEZONE", map[string]any{"timezone": cfg.Timezone, "error": err})
		os.Exit(1)
	}

	ctx := context.Background()

	kv, closer, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("failed to open session store", map[string]any{"backend": cfg.Backend(), "error": err})
		os.Exit(1)
	}
	defer closer.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := router.NewRouter(router.Options{
		Store:    kv,
		Logger:   log,
		Registry: reg,
		Location: loc,
		LeadTime: cfg.LeadTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]any{
			"addr":     srv.Addr,
			"env":      cfg.Env,
			"backend":  cfg.Backend(),
			"timezone": loc.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err})
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	log.Info("shutting down", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", map[string]any{"error": err})
	}
}

// openStore abre el backend de sesiones configurado. memoria y redis vencen
// las sesiones inactivas tras SESSION_TTL.
func openStore(ctx context.Context, cfg *config.Config) (storage.KV, io.Closer, error) {
	switch cfg.Backend() {
	case config.BackendRedis:
		client, err := rdb.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return rdb.NewKV(client, rdb.Options{TTL: cfg.SessionTTL}), client, nil

	case config.BackendPostgres:
		db, err := pg.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg.NewKV(db), db, nil

	default:
		return mem.NewKVWithOptions(mem.Options{TTL: cfg.SessionTTL}), nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
