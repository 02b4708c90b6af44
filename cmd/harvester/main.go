// Package main wires together the harvesting service binary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/talentboard/harvester/internal/api"
	"github.com/talentboard/harvester/internal/config"
	"github.com/talentboard/harvester/internal/extract"
	"github.com/talentboard/harvester/internal/fetch"
	"github.com/talentboard/harvester/internal/logging"
	"github.com/talentboard/harvester/internal/metrics"
	"github.com/talentboard/harvester/internal/models"
	"github.com/talentboard/harvester/internal/publish"
	"github.com/talentboard/harvester/internal/ratelimit"
	"github.com/talentboard/harvester/internal/scrape"
	"github.com/talentboard/harvester/internal/snapshot"
	"github.com/talentboard/harvester/internal/store"
	"github.com/talentboard/harvester/internal/store/postgres"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()
	zap.ReplaceGlobals(logger)
	metrics.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := ratelimit.New(ratelimit.Config{
		DefaultRPS:   cfg.Crawler.RPS,
		DefaultBurst: cfg.Crawler.Burst,
	})
	fetcher := fetch.NewClient(fetch.Config{
		UserAgent: cfg.Crawler.UserAgent,
		Timeout:   cfg.RequestTimeout(),
	}, limiter)

	var renderer fetch.Fetcher
	var detector *fetch.Detector
	if cfg.Headless.Enabled {
		r, err := fetch.NewRenderer(fetch.HeadlessConfig{
			UserAgent:         cfg.Crawler.UserAgent,
			NavigationTimeout: time.Duration(cfg.Headless.NavTimeoutSec) * time.Second,
			MaxParallel:       cfg.Headless.MaxParallel,
		})
		if err != nil {
			logger.Warn("headless renderer init failed", zap.Error(err))
		} else {
			defer r.Close()
			renderer = r
			detector = fetch.NewDetector(cfg.Headless.BodyThreshold)
		}
	}

	gateway, err := buildGateway(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("storage gateway init failed", zap.Error(err))
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			logger.Warn("gateway close failed", zap.Error(err))
		}
	}()

	snapshots, err := buildSnapshots(ctx, cfg)
	if err != nil {
		logger.Fatal("snapshot store init failed", zap.Error(err))
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			logger.Warn("snapshot store close failed", zap.Error(err))
		}
	}()

	var publisher publish.Publisher
	if cfg.PubSub.Enabled {
		p, err := publish.NewPubSub(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicName)
		if err != nil {
			logger.Fatal("pubsub publisher init failed", zap.Error(err))
		}
		defer func() {
			if err := p.Close(); err != nil {
				logger.Warn("publisher close failed", zap.Error(err))
			}
		}()
		publisher = p
	}

	baseURL := cfg.Source.BaseURL
	registry := scrape.NewRegistry(func() *scrape.Orchestrator {
		return scrape.New(scrape.Deps{
			Fetcher:   fetcher,
			Renderer:  renderer,
			Detector:  detector,
			Gateway:   gateway,
			Snapshots: snapshots,
			Publisher: publisher,
			Extractors: func(ct models.ContentType) (extract.Extractor, bool) {
				return extract.For(ct, baseURL)
			},
			Logger: logger.Named("scrape"),
		})
	})

	apiServer := api.NewServer(registry, logger.Named("api"), api.Options{
		APIKey:         apiKey(cfg),
		RequestTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	registry.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func buildGateway(ctx context.Context, cfg config.Config, logger *zap.Logger) (store.Gateway, error) {
	if !cfg.DB.Enabled {
		logger.Info("database disabled; using in-memory storage")
		return store.NewMemoryGateway(), nil
	}
	return postgres.New(ctx, cfg.DB.DSN, logger.Named("postgres"))
}

func buildSnapshots(ctx context.Context, cfg config.Config) (snapshot.Store, error) {
	switch cfg.Snapshot.Provider {
	case "local":
		return snapshot.NewLocal(cfg.Snapshot.Dir)
	case "gcs":
		return snapshot.NewGCS(ctx, cfg.Snapshot.GCSBucket)
	default:
		return snapshot.NoOp{}, nil
	}
}

func apiKey(cfg config.Config) string {
	if !cfg.Auth.Enabled {
		return ""
	}
	return cfg.Auth.APIKey
}
