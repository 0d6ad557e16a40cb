package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/sggtools/boapi/internal/bulletin"
	"github.com/sggtools/boapi/internal/config"
	"github.com/sggtools/boapi/internal/httpserver"
	"github.com/sggtools/boapi/internal/httpserver/deps"
	"github.com/sggtools/boapi/internal/index"
	"github.com/sggtools/boapi/internal/logger"
	"github.com/sggtools/boapi/internal/metrics"
	"github.com/sggtools/boapi/internal/pdftext"
	boredis "github.com/sggtools/boapi/internal/redis"
	"github.com/sggtools/boapi/internal/scheduler"
	"github.com/sggtools/boapi/internal/scraper"
	"github.com/sggtools/boapi/internal/sources/languages"
	redisstore "github.com/sggtools/boapi/internal/store/redis"
	"github.com/sggtools/boapi/internal/upstream"
	"github.com/sggtools/boapi/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.SnapshotReloader
}

func New() (*App, error) {
	cfg := config.Load()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	langSettings, err := languages.NewLoader(cfg.LanguagesFile).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load language settings: %w", err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	fetcher := bulletin.NewFetcher(
		scraper.New(cfg.ScraperBase, cfg.ScrapeTimeout),
		upstream.New(cfg.AjaxURL, cfg.ListingTimeout),
		cfg.Origin,
		langSettings,
		loggerClient,
		collector,
	)
	extractor := pdftext.New(cfg.PDFTextBase, cfg.ExtractTimeout)

	// Optional redis snapshot store. Failure to connect is non-fatal: the
	// live fetch path does not depend on it.
	var redisClient *goredis.Client
	var store *redisstore.Store
	if cfg.RedisEnabled() {
		redisClient, err = boredis.New(boredis.ConnectOptions{
			Addr:        cfg.RedisAddr,
			User:        cfg.RedisUser,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			DialTimeout: cfg.RedisDialTimeout,
			IOTimeout:   cfg.RedisIOTimeout,
			PoolSize:    cfg.RedisPoolSize,
		}, loggerClient)
		if err != nil {
			loggerClient.Warn("redis disabled for this run", logger.Error(err))
			redisClient = nil
		} else {
			store = redisstore.NewStore(redisClient)
		}
	}

	// Optional local snapshot pipeline.
	var memIndex *index.MemoryIndex
	var reloader *scheduler.SnapshotReloader
	var reloadTrigger chan struct{}
	if cfg.SnapshotFile != "" {
		memIndex = index.NewMemoryIndex()

		if store != nil {
			syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
			if err := syncer.Sync(context.Background()); err != nil {
				loggerClient.Warn("failed to sync snapshot from redis on startup",
					logger.Error(err))
			}
		}

		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewSnapshotReloader(
			cfg.SnapshotFile,
			cfg.Origin,
			store,
			memIndex,
			loggerClient,
			cfg.SnapshotInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("snapshot file not configured, snapshot endpoints disabled")
	}

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		Fetcher:        fetcher,
		Extractor:      extractor,
		MemoryIndex:    memIndex,
		RedisClient:    redisClient,
		ReloadTrigger:  reloadTrigger,
		ReloadToken:    cfg.ReloadToken,
		TrustProxy:     cfg.TrustProxy,
		TextRateBurst:  cfg.TextRateBurst,
		TextRatePerMin: cfg.TextRatePerMin,
		Gatherer:       registry,
	}

	server := httpserver.New(cfg, loggerClient, collector, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		reloader:    reloader,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("Starting boapi %s on %s (commit=%s, built=%s, go=%s)",
		version.Version, a.cfg.ListenPort, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.reloader != nil {
		a.reloader.Start(ctx)
		a.logger.Info("snapshot reloader started",
			logger.Duration("interval", a.cfg.SnapshotInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		}
	}

	a.logger.Info("boapi stopped cleanly")
	return nil
}
