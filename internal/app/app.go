package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linknest/linknest/internal/config"
	"github.com/linknest/linknest/internal/httpserver"
	"github.com/linknest/linknest/internal/httpserver/deps"
	"github.com/linknest/linknest/internal/logger"
	"github.com/linknest/linknest/internal/mutate"
	"github.com/linknest/linknest/internal/portable"
	"github.com/linknest/linknest/internal/prefs"
	"github.com/linknest/linknest/internal/scheduler"
	"github.com/linknest/linknest/internal/sources/seedfile"
	"github.com/linknest/linknest/internal/state"
	boltstore "github.com/linknest/linknest/internal/store/bolt"
	"github.com/linknest/linknest/internal/version"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	store   *boltstore.Store
	state   *state.State
	sweeper *scheduler.OrphanSweeper
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open the embedded database early - fail fast if unavailable
	loggerClient.Infof("Opening database at %s", cfg.DBPath)
	store, err := boltstore.Open(cfg.DBPath)
	if err != nil {
		loggerClient.Errorf("Failed to open database: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Database initialized successfully")

	// Build the state cache: seed default categories if empty, then load
	st := state.New(store, cfg.PerPage)
	if err := st.Init(context.Background()); err != nil {
		loggerClient.Errorf("Failed to initialize state: %v", err)
		os.Exit(1)
	}
	snap := st.Snapshot()
	loggerClient.Info("state loaded",
		logger.Int("items", len(snap.Items)),
		logger.Int("categories", len(snap.Categories)))

	// Apply the seed file once, insert-only (if configured)
	if cfg.SeedFile != "" {
		if err := seedfile.Apply(context.Background(), cfg.SeedFile, store, loggerClient); err != nil {
			loggerClient.Warn("failed to apply seed file", logger.Error(err))
		} else if err := st.Refresh(context.Background()); err != nil {
			loggerClient.Warn("failed to refresh after seeding", logger.Error(err))
		}
	}

	mutations := mutate.New(store, st, loggerClient)
	portableSvc := portable.New(store, st, loggerClient)
	prefStore := prefs.New(cfg.PrefsFile)
	sweeper := scheduler.NewOrphanSweeper(store, loggerClient, cfg.SweepInterval)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		Store:     store,
		State:     st,
		Mutations: mutations,
		Portable:  portableSvc,
		Prefs:     prefStore,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  server,
		store:   store,
		state:   st,
		sweeper: sweeper,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting LinkNest v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("LinkNest %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the orphan blob sweeper
	if err := a.sweeper.Start(ctx); err != nil {
		return fmt.Errorf("failed to start orphan sweeper: %w", err)
	}
	a.logger.Info("orphan sweeper started",
		logger.Duration("interval", a.cfg.SweepInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.store.Close(); err != nil {
		a.logger.Warnf("failed to close database: %v", err)
	} else {
		a.logger.Info("✅ Database closed cleanly")
	}

	a.logger.Info("✅ LinkNest stopped cleanly")
	return nil
}
