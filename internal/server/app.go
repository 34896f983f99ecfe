// Package server initializes and runs the backend: it selects a storage
// backend, wires the services and the HTTP surface, and handles graceful
// shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/ctibook/internal/logging"
	"github.com/dmitrijs2005/ctibook/internal/server/config"
	"github.com/dmitrijs2005/ctibook/internal/server/httpapi"
	"github.com/dmitrijs2005/ctibook/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/ctibook/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// App owns the process lifecycle of the backend.
type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.Manager
	api    *httpapi.Server
}

// NewApp builds the application from config. An empty DatabaseDSN selects
// the in-memory store; anything else opens PostgreSQL and runs migrations.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var (
		repos repomanager.Manager
		err   error
	)
	if cfg.DatabaseDSN == "" {
		repos = repomanager.NewMemoryManager()
		logger.Info(ctx, "using in-memory store")
	} else {
		repos, err = repomanager.NewPostgresManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	secret := []byte(cfg.SecretKey)
	api := httpapi.NewServer(
		logger,
		services.NewUserService(repos.Users(), secret, cfg.TokenValidityDuration),
		services.NewActorService(repos.Actors()),
		services.NewIncidentService(repos.Incidents()),
		secret,
	)

	return &App{config: cfg, logger: logger, repos: repos, api: api}, nil
}

// Run serves HTTP until the context is cancelled or a signal arrives,
// then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	defer app.repos.Close()

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.api.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "listening", "addr", app.config.EndpointAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
