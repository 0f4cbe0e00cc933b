// Package server initializes and runs the main application server.
// It selects the storage backend, wires services to repositories, and starts
// the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/innerflame/backend/internal/logging"
	"github.com/innerflame/backend/internal/server/config"
	"github.com/innerflame/backend/internal/server/httpapi"
	"github.com/innerflame/backend/internal/server/repositories/repomanager"
	"github.com/innerflame/backend/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, rm := selectBackend(context.Background(), c, logger)

	us := services.NewUserService(db, rm, c)
	ps := services.NewProgressService(db, rm)
	rs := services.NewReflectionService(db, rm)

	srv := httpapi.NewServer(c.EndpointAddr, logger, us, ps, rs)

	return &App{config: c, logger: logger, server: srv}, nil
}

// selectBackend picks the durable backend when a DSN is configured and
// reachable, and otherwise falls back to the in-memory backend so the
// system stays operable. The choice is final for the process lifetime:
// a mid-flight store failure is reported, never silently switched.
func selectBackend(ctx context.Context, c *config.Config, logger logging.Logger) (*sql.DB, repomanager.RepositoryManager) {

	if c.DatabaseDSN == "" {
		logger.Info(ctx, "no database configured, using in-memory storage")
		return nil, repomanager.NewMemoryRepositoryManager()
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err == nil {
		err = db.PingContext(ctx)
	}
	if err == nil {
		rm := repomanager.NewPostgresRepositoryManager()
		if err = rm.RunMigrations(ctx, db); err == nil {
			logger.Info(ctx, "using postgres storage")
			return db, rm
		}
	}

	if db != nil {
		_ = db.Close()
	}
	logger.Warn(ctx, "storage unavailable, falling back to in-memory", "error", err.Error())
	return nil, repomanager.NewMemoryRepositoryManager()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
