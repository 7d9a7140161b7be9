// Package server initializes and runs the gophauth application.
// It validates configuration, connects the user store (PostgreSQL or in-memory),
// applies migrations, handles graceful shutdown and starts the HTTP session API
// and the gRPC health service.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/httpapi"
	"github.com/dmitrijs2005/gophauth/internal/server/metrics"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

const startupTimeout = 10 * time.Second

// seams for tests
var (
	openDB               = sql.Open
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
	newLogger            = func() logging.Logger { return logging.NewJSONLogger(os.Stdout, slog.LevelInfo) }
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.HTTPServer
	grpcServer *gs.GRPCServer
}

// NewApp wires every component. A store that cannot be reached or migrated
// is reported as an error; the caller is expected to exit.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger()

	var (
		db   *sql.DB
		repo users.Repository
	)

	if c.DatabaseDSN != "" {
		var err error
		db, repo, err = openStore(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "Connected to PostgreSQL user store")
	} else {
		logger.Warn(ctx, "No database DSN configured, using in-memory user store; users are lost on restart")
		repo = users.NewInMemoryRepository()
	}

	hasher := auth.NewBcryptHasher(c.BcryptCost)
	tokens := auth.NewTokenService([]byte(c.SecretKey), c.SessionTokenTTL)
	us := services.NewUserService(repo, hasher)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(reg)

	// a nil *sql.DB must not become a non-nil Pinger
	var (
		httpPinger httpapi.Pinger
		grpcPinger gs.Pinger
	)
	if db != nil {
		httpPinger, grpcPinger = db, db
	}

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		httpServer: httpapi.NewHTTPServer(c, logger, us, tokens, m, httpPinger),
		grpcServer: gs.NewGRPCServer(c.EndpointAddrGRPC, logger, grpcPinger),
	}, nil
}

func openStore(ctx context.Context, dsn string) (*sql.DB, users.Repository, error) {
	db, err := openDB(repomanager.DriverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}

	return db, rm.Users(db), nil
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
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server error", "error", err)
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpcServer.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server error", "error", err)
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or one of
// the servers fails. Either server failing stops the other.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close error", "error", err)
		}
	}

	app.logger.Info(context.Background(), "App stopped")
}
