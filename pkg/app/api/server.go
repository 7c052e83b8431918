// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apphttp "github.com/ecochain/ecochain-api/pkg/app/http"
	"github.com/ecochain/ecochain-api/pkg/auth"
	"github.com/ecochain/ecochain-api/pkg/config"
	"github.com/ecochain/ecochain-api/pkg/ecochain/service"
	"github.com/ecochain/ecochain-api/pkg/ecostore"
	"github.com/ecochain/ecochain-api/pkg/pgutil"
	"github.com/ecochain/ecochain-api/pkg/snapshot"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting EcoChain API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := s.openDB(ctx, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	store := ecostore.NewStore(db)

	snap := snapshot.New(store, snapshot.Config{
		Interval:     cfg.Snapshot.Interval,
		Timeout:      cfg.Snapshot.Timeout,
		ActiveWindow: cfg.Snapshot.ActiveWindow,
	}, logger)
	s.runInitialSnapshot(ctx, snap, logger)

	stopSnapshot := s.startPeriodicSnapshot(snap, logger)
	// Called explicitly after ServeAndWait for shutdown ordering; the defer is a safety net.
	defer stopSnapshot()

	ecoService := service.NewLog(service.NewService(store, logger), logger)

	router := s.setupRouter(ecoService, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before the deferred DB close kicks in.
	stopSnapshot()

	return err
}

func (s *Server) openDB(ctx context.Context, logger *zap.Logger) (*bun.DB, error) {
	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)
	return db, nil
}

func (s *Server) runInitialSnapshot(ctx context.Context, snap *snapshot.Snapshotter, logger *zap.Logger) {
	if !s.cfg.Snapshot.RunOnStartup {
		return
	}

	logger.Info("Running initial platform stats snapshot",
		zap.Duration("timeout", s.cfg.Snapshot.StartupTimeout),
	)

	startupCtx, cancel := context.WithTimeout(ctx, s.cfg.Snapshot.StartupTimeout)
	defer cancel()

	if _, err := snap.SnapshotNow(startupCtx); err != nil {
		logger.Warn("Initial snapshot failed (will retry periodically)", zap.Error(err))
		return
	}

	logger.Info("Initial platform stats snapshot completed")
}

func (s *Server) startPeriodicSnapshot(snap *snapshot.Snapshotter, logger *zap.Logger) func() {
	if s.cfg.Snapshot.Interval <= 0 {
		return func() {}
	}

	logger.Info("Starting periodic snapshot", zap.Duration("interval", s.cfg.Snapshot.Interval))
	snap.Start()

	return snap.Stop
}

func (s *Server) setupRouter(ecoService service.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Metrics.Enabled {
		r.Handle(s.cfg.Metrics.Path, promhttp.Handler())
		logger.Info("Metrics endpoint enabled", zap.String("path", s.cfg.Metrics.Path))
	}

	var mutating []func(http.Handler) http.Handler
	if s.cfg.Auth.Enabled {
		validator := auth.NewJWTValidator(s.cfg.Auth.JWKSURL, s.cfg.Auth.Issuer)
		mutating = append(mutating, auth.Middleware(validator, logger))
		logger.Info("JWT authentication enabled for mutating routes",
			zap.String("jwks_url", s.cfg.Auth.JWKSURL),
		)
	}

	service.RegisterRoutes(r, ecoService, logger, mutating...)

	return r
}
