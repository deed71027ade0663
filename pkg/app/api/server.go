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
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/mentor-api/pkg/app/errors"
	apphttp "github.com/chainsafe/mentor-api/pkg/app/http"
	"github.com/chainsafe/mentor-api/pkg/config"
	"github.com/chainsafe/mentor-api/pkg/migrations/mentordb"
	"github.com/chainsafe/mentor-api/pkg/pgutil"
	mghelper "github.com/chainsafe/mentor-api/pkg/pgutil/migrations"
	pointservice "github.com/chainsafe/mentor-api/pkg/points/service"
	"github.com/chainsafe/mentor-api/pkg/pointstore"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run connects to the database, applies the schema when configured to and serves the API.
// It blocks until an OS shutdown signal is received or the HTTP server fails.
// Any startup failure is returned before the listener is opened.
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

	logger.Info("Starting Mentor API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.Info("Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)

	if cfg.Database.AutoMigrate {
		if err := s.initSchema(ctx, db, logger); err != nil {
			return err
		}
	}

	svc := pointservice.NewService(pointstore.NewStore(db), logger)
	svc = pointservice.NewMetrics(pointservice.NewLog(svc, logger))

	router := s.setupRouter(svc, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) initSchema(ctx context.Context, db *bun.DB, logger *zap.Logger) error {
	migrator := migrate.NewMigrator(db, mentordb.Migrations)

	group, err := mghelper.Migrate(ctx, migrator)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	if group.IsZero() {
		logger.Info("Database schema is up to date")
		return nil
	}
	logger.Info("Database schema migrated", zap.String("group", group.String()))
	return nil
}

func (s *Server) setupRouter(svc pointservice.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(apphttp.Metrics)
	if limiter := apphttp.NewRateLimiter(s.cfg.RateLimit); limiter != nil {
		logger.Info("Rate limiting enabled",
			zap.Int("requests_per_minute", s.cfg.RateLimit.RequestsPerMinute),
		)
		r.Use(limiter.Middleware)
	}
	if s.cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle(s.cfg.Monitoring.MetricsPath, promhttp.Handler())
	}

	pointservice.RegisterRoutes(r, svc, logger)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		apphttp.DefaultErrorHandler(w, apperrors.ResourceNotFoundError(nil, "Not Found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		apphttp.DefaultErrorHandler(w, apperrors.NotSupportedError(nil, "Method Not Allowed"))
	})

	return r
}
