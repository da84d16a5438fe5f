package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"stellar-cargo/internal/auth"
	"stellar-cargo/internal/export"
	"stellar-cargo/internal/metrics"
	"stellar-cargo/internal/models"
	"stellar-cargo/internal/store"
)

// HealthChecker reports backend health for /health. database.Service
// satisfies it.
type HealthChecker interface {
	Health() map[string]string
}

type Config struct {
	Store   *store.Store
	Auth    *auth.Service
	Users   []models.User
	Health  HealthChecker
	Archive export.Archive
	Metrics *metrics.Metrics
	Logger  *zap.Logger

	RateLimit rate.Limit
	RateBurst int
	Now       func() time.Time
}

type Server struct {
	store   *store.Store
	auth    *auth.Service
	users   []models.User
	health  HealthChecker
	archive export.Archive
	metrics *metrics.Metrics
	log     *zap.Logger
	limiter *visitorLimiter
	now     func() time.Time
}

func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 20
	}
	return &Server{
		store:   cfg.Store,
		auth:    cfg.Auth,
		users:   cfg.Users,
		health:  cfg.Health,
		archive: cfg.Archive,
		metrics: cfg.Metrics,
		log:     cfg.Logger,
		limiter: newVisitorLimiter(cfg.RateLimit, cfg.RateBurst),
		now:     cfg.Now,
	}
}

// NewServer wires the router into an http.Server listening on addr.
func NewServer(addr string, cfg Config) *http.Server {
	s := New(cfg)
	return &http.Server{
		Addr:         addr,
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
