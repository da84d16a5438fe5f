package server

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"stellar-cargo/internal/auth"
)

// RegisterRoutes sets up the router with all endpoints.
func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if s.metrics != nil {
		r.Use(s.metrics.Instrument)
	}
	r.Use(s.rateLimitMiddleware)

	r.Get("/health", s.healthHandler)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	r.Post("/auth/login", s.loginHandler)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Post("/auth/logout", s.logoutHandler)
		r.Get("/auth/session", s.sessionHandler)
		r.Get("/nav", s.navHandler)
		r.With(requireCapability(auth.CapViewDashboard)).Get("/dashboard", s.dashboardHandler)

		r.Group(func(r chi.Router) {
			r.Use(requireCapability(auth.CapManageInventory))

			r.Route("/cargo", func(r chi.Router) {
				r.Get("/", s.listCargoHandler)
				r.Post("/", s.createCargoHandler)
				r.Get("/{id}", s.getCargoHandler)
				r.Patch("/{id}", s.updateCargoHandler)
				r.Delete("/{id}", s.deleteCargoHandler)
			})
			r.Route("/astronauts", func(r chi.Router) {
				r.Get("/", s.listAstronautsHandler)
				r.Post("/", s.createAstronautHandler)
				r.Get("/{id}", s.getAstronautHandler)
				r.Patch("/{id}", s.updateAstronautHandler)
				r.Delete("/{id}", s.deleteAstronautHandler)
			})
			r.Route("/modules", func(r chi.Router) {
				r.Get("/", s.listModulesHandler)
				r.Post("/", s.createModuleHandler)
				r.Get("/{id}", s.getModuleHandler)
				r.Patch("/{id}", s.updateModuleHandler)
				r.Delete("/{id}", s.deleteModuleHandler)
			})
			r.Route("/missions", func(r chi.Router) {
				r.Get("/", s.listMissionsHandler)
				r.Post("/", s.createMissionHandler)
				r.Get("/{id}", s.getMissionHandler)
				r.Patch("/{id}", s.updateMissionHandler)
				r.Delete("/{id}", s.deleteMissionHandler)
			})
		})

		r.Route("/activity", func(r chi.Router) {
			r.Use(requireCapability(auth.CapViewActivity))
			r.Get("/", s.activityHandler)
			r.Get("/actions", s.activityActionsHandler)
			r.Get("/export", s.activityExportHandler)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(requireCapability(auth.CapViewReports))
			r.Get("/{category}", s.reportHandler)
			r.Get("/{category}/export", s.reportExportHandler)
		})

		r.With(requireCapability(auth.CapViewAdmin)).Get("/admin", s.adminHandler)
	})

	return r
}

// healthHandler provides health information.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := map[string]string{"status": "up", "sessions": "memory"}
	if s.health != nil {
		stats = s.health.Health()
	}
	jsonResp, _ := json.Marshal(stats)
	w.Header().Set("Content-Type", "application/json")
	if stats["status"] != "up" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	w.Write(jsonResp)
}

// visitorLimiter hands out one token bucket per client address.
type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newVisitorLimiter(limit rate.Limit, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (v *visitorLimiter) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	limiter, exists := v.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(v.limit, v.burst)
		v.visitors[ip] = limiter
	}
	return limiter
}

func (v *visitorLimiter) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visitors = make(map[string]*rate.Limiter)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.get(clientIP(r)).Allow() {
			writeError(w, http.StatusTooManyRequests, "Too Many Requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
