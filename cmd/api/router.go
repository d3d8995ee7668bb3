package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/infra/http/middleware"
)

// routes holds one handler per endpoint.
type routes struct {
	health            http.HandlerFunc
	subscribe         http.HandlerFunc
	subscriptionStats http.HandlerFunc
	createSignup      http.HandlerFunc
	listSignups       http.HandlerFunc
	getSignup         http.HandlerFunc
	updateSignup      http.HandlerFunc
	salesAgents       http.HandlerFunc
	catalog           http.HandlerFunc
	clientLog         http.HandlerFunc
}

type routerConfig struct {
	AllowedOrigins []string
	// IntakeRatePerMinute applies to subscribe and dealer-signup, each on its own budget.
	IntakeRatePerMinute    int
	ClientLogRatePerMinute int
	AdminUser              string
	AdminPassword          string
	Log                    logrus.FieldLogger
	// Stop ends the limiter cleanup loops.
	Stop <-chan struct{}
}

func (c routerConfig) adminAuthEnabled() bool {
	return c.AdminUser != "" && c.AdminPassword != ""
}

// newLimiter returns a per-IP limiter whose idle visitors are swept until stop closes.
func newLimiter(perMinute int, log logrus.FieldLogger, stop <-chan struct{}) func(http.Handler) http.Handler {
	limiter := middleware.NewRateLimiter(perMinute, log)
	limiter.StartCleanup(time.Minute, stop)
	return limiter.Handler
}

func newRouter(rt routes, cfg routerConfig) http.Handler {
	// A client error loop must never spend the allowance of a real lead.
	subscribeLimit := newLimiter(cfg.IntakeRatePerMinute, cfg.Log, cfg.Stop)
	signupLimit := newLimiter(cfg.IntakeRatePerMinute, cfg.Log, cfg.Stop)
	clientLogLimit := newLimiter(cfg.ClientLogRatePerMinute, cfg.Log, cfg.Stop)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/health", rt.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(subscribeLimit).Post("/subscribe", rt.subscribe)
		r.With(signupLimit).Post("/dealer-signup", rt.createSignup)
		r.With(clientLogLimit).Post("/logs/error", rt.clientLog)

		r.Get("/subscription-stats", rt.subscriptionStats)
		r.Get("/dealer-signups", rt.listSignups)
		r.Get("/sales-agents", rt.salesAgents)
		r.Get("/catalog", rt.catalog)

		r.Route("/admin", func(r chi.Router) {
			if cfg.adminAuthEnabled() {
				r.Use(chimw.BasicAuth("cargram-admin", map[string]string{cfg.AdminUser: cfg.AdminPassword}))
			}
			r.Get("/dealer-signups", rt.listSignups)
			r.Get("/dealer-signups/{id}", rt.getSignup)
			r.Put("/dealer-signups/{id}", rt.updateSignup)
		})
	})

	return r
}
