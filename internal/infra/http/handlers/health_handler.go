package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const (
	depHealthy       = "healthy"
	depUnhealthy     = "unhealthy"
	depConfigured    = "configured"
	depNotConfigured = "not configured"

	healthCheckTimeout = 2 * time.Second
)

var errBrokerClosed = errors.New("broker connection closed")

// HealthHandler reports lead storage and notification transport state.
// Failure detail goes to the log, never to the response.
type HealthHandler struct {
	DB             *sqlx.DB
	Broker         *amqp091.Connection
	MailConfigured bool
	Log            logrus.FieldLogger
	StartedAt      time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sqlx.DB, broker *amqp091.Connection, mailConfigured bool, log logrus.FieldLogger) *HealthHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HealthHandler{
		DB:             db,
		Broker:         broker,
		MailConfigured: mailConfigured,
		Log:            log,
		StartedAt:      time.Now(),
	}
}

type dependencyCheck struct {
	name string
	// nil when the dependency is not wired in this deployment
	check func(ctx context.Context) error
}

func (h *HealthHandler) checks() []dependencyCheck {
	deps := []dependencyCheck{{name: "database"}, {name: "rabbitmq"}}
	if h.DB != nil {
		deps[0].check = h.DB.PingContext
	}
	if h.Broker != nil {
		deps[1].check = func(context.Context) error {
			if h.Broker.IsClosed() {
				return errBrokerClosed
			}
			return nil
		}
	}
	return deps
}

// Handle handles GET /health.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:       depHealthy,
		Uptime:       time.Since(h.StartedAt).Round(time.Second).String(),
		Dependencies: map[string]string{"mail": depNotConfigured},
	}
	if h.MailConfigured {
		resp.Dependencies["mail"] = depConfigured
	}

	for _, dep := range h.checks() {
		if dep.check == nil {
			resp.Dependencies[dep.name] = depNotConfigured
			continue
		}
		if err := dep.check(ctx); err != nil {
			h.Log.WithError(err).WithField("dependency", dep.name).Warn("health check failed")
			resp.Dependencies[dep.name] = depUnhealthy
			resp.Status = "degraded"
			continue
		}
		resp.Dependencies[dep.name] = depHealthy
	}

	status := http.StatusOK
	if resp.Status != depHealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
