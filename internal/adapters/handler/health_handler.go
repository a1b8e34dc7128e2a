package handler

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const probeTimeout = 5 * time.Second

// HealthHandler serves the liveness and readiness probes. Liveness only
// confirms the process is up; readiness additionally pings the database and
// the cache.
type HealthHandler struct {
	db        *sql.DB
	redis     *redis.Client
	startTime time.Time
	version   string
}

func NewHealthHandler(db *sql.DB, redisClient *redis.Client) *HealthHandler {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "unknown"
	}
	return &HealthHandler{
		db:        db,
		redis:     redisClient,
		startTime: time.Now(),
		version:   version,
	}
}

type probe struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func up() probe { return probe{Status: "UP"} }

func down(msg string) probe { return probe{Status: "DOWN", Message: msg} }

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, envelope{
		"status":    "UP",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startTime).Round(time.Second).String(),
		"version":   h.version,
		"checks":    map[string]probe{"process": up()},
	})
}

// Live is an alias for Health.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.Health(w, r)
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := map[string]probe{
		"database": h.checkDatabase(r.Context()),
		"redis":    h.checkRedis(r.Context()),
	}

	status, httpStatus := "UP", http.StatusOK
	for _, check := range checks {
		if check.Status != "UP" {
			status, httpStatus = "DOWN", http.StatusServiceUnavailable
			break
		}
	}

	respond(w, httpStatus, envelope{
		"status": status,
		"checks": checks,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) probe {
	if h.db == nil {
		return down("database connection is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		return down("cannot connect to database")
	}
	return up()
}

func (h *HealthHandler) checkRedis(ctx context.Context) probe {
	if h.redis == nil {
		return down("redis client is not initialized")
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := h.redis.Ping(ctx).Err(); err != nil {
		return down("cannot connect to redis")
	}
	return up()
}
