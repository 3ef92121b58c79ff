package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/IdleMiner_Go/internal/database"
	"github.com/osse101/IdleMiner_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

// Health statuses
const (
	HealthOK          = "ok"
	HealthUnavailable = "unavailable"
)

// HealthResponse is returned by /healthz and /readyz. Checks lists the
// dependencies probed by /readyz with their result.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleHealthz reports liveness only; it never touches dependencies.
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthOK})
	}
}

// HandleReadyz pings the database and reports how long the ping took.
// @Summary Readiness check
// @Description Fails with 503 while the player store is unreachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		started := time.Now()
		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: HealthUnavailable,
				Checks: map[string]string{"database": err.Error()},
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status: HealthOK,
			Checks: map[string]string{"database": "ok (" + time.Since(started).Round(time.Microsecond).String() + ")"},
		})
	}
}
