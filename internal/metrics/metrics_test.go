package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestRecordContinuous(t *testing.T) {
	attempts := MiningAttempts.WithLabelValues("continuous", "metrics_test_mine")
	dropped := MiningItemsDropped.WithLabelValues("continuous", "metrics_test_ore")
	stopped := MiningSessionsStopped.WithLabelValues(string(domain.StopReasonInsufficientStamina))
	beforeAttempts := counterValue(t, attempts)
	beforeDropped := counterValue(t, dropped)
	beforeStopped := counterValue(t, stopped)

	RecordContinuous(&domain.ContinuousSettlement{
		MineID:       "metrics_test_mine",
		Attempts:     3,
		StaminaSpent: 15,
		ItemsGained:  map[string]int{"metrics_test_ore": 2},
		StopReason:   domain.StopReasonInsufficientStamina,
	})

	assert.InDelta(t, beforeAttempts+3, counterValue(t, attempts), 0)
	assert.InDelta(t, beforeDropped+2, counterValue(t, dropped), 0)
	assert.InDelta(t, beforeStopped+1, counterValue(t, stopped), 0)
}

func TestRecordOffline_CountsStatusWithoutAttempts(t *testing.T) {
	tooSoon := OfflineSettlements.WithLabelValues(string(domain.OfflineStatusTooSoon))
	before := counterValue(t, tooSoon)

	RecordOffline(&domain.OfflineSettlement{Status: domain.OfflineStatusTooSoon, MineID: "copper"})

	assert.InDelta(t, before+1, counterValue(t, tooSoon), 0)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{playerID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{playerID}", "418")
	before := counterValue(t, counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/abc-123", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.InDelta(t, before+1, counterValue(t, counter), 0)
}
