package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: "Total number of HTTP requests",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    "HTTP request latency in seconds",
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Mining Metrics
var (
	MiningAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningAttempts,
			Help: "Mining attempts executed",
		},
		[]string{LabelMode, LabelMine},
	)

	MiningItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningItemsDropped,
			Help: "Items credited by mining",
		},
		[]string{LabelMode, LabelItem},
	)

	MiningStaminaSpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningStaminaSpent,
			Help: "Stamina consumed by mining",
		},
		[]string{LabelMode},
	)

	MiningSessionsStopped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMiningSessionsStopped,
			Help: "Continuous sessions ended, by reason",
		},
		[]string{LabelReason},
	)

	OfflineSettlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOfflineSettlements,
			Help: "Offline catch-up calls, by outcome",
		},
		[]string{LabelStatus},
	)

	DropItemsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropItemsSkipped,
			Help: "Dropped items skipped because the item catalog lacks them",
		},
		[]string{LabelItem},
	)
)

// RecordMine records a single manual attempt.
func RecordMine(res *domain.MineResult) {
	mode := string(domain.ModeSingle)
	MiningAttempts.WithLabelValues(mode, res.MineID).Inc()
	MiningStaminaSpent.WithLabelValues(mode).Add(float64(res.StaminaSpent))
	for _, item := range res.Drops {
		MiningItemsDropped.WithLabelValues(mode, item).Inc()
	}
	recordSkipped(res.SkippedItems)
}

// RecordContinuous records a continuous settlement.
func RecordContinuous(res *domain.ContinuousSettlement) {
	recordBatch(domain.ModeContinuous, res.MineID, res.Attempts, res.StaminaSpent, res.ItemsGained)
	recordSkipped(res.SkippedItems)
	if res.StopReason != domain.StopReasonNone {
		MiningSessionsStopped.WithLabelValues(string(res.StopReason)).Inc()
	}
}

// RecordOffline records an offline catch-up.
func RecordOffline(res *domain.OfflineSettlement) {
	OfflineSettlements.WithLabelValues(string(res.Status)).Inc()
	recordBatch(domain.ModeOffline, res.MineID, res.Attempts, res.StaminaSpent, res.ItemsGained)
	recordSkipped(res.SkippedItems)
}

// RecordStop records a session ended outside settlement.
func RecordStop(reason domain.StopReason) {
	if reason != domain.StopReasonNone {
		MiningSessionsStopped.WithLabelValues(string(reason)).Inc()
	}
}

func recordBatch(mode domain.MiningMode, mineID string, attempts, spent int, items map[string]int) {
	if attempts == 0 {
		return
	}
	MiningAttempts.WithLabelValues(string(mode), mineID).Add(float64(attempts))
	MiningStaminaSpent.WithLabelValues(string(mode)).Add(float64(spent))
	for item, n := range items {
		MiningItemsDropped.WithLabelValues(string(mode), item).Add(float64(n))
	}
}

func recordSkipped(items []string) {
	for _, item := range items {
		DropItemsSkipped.WithLabelValues(item).Inc()
	}
}
