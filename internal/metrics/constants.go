package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Mining metric names
const (
	MetricNameMiningAttempts        = "mining_attempts_total"
	MetricNameMiningItemsDropped    = "mining_items_dropped_total"
	MetricNameMiningStaminaSpent    = "mining_stamina_spent_total"
	MetricNameMiningSessionsStopped = "mining_sessions_stopped_total"
	MetricNameOfflineSettlements    = "mining_offline_settlements_total"
	MetricNameDropItemsSkipped      = "mining_drop_items_skipped_total"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelMode   = "mode"
	LabelMine   = "mine"
	LabelItem   = "item"
	LabelReason = "reason"
)

// HTTPLatencyBuckets are the request duration histogram buckets in seconds.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
