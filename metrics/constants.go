package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal   = "http_requests_total"
	MetricNameHTTPRequestDuration = "http_request_duration_seconds"
	MetricNameCalculationsTotal   = "calculations_total"
	MetricNameInfeasibleTotal     = "infeasible_terms_total"
	MetricNameCacheLookupsTotal   = "cache_lookups_total"
	MetricNameScheduleRowsTotal   = "schedule_rows_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal   = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration = "HTTP request latency in seconds"
	HelpTextCalculationsTotal   = "Total number of loan calculations by solved quantity"
	HelpTextInfeasibleTotal     = "Total number of calculations rejected as infeasible"
	HelpTextCacheLookupsTotal   = "Total number of result cache lookups by outcome"
	HelpTextScheduleRowsTotal   = "Total number of amortization rows generated"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// Cache lookup outcomes
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// HTTPLatencyBuckets defines histogram buckets for HTTP request latency (seconds).
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
