package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Domain metric names
const (
	MetricNameTagScans = "rfid_scans_total"
	MetricNameLaunches = "rfid_launches_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextTagScans             = "Total number of tag resolve requests by outcome"
	HelpTextLaunches             = "Total number of resource launch attempts by outcome"
)

// Labels
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
)

// Scan results
const (
	ScanFound    = "found"
	ScanNotFound = "not_found"
	ScanError    = "error"
)

// Launch results
const (
	LaunchOK      = "ok"
	LaunchFailed  = "failed"
	LaunchSkipped = "skipped"
)

// HTTPLatencyBuckets are tuned for a single persistence round-trip per request.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
