// Package metrics provides the centralized Prometheus registry reference
// for the Graph drive client. Metrics are defined in their owning packages
// (client, drive) to maintain modularity and avoid circular dependencies.
//
// This package documents all available metrics in one place.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - graph_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - graph_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - graph_errors_total{class} (Counter): Network-level request failures
//
// Fetch Metrics (pkg/drive):
//   - drive_pages_fetched_total{collection} (Counter): Pages fetched per collection
//   - drive_items_fetched_total{collection} (Counter): Items accumulated per collection
//   - drive_fetch_errors_total{class} (Counter): Terminal fetch failures by error class
//     (auth, transport, parse)
//
// Example Prometheus Queries:
//
//   # Fetch failure rate by class
//   rate(drive_fetch_errors_total[5m])
//
//   # Average items per page
//   rate(drive_items_fetched_total[5m]) / rate(drive_pages_fetched_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(graph_request_duration_seconds_bucket[5m]))
