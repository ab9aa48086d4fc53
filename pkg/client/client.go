// Package client provides the Graph HTTP client used by the drive
// fetcher, configured with bearer authentication, proxy routing, and
// product identification.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/drivescout/graph-drive-client/pkg/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for Graph client operations.
var (
	graphRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graph_requests_total",
		Help: "Total Graph requests by endpoint and status",
	}, []string{"endpoint", "status"})

	graphRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graph_request_duration_seconds",
		Help:    "Graph request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	graphErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graph_errors_total",
		Help: "Total Graph client errors by class",
	}, []string{"class"})
)

// DefaultBaseURL is the versioned Graph API root.
const DefaultBaseURL = "https://graph.microsoft.com/v1.0"

// Client is a Graph HTTP client scoped to a single fetch invocation.
// It is not shared across concurrent fetches; each fetch constructs and
// owns its own instance and releases it with Close.
type Client struct {
	httpClient   *http.Client
	transport    *http.Transport
	baseURL      string
	userAgent    string
	accessToken  string
	defaultCreds bool
	logger       zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// AccessToken is the bearer token attached to every request (REQUIRED).
	AccessToken string

	// BaseURL is the Graph API root. Defaults to DefaultBaseURL; override
	// it in tests to point at a local server.
	BaseURL string

	// UserAgent identifies the product. Defaults to version.UserAgent().
	UserAgent string

	// Proxy holds the outbound proxy settings resolved by the caller.
	Proxy ProxySettings

	// Timeout applies per request.
	Timeout time.Duration
}

// DefaultConfig returns a configuration for the given bearer token.
func DefaultConfig(accessToken string) Config {
	return Config{
		AccessToken: accessToken,
		BaseURL:     DefaultBaseURL,
		UserAgent:   version.UserAgent(),
		Timeout:     30 * time.Second,
	}
}

// New creates a new Graph client. Construction is pure: no network calls
// are made until the first request.
func New(cfg Config) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, &GraphError{Class: ErrorClassConfig, Err: ErrTokenRequired}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	transport, defaultCreds := buildTransport(cfg.Proxy)

	logger := log.With().Str("component", "graph-client").Logger()

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		transport:    transport,
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:    cfg.UserAgent,
		accessToken:  cfg.AccessToken,
		defaultCreds: defaultCreds,
		logger:       logger,
	}, nil
}

// Get issues a GET request to target. An absolute target (a continuation
// link as returned by the server) is used verbatim; a relative target is
// joined to the base URL.
func (c *Client) Get(ctx context.Context, target string) (*http.Response, error) {
	u := target
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		u = c.baseURL + target
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &GraphError{Class: ErrorClassTransport, Err: fmt.Errorf("create request: %w", err)}
	}

	return c.Do(req)
}

// Do performs an HTTP request with the bearer, accept, and user-agent
// headers applied. Non-success statuses are returned to the caller
// unread; classifying them is the fetcher's job.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	endpoint := req.URL.Path

	startTime := time.Now()
	defer func() {
		graphRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Msg("Executing Graph request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		graphErrorsTotal.WithLabelValues(string(ErrorClassTransport)).Inc()
		graphRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, &GraphError{Class: ErrorClassTransport, Err: err}
	}

	graphRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("Graph request error status")
	}

	return resp, nil
}

// UsesDefaultProxyCredentials reports whether proxy authentication falls
// back to the ambient system credentials.
func (c *Client) UsesDefaultProxyCredentials() bool {
	return c.defaultCreds
}

// Close releases the client's connections. The client must not be used
// after Close.
func (c *Client) Close() error {
	c.transport.CloseIdleConnections()
	return nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
