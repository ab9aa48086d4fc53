package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/drivescout/graph-drive-client/pkg/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for drive fetch operations.
var (
	drivePagesFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "drive_pages_fetched_total",
		Help: "Total pages fetched by collection",
	}, []string{"collection"})

	driveItemsFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "drive_items_fetched_total",
		Help: "Total items fetched by collection",
	}, []string{"collection"})

	driveFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "drive_fetch_errors_total",
		Help: "Total fetch failures by error class",
	}, []string{"class"})
)

// Collection roots on the drive resource.
const (
	FollowingPath    = "/me/drive/following"
	SharedWithMePath = "/me/drive/sharedWithMe"
	RecentPath       = "/me/drive/recent"

	drivePath = "/me/drive"
)

// fetchState tracks the pagination loop.
type fetchState int

const (
	stateFetching fetchState = iota
	stateDone
)

// Config holds the fetcher configuration.
type Config struct {
	// BaseURL overrides the Graph API root (tests point it at a local
	// server). Empty means client.DefaultBaseURL.
	BaseURL string

	// Proxy is handed to the client factory unchanged.
	Proxy client.ProxySettings

	// Timeout applies per page request.
	Timeout time.Duration
}

// Fetcher executes the pagination protocol against the drive collection
// roots. Invocations are independent; there is no shared mutable state, so
// a Fetcher is safe for concurrent use.
type Fetcher struct {
	config Config
	logger zerolog.Logger
}

// NewFetcher creates a new drive fetcher.
func NewFetcher(cfg Config) *Fetcher {
	return &Fetcher{
		config: cfg,
		logger: log.With().Str("component", "drive-fetcher").Logger(),
	}
}

// Following returns all items of the followed-items collection.
func (f *Fetcher) Following(ctx context.Context, session Session) (Collection, error) {
	return f.fetchCollection(ctx, session, FollowingPath, "following")
}

// SharedWithMe returns all items shared with the signed-in user.
func (f *Fetcher) SharedWithMe(ctx context.Context, session Session) (Collection, error) {
	return f.fetchCollection(ctx, session, SharedWithMePath, "shared_with_me")
}

// Recent returns the recently used items collection.
func (f *Fetcher) Recent(ctx context.Context, session Session) (Collection, error) {
	return f.fetchCollection(ctx, session, RecentPath, "recent")
}

// Drive returns the metadata of the user's default drive.
func (f *Fetcher) Drive(ctx context.Context, session Session) (*DriveInfo, error) {
	c, err := f.newClient(session)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	body, err := f.getBody(ctx, c, drivePath)
	if err != nil {
		driveFetchErrorsTotal.WithLabelValues(string(client.ClassOf(err))).Inc()
		return nil, err
	}

	var info DriveInfo
	if err := json.Unmarshal(body, &info); err != nil {
		driveFetchErrorsTotal.WithLabelValues(string(client.ErrorClassParse)).Inc()
		return nil, &client.GraphError{Class: client.ErrorClassParse, Body: string(body), Err: err}
	}

	return &info, nil
}

// fetchCollection runs the pagination state machine: fetch the pending
// target, append its items, move the target to the continuation link, and
// stop once the server stops sending one. The first failure is terminal;
// no partial collection is returned.
func (f *Fetcher) fetchCollection(ctx context.Context, session Session, path, collection string) (Collection, error) {
	c, err := f.newClient(session)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	startTime := time.Now()
	items := make(Collection, 0)
	target := path
	pages := 0

	for state := stateFetching; state == stateFetching; {
		page, err := f.fetchPage(ctx, c, target)
		if err != nil {
			driveFetchErrorsTotal.WithLabelValues(string(client.ClassOf(err))).Inc()
			return nil, fmt.Errorf("fetch %s: %w", collection, err)
		}

		pages++
		drivePagesFetchedTotal.WithLabelValues(collection).Inc()
		items = append(items, page.Value...)

		if page.NextLink == "" {
			state = stateDone
		} else {
			target = page.NextLink
		}
	}

	driveItemsFetchedTotal.WithLabelValues(collection).Add(float64(len(items)))

	f.logger.Info().
		Str("collection", collection).
		Int("pages", pages).
		Int("items", len(items)).
		Dur("duration", time.Since(startTime)).
		Msg("Collection fetch complete")

	return items, nil
}

// newClient resolves the session token and constructs the client owned by
// this invocation. The token check happens before any network activity.
func (f *Fetcher) newClient(session Session) (*client.Client, error) {
	if session == nil || session.AccessToken() == "" {
		driveFetchErrorsTotal.WithLabelValues(string(client.ErrorClassAuth)).Inc()
		f.logger.Warn().Msg("Fetch refused: session has no access token")
		return nil, &client.GraphError{Class: client.ErrorClassAuth, Err: client.ErrTokenRequired}
	}

	cfg := client.DefaultConfig(session.AccessToken())
	if f.config.BaseURL != "" {
		cfg.BaseURL = f.config.BaseURL
	}
	if f.config.Timeout > 0 {
		cfg.Timeout = f.config.Timeout
	}
	cfg.Proxy = f.config.Proxy

	return client.New(cfg)
}

// fetchPage issues one GET and parses the response as a Page.
func (f *Fetcher) fetchPage(ctx context.Context, c *client.Client, target string) (*Page, error) {
	body, err := f.getBody(ctx, c, target)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		f.logger.Warn().Err(err).Str("target", target).Msg("Malformed page body")
		return nil, &client.GraphError{Class: client.ErrorClassParse, Body: string(body), Err: err}
	}

	return &page, nil
}

// getBody issues one GET and returns the response body, treating any
// non-2xx status as a terminal transport error carrying status and body.
func (f *Fetcher) getBody(ctx context.Context, c *client.Client, target string) ([]byte, error) {
	resp, err := c.Get(ctx, target)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &client.GraphError{Class: client.ErrorClassTransport, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.logger.Warn().
			Str("target", target).
			Int("status", resp.StatusCode).
			Msg("Graph returned error status")
		return nil, &client.GraphError{
			Class:      client.ErrorClassTransport,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
