// Package testutil provides testing utilities for the Graph drive client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockResponse defines the behavior for a mock Graph endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// MockPage describes one page of a paginated collection fixture. Items are
// raw JSON objects.
type MockPage struct {
	Items []string
}

// MockGraph is a configurable mock Graph API server for testing.
type MockGraph struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	RequestPaths      []string
	LastRequestHeader http.Header
}

// NewMockGraph creates a new mock Graph server.
func NewMockGraph() *MockGraph {
	mock := &MockGraph{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.RequestPaths = append(mock.RequestPaths, r.URL.RequestURI())
		mock.LastRequestHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.RequestURI()]
		if !exists {
			handler, exists = mock.handlers[r.URL.Path]
		}
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"itemNotFound"}}`))
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockGraph) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockGraph) Close() {
	m.server.Close()
}

// Reset clears all tracking state.
func (m *MockGraph) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.RequestPaths = nil
	m.LastRequestHeader = nil
}

// SetHandler sets a custom handler for a path (or path with query string).
func (m *MockGraph) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a canned response for a path.
func (m *MockGraph) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetCollectionPages serves a cursor chain for a collection root: page N
// links to the next page with an absolute @odata.nextLink, and the final
// page omits the link.
func (m *MockGraph) SetCollectionPages(path string, pages []MockPage) {
	for i, page := range pages {
		target := path
		if i > 0 {
			target = fmt.Sprintf("%s?skiptoken=%d", path, i)
		}

		nextLink := ""
		if i < len(pages)-1 {
			nextLink = fmt.Sprintf("%s%s?skiptoken=%d", m.URL(), path, i+1)
		}

		m.SetResponse(target, MockResponse{
			StatusCode: http.StatusOK,
			Body:       PageBody(page.Items, nextLink),
		})
	}
}

// PageBody builds a Graph collection page body from raw JSON items and an
// optional continuation link.
func PageBody(items []string, nextLink string) string {
	raw := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw = append(raw, json.RawMessage(item))
	}

	page := map[string]any{"value": raw}
	if nextLink != "" {
		page["@odata.nextLink"] = nextLink
	}

	body, err := json.Marshal(page)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad page fixture: %v", err))
	}
	return string(body)
}

// AuthHeader returns the Authorization header of the most recent request.
func (m *MockGraph) AuthHeader() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.LastRequestHeader == nil {
		return ""
	}
	return m.LastRequestHeader.Get("Authorization")
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockGraph) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}
