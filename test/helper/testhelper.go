// Package helper provides test utilities for the fetcher and engine packages
package helper

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// TestServer is a wrapper around httptest.Server that records every request
// it serves
type TestServer struct {
	*httptest.Server
	URL string

	mu       sync.Mutex
	requests []*http.Request
}

// NewTestServer creates a new recording test server with the given handler
func NewTestServer(t *testing.T, handler http.Handler) *TestServer {
	t.Helper()

	ts := &TestServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		ts.requests = append(ts.requests, r.Clone(r.Context()))
		ts.mu.Unlock()

		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)
	ts.URL = ts.Server.URL

	return ts
}

// NewPayloadServer creates a test server that answers every request with the
// given status and payload
func NewPayloadServer(t *testing.T, status int, payload []byte) *TestServer {
	t.Helper()

	return NewTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write(payload)
	}))
}

// Requests returns every request served so far
func (ts *TestServer) Requests() []*http.Request {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	reqs := make([]*http.Request, len(ts.requests))
	copy(reqs, ts.requests)

	return reqs
}

// LastRequest returns the most recently served request, or nil when none was served
func (ts *TestServer) LastRequest() *http.Request {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if len(ts.requests) == 0 {
		return nil
	}

	return ts.requests[len(ts.requests)-1]
}
