package mocks

import (
	"context"
	"net/http"
	"sync"

	"github.com/LerianStudio/lib-fetch-go/engine"
)

// Engine is a test double that records every requested URL and completes
// each request with a fixed outcome
// Completion runs synchronously on the caller's goroutine, so tests never
// need to wait for a delivery.
type Engine struct {
	mu       sync.Mutex
	requests []string
	payload  []byte
	res      *http.Response
	err      error
}

var _ engine.Engine = (*Engine)(nil)

// NewEngine creates a recording engine that completes with an empty payload
func NewEngine() *Engine {
	return &Engine{}
}

// SetPayload configures the payload delivered to every completion handler
func (e *Engine) SetPayload(payload []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.payload = payload
}

// SetResponse configures the response metadata delivered alongside the payload
func (e *Engine) SetResponse(res *http.Response) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.res = res
}

// SetError configures the failure delivered to every completion handler
// When both an error and a payload are set, both are handed to the handler.
func (e *Engine) SetError(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = err
}

// PerformRequest records the URL and invokes the handler with the configured outcome
func (e *Engine) PerformRequest(_ context.Context, url string, complete engine.CompletionHandler) {
	e.mu.Lock()
	e.requests = append(e.requests, url)
	payload, res, err := e.payload, e.res, e.err
	e.mu.Unlock()

	if complete != nil {
		complete(payload, res, err)
	}
}

// LastURL returns the most recently requested URL, or empty when nothing was requested
func (e *Engine) LastURL() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.requests) == 0 {
		return ""
	}

	return e.requests[len(e.requests)-1]
}

// RequestedURLs returns every requested URL in order
func (e *Engine) RequestedURLs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	urls := make([]string, len(e.requests))
	copy(urls, e.requests)

	return urls
}

// RequestCount returns how many requests were performed
func (e *Engine) RequestCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.requests)
}
