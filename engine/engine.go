package engine

//go:generate mockgen -source=engine.go -destination=mock/mock_engine.go -package=mock

import (
	"context"
	"net/http"
)

// CompletionHandler receives the outcome of a single request.
// Exactly one of payload and err is meaningful: a nil err means the payload
// was fetched (possibly empty), a non-nil err means the request never
// produced a usable payload. The response carries transport metadata such as
// the status code and headers when one was received; it may be nil on
// failure. The handler may run on a different goroutine than the caller.
type CompletionHandler func(payload []byte, res *http.Response, err error)

// Engine performs one request against a remote endpoint and reports the
// outcome through the completion handler
// Implementations must invoke the handler exactly once per call.
type Engine interface {
	PerformRequest(ctx context.Context, url string, complete CompletionHandler)
}

// HTTPClient abstracts the transport used by the HTTP engine (useful for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
