package engine

import (
	"context"
	"io"
	"net/http"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	cn "github.com/LerianStudio/lib-fetch-go/constant"
	libErr "github.com/LerianStudio/lib-fetch-go/error"
	"github.com/google/uuid"
)

// HTTPEngine performs requests over HTTP
// It issues a plain GET for the given URL and hands the raw payload to the
// completion handler without interpreting the status code; deciding what a
// 404 body means is the caller's business.
type HTTPEngine struct {
	client    HTTPClient
	logger    log.Logger
	userAgent string
}

var _ Engine = (*HTTPEngine)(nil)

// NewHTTPEngine creates an engine backed by the given transport.
// If client is nil, defaults to http.DefaultClient.
// If logger is nil, defaults to a standard zap logger.
func NewHTTPEngine(client HTTPClient, logger *log.Logger) *HTTPEngine {
	var l log.Logger

	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &HTTPEngine{
		client:    client,
		logger:    l,
		userAgent: cn.DefaultUserAgent,
	}
}

// SetHTTPClient allows overriding the transport (useful for testing)
func (e *HTTPEngine) SetHTTPClient(client HTTPClient) {
	if client != nil {
		e.client = client
	}
}

// PerformRequest issues a GET for the URL and reports the outcome through
// the completion handler from a separate goroutine
// The handler is invoked exactly once. Cancelling the context aborts the
// request and reports the cancellation as a failure.
func (e *HTTPEngine) PerformRequest(ctx context.Context, url string, complete CompletionHandler) {
	if complete == nil {
		e.logger.Warnf("Request dispatched without completion handler - url: %s", url)
		return
	}

	reqID := uuid.NewString()
	e.logger.Debugf("Dispatching request - id: %s, url: %s", reqID, url)

	go e.perform(ctx, reqID, url, complete)
}

func (e *HTTPEngine) perform(ctx context.Context, reqID, url string, complete CompletionHandler) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		e.logger.Warnf("Building request failed - id: %s, url: %s, error: %s", reqID, url, err.Error())
		complete(nil, nil, &libErr.FetchError{URL: url, Err: err})

		return
	}

	req.Header.Set(cn.UserAgentHeader, e.userAgent)

	res, err := e.client.Do(req)
	if err != nil {
		e.logger.Warnf("Request failed - id: %s, url: %s, error: %s", reqID, url, err.Error())
		complete(nil, nil, &libErr.FetchError{URL: url, Err: err})

		return
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		e.logger.Warnf("Reading payload failed - id: %s, url: %s, error: %s", reqID, url, err.Error())
		complete(nil, res, &libErr.FetchError{URL: url, Err: err})

		return
	}

	e.logger.Debugf("Request completed - id: %s, status: %d, bytes: %d", reqID, res.StatusCode, len(payload))
	complete(payload, res, nil)
}
