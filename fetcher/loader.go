// Package fetcher loads remote resources through a pluggable request engine.
//
// Production code wires the shared HTTP engine; tests hand in a double and
// observe every requested URL without touching process-wide state.
package fetcher

import (
	"context"
	"net/http"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	"github.com/LerianStudio/lib-fetch-go/engine"
	"github.com/LerianStudio/lib-fetch-go/internal/callback"
	"github.com/LerianStudio/lib-fetch-go/model"
)

// CompletionHandler receives the final Result of a load
type CompletionHandler func(result model.Result)

// Loader fetches a single resource through its engine and reports the
// outcome as a Result
type Loader struct {
	engine engine.Engine
	logger log.Logger
}

// New creates a loader backed by the given engine.
// If eng is nil, defaults to the process-wide shared engine.
// If logger is nil, defaults to a standard zap logger.
func New(eng engine.Engine, logger *log.Logger) *Loader {
	var l log.Logger

	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	if eng == nil {
		eng = engine.Shared()
	}

	return &Loader{
		engine: eng,
		logger: l,
	}
}

// Load fetches the resource at url and hands the outcome to complete.
// The handler receives exactly one Result: a failure when the engine reported
// an error (even if it also produced a payload), the payload otherwise. A nil
// payload arrives as an empty one. Transport metadata from the engine is
// dropped; callers who need status codes talk to the engine directly.
func (l *Loader) Load(ctx context.Context, url string, complete CompletionHandler) {
	if complete == nil {
		l.logger.Warnf("Load dropped, no completion handler - url: %s", url)
		return
	}

	guard := callback.New(callback.Handler(complete), func() {
		l.logger.Warnf("Duplicate completion suppressed - url: %s", url)
	})

	l.logger.Debugf("Loading resource - url: %s", url)

	l.engine.PerformRequest(ctx, url, func(payload []byte, _ *http.Response, err error) {
		if err != nil {
			l.logger.Warnf("Load failed - url: %s, error: %s", url, err.Error())
			guard.Deliver(model.Failure(err))

			return
		}

		guard.Deliver(model.Data(payload))
	})
}
