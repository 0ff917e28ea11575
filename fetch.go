// Package fetch exposes a package-level loader for callers that do not need
// to manage their own Loader instance.
//
// The default loader runs on the process-wide shared engine. Tests that go
// through this surface swap the engine with engine.SetShared before the
// first Load and restore it afterwards; code that wants full isolation
// should construct its own fetcher.Loader instead.
package fetch

import (
	"context"
	"sync"

	"github.com/LerianStudio/lib-fetch-go/fetcher"
)

var (
	defaultLoader *fetcher.Loader
	defaultOnce   sync.Once
)

// Default returns the package-level loader, building it on first use
func Default() *fetcher.Loader {
	defaultOnce.Do(func() {
		defaultLoader = fetcher.New(nil, nil)
	})

	return defaultLoader
}

// Load fetches the resource at url through the default loader
func Load(ctx context.Context, url string, complete fetcher.CompletionHandler) {
	Default().Load(ctx, url, complete)
}
