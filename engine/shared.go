package engine

import "sync"

// shared is the process-wide engine used when no explicit engine is
// configured. It is built lazily so importing the package never touches the
// network stack.
var (
	shared   Engine
	sharedMu sync.Mutex
)

// Shared returns the process-wide engine, building a default HTTP engine on
// first use
func Shared() Engine {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		shared = NewHTTPEngine(nil, nil)
	}

	return shared
}

// SetShared replaces the process-wide engine and returns the previous one
// so tests can restore it (useful for testing)
func SetShared(e Engine) Engine {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	prev := shared
	shared = e

	return prev
}
