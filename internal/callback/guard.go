package callback

import (
	"sync"

	"github.com/LerianStudio/lib-fetch-go/model"
)

// Handler defines a function that receives the final outcome of a fetch
type Handler func(result model.Result)

// Guard delivers a result to a handler at most once
// Engines are free to report completion from any goroutine, and a misbehaving
// implementation may report more than once. The guard keeps the first outcome
// and drops the rest.
type Guard struct {
	handler     Handler
	onDuplicate func()
	once        sync.Once
}

// New creates a guard around the given handler
// The onDuplicate hook is invoked for every suppressed delivery; pass nil to
// drop duplicates silently.
func New(handler Handler, onDuplicate func()) *Guard {
	return &Guard{
		handler:     handler,
		onDuplicate: onDuplicate,
	}
}

// Deliver hands the result to the handler on the first call
// Subsequent calls are suppressed and reported through the duplicate hook.
// Safe for concurrent use.
func (g *Guard) Deliver(result model.Result) {
	delivered := false

	g.once.Do(func() {
		delivered = true

		if g.handler != nil {
			g.handler(result)
		}
	})

	if !delivered && g.onDuplicate != nil {
		g.onDuplicate()
	}
}
