package callback_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/LerianStudio/lib-fetch-go/internal/callback"
	"github.com/LerianStudio/lib-fetch-go/model"
	"github.com/stretchr/testify/assert"
)

func TestGuard_DeliversFirstResult(t *testing.T) {
	var got model.Result

	delivered := 0

	guard := callback.New(func(result model.Result) {
		got = result
		delivered++
	}, nil)

	guard.Deliver(model.Data([]byte("Hello world")))

	assert.Equal(t, 1, delivered)
	assert.Equal(t, []byte("Hello world"), got.Payload())
}

func TestGuard_SuppressesSubsequentDeliveries(t *testing.T) {
	var got model.Result

	delivered := 0
	duplicates := 0

	guard := callback.New(func(result model.Result) {
		got = result
		delivered++
	}, func() {
		duplicates++
	})

	guard.Deliver(model.Failure(errors.New("connection refused")))
	guard.Deliver(model.Data([]byte("late payload")))
	guard.Deliver(model.Data([]byte("even later")))

	assert.Equal(t, 1, delivered)
	assert.Equal(t, 2, duplicates)
	assert.True(t, got.Failed())
}

func TestGuard_ConcurrentDeliveries(t *testing.T) {
	const attempts = 32

	var delivered, duplicates atomic.Int64

	guard := callback.New(func(model.Result) {
		delivered.Add(1)
	}, func() {
		duplicates.Add(1)
	})

	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			guard.Deliver(model.Data(nil))
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(1), delivered.Load())
	assert.Equal(t, int64(attempts-1), duplicates.Load())
}

func TestGuard_NilHandlerIsSafe(t *testing.T) {
	duplicates := 0

	guard := callback.New(nil, func() {
		duplicates++
	})

	assert.NotPanics(t, func() {
		guard.Deliver(model.Data([]byte("ignored")))
		guard.Deliver(model.Data([]byte("ignored")))
	})
	assert.Equal(t, 1, duplicates)
}
