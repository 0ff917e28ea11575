package fetcher_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-fetch-go/engine"
	enginemock "github.com/LerianStudio/lib-fetch-go/engine/mock"
	"github.com/LerianStudio/lib-fetch-go/fetcher"
	"github.com/LerianStudio/lib-fetch-go/model"
	"github.com/LerianStudio/lib-fetch-go/test/helper"
	"github.com/LerianStudio/lib-fetch-go/test/helper/testlogger"
	"github.com/LerianStudio/lib-fetch-go/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/mock/gomock"
)

func noopLogger() *log.Logger {
	var logger log.Logger = mocks.NewLogger()
	return &logger
}

func TestLoad_DeliversEnginePayload(t *testing.T) {
	eng := mocks.NewEngine()
	eng.SetPayload([]byte("Hello world"))

	loader := fetcher.New(eng, noopLogger())

	var got model.Result

	loader.Load(context.Background(), "my/API", func(result model.Result) {
		got = result
	})

	assert.Equal(t, "my/API", eng.LastURL())
	helper.AssertDataResult(t, got, []byte("Hello world"))
}

func TestLoad_DeliversEngineFailure(t *testing.T) {
	cause := errors.New("connection refused")

	eng := mocks.NewEngine()
	eng.SetError(cause)

	loader := fetcher.New(eng, noopLogger())

	var got model.Result

	loader.Load(context.Background(), "my/API", func(result model.Result) {
		got = result
	})

	helper.AssertFailureResult(t, got, cause)
}

func TestLoad_FailureWinsOverPayload(t *testing.T) {
	cause := errors.New("connection reset by peer")

	eng := mocks.NewEngine()
	eng.SetPayload([]byte("partial payload"))
	eng.SetError(cause)

	loader := fetcher.New(eng, noopLogger())

	var got model.Result

	loader.Load(context.Background(), "my/API", func(result model.Result) {
		got = result
	})

	helper.AssertFailureResult(t, got, cause)
}

func TestLoad_EmptyCompletionYieldsEmptyData(t *testing.T) {
	eng := mocks.NewEngine()

	loader := fetcher.New(eng, noopLogger())

	var got model.Result

	loader.Load(context.Background(), "my/API", func(result model.Result) {
		got = result
	})

	assert.False(t, got.Failed())
	assert.NotNil(t, got.Payload())
	assert.Empty(t, got.Payload())
}

func TestLoad_RecordsEveryRequestedURL(t *testing.T) {
	eng := mocks.NewEngine()
	eng.SetPayload([]byte("Hello world"))

	loader := fetcher.New(eng, noopLogger())

	for _, url := range []string{"my/API", "my/other/API", "my/API"} {
		loader.Load(context.Background(), url, func(model.Result) {})
	}

	assert.Equal(t, []string{"my/API", "my/other/API", "my/API"}, eng.RequestedURLs())
	assert.Equal(t, "my/API", eng.LastURL())
}

// repeatingEngine completes every request more than once to exercise the
// delivery guard.
type repeatingEngine struct {
	completions int
}

func (e *repeatingEngine) PerformRequest(_ context.Context, _ string, complete engine.CompletionHandler) {
	for i := 0; i < e.completions; i++ {
		complete([]byte("Hello world"), nil, nil)
	}
}

func TestLoad_SuppressesDuplicateCompletions(t *testing.T) {
	tlog := testlogger.New()

	var logger log.Logger = tlog

	loader := fetcher.New(&repeatingEngine{completions: 3}, &logger)

	delivered := 0

	loader.Load(context.Background(), "my/API", func(result model.Result) {
		delivered++
	})

	assert.Equal(t, 1, delivered)
	assert.True(t, tlog.Contains("WARN", "Duplicate completion suppressed", "my/API"))
	assert.Equal(t, 2, tlog.Count("WARN"))
}

func TestLoad_NilCompletionHandlerSkipsRequest(t *testing.T) {
	eng := mocks.NewEngine()

	mockLogger := helper.NewMockLogger()
	helper.AsMock(mockLogger).On("Warnf", mock.Anything, mock.Anything).Once()

	loader := fetcher.New(eng, mockLogger)

	loader.Load(context.Background(), "my/API", nil)

	assert.Equal(t, 0, eng.RequestCount())
	helper.AsMock(mockLogger).AssertExpectations(t)
}

func TestLoad_LogsFailureOutcome(t *testing.T) {
	eng := mocks.NewEngine()
	eng.SetError(errors.New("no such host"))

	tlog := testlogger.New()

	var logger log.Logger = tlog

	loader := fetcher.New(eng, &logger)

	loader.Load(context.Background(), "my/API", func(model.Result) {})

	assert.True(t, tlog.Contains("WARN", "my/API", "no such host"))
}

func TestLoad_ConcurrentLoads(t *testing.T) {
	const loads = 16

	eng := mocks.NewEngine()
	eng.SetPayload([]byte("Hello world"))

	loader := fetcher.New(eng, noopLogger())

	var delivered atomic.Int64

	var wg sync.WaitGroup

	for i := 0; i < loads; i++ {
		wg.Add(1)

		go func(n int) {
			defer wg.Done()

			loader.Load(context.Background(), fmt.Sprintf("resource/%d", n), func(result model.Result) {
				if !result.Failed() {
					delivered.Add(1)
				}
			})
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int64(loads), delivered.Load())
	assert.Equal(t, loads, eng.RequestCount())
}

func TestLoad_DelegatesToEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEngine := enginemock.NewMockEngine(ctrl)
	mockEngine.EXPECT().
		PerformRequest(gomock.Any(), "my/API", gomock.Any()).
		Do(func(_ context.Context, _ string, complete engine.CompletionHandler) {
			complete([]byte("Hello world"), nil, nil)
		})

	loader := fetcher.New(mockEngine, noopLogger())

	var got model.Result

	loader.Load(context.Background(), "my/API", func(result model.Result) {
		got = result
	})

	helper.AssertDataResult(t, got, []byte("Hello world"))
}
