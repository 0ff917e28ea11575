package fetch_test

import (
	"context"
	"testing"

	fetch "github.com/LerianStudio/lib-fetch-go"
	"github.com/LerianStudio/lib-fetch-go/engine"
	"github.com/LerianStudio/lib-fetch-go/model"
	"github.com/LerianStudio/lib-fetch-go/test/helper"
	"github.com/LerianStudio/lib-fetch-go/test/mocks"
	"github.com/stretchr/testify/assert"
)

// One test function covers the whole package surface: the default loader is
// built once per process, so the shared engine has to be stubbed before the
// first Load and every subtest sees the same instance.
func TestDefaultLoader(t *testing.T) {
	stub := mocks.NewEngine()
	stub.SetPayload([]byte("Hello world"))

	prev := engine.SetShared(stub)
	defer engine.SetShared(prev)

	t.Run("Load goes through the shared engine", func(t *testing.T) {
		var got model.Result

		fetch.Load(context.Background(), "my/API", func(result model.Result) {
			got = result
		})

		assert.Equal(t, "my/API", stub.LastURL())
		helper.AssertDataResult(t, got, []byte("Hello world"))
	})

	t.Run("Default returns the same loader on every call", func(t *testing.T) {
		assert.Same(t, fetch.Default(), fetch.Default())
	})
}
