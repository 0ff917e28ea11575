package helper

import (
	"testing"

	"github.com/LerianStudio/lib-fetch-go/model"
	"github.com/stretchr/testify/assert"
)

// AssertDataResult is a helper function to validate a successful Result
func AssertDataResult(t *testing.T, result model.Result, expectedPayload []byte) {
	t.Helper()
	assert.False(t, result.Failed(), "expected a data result, got failure: %v", result.Err())
	assert.Equal(t, expectedPayload, result.Payload(), "payload mismatch")
}

// AssertFailureResult is a helper function to validate a failed Result
func AssertFailureResult(t *testing.T, result model.Result, expectedErr error) {
	t.Helper()
	assert.True(t, result.Failed(), "expected a failure result")
	assert.ErrorIs(t, result.Err(), expectedErr, "failure cause mismatch")
	assert.Nil(t, result.Payload(), "failure result must not carry a payload")
}
