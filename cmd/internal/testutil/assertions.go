package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONEqual compares two JSON documents ignoring field order.
func AssertJSONEqual(t *testing.T, expected, actual string) {
	t.Helper()

	var expectedJSON, actualJSON interface{}

	err := json.Unmarshal([]byte(expected), &expectedJSON)
	require.NoError(t, err, "Invalid expected JSON")

	err = json.Unmarshal([]byte(actual), &actualJSON)
	require.NoError(t, err, "Invalid actual JSON")

	assert.Equal(t, expectedJSON, actualJSON)
}

// AssertErrorContains checks that an error mentions a substring.
func AssertErrorContains(t *testing.T, err error, substring string) {
	t.Helper()

	require.Error(t, err, "Expected an error but got nil")
	assert.Contains(t, err.Error(), substring)
}

// AssertContains checks that a string contains a substring.
func AssertContains(t *testing.T, s, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Contains(t, s, substr, msgAndArgs...)
}

// AssertLen checks the length of a collection.
func AssertLen(t *testing.T, object interface{}, length int, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Len(t, object, length, msgAndArgs...)
}

// AssertWithinDuration checks that two times lie within delta of each other.
func AssertWithinDuration(t *testing.T, expected, actual time.Time, delta time.Duration, msgAndArgs ...interface{}) {
	t.Helper()
	assert.WithinDuration(t, expected, actual, delta, msgAndArgs...)
}
