//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it was turned into a JSON map.
type Mutation func(m map[string]any)

// DtoMap round-trips a request DTO through JSON so tests can break single fields.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mutate := range muts {
		mutate(m)
	}
	return m
}

// Field sets key to value, or drops it when value is nil.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
