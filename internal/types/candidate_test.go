package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_MarshalOmitsUnsetParsedAt(t *testing.T) {
	data, err := json.Marshal(Candidate{Name: "Ada"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "parsed_at")
}

func TestCandidate_MarshalIncludesSetParsedAt(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	data, err := json.Marshal(Candidate{Name: "Ada", ParsedAt: &at})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"parsed_at":"2025-06-01T12:00:00Z"`)
}
