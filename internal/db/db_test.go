package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-pipeline/internal/types"
)

func TestUnmarshalColumn_NullColumnIsNoOp(t *testing.T) {
	var reqs []types.RequirementItem
	require.NoError(t, unmarshalColumn(nil, &reqs, "base_requirements"))
	assert.Nil(t, reqs)
}

func TestUnmarshalColumn_DecodesValidJSON(t *testing.T) {
	var reqs []types.RequirementItem
	data := []byte(`[{"type": "skill", "category": "must", "description": "Go", "weight": 8}]`)

	require.NoError(t, unmarshalColumn(data, &reqs, "base_requirements"))

	require.Len(t, reqs, 1)
	assert.Equal(t, "Go", reqs[0].Description)
	assert.Equal(t, 8, reqs[0].Weight)
}

func TestUnmarshalColumn_CorruptJSONSurfacesAsError(t *testing.T) {
	var explanation *types.MatchExplanation

	err := unmarshalColumn([]byte(`{not json`), &explanation, "explanation")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "explanation")
	assert.Nil(t, explanation, "a decode failure must not half-populate the record")
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	got := nullIfEmpty("recruiter")
	require.NotNil(t, got)
	assert.Equal(t, "recruiter", *got)
}
