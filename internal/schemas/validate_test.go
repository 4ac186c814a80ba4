package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": { "type": "string", "minLength": 1 },
		"proficiency": { "type": "integer", "minimum": 0, "maximum": 10 }
	},
	"required": ["name"],
	"additionalProperties": false
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "Go", "proficiency": 8}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"proficiency": 8}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "name")
}

func TestValidateJSONString_OutOfRange(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "Go", "proficiency": 15}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "proficiency", validationErr.Errors[0].Field)
}

func TestValidateJSONString_UnknownField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "Go", "vibes": true}`)
	assert.Error(t, err)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, `{not json`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`{"name": "Go"}`), 0o644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(filepath.Join(dir, "missing-schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSchemaPath(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "present.json"), []byte("{}"), 0o644))

	assert.NotEmpty(t, ResolveSchemaPath("present.json"))
	assert.Empty(t, ResolveSchemaPath("absent.json"))
}
