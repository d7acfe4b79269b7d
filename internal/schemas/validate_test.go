package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const learnerSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name", "proficiency"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"proficiency": {"type": "string", "enum": ["beginner", "intermediate", "advanced", "expert"]}
		}
	}
}`

func TestValidateJSONString_ValidDocument(t *testing.T) {
	err := ValidateJSONString(learnerSchema, `[{"name": "Python", "proficiency": "beginner"}]`)
	assert.NoError(t, err)
}

func TestValidateJSONString_InvalidDocument(t *testing.T) {
	err := ValidateJSONString(learnerSchema, `[{"name": "Python", "proficiency": "wizard"}]`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "proficiency")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(learnerSchema, `[{"name":`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "schema.json")
	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(learnerSchema), 0o644))
	require.NoError(t, os.WriteFile(docPath, []byte(`[{"name": "SQL", "proficiency": "expert"}]`), 0o644))

	assert.NoError(t, ValidateFile(schemaPath, docPath))

	require.NoError(t, os.WriteFile(docPath, []byte(`[{"proficiency": "expert"}]`), 0o644))
	err := ValidateFile(schemaPath, docPath)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	// Tests run from the package directory; the shipped schemas live two
	// levels up.
	path := ResolveSchemaPath(filepath.Join("schemas", "role_skills.schema.json"))
	require.NotEmpty(t, path)
	assert.FileExists(t, path)
}

func TestResolveSchemaPath_MissingSchema(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "no_such.schema.json")))
}
