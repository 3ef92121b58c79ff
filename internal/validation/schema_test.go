package validation

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"chance": {"type": "number", "minimum": 0, "maximum": 100}
	},
	"required": ["id"]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateBytes(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "entry.schema.json", testSchema)
	v := NewSchemaValidator()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "valid", data: `{"id": "copper", "chance": 80}`},
		{name: "optional field missing", data: `{"id": "copper"}`},
		{name: "required missing", data: `{"chance": 5}`, wantErr: "required"},
		{name: "chance above range", data: `{"id": "copper", "chance": 101}`, wantErr: "/chance"},
		{name: "wrong type", data: `{"id": 7}`, wantErr: "/id"},
		{name: "malformed", data: `{"id": }`, wantErr: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateBytes_SchemaViolationIsTyped(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "entry.schema.json", testSchema)
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), schemaPath)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "entry.schema.json", testSchema)
	good := writeFile(t, dir, "good.json", `{"id": "iron"}`)
	v := NewSchemaValidator()

	assert.NoError(t, v.ValidateFile(good, schemaPath))

	err := v.ValidateFile(filepath.Join(dir, "absent.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestValidateBytes_MissingSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateBytes([]byte(`{}`), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema")
}

func TestValidateBytes_ConcurrentCompile(t *testing.T) {
	schemaPath := writeFile(t, t.TempDir(), "entry.schema.json", testSchema)
	v := NewSchemaValidator()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- v.ValidateBytes([]byte(`{"id": "gold"}`), schemaPath)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestResolvePath_FindsRepoFile(t *testing.T) {
	path, err := ResolvePath("go.mod")
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = ResolvePath("configs/definitely-missing.json")
	assert.Error(t, err)
}
