// Package validation checks config files against JSON schemas before they are loaded.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrSchemaViolation is returned when a document does not satisfy its schema.
var ErrSchemaViolation = errors.New("schema validation failed")

// SchemaValidator validates JSON documents against schema files.
type SchemaValidator interface {
	ValidateFile(dataPath, schemaPath string) error
	ValidateBytes(data []byte, schemaPath string) error
}

// Validator compiles schemas once and reuses them. Safe for concurrent use.
type Validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	compiled map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a Validator.
func NewSchemaValidator() *Validator {
	return &Validator{
		compiler: jsonschema.NewCompiler(),
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile reads dataPath and validates it.
func (v *Validator) ValidateFile(dataPath, schemaPath string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dataPath, err)
	}
	return v.ValidateBytes(data, schemaPath)
}

// ValidateBytes validates a JSON document held in memory.
func (v *Validator) ValidateBytes(data []byte, schemaPath string) error {
	schema, err := v.schema(schemaPath)
	if err != nil {
		return err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON document: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("%w:\n%s", ErrSchemaViolation, strings.Join(describe(verr, nil), "\n"))
		}
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return nil
}

func (v *Validator) schema(schemaPath string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[schemaPath]; ok {
		return s, nil
	}

	resolved, err := ResolvePath(schemaPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", resolved, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", resolved, err)
	}
	if err := v.compiler.AddResource(schemaPath, doc); err != nil {
		return nil, fmt.Errorf("failed to register schema %s: %w", schemaPath, err)
	}

	s, err := v.compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", schemaPath, err)
	}
	v.compiled[schemaPath] = s
	return s, nil
}

// describe flattens a validation error tree into one line per leaf.
func describe(err *jsonschema.ValidationError, lines []string) []string {
	if len(err.Causes) == 0 {
		location := "(root)"
		if len(err.InstanceLocation) > 0 {
			location = "/" + strings.Join(err.InstanceLocation, "/")
		}
		keyword := "schema"
		if err.ErrorKind != nil {
			if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
				keyword = strings.Join(path, ".")
			}
		}
		return append(lines, fmt.Sprintf("  - at %s: %s validation failed", location, keyword))
	}
	for _, cause := range err.Causes {
		lines = describe(cause, lines)
	}
	return lines
}

// ResolvePath finds a repo-relative file by walking up from the working
// directory until it exists or go.mod is reached. Absolute paths are returned as is.
func ResolvePath(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return rel, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for dir := cwd; ; {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("file not found: %s (searched upward from %s)", rel, cwd)
}
