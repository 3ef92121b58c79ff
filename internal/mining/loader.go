package mining

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/validation"
)

// Config file locations
const (
	ConfigPathMines = "configs/mines.json"
	SchemaPathMines = "configs/schemas/mines.schema.json"
)

// MinesConfig is the on-disk shape of the mine catalog.
type MinesConfig struct {
	Version string                  `json:"version" jsonschema:"minLength=1"`
	Mines   []domain.MineDefinition `json:"mines" jsonschema:"minItems=1"`
}

// LoadCatalog reads and validates a mine catalog file. A missing file falls
// back to the built-in table; a present but invalid file is an error.
func LoadCatalog(path, schemaPath string, v validation.SchemaValidator) (*StaticCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("Mine catalog file not found, using built-in mines", "path", path)
			return NewDefaultCatalog(), nil
		}
		return nil, fmt.Errorf("failed to read mine catalog %s: %w", path, err)
	}

	if v != nil {
		if err := v.ValidateBytes(data, schemaPath); err != nil {
			return nil, fmt.Errorf("mine catalog %s failed schema validation: %w", path, err)
		}
	}

	var cfg MinesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse mine catalog %s: %w", path, err)
	}

	catalog, err := NewCatalog(cfg.Mines)
	if err != nil {
		return nil, fmt.Errorf("invalid mine catalog %s: %w", path, err)
	}

	slog.Info("Mine catalog loaded", "path", path, "version", cfg.Version, "mines", len(cfg.Mines))
	return catalog, nil
}
