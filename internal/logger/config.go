package logger

import (
	"log/slog"
	"strings"
)

// Log formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Deployment environments with their own logging presets
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// DefaultServiceName is used when no service name is configured.
const DefaultServiceName = "idle-miner"

// Config controls handler format, level and the attributes stamped on every record.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// ForEnvironment returns the preset for env. Prod and staging log JSON at
// info; anything else is treated as a developer machine.
func ForEnvironment(env string) Config {
	cfg := Config{
		ServiceName: DefaultServiceName,
		Version:     "dev",
		Environment: env,
	}
	switch env {
	case EnvProd, EnvStaging:
		cfg.Level = "info"
		cfg.Format = FormatJSON
	default:
		cfg.Level = "debug"
		cfg.Format = FormatText
		cfg.AddSource = true
	}
	return cfg
}

// DefaultConfig is used before the app config has been loaded.
func DefaultConfig() Config {
	cfg := ForEnvironment(EnvDev)
	cfg.Level = "info"
	cfg.AddSource = false
	return cfg
}

// LogLevel parses Level, accepting "warning" as an alias. Unknown values
// log at info.
func (c Config) LogLevel() slog.Level {
	name := strings.ToLower(strings.TrimSpace(c.Level))
	if name == "warning" {
		name = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}

// BaseAttributes are added to every record.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String("service", c.ServiceName),
		slog.String("version", c.Version),
		slog.String("environment", c.Environment),
	}
}
