package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// MinAttemptDuration keeps a misconfigured base duration from turning
// settlement into an unbounded loop of sub-millisecond attempts.
const MinAttemptDuration = 100 * time.Millisecond

// RequiredEnvVars must be present in the environment
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// durationEnvVars are parsed with time.ParseDuration; bad values fall back to defaults
var durationEnvVars = []string{
	"STAMINA_FULL_REGEN_WINDOW",
	"MINING_BASE_ATTEMPT_DURATION",
	"OFFLINE_MAX_LOOKBACK",
	"OFFLINE_MIN_ELAPSED",
	"ITEM_CACHE_TTL",
	"RATE_LIMIT_WINDOW",
	"SHUTDOWN_TIMEOUT",
}

// placeholderValues are the example values shipped in .env.example
var placeholderValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); {
	case v == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - add it to your .env file (expected: %s)", ExpectedEnvSchemaVersion)
	case v != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports placeholder secrets
// and unparseable durations, which silently fall back to defaults.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for key, placeholder := range placeholderValues {
		if os.Getenv(key) == placeholder {
			warnings = append(warnings, fmt.Sprintf("%s is still the example value - replace it", key))
		}
	}
	for _, key := range durationEnvVars {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		if d, err := time.ParseDuration(raw); err != nil || d <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a positive duration - using the default", key, raw))
		}
	}
	return warnings, nil
}

// Validate checks relationships between settings that Load parsed
// independently. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.BaseAttemptDuration < MinAttemptDuration {
		errs = append(errs, fmt.Errorf("MINING_BASE_ATTEMPT_DURATION must be at least %s, got %s", MinAttemptDuration, c.BaseAttemptDuration))
	}
	if c.MinOfflineElapsed >= c.MaxOfflineLookback {
		errs = append(errs, fmt.Errorf("OFFLINE_MIN_ELAPSED (%s) must be below OFFLINE_MAX_LOOKBACK (%s)", c.MinOfflineElapsed, c.MaxOfflineLookback))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.ItemCacheSize < 1 {
		errs = append(errs, fmt.Errorf("ITEM_CACHE_SIZE must be positive, got %d", c.ItemCacheSize))
	}
	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			errs = append(errs, fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP address", proxy))
		}
	}

	return errors.Join(errs...)
}
