package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/IdleMiner_Go/internal/logger"
	"github.com/osse101/IdleMiner_Go/internal/mining"
	"github.com/osse101/IdleMiner_Go/internal/stamina"
)

// Config holds the application configuration
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	ServiceName string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	MinesConfigPath     string
	FullRegenWindow     time.Duration
	BaseAttemptDuration time.Duration
	MaxOfflineLookback  time.Duration
	MinOfflineElapsed   time.Duration

	ItemCacheSize   int
	ItemCacheTTL    time.Duration
	ShutdownTimeout time.Duration

	RateLimitWindow      time.Duration
	RateLimitMaxRequests int

	// LootSeed fixes the drop sequence when non-zero
	LootSeed int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables win either way
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", logger.FormatText),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		ServiceName: getEnv("SERVICE_NAME", logger.DefaultServiceName),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "idleminer"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", time.Hour),

		MinesConfigPath:     getEnv("MINES_CONFIG_PATH", mining.ConfigPathMines),
		FullRegenWindow:     getEnvAsDuration("STAMINA_FULL_REGEN_WINDOW", stamina.DefaultFullRegenWindow),
		BaseAttemptDuration: getEnvAsDuration("MINING_BASE_ATTEMPT_DURATION", mining.DefaultBaseAttemptDuration),
		MaxOfflineLookback:  getEnvAsDuration("OFFLINE_MAX_LOOKBACK", mining.DefaultMaxOfflineLookback),
		MinOfflineElapsed:   getEnvAsDuration("OFFLINE_MIN_ELAPSED", mining.DefaultMinOfflineElapsed),

		ItemCacheSize:   getEnvAsInt("ITEM_CACHE_SIZE", 512),
		ItemCacheTTL:    getEnvAsDuration("ITEM_CACHE_TTL", 10*time.Minute),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		RateLimitWindow:      getEnvAsDuration("RATE_LIMIT_WINDOW", 5*time.Minute),
		RateLimitMaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 1000),
		LootSeed:             getEnvAsInt("LOOT_SEED", 0),
	}
	cfg.TrustedProxies = getEnvAsList("TRUSTED_PROXIES")

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses Go duration syntax ("90s", "12h"), falling back to defaultValue
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// LoggerConfig projects the logging settings.
func (c *Config) LoggerConfig() logger.Config {
	lc := logger.ForEnvironment(c.Environment)
	lc.Level = c.LogLevel
	lc.Format = c.LogFormat
	lc.ServiceName = c.ServiceName
	lc.Version = c.Version
	return lc
}

// MiningConfig projects the engine tunables.
func (c *Config) MiningConfig() mining.Config {
	return mining.Config{
		BaseAttemptDuration:  c.BaseAttemptDuration,
		FullRegenWindow:      c.FullRegenWindow,
		MaxOfflineLookback:   c.MaxOfflineLookback,
		MinOfflineElapsed:    c.MinOfflineElapsed,
		OfflineChanceDivisor: mining.DefaultConfig().OfflineChanceDivisor,
	}
}
