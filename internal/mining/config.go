package mining

import (
	"math"
	"time"

	"github.com/osse101/IdleMiner_Go/internal/loot"
	"github.com/osse101/IdleMiner_Go/internal/stamina"
)

// Tunable defaults
const (
	DefaultBaseAttemptDuration = 2 * time.Second
	DefaultMaxOfflineLookback  = 24 * time.Hour
	DefaultMinOfflineElapsed   = 60 * time.Second

	// LevelSpeedup is how much each mining level above 1 shortens an attempt.
	LevelSpeedup = 0.05
	// MinDurationFactor floors the level speedup.
	MinDurationFactor = 0.1
)

// Config holds the engine tunables.
type Config struct {
	BaseAttemptDuration  time.Duration
	FullRegenWindow      time.Duration
	MaxOfflineLookback   time.Duration
	MinOfflineElapsed    time.Duration
	OfflineChanceDivisor float64
}

// DefaultConfig returns the standard tunables.
func DefaultConfig() Config {
	return Config{
		BaseAttemptDuration:  DefaultBaseAttemptDuration,
		FullRegenWindow:      stamina.DefaultFullRegenWindow,
		MaxOfflineLookback:   DefaultMaxOfflineLookback,
		MinOfflineElapsed:    DefaultMinOfflineElapsed,
		OfflineChanceDivisor: loot.OfflineChanceDivisor,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BaseAttemptDuration <= 0 {
		c.BaseAttemptDuration = d.BaseAttemptDuration
	}
	if c.FullRegenWindow <= 0 {
		c.FullRegenWindow = d.FullRegenWindow
	}
	if c.MaxOfflineLookback <= 0 {
		c.MaxOfflineLookback = d.MaxOfflineLookback
	}
	if c.MinOfflineElapsed <= 0 {
		c.MinOfflineElapsed = d.MinOfflineElapsed
	}
	if c.OfflineChanceDivisor <= 0 {
		c.OfflineChanceDivisor = d.OfflineChanceDivisor
	}
	return c
}

// AttemptDuration returns how long one attempt takes at the given mining
// level: base * max(0.1, 1 - 0.05*(level-1)), rounded to whole milliseconds.
// Levels below 1 are treated as 1.
func AttemptDuration(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	factor := math.Max(MinDurationFactor, 1-LevelSpeedup*float64(level-1))
	ms := math.Round(float64(base.Milliseconds()) * factor)
	if ms < 1 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}
