package stamina

import (
	"time"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// DefaultFullRegenWindow is how long an empty pool takes to refill.
const DefaultFullRegenWindow = 12 * time.Hour

// Regenerator refills stamina linearly over a fixed window.
type Regenerator struct {
	windowMs int64
}

// NewRegenerator creates a Regenerator; a non-positive window uses the default.
func NewRegenerator(window time.Duration) *Regenerator {
	if window <= 0 {
		window = DefaultFullRegenWindow
	}
	ms := window.Milliseconds()
	if ms <= 0 {
		ms = 1
	}
	return &Regenerator{windowMs: ms}
}

// Window returns the full-refill window.
func (r *Regenerator) Window() time.Duration {
	return time.Duration(r.windowMs) * time.Millisecond
}

// Regenerate returns the stamina after the time between lastUpdate and now,
// and the new update timestamp (always now). Gains are floored to whole points
// and capped at max; a pool already at or above max is left as is. A clock that
// went backwards counts as zero elapsed time.
func (r *Regenerator) Regenerate(current, max int, lastUpdate, now time.Time) (int, time.Time) {
	if current >= max {
		return current, now
	}

	elapsedMs := now.Sub(lastUpdate).Milliseconds()
	if elapsedMs <= 0 || max <= 0 {
		return current, now
	}

	// A full window refills any pool; clamping keeps the product in range.
	elapsedMs = min(elapsedMs, r.windowMs)
	gained := elapsedMs * int64(max) / r.windowMs
	next := int64(current) + gained
	if next > int64(max) {
		next = int64(max)
	}
	return int(next), now
}

// Apply regenerates the stamina held in state in place.
func (r *Regenerator) Apply(state *domain.MiningState, now time.Time) {
	state.Stamina, state.LastStaminaUpdate = r.Regenerate(state.Stamina, state.MaxStamina, state.LastStaminaUpdate, now)
}
