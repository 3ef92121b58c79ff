package stamina

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

func TestRegenerate(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegenerator(12 * time.Hour)

	tests := []struct {
		name     string
		current  int
		max      int
		elapsed  time.Duration
		expected int
	}{
		{name: "no time passed", current: 40, max: 100, elapsed: 0, expected: 40},
		{name: "short gap floors to zero", current: 40, max: 100, elapsed: 5 * time.Second, expected: 40},
		{name: "one point takes 7.2 minutes", current: 40, max: 100, elapsed: 432 * time.Second, expected: 41},
		{name: "half window refills half", current: 0, max: 100, elapsed: 6 * time.Hour, expected: 50},
		{name: "full window refills all", current: 0, max: 100, elapsed: 12 * time.Hour, expected: 100},
		{name: "long gap caps at max", current: 10, max: 100, elapsed: 72 * time.Hour, expected: 100},
		{name: "at max stays put", current: 100, max: 100, elapsed: time.Hour, expected: 100},
		{name: "above max is not clamped down", current: 120, max: 100, elapsed: time.Hour, expected: 120},
		{name: "clock skew counts as zero", current: 30, max: 100, elapsed: -time.Hour, expected: 30},
		{name: "huge pool after years away", current: 0, max: math.MaxInt32, elapsed: 200 * 365 * 24 * time.Hour, expected: math.MaxInt32},
		{name: "huge pool half window", current: 0, max: math.MaxInt32, elapsed: 6 * time.Hour, expected: math.MaxInt32 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := base.Add(tt.elapsed)

			got, stamped := r.Regenerate(tt.current, tt.max, base, now)

			assert.Equal(t, tt.expected, got)
			assert.True(t, stamped.Equal(now), "update time is always stamped to now")
		})
	}
}

func TestRegenerate_Properties(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	r := NewRegenerator(0)

	for current := 0; current <= 100; current += 7 {
		for _, elapsed := range []time.Duration{0, time.Millisecond, time.Minute, 3 * time.Hour, 48 * time.Hour} {
			got, _ := r.Regenerate(current, 100, base, base.Add(elapsed))
			assert.GreaterOrEqual(t, got, current)
			assert.LessOrEqual(t, got, 100)
		}
	}
}

func TestApply(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	state := &domain.MiningState{Stamina: 0, MaxStamina: 100, LastStaminaUpdate: base}

	NewRegenerator(12*time.Hour).Apply(state, base.Add(3*time.Hour))

	assert.Equal(t, 25, state.Stamina)
	assert.Equal(t, base.Add(3*time.Hour), state.LastStaminaUpdate)
}

func TestNewRegenerator_DefaultWindow(t *testing.T) {
	assert.Equal(t, DefaultFullRegenWindow, NewRegenerator(-time.Second).Window())
}
