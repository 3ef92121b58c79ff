package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := newRegistry()

	names := make([]string, 0)
	for _, cmd := range r.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"migrate", "simulate", "validate-config", "wait-for-db"}, names)

	_, ok := r.Get("simulate")
	assert.True(t, ok)
	_, ok = r.Get("deploy")
	assert.False(t, ok)

	var buf bytes.Buffer
	r.writeHelp(&buf)
	assert.Contains(t, buf.String(), "validate-config")
}

func TestSimulate(t *testing.T) {
	tests := []struct {
		name     string
		opts     simOptions
		contains []string
		wantErr  bool
	}{
		{
			name:     "continuous ten seconds",
			opts:     simOptions{Mode: "continuous", MineID: "copper", Level: 1, Elapsed: 10 * time.Second, Seed: 1},
			contains: []string{"attempts: 5", "stamina left: 75"},
		},
		{
			name:     "continuous until exhausted",
			opts:     simOptions{Mode: "continuous", MineID: "copper", Level: 1, Elapsed: time.Hour, Seed: 1},
			contains: []string{"attempts: 20", "stamina left: 0", "stopped: insufficient_stamina"},
		},
		{
			name:     "offline too soon",
			opts:     simOptions{Mode: "offline", MineID: "copper", Level: 1, Elapsed: 30 * time.Second, Seed: 1},
			contains: []string{"attempts: 0", "status: too_soon", "0 items"},
		},
		{
			name:    "level gate",
			opts:    simOptions{Mode: "continuous", MineID: "gold", Level: 1, Elapsed: time.Hour, Seed: 1},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			opts:    simOptions{Mode: "turbo", MineID: "copper", Level: 1, Elapsed: time.Hour, Seed: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := simulate(&buf, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestSimulate_SeedIsReproducible(t *testing.T) {
	opts := simOptions{Mode: "continuous", MineID: "copper", Level: 1, Elapsed: time.Hour, Seed: 99}

	var a, b bytes.Buffer
	require.NoError(t, simulate(&a, opts))
	require.NoError(t, simulate(&b, opts))
	assert.Equal(t, a.String(), b.String())
}

func TestValidateMines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, validateMines(&buf, "configs/mines.json"))
	assert.Contains(t, buf.String(), "4 mines valid, 0 unknown drop items")

	assert.Error(t, validateMines(&buf, "configs/does-not-exist.json"))
}
