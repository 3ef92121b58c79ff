// Package loot rolls independent per-entry drops against a mine's table.
package loot

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// Chance divisors per mining path.
const (
	ActiveChanceDivisor  = 1.0
	OfflineChanceDivisor = 2.0
)

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// Roller draws drops from a shared random source. Safe for concurrent use.
type Roller struct {
	mu  sync.Mutex
	src Source
}

// NewRoller wraps src. A nil source gets a time-seeded PCG generator.
func NewRoller(src Source) *Roller {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.New(rand.NewPCG(seed, seed>>1|1)) //nolint:gosec // Game logic randomness, not security critical
	}
	return &Roller{src: src}
}

// NewSeededRoller returns a Roller whose draws are reproducible for seed.
func NewSeededRoller(seed uint64) *Roller {
	return NewRoller(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))) //nolint:gosec // Game logic randomness, not security critical
}

// Roll performs one attempt: each entry drops independently when a draw in
// [0, 100) lands below chance/divisor. Results keep table order.
func (r *Roller) Roll(table []domain.LootEntry, divisor float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roll(table, divisor)
}

// RollMany performs attempts rolls under a single lock so one settlement's
// draws are contiguous in the source. Returns per-item drop counts.
func (r *Roller) RollMany(table []domain.LootEntry, divisor float64, attempts int) map[string]int {
	counts := make(map[string]int)
	if attempts <= 0 {
		return counts
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := 0; i < attempts; i++ {
		for _, item := range r.roll(table, divisor) {
			counts[item]++
		}
	}
	return counts
}

// roll must be called with r.mu held.
func (r *Roller) roll(table []domain.LootEntry, divisor float64) []string {
	if divisor <= 0 {
		divisor = ActiveChanceDivisor
	}

	drops := make([]string, 0, len(table))
	for _, entry := range table {
		threshold := entry.Chance / divisor
		if r.src.Float64()*100 < threshold {
			drops = append(drops, entry.Item)
		}
	}
	return drops
}
