package mining

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/inventory"
	"github.com/osse101/IdleMiner_Go/internal/loot"
)

// fixedSource returns the same draw forever.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

const (
	alwaysDrop = fixedSource(0)
	neverDrop  = fixedSource(0.9999)
)

type stubItems struct {
	items map[string]*domain.Item
	err   error
}

func (s *stubItems) ResolveItem(_ context.Context, name string) (*domain.Item, error) {
	if s.err != nil {
		return nil, s.err
	}
	item, ok := s.items[name]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func testCatalog(t *testing.T) *StaticCatalog {
	t.Helper()
	c, err := NewCatalog([]domain.MineDefinition{
		{ID: "copper", Name: "Copper Mine", RequiredLevel: 1, StaminaCost: 5, Loot: []domain.LootEntry{{Item: "A", Chance: 80}}},
		{ID: "deep", Name: "Deep Mine", RequiredLevel: 10, StaminaCost: 10, Loot: []domain.LootEntry{{Item: "B", Chance: 50}}},
		{ID: "gappy", Name: "Gappy Mine", RequiredLevel: 1, StaminaCost: 5, Loot: []domain.LootEntry{
			{Item: "A", Chance: 100},
			{Item: "missing", Chance: 100},
		}},
	})
	require.NoError(t, err)
	return c
}

func testItems() *stubItems {
	return &stubItems{items: map[string]*domain.Item{
		"A": {ID: 1, InternalName: "A", DisplayName: "Item A", Category: domain.CategoryMaterial, Stackable: true},
		"B": {ID: 2, InternalName: "B", DisplayName: "Item B", Category: domain.CategoryMaterial, Stackable: true},
	}}
}

func newTestEngine(t *testing.T, src loot.Source) *Engine {
	t.Helper()
	return NewEngine(testCatalog(t), testItems(), loot.NewRoller(src), DefaultConfig())
}

func newTestPlayer() *domain.Player {
	p := domain.NewPlayer("p1", "miner", t0)
	p.Mining.OfflineMineID = "copper"
	return p
}

func TestMineOnce_AlwaysSucceeds(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()

	res, err := e.MineOnce(context.Background(), p, "copper", t0)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, res.Drops)
	assert.Equal(t, 5, res.StaminaSpent)
	assert.Equal(t, 95, res.StaminaRemaining)
	assert.Equal(t, 95, p.Mining.Stamina)
	assert.Equal(t, t0, p.Mining.LastMiningTime)
	assert.Equal(t, t0, p.Mining.LastStaminaUpdate)
	assert.Equal(t, 1, inventory.Count(&p.Inventory, 1))
}

func TestMineOnce_NoDrops(t *testing.T) {
	e := newTestEngine(t, neverDrop)
	p := newTestPlayer()

	res, err := e.MineOnce(context.Background(), p, "copper", t0)
	require.NoError(t, err)

	assert.Empty(t, res.Drops)
	assert.Equal(t, 95, p.Mining.Stamina)
	assert.Empty(t, p.Inventory.Slots)
}

func TestMineOnce_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		mineID  string
		setup   func(p *domain.Player)
		wantErr error
	}{
		{name: "unknown mine", mineID: "nowhere", wantErr: domain.ErrUnknownMine},
		{name: "level too low", mineID: "deep", wantErr: domain.ErrLevelTooLow},
		{
			name:    "insufficient stamina",
			mineID:  "copper",
			setup:   func(p *domain.Player) { p.Mining.Stamina = 4 },
			wantErr: domain.ErrInsufficientStamina,
		},
		{
			name:   "unknown mine wins over level",
			mineID: "nowhere",
			setup: func(p *domain.Player) {
				p.MiningLevel = 0
				p.Mining.Stamina = 0
			},
			wantErr: domain.ErrUnknownMine,
		},
		{
			name:    "level wins over stamina",
			mineID:  "deep",
			setup:   func(p *domain.Player) { p.Mining.Stamina = 0 },
			wantErr: domain.ErrLevelTooLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, alwaysDrop)
			p := newTestPlayer()
			if tt.setup != nil {
				tt.setup(p)
			}
			before := *p
			beforeSlots := len(p.Inventory.Slots)

			_, err := e.MineOnce(context.Background(), p, tt.mineID, t0.Add(time.Minute))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domain.IsValidation(err))

			assert.Equal(t, before.Mining, p.Mining)
			assert.Len(t, p.Inventory.Slots, beforeSlots)
		})
	}
}

func TestMineOnce_LevelTooLowMessage(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	_, err := e.MineOnce(context.Background(), newTestPlayer(), "deep", t0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires mining level 10")
}

func TestMineOnce_SkipsMissingCatalogItems(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()

	res, err := e.MineOnce(context.Background(), p, "gappy", t0)
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, res.Drops)
	assert.Equal(t, []string{"missing"}, res.SkippedItems)
	assert.Equal(t, 95, p.Mining.Stamina)
}

func TestMineOnce_ResolverFailureLeavesPlayerUntouched(t *testing.T) {
	items := testItems()
	items.err = errors.New("connection reset")
	e := NewEngine(testCatalog(t), items, loot.NewRoller(alwaysDrop), DefaultConfig())
	p := newTestPlayer()

	_, err := e.MineOnce(context.Background(), p, "copper", t0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 100, p.Mining.Stamina)
	assert.Empty(t, p.Inventory.Slots)
}

func TestMineOnce_RegeneratesBeforeCheck(t *testing.T) {
	e := newTestEngine(t, neverDrop)
	p := newTestPlayer()
	p.Mining.Stamina = 0

	// 12h window over 100 points: one point per 7.2 minutes.
	res, err := e.MineOnce(context.Background(), p, "copper", t0.Add(36*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, res.StaminaRemaining)
	assert.Equal(t, t0.Add(36*time.Minute), p.Mining.LastStaminaUpdate)
}

func TestStartContinuous(t *testing.T) {
	t.Run("starts without stamina check", func(t *testing.T) {
		e := newTestEngine(t, alwaysDrop)
		p := newTestPlayer()
		p.Mining.Stamina = 0

		require.NoError(t, e.StartContinuous(p, "copper", t0))
		assert.True(t, p.Mining.ContinuousActive)
		assert.Equal(t, "copper", p.Mining.ContinuousMineID)
		assert.Equal(t, t0, p.Mining.ContinuousStartedAt)
		assert.Equal(t, t0, p.Mining.LastMiningTime)
	})

	t.Run("already mining", func(t *testing.T) {
		e := newTestEngine(t, alwaysDrop)
		p := newTestPlayer()
		require.NoError(t, e.StartContinuous(p, "copper", t0))

		err := e.StartContinuous(p, "copper", t0.Add(time.Second))
		assert.ErrorIs(t, err, domain.ErrAlreadyMining)
		assert.Equal(t, t0, p.Mining.ContinuousStartedAt)
	})

	t.Run("unknown mine", func(t *testing.T) {
		e := newTestEngine(t, alwaysDrop)
		p := newTestPlayer()
		assert.ErrorIs(t, e.StartContinuous(p, "nowhere", t0), domain.ErrUnknownMine)
		assert.False(t, p.Mining.ContinuousActive)
	})

	t.Run("level too low", func(t *testing.T) {
		e := newTestEngine(t, alwaysDrop)
		p := newTestPlayer()
		assert.ErrorIs(t, e.StartContinuous(p, "deep", t0), domain.ErrLevelTooLow)
		assert.False(t, p.Mining.ContinuousActive)
	})
}

func TestStopContinuous(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	require.NoError(t, e.StartContinuous(p, "copper", t0))

	assert.True(t, e.StopContinuous(p, t0.Add(time.Minute)))
	assert.False(t, p.Mining.ContinuousActive)
	assert.Empty(t, p.Mining.ContinuousMineID)
	assert.True(t, p.Mining.ContinuousStartedAt.IsZero())

	assert.Equal(t, t0.Add(time.Minute), p.Mining.LastOfflineCheck)

	assert.False(t, e.StopContinuous(p, t0.Add(2*time.Minute)), "second stop is a no-op")
	assert.Equal(t, t0.Add(time.Minute), p.Mining.LastOfflineCheck)
}

func TestSettleContinuous_StaminaBoundAutoStop(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	p.Mining.Stamina = 12
	require.NoError(t, e.StartContinuous(p, "copper", t0))

	res, err := e.SettleContinuous(context.Background(), p, t0.Add(5000*time.Millisecond))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 10, res.StaminaSpent)
	assert.Equal(t, 2, res.StaminaRemaining)
	assert.False(t, res.StillMining)
	assert.Equal(t, domain.StopReasonInsufficientStamina, res.StopReason)
	assert.Equal(t, 3, res.StaminaShortfall)
	assert.Equal(t, map[string]int{"A": 2}, res.ItemsGained)

	assert.Equal(t, 2, p.Mining.Stamina)
	assert.False(t, p.Mining.ContinuousActive)
	assert.Equal(t, 2, inventory.Count(&p.Inventory, 1))
	assert.Equal(t, t0.Add(5*time.Second), p.Mining.LastMiningTime)
}

func TestSettleContinuous_ReanchorsAfterAttempts(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	require.NoError(t, e.StartContinuous(p, "copper", t0))
	ctx := context.Background()

	res, err := e.SettleContinuous(ctx, p, t0.Add(5*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempts)
	assert.True(t, res.StillMining)
	assert.Equal(t, t0.Add(5*time.Second), p.Mining.ContinuousStartedAt)

	// One second after the anchor: not enough for a whole attempt, anchor kept.
	res, err = e.SettleContinuous(ctx, p, t0.Add(6*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Attempts)
	assert.True(t, res.StillMining)
	assert.Equal(t, t0.Add(5*time.Second), p.Mining.ContinuousStartedAt)

	res, err = e.SettleContinuous(ctx, p, t0.Add(7*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, t0.Add(7*time.Second), p.Mining.ContinuousStartedAt)
	assert.Equal(t, 85, p.Mining.Stamina)
}

func TestSettleContinuous_ExhaustedStaminaStopsWithShortfall(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	p.Mining.Stamina = 3
	require.NoError(t, e.StartContinuous(p, "copper", t0))

	res, err := e.SettleContinuous(context.Background(), p, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 0, res.Attempts)
	assert.False(t, res.StillMining)
	assert.Equal(t, domain.StopReasonInsufficientStamina, res.StopReason)
	assert.Equal(t, 2, res.StaminaShortfall)
	assert.Equal(t, 3, p.Mining.Stamina)
	assert.False(t, p.Mining.ContinuousActive)
}

func TestSettleContinuous_AttemptCountIsMinOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		stamina  int
		elapsed  time.Duration
		attempts int
	}{
		{name: "time bound", level: 1, stamina: 100, elapsed: 9 * time.Second, attempts: 4},
		{name: "stamina bound", level: 1, stamina: 20, elapsed: time.Minute, attempts: 4},
		{name: "faster at higher level", level: 11, stamina: 100, elapsed: 9 * time.Second, attempts: 9},
		{name: "clock skew", level: 1, stamina: 100, elapsed: -time.Minute, attempts: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, neverDrop)
			p := newTestPlayer()
			p.MiningLevel = tt.level
			p.Mining.Stamina = tt.stamina
			require.NoError(t, e.StartContinuous(p, "copper", t0))
			p.Mining.LastStaminaUpdate = t0.Add(tt.elapsed)

			res, err := e.SettleContinuous(context.Background(), p, t0.Add(tt.elapsed))
			require.NoError(t, err)
			assert.Equal(t, tt.attempts, res.Attempts)
			assert.Equal(t, tt.stamina-tt.attempts*5, p.Mining.Stamina)
			assert.GreaterOrEqual(t, p.Mining.Stamina, 0)
		})
	}
}

func TestSettleContinuous_NotMining(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	_, err := e.SettleContinuous(context.Background(), newTestPlayer(), t0)
	assert.ErrorIs(t, err, domain.ErrNotMining)
}

func TestSettleContinuous_MineUnavailable(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	p.Mining.ContinuousActive = true
	p.Mining.ContinuousMineID = "retired"
	p.Mining.ContinuousStartedAt = t0

	res, err := e.SettleContinuous(context.Background(), p, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, domain.StopReasonMineUnavailable, res.StopReason)
	assert.False(t, res.StillMining)
	assert.False(t, p.Mining.ContinuousActive)
	assert.Equal(t, 100, p.Mining.Stamina)
}

func TestSettleOffline_TooSoonIsNoOp(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	before := p.Mining

	res, err := e.SettleOffline(context.Background(), p, t0.Add(30*time.Second))
	require.NoError(t, err)

	assert.Equal(t, domain.OfflineStatusTooSoon, res.Status)
	assert.Equal(t, 0, res.Attempts)
	assert.Equal(t, before, p.Mining)
	assert.Empty(t, p.Inventory.Slots)
}

func TestSettleOffline_Disabled(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *domain.Player)
	}{
		{name: "flag off", setup: func(p *domain.Player) { p.Mining.OfflineEnabled = false }},
		{name: "no mine", setup: func(p *domain.Player) { p.Mining.OfflineMineID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, alwaysDrop)
			p := newTestPlayer()
			tt.setup(p)
			before := p.Mining

			res, err := e.SettleOffline(context.Background(), p, t0.Add(time.Hour))
			require.NoError(t, err)
			assert.Equal(t, domain.OfflineStatusDisabled, res.Status)
			assert.Equal(t, before, p.Mining)
		})
	}
}

func TestSettleOffline_ClampsToLookback(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	now := t0.Add(72 * time.Hour)

	res, err := e.SettleOffline(context.Background(), p, now)
	require.NoError(t, err)

	assert.Equal(t, domain.OfflineStatusSettled, res.Status)
	assert.Equal(t, int64(24*60*60), res.ElapsedSeconds)
	// Stamina regenerated to full and bounds the attempts.
	assert.Equal(t, 20, res.Attempts)
	assert.Equal(t, map[string]int{"A": 20}, res.ItemsGained)
	assert.Equal(t, 0, p.Mining.Stamina)
	assert.Equal(t, now, p.Mining.LastOfflineCheck)
	assert.Equal(t, now, p.Mining.LastMiningTime)
	assert.Equal(t, now, p.Mining.LastStaminaUpdate)
}

func TestSettleOffline_HalvedChance(t *testing.T) {
	// Draw of 50 passes an 80% entry at full odds but not at half odds.
	e := newTestEngine(t, fixedSource(0.5))
	p := newTestPlayer()

	res, err := e.SettleOffline(context.Background(), p, t0.Add(10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 20, res.Attempts)
	assert.Empty(t, res.ItemsGained)

	mined, err := e.MineOnce(context.Background(), newTestPlayer(), "copper", t0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, mined.Drops)
}

func TestSettleOffline_StampsEvenWithoutAttempts(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	p.Mining.Stamina = 0
	now := t0.Add(2 * time.Minute)

	res, err := e.SettleOffline(context.Background(), p, now)
	require.NoError(t, err)
	assert.Equal(t, domain.OfflineStatusSettled, res.Status)
	assert.Equal(t, 0, res.Attempts)
	assert.Equal(t, now, p.Mining.LastOfflineCheck)
	assert.Equal(t, now, p.Mining.LastMiningTime)

	// The same window is not paid twice.
	res, err = e.SettleOffline(context.Background(), p, now.Add(10*time.Second))
	require.NoError(t, err)
	assert.Equal(t, domain.OfflineStatusTooSoon, res.Status)
}

func TestSettleOffline_SupersededByContinuous(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	require.NoError(t, e.StartContinuous(p, "copper", t0))
	now := t0.Add(time.Hour)

	res, err := e.SettleOffline(context.Background(), p, now)
	require.NoError(t, err)
	assert.Equal(t, domain.OfflineStatusSuperseded, res.Status)
	assert.Equal(t, 0, res.Attempts)
	assert.Equal(t, now, p.Mining.LastOfflineCheck)
	assert.Equal(t, 100, p.Mining.Stamina)
}

func TestSettleOffline_StartsAfterContinuousSession(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	ctx := context.Background()

	t.Run("manual stop", func(t *testing.T) {
		p := newTestPlayer()
		require.NoError(t, e.StartContinuous(p, "copper", t0))

		settled, err := e.SettleContinuous(ctx, p, t0.Add(10*time.Second))
		require.NoError(t, err)
		require.Equal(t, 5, settled.Attempts)

		stoppedAt := t0.Add(10 * time.Second)
		require.True(t, e.StopContinuous(p, stoppedAt))
		assert.Equal(t, stoppedAt, p.Mining.LastOfflineCheck)

		// Only 60s have passed since the session ended.
		res, err := e.SettleOffline(ctx, p, t0.Add(70*time.Second))
		require.NoError(t, err)
		assert.Equal(t, domain.OfflineStatusSettled, res.Status)
		assert.Equal(t, int64(60), res.ElapsedSeconds)
		assert.Equal(t, 15, res.Attempts)

		res, err = e.SettleOffline(ctx, p, t0.Add(65*time.Second))
		require.NoError(t, err)
		assert.Equal(t, domain.OfflineStatusTooSoon, res.Status)
	})

	t.Run("auto stop on exhaustion", func(t *testing.T) {
		p := newTestPlayer()
		p.Mining.Stamina = 12
		require.NoError(t, e.StartContinuous(p, "copper", t0))

		endedAt := t0.Add(5 * time.Second)
		settled, err := e.SettleContinuous(ctx, p, endedAt)
		require.NoError(t, err)
		require.False(t, settled.StillMining)
		assert.Equal(t, endedAt, p.Mining.LastOfflineCheck)

		res, err := e.SettleOffline(ctx, p, endedAt.Add(30*time.Second))
		require.NoError(t, err)
		assert.Equal(t, domain.OfflineStatusTooSoon, res.Status)
	})

	t.Run("stopped by reconcile", func(t *testing.T) {
		p := newTestPlayer()
		require.NoError(t, e.StartContinuous(p, "copper", t0))
		p.Mining.Stamina = 0
		p.Mining.LastStaminaUpdate = t0.Add(time.Minute)

		reconciledAt := t0.Add(time.Minute)
		require.Equal(t, domain.StopReasonInsufficientStamina, e.ValidateState(ctx, p, reconciledAt))
		assert.Equal(t, reconciledAt, p.Mining.LastOfflineCheck)
	})
}

func TestSettleOffline_UnknownMine(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	p.Mining.OfflineMineID = "retired"

	_, err := e.SettleOffline(context.Background(), p, t0.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrUnknownMine)
	assert.Equal(t, t0, p.Mining.LastOfflineCheck)
}

func TestValidateState(t *testing.T) {
	t.Run("stops session without stamina", func(t *testing.T) {
		e := newTestEngine(t, alwaysDrop)
		p := newTestPlayer()
		require.NoError(t, e.StartContinuous(p, "copper", t0))
		p.Mining.Stamina = 4

		reason := e.ValidateState(context.Background(), p, t0)
		assert.Equal(t, domain.StopReasonInsufficientStamina, reason)
		assert.False(t, p.Mining.ContinuousActive)

		after := p.Mining
		assert.Equal(t, domain.StopReasonNone, e.ValidateState(context.Background(), p, t0))
		assert.Equal(t, after, p.Mining)
	})

	t.Run("keeps healthy session", func(t *testing.T) {
		e := newTestEngine(t, alwaysDrop)
		p := newTestPlayer()
		require.NoError(t, e.StartContinuous(p, "copper", t0))

		assert.Equal(t, domain.StopReasonNone, e.ValidateState(context.Background(), p, t0.Add(time.Second)))
		assert.True(t, p.Mining.ContinuousActive)
	})

	t.Run("regenerates stamina", func(t *testing.T) {
		e := newTestEngine(t, alwaysDrop)
		p := newTestPlayer()
		p.Mining.Stamina = 0

		e.ValidateState(context.Background(), p, t0.Add(6*time.Hour))
		assert.Equal(t, 50, p.Mining.Stamina)
		assert.Equal(t, t0.Add(6*time.Hour), p.Mining.LastStaminaUpdate)
	})
}

func TestConfigureOffline(t *testing.T) {
	on, off := true, false
	copper, deep, nowhere := "copper", "deep", "nowhere"

	tests := []struct {
		name        string
		setup       func(p *domain.Player)
		settings    domain.OfflineSettings
		wantErr     error
		wantEnabled bool
		wantMine    string
	}{
		{name: "disable", settings: domain.OfflineSettings{Enabled: &off}, wantEnabled: false, wantMine: "copper"},
		{name: "unknown mine", settings: domain.OfflineSettings{MineID: &nowhere}, wantErr: domain.ErrUnknownMine},
		{name: "level too low", settings: domain.OfflineSettings{MineID: &deep}, wantErr: domain.ErrLevelTooLow},
		{
			name:     "enable without mine",
			setup:    func(p *domain.Player) { p.Mining.OfflineMineID = ""; p.Mining.OfflineEnabled = false },
			settings: domain.OfflineSettings{Enabled: &on},
			wantErr:  domain.ErrOfflineMineNotChosen,
		},
		{
			name:        "enable with mine",
			setup:       func(p *domain.Player) { p.Mining.OfflineMineID = ""; p.Mining.OfflineEnabled = false },
			settings:    domain.OfflineSettings{Enabled: &on, MineID: &copper},
			wantEnabled: true,
			wantMine:    "copper",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, alwaysDrop)
			p := newTestPlayer()
			if tt.setup != nil {
				tt.setup(p)
			}
			before := p.Mining

			err := e.ConfigureOffline(p, tt.settings)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, p.Mining)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnabled, p.Mining.OfflineEnabled)
			assert.Equal(t, tt.wantMine, p.Mining.OfflineMineID)
		})
	}
}

func TestStatus(t *testing.T) {
	e := newTestEngine(t, alwaysDrop)
	p := newTestPlayer()
	p.MiningLevel = 3
	require.NoError(t, e.StartContinuous(p, "copper", t0))

	status := e.Status(context.Background(), p, t0.Add(time.Second))
	assert.True(t, status.ContinuousActive)
	assert.Equal(t, "copper", status.ContinuousMineID)
	require.NotNil(t, status.ContinuousStartedAt)
	assert.Equal(t, t0, *status.ContinuousStartedAt)
	assert.Equal(t, 1800*time.Millisecond, status.AttemptDuration)
	assert.Equal(t, 100, status.Stamina)
	assert.True(t, status.OfflineEnabled)
}
