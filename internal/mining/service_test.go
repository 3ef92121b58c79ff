package mining_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleMiner_Go/internal/clock"
	"github.com/osse101/IdleMiner_Go/internal/concurrency"
	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/inventory"
	"github.com/osse101/IdleMiner_Go/internal/item"
	"github.com/osse101/IdleMiner_Go/internal/loot"
	"github.com/osse101/IdleMiner_Go/internal/mining"
	"github.com/osse101/IdleMiner_Go/internal/repository/memory"
)

type alwaysSource struct{}

func (alwaysSource) Float64() float64 { return 0 }

var start = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	svc   mining.Service
	repo  *memory.PlayerRepository
	clock *clock.SimulatedClock
}

func setup(t *testing.T) *fixture {
	t.Helper()
	repo := memory.NewPlayerRepository()
	clk := clock.NewSimulatedClock(start)
	engine := mining.NewEngine(
		mining.NewDefaultCatalog(),
		item.NewMemoryResolver(item.DefaultItems()),
		loot.NewRoller(alwaysSource{}),
		mining.DefaultConfig(),
	)
	require.NoError(t, repo.CreatePlayer(context.Background(), domain.NewPlayer("p1", "miner", start)))

	return &fixture{
		svc:   mining.NewService(repo, engine, concurrency.NewLockManager(), clk),
		repo:  repo,
		clock: clk,
	}
}

func (f *fixture) player(t *testing.T) *domain.Player {
	t.Helper()
	p, err := f.repo.GetPlayer(context.Background(), "p1")
	require.NoError(t, err)
	return p
}

func TestService_MineOncePersists(t *testing.T) {
	f := setup(t)

	res, err := f.svc.MineOnce(context.Background(), "p1", "copper")
	require.NoError(t, err)
	assert.Equal(t, []string{"copper_ore", "tin_ore", "low_spirit_stone"}, res.Drops)

	p := f.player(t)
	assert.Equal(t, 95, p.Mining.Stamina)
	assert.Equal(t, 1, inventory.Count(&p.Inventory, 1))
	assert.Equal(t, 1, inventory.Count(&p.Inventory, 8))
}

func TestService_ValidationFailureWritesNothing(t *testing.T) {
	f := setup(t)
	before := f.player(t)

	_, err := f.svc.MineOnce(context.Background(), "p1", "gold")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLevelTooLow)

	assert.Equal(t, before, f.player(t))
}

func TestService_UnknownPlayer(t *testing.T) {
	f := setup(t)
	_, err := f.svc.GetStatus(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func TestService_PersistFailure(t *testing.T) {
	f := setup(t)
	f.repo.UpdateErr = errors.New("disk full")

	_, err := f.svc.MineOnce(context.Background(), "p1", "copper")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to update player")

	f.repo.UpdateErr = nil
	assert.Equal(t, 100, f.player(t).Mining.Stamina)
}

func TestService_ContinuousLifecycle(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	status, err := f.svc.StartContinuous(ctx, "p1", "copper")
	require.NoError(t, err)
	assert.True(t, status.ContinuousActive)

	_, err = f.svc.StartContinuous(ctx, "p1", "copper")
	assert.ErrorIs(t, err, domain.ErrAlreadyMining)

	f.clock.Advance(10 * time.Second)
	res, err := f.svc.SettleContinuous(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Attempts)
	assert.True(t, res.StillMining)
	assert.Equal(t, 5, res.ItemsGained["copper_ore"])

	f.clock.Advance(4 * time.Second)
	stopped, err := f.svc.StopContinuous(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, stopped.Attempts)
	assert.False(t, stopped.StillMining)
	assert.Equal(t, domain.StopReasonManual, stopped.StopReason)

	p := f.player(t)
	assert.False(t, p.Mining.ContinuousActive)
	assert.Equal(t, 65, p.Mining.Stamina)
	assert.Equal(t, 7, inventory.Count(&p.Inventory, 1))

	_, err = f.svc.StopContinuous(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotMining)
	_, err = f.svc.SettleContinuous(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrNotMining)
}

func TestService_StatusStopsExhaustedSession(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.StartContinuous(ctx, "p1", "copper")
	require.NoError(t, err)

	// Burn stamina down below one attempt's cost.
	for i := 0; i < 20; i++ {
		_, err := f.svc.MineOnce(ctx, "p1", "copper")
		require.NoError(t, err)
	}

	status, err := f.svc.GetStatus(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, status.ContinuousActive)
	assert.False(t, f.player(t).Mining.ContinuousActive)
}

func TestService_OfflineSettlement(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.clock.Advance(30 * time.Second)
	res, err := f.svc.SettleOffline(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.OfflineStatusTooSoon, res.Status)
	assert.Equal(t, start, f.player(t).Mining.LastOfflineCheck)

	f.clock.Advance(48 * time.Hour)
	res, err = f.svc.SettleOffline(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.OfflineStatusSettled, res.Status)
	assert.Equal(t, int64(24*60*60), res.ElapsedSeconds)
	assert.Equal(t, 20, res.Attempts)
	assert.Equal(t, f.clock.Now(), f.player(t).Mining.LastOfflineCheck)
}

func TestService_ConfigureOffline(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	off := false

	status, err := f.svc.ConfigureOffline(ctx, "p1", domain.OfflineSettings{Enabled: &off})
	require.NoError(t, err)
	assert.False(t, status.OfflineEnabled)

	f.clock.Advance(time.Hour)
	res, err := f.svc.SettleOffline(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.OfflineStatusDisabled, res.Status)

	silver := "silver"
	_, err = f.svc.ConfigureOffline(ctx, "p1", domain.OfflineSettings{MineID: &silver})
	assert.ErrorIs(t, err, domain.ErrLevelTooLow)
}

func TestService_ListMines(t *testing.T) {
	f := setup(t)
	mines := f.svc.ListMines(context.Background())
	require.Len(t, mines, 4)
	assert.Equal(t, "copper", mines[0].ID)
	assert.Equal(t, "gold", mines[3].ID)
}

func TestService_ConcurrentSettlesDoNotDoubleSpend(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.StartContinuous(ctx, "p1", "copper")
	require.NoError(t, err)
	f.clock.Advance(10 * time.Second)

	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.svc.SettleContinuous(ctx, "p1")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			total += res.Attempts
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Exactly the five attempts that fit in ten seconds are paid, once.
	assert.Equal(t, 5, total)
	assert.Equal(t, 75, f.player(t).Mining.Stamina)
}
