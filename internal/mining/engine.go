package mining

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/inventory"
	"github.com/osse101/IdleMiner_Go/internal/logger"
	"github.com/osse101/IdleMiner_Go/internal/loot"
	"github.com/osse101/IdleMiner_Go/internal/stamina"
)

// ItemResolver looks up drop items by internal name.
type ItemResolver interface {
	ResolveItem(ctx context.Context, name string) (*domain.Item, error)
}

// Engine applies mining rules to a player record in memory. It holds no
// per-player state; callers serialize access to each player and persist the
// result. Every operation checks its preconditions before touching the
// player, so a returned validation error means nothing changed.
type Engine struct {
	catalog Catalog
	items   ItemResolver
	roller  *loot.Roller
	regen   *stamina.Regenerator
	cfg     Config
}

// NewEngine creates an Engine. Zero config fields take their defaults.
func NewEngine(catalog Catalog, items ItemResolver, roller *loot.Roller, cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		catalog: catalog,
		items:   items,
		roller:  roller,
		regen:   stamina.NewRegenerator(cfg.FullRegenWindow),
		cfg:     cfg,
	}
}

// Catalog returns the mine catalog the engine reads from.
func (e *Engine) Catalog() Catalog { return e.catalog }

// AttemptDuration returns the attempt length for a mining level.
func (e *Engine) AttemptDuration(level int) time.Duration {
	return AttemptDuration(e.cfg.BaseAttemptDuration, level)
}

// requireMine resolves a mine and checks the player may use it.
func (e *Engine) requireMine(p *domain.Player, mineID string) (domain.MineDefinition, error) {
	mine, ok := e.catalog.ResolveMine(mineID)
	if !ok {
		return domain.MineDefinition{}, fmt.Errorf("%w: %q", domain.ErrUnknownMine, mineID)
	}
	if p.MiningLevel < mine.RequiredLevel {
		return domain.MineDefinition{}, fmt.Errorf("%w: %s requires mining level %d", domain.ErrLevelTooLow, mine.Name, mine.RequiredLevel)
	}
	return mine, nil
}

// MineOnce performs one manual attempt at mineID.
func (e *Engine) MineOnce(ctx context.Context, p *domain.Player, mineID string, now time.Time) (*domain.MineResult, error) {
	mine, err := e.requireMine(p, mineID)
	if err != nil {
		return nil, err
	}

	current, stamped := e.regen.Regenerate(p.Mining.Stamina, p.Mining.MaxStamina, p.Mining.LastStaminaUpdate, now)
	if current < mine.StaminaCost {
		return nil, fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientStamina, mine.StaminaCost, current)
	}

	drops := e.roller.Roll(mine.Loot, loot.ActiveChanceDivisor)
	counts := make(map[string]int, len(drops))
	for _, name := range drops {
		counts[name]++
	}
	resolved, skipped, err := e.resolveDrops(ctx, counts)
	if err != nil {
		return nil, err
	}

	p.Mining.Stamina = current - mine.StaminaCost
	p.Mining.LastStaminaUpdate = stamped
	p.Mining.LastMiningTime = now
	e.deposit(p, resolved, counts)

	deposited := make([]string, 0, len(drops))
	for _, name := range drops {
		if _, ok := resolved[name]; ok {
			deposited = append(deposited, name)
		}
	}

	return &domain.MineResult{
		MineID:           mine.ID,
		Drops:            deposited,
		StaminaSpent:     mine.StaminaCost,
		StaminaRemaining: p.Mining.Stamina,
		SkippedItems:     skipped,
	}, nil
}

// StartContinuous opens a continuous session at mineID starting now.
// Stamina is not checked here; settlement stops the session once it runs dry.
func (e *Engine) StartContinuous(p *domain.Player, mineID string, now time.Time) error {
	if p.Mining.ContinuousActive {
		return fmt.Errorf("%w: session at %q already running", domain.ErrAlreadyMining, p.Mining.ContinuousMineID)
	}

	mine, err := e.requireMine(p, mineID)
	if err != nil {
		return err
	}

	p.Mining.ContinuousActive = true
	p.Mining.ContinuousMineID = mine.ID
	p.Mining.ContinuousStartedAt = now
	p.Mining.LastMiningTime = now
	return nil
}

// StopContinuous ends the continuous session at now. Unsettled time is
// discarded. Returns false when no session was running.
func (e *Engine) StopContinuous(p *domain.Player, now time.Time) bool {
	if !p.Mining.ContinuousActive {
		return false
	}
	p.Mining.StopContinuous(now)
	return true
}

// SettleContinuous credits every whole attempt completed since the session
// anchor that stamina can pay for. After any attempts execute, the anchor
// moves to now; elapsed time that did not complete an attempt leaves the
// state untouched so frequent polling still accumulates. The session stops
// when stamina can no longer pay for another attempt.
func (e *Engine) SettleContinuous(ctx context.Context, p *domain.Player, now time.Time) (*domain.ContinuousSettlement, error) {
	if !p.Mining.ContinuousActive {
		return nil, domain.ErrNotMining
	}

	e.regen.Apply(&p.Mining, now)

	mineID := p.Mining.ContinuousMineID
	mine, ok := e.catalog.ResolveMine(mineID)
	if !ok {
		logger.FromContext(ctx).Warn("Continuous mine no longer in catalog, stopping session", "mine", mineID)
		p.Mining.StopContinuous(now)
		return &domain.ContinuousSettlement{
			MineID:           mineID,
			ItemsGained:      map[string]int{},
			StaminaRemaining: p.Mining.Stamina,
			StopReason:       domain.StopReasonMineUnavailable,
		}, nil
	}

	duration := e.AttemptDuration(p.MiningLevel)
	elapsed := max(now.Sub(p.Mining.ContinuousStartedAt), 0)
	byTime := int(elapsed / duration)
	byStamina := p.Mining.Stamina / mine.StaminaCost
	attempts := min(byTime, byStamina)

	result := &domain.ContinuousSettlement{
		MineID:      mine.ID,
		ItemsGained: map[string]int{},
		StillMining: true,
	}

	if attempts == 0 {
		if byStamina == 0 {
			p.Mining.StopContinuous(now)
			result.StillMining = false
			result.StopReason = domain.StopReasonInsufficientStamina
			result.StaminaShortfall = mine.StaminaCost - p.Mining.Stamina
		}
		result.StaminaRemaining = p.Mining.Stamina
		return result, nil
	}

	counts := e.roller.RollMany(mine.Loot, loot.ActiveChanceDivisor, attempts)
	resolved, skipped, err := e.resolveDrops(ctx, counts)
	if err != nil {
		return nil, err
	}

	spent := attempts * mine.StaminaCost
	p.Mining.Stamina -= spent
	p.Mining.LastMiningTime = now
	p.Mining.ContinuousStartedAt = now
	result.ItemsGained = e.deposit(p, resolved, counts)

	if p.Mining.Stamina < mine.StaminaCost {
		p.Mining.StopContinuous(now)
		result.StillMining = false
		result.StopReason = domain.StopReasonInsufficientStamina
		result.StaminaShortfall = mine.StaminaCost - p.Mining.Stamina
	}

	result.Attempts = attempts
	result.StaminaSpent = spent
	result.StaminaRemaining = p.Mining.Stamina
	result.SkippedItems = skipped
	return result, nil
}

// SettleOffline credits attempts for the time since the last offline check,
// capped at the lookback window and paid at reduced drop chances.
func (e *Engine) SettleOffline(ctx context.Context, p *domain.Player, now time.Time) (*domain.OfflineSettlement, error) {
	result := &domain.OfflineSettlement{
		MineID:      p.Mining.OfflineMineID,
		ItemsGained: map[string]int{},
	}

	if !p.Mining.OfflineEnabled || p.Mining.OfflineMineID == "" {
		result.Status = domain.OfflineStatusDisabled
		result.StaminaRemaining = p.Mining.Stamina
		return result, nil
	}

	mine, ok := e.catalog.ResolveMine(p.Mining.OfflineMineID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMine, p.Mining.OfflineMineID)
	}

	elapsed := min(max(now.Sub(p.Mining.LastOfflineCheck), 0), e.cfg.MaxOfflineLookback)
	result.ElapsedSeconds = int64(elapsed / time.Second)
	if elapsed < e.cfg.MinOfflineElapsed {
		result.Status = domain.OfflineStatusTooSoon
		result.StaminaRemaining = p.Mining.Stamina
		return result, nil
	}

	// A live continuous session already pays for this window.
	if p.Mining.ContinuousActive {
		p.Mining.LastOfflineCheck = now
		result.Status = domain.OfflineStatusSuperseded
		result.StaminaRemaining = p.Mining.Stamina
		return result, nil
	}

	current, stamped := e.regen.Regenerate(p.Mining.Stamina, p.Mining.MaxStamina, p.Mining.LastStaminaUpdate, now)
	byTime := int(elapsed / e.AttemptDuration(p.MiningLevel))
	attempts := min(byTime, current/mine.StaminaCost)

	counts := e.roller.RollMany(mine.Loot, e.cfg.OfflineChanceDivisor, attempts)
	resolved, skipped, err := e.resolveDrops(ctx, counts)
	if err != nil {
		return nil, err
	}

	spent := attempts * mine.StaminaCost
	p.Mining.Stamina = current - spent
	p.Mining.LastStaminaUpdate = stamped
	p.Mining.LastOfflineCheck = now
	p.Mining.LastMiningTime = now

	result.Status = domain.OfflineStatusSettled
	result.Attempts = attempts
	result.ItemsGained = e.deposit(p, resolved, counts)
	result.StaminaSpent = spent
	result.StaminaRemaining = p.Mining.Stamina
	result.SkippedItems = skipped
	return result, nil
}

// ValidateState regenerates stamina and ends a continuous session that can
// no longer run. Calling it twice at the same instant is a no-op the second
// time.
func (e *Engine) ValidateState(ctx context.Context, p *domain.Player, now time.Time) domain.StopReason {
	e.regen.Apply(&p.Mining, now)

	if !p.Mining.ContinuousActive {
		return domain.StopReasonNone
	}

	mine, ok := e.catalog.ResolveMine(p.Mining.ContinuousMineID)
	switch {
	case !ok:
		logger.FromContext(ctx).Warn("Continuous mine no longer in catalog, stopping session", "mine", p.Mining.ContinuousMineID)
		p.Mining.StopContinuous(now)
		return domain.StopReasonMineUnavailable
	case p.Mining.Stamina < mine.StaminaCost:
		p.Mining.StopContinuous(now)
		return domain.StopReasonInsufficientStamina
	}
	return domain.StopReasonNone
}

// ConfigureOffline updates offline preferences.
func (e *Engine) ConfigureOffline(p *domain.Player, settings domain.OfflineSettings) error {
	mineID := p.Mining.OfflineMineID
	if settings.MineID != nil {
		mine, err := e.requireMine(p, *settings.MineID)
		if err != nil {
			return err
		}
		mineID = mine.ID
	}

	enabled := p.Mining.OfflineEnabled
	if settings.Enabled != nil {
		enabled = *settings.Enabled
	}
	if enabled && mineID == "" {
		return domain.ErrOfflineMineNotChosen
	}

	p.Mining.OfflineMineID = mineID
	p.Mining.OfflineEnabled = enabled
	return nil
}

// Status reconciles the player and reports their mining state.
func (e *Engine) Status(ctx context.Context, p *domain.Player, now time.Time) *domain.MiningStatus {
	e.ValidateState(ctx, p, now)

	status := &domain.MiningStatus{
		Stamina:           p.Mining.Stamina,
		MaxStamina:        p.Mining.MaxStamina,
		LastStaminaUpdate: p.Mining.LastStaminaUpdate,
		MiningLevel:       p.MiningLevel,
		AttemptDuration:   e.AttemptDuration(p.MiningLevel),
		ContinuousActive:  p.Mining.ContinuousActive,
		ContinuousMineID:  p.Mining.ContinuousMineID,
		OfflineEnabled:    p.Mining.OfflineEnabled,
		OfflineMineID:     p.Mining.OfflineMineID,
		LastOfflineCheck:  p.Mining.LastOfflineCheck,
	}
	if p.Mining.ContinuousActive {
		started := p.Mining.ContinuousStartedAt
		status.ContinuousStartedAt = &started
	}
	return status
}

// resolveDrops maps dropped item names to catalog items. Names the item
// catalog does not know are skipped and reported; any other lookup failure
// aborts before the player is touched.
func (e *Engine) resolveDrops(ctx context.Context, counts map[string]int) (map[string]domain.ItemDescriptor, []string, error) {
	resolved := make(map[string]domain.ItemDescriptor, len(counts))
	var skipped []string

	for _, name := range sortedNames(counts) {
		item, err := e.items.ResolveItem(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				logger.FromContext(ctx).Warn("Item not found in catalog, skipping", "itemName", name)
				skipped = append(skipped, name)
				continue
			}
			return nil, nil, fmt.Errorf("failed to resolve drop %q: %w", name, err)
		}
		resolved[name] = item.Descriptor()
	}
	return resolved, skipped, nil
}

// deposit adds resolved drops to the player's inventory and returns what was credited.
func (e *Engine) deposit(p *domain.Player, resolved map[string]domain.ItemDescriptor, counts map[string]int) map[string]int {
	gained := make(map[string]int, len(resolved))
	for _, name := range sortedNames(counts) {
		desc, ok := resolved[name]
		if !ok {
			continue
		}
		inventory.Deposit(&p.Inventory, desc, counts[name])
		gained[name] = counts[name]
	}
	return gained
}

func sortedNames(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
