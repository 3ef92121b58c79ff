package mining

import (
	"fmt"
	"sort"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// Catalog is the read-only set of mines.
type Catalog interface {
	// ResolveMine returns a copy of the mine definition, or false when unknown.
	ResolveMine(id string) (domain.MineDefinition, bool)
	// ListMines returns every mine ordered by required level, then id.
	ListMines() []domain.MineDefinition
}

// StaticCatalog is an immutable in-memory Catalog.
type StaticCatalog struct {
	mines map[string]domain.MineDefinition
	order []string
}

// DefaultMines returns the built-in mine table.
func DefaultMines() []domain.MineDefinition {
	return []domain.MineDefinition{
		{
			ID: "copper", Name: "Copper Mine", RequiredLevel: 1, StaminaCost: 5,
			Loot: []domain.LootEntry{
				{Item: "copper_ore", Chance: 80},
				{Item: "tin_ore", Chance: 20},
				{Item: "low_spirit_stone", Chance: 5},
			},
		},
		{
			ID: "iron", Name: "Iron Mine", RequiredLevel: 5, StaminaCost: 8,
			Loot: []domain.LootEntry{
				{Item: "iron_ore", Chance: 75},
				{Item: "coal", Chance: 25},
				{Item: "medium_spirit_stone", Chance: 3},
			},
		},
		{
			ID: "silver", Name: "Silver Mine", RequiredLevel: 10, StaminaCost: 12,
			Loot: []domain.LootEntry{
				{Item: "silver_ore", Chance: 70},
				{Item: "lead_ore", Chance: 15},
				{Item: "medium_spirit_stone", Chance: 10},
				{Item: "moonstone", Chance: 5},
			},
		},
		{
			ID: "gold", Name: "Gold Mine", RequiredLevel: 15, StaminaCost: 15,
			Loot: []domain.LootEntry{
				{Item: "gold_ore", Chance: 65},
				{Item: "silver_ore", Chance: 20},
				{Item: "high_spirit_stone", Chance: 8},
				{Item: "sunstone", Chance: 5},
				{Item: "diamond", Chance: 2},
			},
		},
	}
}

// NewDefaultCatalog builds a catalog from DefaultMines.
func NewDefaultCatalog() *StaticCatalog {
	c, err := NewCatalog(DefaultMines())
	if err != nil {
		panic(fmt.Sprintf("built-in mine table is invalid: %v", err))
	}
	return c
}

// NewCatalog validates mines and builds a catalog from them.
func NewCatalog(mines []domain.MineDefinition) (*StaticCatalog, error) {
	if len(mines) == 0 {
		return nil, fmt.Errorf("%w: catalog has no mines", domain.ErrValidation)
	}

	c := &StaticCatalog{mines: make(map[string]domain.MineDefinition, len(mines))}
	for _, m := range mines {
		if err := validateMine(m); err != nil {
			return nil, err
		}
		if _, dup := c.mines[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate mine id %q", domain.ErrValidation, m.ID)
		}
		c.mines[m.ID] = cloneMine(m)
		c.order = append(c.order, m.ID)
	}

	sort.SliceStable(c.order, func(i, j int) bool {
		a, b := c.mines[c.order[i]], c.mines[c.order[j]]
		if a.RequiredLevel != b.RequiredLevel {
			return a.RequiredLevel < b.RequiredLevel
		}
		return a.ID < b.ID
	})
	return c, nil
}

func validateMine(m domain.MineDefinition) error {
	switch {
	case m.ID == "":
		return fmt.Errorf("%w: mine id is empty", domain.ErrValidation)
	case m.RequiredLevel < 1:
		return fmt.Errorf("%w: mine %q required level must be at least 1", domain.ErrValidation, m.ID)
	case m.StaminaCost <= 0:
		return fmt.Errorf("%w: mine %q stamina cost must be positive", domain.ErrValidation, m.ID)
	case len(m.Loot) == 0:
		return fmt.Errorf("%w: mine %q has an empty loot table", domain.ErrValidation, m.ID)
	}
	for _, e := range m.Loot {
		if e.Item == "" {
			return fmt.Errorf("%w: mine %q has a loot entry without an item", domain.ErrValidation, m.ID)
		}
		if e.Chance < 0 || e.Chance > 100 {
			return fmt.Errorf("%w: mine %q chance for %q must be within [0, 100]", domain.ErrValidation, m.ID, e.Item)
		}
	}
	return nil
}

func cloneMine(m domain.MineDefinition) domain.MineDefinition {
	m.Loot = append([]domain.LootEntry(nil), m.Loot...)
	return m
}

// ResolveMine implements Catalog.
func (c *StaticCatalog) ResolveMine(id string) (domain.MineDefinition, bool) {
	m, ok := c.mines[id]
	if !ok {
		return domain.MineDefinition{}, false
	}
	return cloneMine(m), true
}

// ListMines implements Catalog.
func (c *StaticCatalog) ListMines() []domain.MineDefinition {
	out := make([]domain.MineDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneMine(c.mines[id]))
	}
	return out
}
