// Package player manages player records: registration, inventory housekeeping
// and equipment.
package player

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/IdleMiner_Go/internal/clock"
	"github.com/osse101/IdleMiner_Go/internal/concurrency"
	"github.com/osse101/IdleMiner_Go/internal/domain"
	"github.com/osse101/IdleMiner_Go/internal/inventory"
	"github.com/osse101/IdleMiner_Go/internal/item"
	"github.com/osse101/IdleMiner_Go/internal/logger"
	"github.com/osse101/IdleMiner_Go/internal/repository"
)

// UnknownItemName is shown for inventory slots whose item left the catalog.
const UnknownItemName = "Unknown item"

// Service defines the player operations exposed to handlers
type Service interface {
	Register(ctx context.Context, username string) (*domain.PlayerProfile, error)
	GetProfile(ctx context.Context, playerID string) (*domain.PlayerProfile, error)
	GetInventory(ctx context.Context, playerID string) (*domain.InventoryView, error)
	SortInventory(ctx context.Context, playerID string) (*domain.InventoryView, error)
	MergeTempInventory(ctx context.Context, playerID string) (*domain.InventoryView, error)
	Equip(ctx context.Context, playerID string, itemID int) (*domain.PlayerProfile, error)
	Unequip(ctx context.Context, playerID, slot string) (*domain.PlayerProfile, error)
}

type service struct {
	repo  repository.Player
	items item.Resolver
	locks *concurrency.LockManager
	clock clock.Clock
}

// NewService creates a player service. Locks must be the same LockManager the
// mining service uses.
func NewService(repo repository.Player, items item.Resolver, locks *concurrency.LockManager, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &service{repo: repo, items: items, locks: locks, clock: clk}
}

func (s *service) Register(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	p := domain.NewPlayer(uuid.NewString(), username, s.clock.Now())
	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	logger.FromContext(ctx).Info("Player registered", "playerID", p.ID, "username", p.Username)
	return profile(p), nil
}

func (s *service) GetProfile(ctx context.Context, playerID string) (*domain.PlayerProfile, error) {
	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return profile(p), nil
}

func (s *service) GetInventory(ctx context.Context, playerID string) (*domain.InventoryView, error) {
	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p)
}

func (s *service) SortInventory(ctx context.Context, playerID string) (*domain.InventoryView, error) {
	var view *domain.InventoryView
	err := s.withPlayer(ctx, playerID, func(p *domain.Player) error {
		inventory.Sort(&p.Inventory)
		var err error
		view, err = s.view(ctx, p)
		return err
	})
	return view, err
}

// MergeTempInventory folds the overflow inventory into the main one.
func (s *service) MergeTempInventory(ctx context.Context, playerID string) (*domain.InventoryView, error) {
	var view *domain.InventoryView
	err := s.withPlayer(ctx, playerID, func(p *domain.Player) error {
		if len(p.TempInventory.Slots) == 0 {
			var err error
			view, err = s.view(ctx, p)
			return err
		}

		descriptors, err := s.descriptors(ctx, p.Inventory.Slots, p.TempInventory.Slots)
		if err != nil {
			return err
		}
		merged := len(p.TempInventory.Slots)
		inventory.MergeInto(&p.Inventory, &p.TempInventory, func(id int) (domain.ItemDescriptor, bool) {
			d, ok := descriptors[id]
			return d, ok
		})
		inventory.Sort(&p.Inventory)

		logger.FromContext(ctx).Info("Temp inventory merged", "playerID", playerID, "slots", merged)
		view, err = s.view(ctx, p)
		return err
	})
	return view, err
}

func (s *service) Equip(ctx context.Context, playerID string, itemID int) (*domain.PlayerProfile, error) {
	var out *domain.PlayerProfile
	err := s.withPlayer(ctx, playerID, func(p *domain.Player) error {
		if inventory.Count(&p.Inventory, itemID) == 0 {
			return fmt.Errorf("%w: item %d", domain.ErrNotInInventory, itemID)
		}

		it, err := s.items.ItemByID(ctx, itemID)
		if err != nil {
			return err
		}
		slot, ok := it.Category.EquipSlot()
		if !ok {
			return fmt.Errorf("%w: %s is a %s", domain.ErrNotEquippable, it.DisplayName, it.Category)
		}
		if p.Level < it.RequiredLevel {
			return fmt.Errorf("%w: %s requires level %d", domain.ErrLevelTooLow, it.DisplayName, it.RequiredLevel)
		}

		var previous *domain.ItemDescriptor
		if prevID, occupied := p.Equipment[slot]; occupied {
			d, err := s.descriptor(ctx, prevID)
			if err != nil {
				return err
			}
			previous = &d
		}

		inventory.Withdraw(&p.Inventory, itemID, 1)
		if previous != nil {
			inventory.Deposit(&p.Inventory, *previous, 1)
		}
		if p.Equipment == nil {
			p.Equipment = domain.Equipment{}
		}
		p.Equipment[slot] = itemID
		inventory.Sort(&p.Inventory)

		out = profile(p)
		return nil
	})
	return out, err
}

func (s *service) Unequip(ctx context.Context, playerID, slotName string) (*domain.PlayerProfile, error) {
	slot, err := domain.ParseEquipmentSlot(slotName)
	if err != nil {
		return nil, err
	}

	var out *domain.PlayerProfile
	err = s.withPlayer(ctx, playerID, func(p *domain.Player) error {
		itemID, occupied := p.Equipment[slot]
		if !occupied {
			return fmt.Errorf("%w: %s", domain.ErrSlotEmpty, slot)
		}

		d, err := s.descriptor(ctx, itemID)
		if err != nil {
			return err
		}
		inventory.Deposit(&p.Inventory, d, 1)
		delete(p.Equipment, slot)
		inventory.Sort(&p.Inventory)

		out = profile(p)
		return nil
	})
	return out, err
}

func (s *service) withPlayer(ctx context.Context, playerID string, fn func(p *domain.Player) error) error {
	lock := s.locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	p.UpdatedAt = s.clock.Now()

	if err := tx.UpdatePlayer(ctx, p); err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	return tx.Commit(ctx)
}

// descriptor resolves an item for re-depositing. An item that left the
// catalog is returned to the inventory as a plain non-stackable slot.
func (s *service) descriptor(ctx context.Context, id int) (domain.ItemDescriptor, error) {
	it, err := s.items.ItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return domain.ItemDescriptor{ID: id}, nil
		}
		return domain.ItemDescriptor{}, err
	}
	return it.Descriptor(), nil
}

func (s *service) descriptors(ctx context.Context, groups ...[]domain.InventorySlot) (map[int]domain.ItemDescriptor, error) {
	out := make(map[int]domain.ItemDescriptor)
	for _, slots := range groups {
		for _, slot := range slots {
			if _, done := out[slot.ItemID]; done {
				continue
			}
			it, err := s.items.ItemByID(ctx, slot.ItemID)
			if err != nil {
				if errors.Is(err, domain.ErrItemNotFound) {
					continue
				}
				return nil, err
			}
			out[slot.ItemID] = it.Descriptor()
		}
	}
	return out, nil
}

func (s *service) view(ctx context.Context, p *domain.Player) (*domain.InventoryView, error) {
	items, err := s.entries(ctx, p.Inventory.Slots)
	if err != nil {
		return nil, err
	}
	temp, err := s.entries(ctx, p.TempInventory.Slots)
	if err != nil {
		return nil, err
	}
	return &domain.InventoryView{
		Items:     items,
		TempItems: temp,
		Capacity:  inventory.Capacity(&p.Inventory, p.MaxInventorySize),
	}, nil
}

func (s *service) entries(ctx context.Context, slots []domain.InventorySlot) ([]domain.InventoryEntry, error) {
	out := make([]domain.InventoryEntry, 0, len(slots))
	for _, slot := range slots {
		entry := domain.InventoryEntry{ItemID: slot.ItemID, Quantity: slot.Quantity, DisplayName: UnknownItemName}
		it, err := s.items.ItemByID(ctx, slot.ItemID)
		switch {
		case err == nil:
			entry.Name = it.InternalName
			entry.DisplayName = it.DisplayName
		case !errors.Is(err, domain.ErrItemNotFound):
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func profile(p *domain.Player) *domain.PlayerProfile {
	equipment := make(map[string]int, len(p.Equipment))
	for slot, id := range p.Equipment {
		equipment[string(slot)] = id
	}
	return &domain.PlayerProfile{
		ID:          p.ID,
		Username:    p.Username,
		Level:       p.Level,
		MiningLevel: p.MiningLevel,
		Stamina:     p.Mining.Stamina,
		MaxStamina:  p.Mining.MaxStamina,
		Equipment:   equipment,
		Capacity:    inventory.Capacity(&p.Inventory, p.MaxInventorySize),
		CreatedAt:   p.CreatedAt,
	}
}

