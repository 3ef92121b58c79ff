// Package inventory holds the stacking rules for player item collections.
//
// All functions mutate the collection in place and never fail: capacity
// limits are enforced by callers, not here.
package inventory

import (
	"sort"

	"github.com/osse101/IdleMiner_Go/internal/domain"
)

// LinearScanThreshold defines when to switch from linear scan to map-based lookup.
// Linear scan wins for a handful of items even on large inventories.
const LinearScanThreshold = 10

// Lookup resolves an item ID to its descriptor.
type Lookup func(itemID int) (domain.ItemDescriptor, bool)

// WithdrawResult reports what a withdrawal removed.
type WithdrawResult struct {
	Removed   int `json:"removed"`
	Remaining int `json:"remaining"`
}

// FindSlot finds the first slot holding itemID.
// Returns -1, 0 if not found.
func FindSlot(inv *domain.Inventory, itemID int) (int, int) {
	for i, slot := range inv.Slots {
		if slot.ItemID == itemID {
			return i, slot.Quantity
		}
	}
	return -1, 0
}

// Count returns the total quantity of itemID across all slots.
func Count(inv *domain.Inventory, itemID int) int {
	total := 0
	for _, slot := range inv.Slots {
		if slot.ItemID == itemID {
			total += slot.Quantity
		}
	}
	return total
}

// Deposit adds quantity units of item to inv.
// Stackable items merge into their single slot; non-stackable items get one
// slot per unit. Returns the total quantity of the item now held.
func Deposit(inv *domain.Inventory, item domain.ItemDescriptor, quantity int) int {
	if quantity <= 0 {
		_, qty := FindSlot(inv, item.ID)
		return qty
	}

	if !item.Stackable {
		for i := 0; i < quantity; i++ {
			inv.Slots = append(inv.Slots, domain.InventorySlot{ItemID: item.ID, Quantity: 1})
		}
		return Count(inv, item.ID)
	}

	if idx, _ := FindSlot(inv, item.ID); idx != -1 {
		inv.Slots[idx].Quantity += quantity
		return inv.Slots[idx].Quantity
	}
	inv.Slots = append(inv.Slots, domain.InventorySlot{ItemID: item.ID, Quantity: quantity})
	return quantity
}

// Withdraw removes up to quantity units of itemID, draining slots in order and
// dropping any slot that reaches zero. Withdrawing more than is held removes
// everything and reports the smaller amount.
func Withdraw(inv *domain.Inventory, itemID int, quantity int) WithdrawResult {
	if quantity <= 0 {
		return WithdrawResult{Removed: 0, Remaining: Count(inv, itemID)}
	}

	removed := 0
	kept := inv.Slots[:0]
	for _, slot := range inv.Slots {
		if slot.ItemID == itemID && removed < quantity {
			take := min(quantity-removed, slot.Quantity)
			removed += take
			slot.Quantity -= take
			if slot.Quantity == 0 {
				continue
			}
		}
		kept = append(kept, slot)
	}
	inv.Slots = kept

	return WithdrawResult{Removed: removed, Remaining: Count(inv, itemID)}
}

// MergeInto moves every slot of source into target under target's stacking
// rules and leaves source empty. Items the lookup cannot resolve keep their
// slot shape so nothing is lost.
func MergeInto(target, source *domain.Inventory, lookup Lookup) {
	if len(source.Slots) == 0 {
		return
	}

	var slotMap map[int]int
	if len(source.Slots) >= LinearScanThreshold {
		slotMap = buildStackMap(target, lookup)
	}

	for _, slot := range source.Slots {
		desc, ok := lookup(slot.ItemID)
		if !ok || !desc.Stackable || slotMap == nil {
			if ok {
				Deposit(target, desc, slot.Quantity)
			} else {
				target.Slots = append(target.Slots, slot)
			}
			continue
		}

		if idx, exists := slotMap[slot.ItemID]; exists {
			target.Slots[idx].Quantity += slot.Quantity
		} else {
			target.Slots = append(target.Slots, domain.InventorySlot{ItemID: slot.ItemID, Quantity: slot.Quantity})
			slotMap[slot.ItemID] = len(target.Slots) - 1
		}
	}

	source.Slots = []domain.InventorySlot{}
}

// buildStackMap indexes the first slot of each stackable item for O(1) merges.
func buildStackMap(inv *domain.Inventory, lookup Lookup) map[int]int {
	m := make(map[int]int, len(inv.Slots))
	for i, slot := range inv.Slots {
		if _, seen := m[slot.ItemID]; seen {
			continue
		}
		if desc, ok := lookup(slot.ItemID); ok && desc.Stackable {
			m[slot.ItemID] = i
		}
	}
	return m
}

// Sort orders slots by item ID, larger stacks first on ties. The order is
// total over slot contents, so sorting twice changes nothing.
func Sort(inv *domain.Inventory) {
	sort.SliceStable(inv.Slots, func(i, j int) bool {
		a, b := inv.Slots[i], inv.Slots[j]
		if a.ItemID != b.ItemID {
			return a.ItemID < b.ItemID
		}
		return a.Quantity > b.Quantity
	})
}

// Capacity reports slot usage against maxSlots (0 means unbounded).
func Capacity(inv *domain.Inventory, maxSlots int) domain.Capacity {
	total := 0
	for _, slot := range inv.Slots {
		total += slot.Quantity
	}
	return domain.Capacity{
		UsedSlots:     len(inv.Slots),
		TotalQuantity: total,
		MaxSlots:      maxSlots,
	}
}
