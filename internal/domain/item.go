package domain

import (
	"fmt"
	"sort"
)

// ItemCategory classifies what an item is used for.
type ItemCategory string

const (
	CategoryMaterial  ItemCategory = "material"
	CategoryWeapon    ItemCategory = "weapon"
	CategoryArmor     ItemCategory = "armor"
	CategoryHelmet    ItemCategory = "helmet"
	CategoryAccessory ItemCategory = "accessory"
	CategoryBlueprint ItemCategory = "blueprint"
)

// Valid reports whether c is a known category.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryMaterial, CategoryWeapon, CategoryArmor, CategoryHelmet, CategoryAccessory, CategoryBlueprint:
		return true
	}
	return false
}

// EquipSlot returns the equipment slot this category occupies, if any.
func (c ItemCategory) EquipSlot() (EquipmentSlot, bool) {
	switch c {
	case CategoryWeapon:
		return SlotWeapon, true
	case CategoryArmor:
		return SlotArmor, true
	case CategoryHelmet:
		return SlotHelmet, true
	case CategoryAccessory:
		return SlotAccessory, true
	}
	return "", false
}

// Rarity represents how rare an item is
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// StatKey is the closed set of numeric attributes an item can carry.
type StatKey string

const (
	StatAttack       StatKey = "attack"
	StatDefense      StatKey = "defense"
	StatMiningSpeed  StatKey = "mining_speed"
	StatStaminaBonus StatKey = "stamina_bonus"
	StatLuck         StatKey = "luck"
)

// ItemStats maps stat keys to their values.
type ItemStats map[StatKey]int

// allowedStats lists which stats make sense per category.
var allowedStats = map[ItemCategory][]StatKey{
	CategoryWeapon:    {StatAttack, StatMiningSpeed, StatLuck},
	CategoryArmor:     {StatDefense, StatStaminaBonus},
	CategoryHelmet:    {StatDefense, StatStaminaBonus, StatLuck},
	CategoryAccessory: {StatLuck, StatStaminaBonus, StatMiningSpeed},
}

// ValidateStats checks that every stat on an item is allowed for its category.
func ValidateStats(category ItemCategory, stats ItemStats) error {
	if len(stats) == 0 {
		return nil
	}
	allowed := allowedStats[category]
	for key := range stats {
		ok := false
		for _, a := range allowed {
			if a == key {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: stat %q not allowed on %s items", ErrValidation, key, category)
		}
	}
	return nil
}

// Keys returns the stat keys in a stable order.
func (s ItemStats) Keys() []StatKey {
	keys := make([]StatKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Item is a catalog entry as stored in the items table.
type Item struct {
	ID            int          `json:"item_id" db:"item_id"`
	InternalName  string       `json:"internal_name" db:"internal_name"`
	DisplayName   string       `json:"display_name" db:"display_name"`
	Description   string       `json:"description" db:"item_description"`
	Category      ItemCategory `json:"category" db:"category"`
	Rarity        Rarity       `json:"rarity" db:"rarity"`
	Stackable     bool         `json:"stackable" db:"stackable"`
	RequiredLevel int          `json:"required_level" db:"required_level"`
	BaseValue     int          `json:"base_value" db:"base_value"`
	Stats         ItemStats    `json:"stats,omitempty" db:"stats"`
}

// ItemDescriptor is the subset of an item that inventory rules need.
type ItemDescriptor struct {
	ID          int          `json:"item_id"`
	Name        string       `json:"internal_name"`
	DisplayName string       `json:"display_name"`
	Stackable   bool         `json:"stackable"`
	Category    ItemCategory `json:"category"`
}

// Descriptor projects an Item onto an ItemDescriptor.
func (i *Item) Descriptor() ItemDescriptor {
	return ItemDescriptor{
		ID:          i.ID,
		Name:        i.InternalName,
		DisplayName: i.DisplayName,
		Stackable:   i.Stackable,
		Category:    i.Category,
	}
}
