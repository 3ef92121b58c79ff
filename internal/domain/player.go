package domain

import (
	"fmt"
	"strings"
	"time"
)

// New player defaults
const (
	DefaultLevel            = 1
	DefaultMiningLevel      = 1
	DefaultStamina          = 100
	DefaultMaxStamina       = 100
	DefaultMaxInventorySize = 50
	DefaultOfflineMineID    = "copper"
)

// EquipmentSlot names a place an item can be worn.
type EquipmentSlot string

const (
	SlotWeapon    EquipmentSlot = "weapon"
	SlotArmor     EquipmentSlot = "armor"
	SlotHelmet    EquipmentSlot = "helmet"
	SlotAccessory EquipmentSlot = "accessory"
)

// EquipmentSlots lists every slot in display order.
var EquipmentSlots = []EquipmentSlot{SlotWeapon, SlotArmor, SlotHelmet, SlotAccessory}

// ParseEquipmentSlot validates a slot name.
func ParseEquipmentSlot(s string) (EquipmentSlot, error) {
	slot := EquipmentSlot(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range EquipmentSlots {
		if slot == known {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEquipSlot, s)
}

// Equipment maps each occupied slot to the equipped item ID.
type Equipment map[EquipmentSlot]int

// Player is the full persisted player record.
type Player struct {
	ID               string      `json:"id"`
	Username         string      `json:"username"`
	Level            int         `json:"level"`
	MiningLevel      int         `json:"mining_level"`
	MaxInventorySize int         `json:"max_inventory_size"`
	Mining           MiningState `json:"mining"`
	Inventory        Inventory   `json:"inventory"`
	TempInventory    Inventory   `json:"temp_inventory"`
	Equipment        Equipment   `json:"equipment"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// NewPlayer builds a player with starting values; every timestamp is now.
func NewPlayer(id, username string, now time.Time) *Player {
	return &Player{
		ID:               id,
		Username:         username,
		Level:            DefaultLevel,
		MiningLevel:      DefaultMiningLevel,
		MaxInventorySize: DefaultMaxInventorySize,
		Mining: MiningState{
			Stamina:           DefaultStamina,
			MaxStamina:        DefaultMaxStamina,
			LastStaminaUpdate: now,
			LastMiningTime:    now,
			OfflineEnabled:    true,
			OfflineMineID:     DefaultOfflineMineID,
			LastOfflineCheck:  now,
		},
		Inventory:     Inventory{Slots: []InventorySlot{}},
		TempInventory: Inventory{Slots: []InventorySlot{}},
		Equipment:     Equipment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// PlayerProfile is the public view of a player.
type PlayerProfile struct {
	ID          string         `json:"id"`
	Username    string         `json:"username"`
	Level       int            `json:"level"`
	MiningLevel int            `json:"mining_level"`
	Stamina     int            `json:"stamina"`
	MaxStamina  int            `json:"max_stamina"`
	Equipment   map[string]int `json:"equipment"`
	Capacity    Capacity       `json:"capacity"`
	CreatedAt   time.Time      `json:"created_at"`
}
