package domain

// InventorySlot represents a single item slot in the player's inventory
type InventorySlot struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// Inventory represents the structure stored in the JSONB column
type Inventory struct {
	Slots []InventorySlot `json:"slots"`
}

// Capacity summarizes how full an inventory is.
type Capacity struct {
	UsedSlots     int `json:"used_slots"`
	TotalQuantity int `json:"total_quantity"`
	MaxSlots      int `json:"max_slots,omitempty"`
}

// InventoryEntry is an inventory slot resolved against the item catalog for display.
type InventoryEntry struct {
	ItemID      int    `json:"item_id"`
	Name        string `json:"internal_name"`
	DisplayName string `json:"display_name"`
	Quantity    int    `json:"quantity"`
}

// InventoryView is the player-facing inventory listing.
type InventoryView struct {
	Items     []InventoryEntry `json:"items"`
	TempItems []InventoryEntry `json:"temp_items"`
	Capacity  Capacity         `json:"capacity"`
}
