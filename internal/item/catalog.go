package item

import "github.com/osse101/IdleMiner_Go/internal/domain"

// DefaultItems is the built-in item catalog. It mirrors the seed migration so
// tools and tests can run without a database.
func DefaultItems() []domain.Item {
	ore := func(id int, name string, rarity domain.Rarity, value int) domain.Item {
		return domain.Item{ID: id, InternalName: name, Category: domain.CategoryMaterial, Rarity: rarity, Stackable: true, RequiredLevel: 1, BaseValue: value}
	}
	gear := func(id int, name string, cat domain.ItemCategory, level, value int, stats domain.ItemStats) domain.Item {
		return domain.Item{ID: id, InternalName: name, Category: cat, Rarity: domain.RarityUncommon, RequiredLevel: level, BaseValue: value, Stats: stats}
	}

	return []domain.Item{
		ore(1, "copper_ore", domain.RarityCommon, 2),
		ore(2, "tin_ore", domain.RarityCommon, 3),
		ore(3, "iron_ore", domain.RarityCommon, 5),
		ore(4, "coal", domain.RarityCommon, 4),
		ore(5, "silver_ore", domain.RarityUncommon, 12),
		ore(6, "lead_ore", domain.RarityUncommon, 8),
		ore(7, "gold_ore", domain.RarityRare, 25),
		ore(8, "low_spirit_stone", domain.RarityUncommon, 15),
		ore(9, "medium_spirit_stone", domain.RarityRare, 40),
		ore(10, "high_spirit_stone", domain.RarityEpic, 120),
		ore(11, "moonstone", domain.RarityRare, 60),
		ore(12, "sunstone", domain.RarityEpic, 90),
		ore(13, "diamond", domain.RarityLegendary, 250),
		gear(101, "iron_pickaxe", domain.CategoryWeapon, 1, 50, domain.ItemStats{domain.StatAttack: 3, domain.StatMiningSpeed: 5}),
		gear(102, "leather_armor", domain.CategoryArmor, 1, 40, domain.ItemStats{domain.StatDefense: 4}),
		gear(103, "miner_helmet", domain.CategoryHelmet, 3, 60, domain.ItemStats{domain.StatDefense: 2, domain.StatStaminaBonus: 10}),
		gear(104, "lucky_charm", domain.CategoryAccessory, 5, 150, domain.ItemStats{domain.StatLuck: 3}),
	}
}
