// Package catalog holds the static seed, badge and coupon definitions.
// The catalog is seeded at build time and never persisted or mutated at
// runtime; plants embed a SeedType snapshot by value at purchase time.
package catalog

import (
	"Eco-Earn-Backend/entities"
)

var seedCatalog = []entities.SeedType{
	{
		ID:                  "seed-neem",
		Name:                "Neem Tree",
		Category:            entities.SeedCategoryMedicinal,
		Description:         "Hardy medicinal tree known for its antibacterial leaves and air-cleaning canopy.",
		Price:               15,
		PlantingReward:      5,
		MonthlyReward:       4,
		YieldingReward:      25,
		EnvironmentalImpact: 85,
		GrowthDuration:      6,
		ImageURL:            "/images/seeds/neem.jpg",
	},
	{
		ID:                  "seed-tulsi",
		Name:                "Tulsi",
		Category:            entities.SeedCategoryMedicinal,
		Description:         "Holy basil, a fast-growing herb prized in home remedies.",
		Price:               10,
		PlantingReward:      3,
		MonthlyReward:       3.5,
		YieldingReward:      20,
		EnvironmentalImpact: 70,
		GrowthDuration:      3,
		ImageURL:            "/images/seeds/tulsi.jpg",
	},
	{
		ID:                  "seed-mango",
		Name:                "Mango Tree",
		Category:            entities.SeedCategoryFruit,
		Description:         "Tropical fruit tree with a long productive life once it starts yielding.",
		Price:               20,
		PlantingReward:      5,
		MonthlyReward:       4.5,
		YieldingReward:      30,
		EnvironmentalImpact: 90,
		GrowthDuration:      8,
		ImageURL:            "/images/seeds/mango.jpg",
	},
	{
		ID:                  "seed-lemon",
		Name:                "Lemon Tree",
		Category:            entities.SeedCategoryFruit,
		Description:         "Compact citrus tree suited to pots and small gardens.",
		Price:               18,
		PlantingReward:      4,
		MonthlyReward:       4,
		YieldingReward:      26,
		EnvironmentalImpact: 75,
		GrowthDuration:      7,
		ImageURL:            "/images/seeds/lemon.jpg",
	},
	{
		ID:                  "seed-tomato",
		Name:                "Tomato",
		Category:            entities.SeedCategoryVegetable,
		Description:         "Quick-turnaround vegetable, ideal for first-time growers.",
		Price:               8,
		PlantingReward:      2,
		MonthlyReward:       2.5,
		YieldingReward:      12,
		EnvironmentalImpact: 55,
		GrowthDuration:      2,
		ImageURL:            "/images/seeds/tomato.jpg",
	},
	{
		ID:                  "seed-spinach",
		Name:                "Spinach",
		Category:            entities.SeedCategoryVegetable,
		Description:         "Leafy green that yields within weeks of planting.",
		Price:               6,
		PlantingReward:      2,
		MonthlyReward:       2,
		YieldingReward:      10,
		EnvironmentalImpact: 50,
		GrowthDuration:      1,
		ImageURL:            "/images/seeds/spinach.jpg",
	},
	{
		ID:                  "seed-bamboo",
		Name:                "Bamboo",
		Category:            entities.SeedCategoryPurifier,
		Description:         "Fast-growing grass that locks away carbon quicker than most trees.",
		Price:               12,
		PlantingReward:      4,
		MonthlyReward:       3,
		YieldingReward:      18,
		EnvironmentalImpact: 95,
		GrowthDuration:      4,
		ImageURL:            "/images/seeds/bamboo.jpg",
	},
	{
		ID:                  "seed-snake-plant",
		Name:                "Snake Plant",
		Category:            entities.SeedCategoryPurifier,
		Description:         "Near-indestructible indoor air purifier.",
		Price:               14,
		PlantingReward:      3,
		MonthlyReward:       3,
		YieldingReward:      16,
		EnvironmentalImpact: 80,
		GrowthDuration:      5,
		ImageURL:            "/images/seeds/snake-plant.jpg",
	},
}

// Seeds returns the full catalog. Callers receive a copy; the catalog
// itself is immutable.
func Seeds() []entities.SeedType {
	out := make([]entities.SeedType, len(seedCatalog))
	copy(out, seedCatalog)
	return out
}

func SeedsByCategory(category string) []entities.SeedType {
	if category == "" || category == "all" {
		return Seeds()
	}
	var out []entities.SeedType
	for _, seed := range seedCatalog {
		if seed.Category == category {
			out = append(out, seed)
		}
	}
	return out
}

func SeedByID(id string) (entities.SeedType, bool) {
	for _, seed := range seedCatalog {
		if seed.ID == id {
			return seed, true
		}
	}
	return entities.SeedType{}, false
}
