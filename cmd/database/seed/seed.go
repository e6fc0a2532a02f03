package seed

import (
	"fmt"
	"log"

	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
)

// communityBoard are the standing community entries shown alongside the
// local user. Scores are recomputed at read time, so only the raw stats
// matter here.
func communityBoard() []entities.LeaderboardEntry {
	return []entities.LeaderboardEntry{
		{
			UserID:             "user-2",
			UserName:           "Sarah Forest",
			TotalPlants:        15,
			EnvironmentalScore: 892,
			ConsecutiveStreak:  45,
		},
		{
			UserID:             "user-3",
			UserName:           "Mike Greenwood",
			TotalPlants:        12,
			EnvironmentalScore: 678,
			ConsecutiveStreak:  38,
		},
		{
			UserID:             "user-4",
			UserName:           "Emma Woods",
			TotalPlants:        7,
			EnvironmentalScore: 412,
			ConsecutiveStreak:  31,
		},
		{
			UserID:             "user-5",
			UserName:           "John Leaf",
			TotalPlants:        6,
			EnvironmentalScore: 389,
			ConsecutiveStreak:  19,
		},
	}
}

// Seed fills in the keys the application expects so first reads after a
// fresh install see empty collections instead of misses. Existing data
// is never overwritten.
func Seed(store kvstore.Store) error {
	defaults := map[string]func() any{
		kvstore.KeyPlants:       func() any { return []entities.Plant{} },
		kvstore.KeyTransactions: func() any { return []entities.Transaction{} },
		kvstore.KeyCart:         func() any { return entities.Cart{Items: []entities.CartItem{}} },
		kvstore.KeyLeaderboard:  func() any { return communityBoard() },
	}

	for key, value := range defaults {
		var raw any
		found, err := store.Get(key, &raw)
		if err != nil {
			log.Printf("Error reading %s during seeding: %v", key, err)
			return err
		}
		if found {
			continue
		}
		if err := store.Set(key, value()); err != nil {
			log.Printf("Error seeding %s: %v", key, err)
			return err
		}
	}

	fmt.Println("Store seeding complete")
	return nil
}
