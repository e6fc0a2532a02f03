package leaderboard

import (
	"context"

	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
)

type (
	LeaderboardRepository interface {
		GetEntries(ctx context.Context) ([]entities.LeaderboardEntry, error)
		SaveEntries(ctx context.Context, entries []entities.LeaderboardEntry) error
	}

	leaderboardRepository struct {
		store kvstore.Store
	}
)

func NewLeaderboardRepository(store kvstore.Store) LeaderboardRepository {
	return &leaderboardRepository{
		store: store,
	}
}

func (r *leaderboardRepository) GetEntries(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	entries := []entities.LeaderboardEntry{}
	if _, err := r.store.Get(kvstore.KeyLeaderboard, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *leaderboardRepository) SaveEntries(ctx context.Context, entries []entities.LeaderboardEntry) error {
	return r.store.Set(kvstore.KeyLeaderboard, entries)
}
