package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
	"Eco-Earn-Backend/pkg/user"
)

func newService(t *testing.T, store kvstore.Store) LeaderboardService {
	t.Helper()
	return NewLeaderboardService(
		NewLeaderboardRepository(store),
		user.NewUserRepository(store),
	)
}

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 952, OverallScore(892, 45, 15))
	assert.Equal(t, 0, OverallScore(0, 0, 0))
}

func TestGetLeaderboard_RanksByOverallScore(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(kvstore.KeyLeaderboard, []entities.LeaderboardEntry{
		{UserID: "user-5", UserName: "John Leaf", TotalPlants: 6, EnvironmentalScore: 389, ConsecutiveStreak: 19},
		{UserID: "user-2", UserName: "Sarah Forest", TotalPlants: 15, EnvironmentalScore: 892, ConsecutiveStreak: 45},
		{UserID: "user-3", UserName: "Mike Greenwood", TotalPlants: 12, EnvironmentalScore: 678, ConsecutiveStreak: 38},
	}))

	entries, err := newService(t, store).GetLeaderboard(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "Sarah Forest", entries[0].UserName)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 952, entries[0].OverallScore)
	assert.Equal(t, "Mike Greenwood", entries[1].UserName)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "John Leaf", entries[2].UserName)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestGetLeaderboard_MergesLiveUser(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(kvstore.KeyLeaderboard, []entities.LeaderboardEntry{
		{UserID: "user-2", UserName: "Sarah Forest", TotalPlants: 15, EnvironmentalScore: 892, ConsecutiveStreak: 45},
		{UserID: "user-5", UserName: "John Leaf", TotalPlants: 6, EnvironmentalScore: 389, ConsecutiveStreak: 19},
	}))
	require.NoError(t, store.Set(kvstore.KeyUser, entities.User{
		ID:                 "user-1",
		Name:               "Alex Green",
		PlantsGrown:        8,
		EnvironmentalScore: 456,
		ConsecutiveStreak:  23,
	}))

	entries, err := newService(t, store).GetLeaderboard(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "Sarah Forest", entries[0].UserName)
	assert.Equal(t, "Alex Green", entries[1].UserName)
	assert.Equal(t, 487, entries[1].OverallScore)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "John Leaf", entries[2].UserName)
}

func TestGetLeaderboard_ReplacesStaleEntryForLiveUser(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(kvstore.KeyLeaderboard, []entities.LeaderboardEntry{
		{UserID: "user-1", UserName: "Alex Green", TotalPlants: 2, EnvironmentalScore: 40, ConsecutiveStreak: 3},
	}))
	require.NoError(t, store.Set(kvstore.KeyUser, entities.User{
		ID:                 "user-1",
		Name:               "Alex Green",
		PlantsGrown:        8,
		EnvironmentalScore: 456,
		ConsecutiveStreak:  23,
	}))

	entries, err := newService(t, store).GetLeaderboard(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, 487, entries[0].OverallScore)
}

func TestGetLeaderboard_NoRegisteredUser(t *testing.T) {
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(kvstore.KeyLeaderboard, []entities.LeaderboardEntry{
		{UserID: "user-2", UserName: "Sarah Forest", TotalPlants: 15, EnvironmentalScore: 892, ConsecutiveStreak: 45},
	}))

	entries, err := newService(t, store).GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Sarah Forest", entries[0].UserName)
}
