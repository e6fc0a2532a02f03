package leaderboard

import (
	"context"
	"errors"
	"sort"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/user"
)

type (
	LeaderboardService interface {
		GetLeaderboard(ctx context.Context) ([]entities.LeaderboardEntry, error)
	}

	leaderboardService struct {
		leaderboardRepository LeaderboardRepository
		userRepository        user.UserRepository
	}
)

func NewLeaderboardService(leaderboardRepository LeaderboardRepository, userRepository user.UserRepository) LeaderboardService {
	return &leaderboardService{
		leaderboardRepository: leaderboardRepository,
		userRepository:        userRepository,
	}
}

// OverallScore is the ranking key: environmental score plus check-in
// streak plus lifetime plant count.
func OverallScore(environmentalScore, consecutiveStreak, totalPlants int) int {
	return environmentalScore + consecutiveStreak + totalPlants
}

// GetLeaderboard merges the stored entries with the live user's current
// stats, recomputes every overall score and re-ranks the board.
func (s *leaderboardService) GetLeaderboard(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	entries, err := s.leaderboardRepository.GetEntries(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepository.GetUser(ctx)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if u != nil {
		live := entities.LeaderboardEntry{
			UserID:             u.ID,
			UserName:           u.Name,
			TotalPlants:        u.PlantsGrown,
			EnvironmentalScore: u.EnvironmentalScore,
			ConsecutiveStreak:  u.ConsecutiveStreak,
		}
		replaced := false
		for i := range entries {
			if entries[i].UserID == u.ID {
				entries[i] = live
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, live)
		}
	}

	for i := range entries {
		entries[i].OverallScore = OverallScore(
			entries[i].EnvironmentalScore,
			entries[i].ConsecutiveStreak,
			entries[i].TotalPlants,
		)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OverallScore > entries[j].OverallScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
