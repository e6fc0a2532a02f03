package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/internal/api/presenters"
	"Eco-Earn-Backend/pkg/leaderboard"
)

type (
	LeaderboardHandler interface {
		GetLeaderboard(c *fiber.Ctx) error
	}

	leaderboardHandler struct {
		leaderboardService leaderboard.LeaderboardService
	}
)

func NewLeaderboardHandler(leaderboardService leaderboard.LeaderboardService) LeaderboardHandler {
	return &leaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

func (h *leaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.leaderboardService.GetLeaderboard(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLeaderboard, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetLeaderboard)
}
