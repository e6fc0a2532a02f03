package handlers

import (
	"github.com/gofiber/fiber/v2"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/internal/api/presenters"
	"Eco-Earn-Backend/pkg/catalog"
)

type (
	SeedHandler interface {
		GetSeeds(c *fiber.Ctx) error
		GetSeedDetail(c *fiber.Ctx) error
	}

	seedHandler struct{}
)

func NewSeedHandler() SeedHandler {
	return &seedHandler{}
}

func (h *seedHandler) GetSeeds(c *fiber.Ctx) error {
	category := c.Query("category", "all")
	seeds := catalog.SeedsByCategory(category)

	return presenters.SuccessResponse(c, seeds, fiber.StatusOK, domain.MessageSuccessGetCatalog)
}

func (h *seedHandler) GetSeedDetail(c *fiber.Ctx) error {
	seed, ok := catalog.SeedByID(c.Params("id"))
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetSeedType, domain.ErrSeedTypeNotFound)
	}

	return presenters.SuccessResponse(c, seed, fiber.StatusOK, domain.MessageSuccessGetSeedType)
}
