package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/internal/api/presenters"
	"Eco-Earn-Backend/pkg/plant"
)

type (
	PlantHandler interface {
		GetPlants(c *fiber.Ctx) error
		GetPlantDetail(c *fiber.Ctx) error
		CheckIn(c *fiber.Ctx) error
	}

	plantHandler struct {
		plantService plant.PlantService
		validator    *validator.Validate
	}
)

func NewPlantHandler(plantService plant.PlantService, validator *validator.Validate) PlantHandler {
	return &plantHandler{
		plantService: plantService,
		validator:    validator,
	}
}

func (h *plantHandler) GetPlants(c *fiber.Ctx) error {
	status := c.Query("status", "all")

	plants, err := h.plantService.GetPlants(c.Context(), status)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlants, err)
	}

	return presenters.SuccessResponse(c, plants, fiber.StatusOK, domain.MessageSuccessGetPlants)
}

func (h *plantHandler) GetPlantDetail(c *fiber.Ctx) error {
	p, err := h.plantService.GetPlantByID(c.Context(), c.Params("id"))
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrPlantNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetPlant, err)
	}

	return presenters.SuccessResponse(c, p, fiber.StatusOK, domain.MessageSuccessGetPlant)
}

func (h *plantHandler) CheckIn(c *fiber.Ctx) error {
	req := domain.CheckInRequest{
		GrowthRate:  c.FormValue("growthRate"),
		LeavesColor: c.FormValue("leavesColor"),
		Notes:       c.FormValue("notes"),
	}
	if form, err := c.MultipartForm(); err == nil {
		req.Issues = form.Value["issues"]
	}
	// The photo stays nil when absent; the service rejects the check-in
	// without mutating anything.
	if photo, err := c.FormFile("photo"); err == nil {
		req.Photo = photo
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckIn, err)
	}

	res, err := h.plantService.CheckIn(c.Context(), c.Params("id"), req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrPlantNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCheckIn, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckIn)
}
