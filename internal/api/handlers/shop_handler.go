package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/internal/api/presenters"
	"Eco-Earn-Backend/pkg/shop"
)

type (
	ShopHandler interface {
		GetCart(c *fiber.Ctx) error
		AddCartItem(c *fiber.Ctx) error
		UpdateCartItem(c *fiber.Ctx) error
		RemoveCartItem(c *fiber.Ctx) error
		ApplyCoupon(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
		Purchase(c *fiber.Ctx) error
	}

	shopHandler struct {
		shopService shop.ShopService
		validator   *validator.Validate
	}
)

func NewShopHandler(shopService shop.ShopService, validator *validator.Validate) ShopHandler {
	return &shopHandler{
		shopService: shopService,
		validator:   validator,
	}
}

func (h *shopHandler) GetCart(c *fiber.Ctx) error {
	cart, err := h.shopService.GetCart(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, cart, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *shopHandler) AddCartItem(c *fiber.Ctx) error {
	req := new(domain.AddCartItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	cart, err := h.shopService.AddToCart(c.Context(), req.SeedID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrSeedTypeNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedAddToCart, err)
	}

	return presenters.SuccessResponse(c, cart, fiber.StatusOK, domain.MessageSuccessAddToCart)
}

func (h *shopHandler) UpdateCartItem(c *fiber.Ctx) error {
	req := new(domain.UpdateCartItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	cart, err := h.shopService.UpdateCartQuantity(c.Context(), c.Params("seedId"), req.Quantity)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrCartItemNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateCartItem, err)
	}

	return presenters.SuccessResponse(c, cart, fiber.StatusOK, domain.MessageSuccessUpdateCartItem)
}

func (h *shopHandler) RemoveCartItem(c *fiber.Ctx) error {
	cart, err := h.shopService.RemoveFromCart(c.Context(), c.Params("seedId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, cart, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}

func (h *shopHandler) ApplyCoupon(c *fiber.Ctx) error {
	req := new(domain.ApplyCouponRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApplyCoupon, err)
	}

	cart, err := h.shopService.ApplyCoupon(c.Context(), req.Code)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApplyCoupon, err)
	}

	return presenters.SuccessResponse(c, cart, fiber.StatusOK, domain.MessageSuccessApplyCoupon)
}

func (h *shopHandler) Checkout(c *fiber.Ctx) error {
	res, err := h.shopService.Checkout(c.Context())
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrInsufficientBalance) {
			status = fiber.StatusPaymentRequired
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckout)
}

func (h *shopHandler) Purchase(c *fiber.Ctx) error {
	req := new(domain.PurchaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchase, err)
	}

	res, err := h.shopService.Purchase(c.Context(), *req)
	if err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrSeedTypeNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrInsufficientBalance):
			status = fiber.StatusPaymentRequired
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedPurchase, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPurchase)
}
