package domain

import (
	"errors"

	"Eco-Earn-Backend/entities"
)

var (
	MessageSuccessGetCart        = "shopping cart retrieved successfully"
	MessageSuccessAddToCart      = "item added to cart"
	MessageSuccessUpdateCartItem = "cart item updated"
	MessageSuccessRemoveCartItem = "item removed from cart"
	MessageSuccessApplyCoupon    = "coupon applied successfully"
	MessageSuccessCheckout       = "purchase completed successfully"
	MessageSuccessPurchase       = "seed purchased successfully"

	MessageFailedGetCart        = "failed to retrieve shopping cart"
	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove item from cart"
	MessageFailedApplyCoupon    = "failed to apply coupon"
	MessageFailedCheckout       = "failed to complete purchase"
	MessageFailedPurchase       = "failed to purchase seed"

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidCoupon       = errors.New("invalid coupon code")
	ErrCartItemNotFound    = errors.New("item not found in cart")
)

type (
	AddCartItemRequest struct {
		SeedID string `json:"seedId" validate:"required"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity" validate:"required"`
	}

	ApplyCouponRequest struct {
		Code string `json:"code" validate:"required"`
	}

	PurchaseRequest struct {
		SeedID   string `json:"seedId" validate:"required"`
		Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	}

	PurchaseResponse struct {
		Plants        []entities.Plant     `json:"plants"`
		Transaction   entities.Transaction `json:"transaction"`
		WalletBalance float64              `json:"walletBalance"`
	}

	CheckoutResponse struct {
		Plants        []entities.Plant     `json:"plants"`
		Transaction   entities.Transaction `json:"transaction"`
		WalletBalance float64              `json:"walletBalance"`
		Subtotal      float64              `json:"subtotal"`
		Discount      float64              `json:"discount"`
		ChargedTotal  float64              `json:"chargedTotal"`
	}
)
