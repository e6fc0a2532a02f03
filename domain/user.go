package domain

import (
	"Eco-Earn-Backend/entities"
)

var (
	MessageSuccessRegister = "account created successfully"
	MessageSuccessGetMe    = "user profile retrieved successfully"

	MessageFailedRegister = "failed to create account"
	MessageFailedGetMe    = "failed to retrieve user profile"
)

// WelcomeBonus is credited once when the user registers.
const WelcomeBonus = 50.0

type (
	RegisterRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	RegisterResponse struct {
		User        entities.User        `json:"user"`
		Transaction entities.Transaction `json:"transaction"`
	}
)
