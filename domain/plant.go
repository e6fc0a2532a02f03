package domain

import (
	"errors"
	"mime/multipart"

	"Eco-Earn-Backend/entities"
)

var (
	MessageSuccessGetPlants   = "plants retrieved successfully"
	MessageSuccessGetPlant    = "plant retrieved successfully"
	MessageSuccessCheckIn     = "check-in submitted successfully"
	MessageSuccessGetCatalog  = "seed catalog retrieved successfully"
	MessageSuccessGetSeedType = "seed type retrieved successfully"

	MessageFailedGetPlants   = "failed to retrieve plants"
	MessageFailedGetPlant    = "failed to retrieve plant"
	MessageFailedCheckIn     = "failed to submit check-in"
	MessageFailedGetCatalog  = "failed to retrieve seed catalog"
	MessageFailedGetSeedType = "failed to retrieve seed type"

	ErrPlantNotFound    = errors.New("plant not found")
	ErrSeedTypeNotFound = errors.New("seed type not found")
	ErrImageRequired    = errors.New("image required: please upload a photo of your plant")
)

type (
	CheckInRequest struct {
		GrowthRate  string                `json:"growthRate" form:"growthRate" validate:"required,oneof=excellent good moderate poor"`
		LeavesColor string                `json:"leavesColor" form:"leavesColor" validate:"required,oneof=vibrant normal pale brown"`
		Issues      []string              `json:"issues" form:"issues"`
		Notes       string                `json:"notes" form:"notes"`
		Photo       *multipart.FileHeader `json:"photo" form:"photo"`
	}

	CheckInResponse struct {
		Plant             entities.Plant       `json:"plant"`
		RewardAmount      float64              `json:"rewardAmount"`
		RewardDescription string               `json:"rewardDescription"`
		Photo             entities.PlantPhoto  `json:"photo"`
		Transaction       entities.Transaction `json:"transaction"`
		Message           string               `json:"message"`
	}
)
