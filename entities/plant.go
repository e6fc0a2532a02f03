package entities

import (
	"time"
)

// Plant is one purchased seed instance. SeedType is embedded by value at
// purchase time; later catalog changes never affect existing plants.
type Plant struct {
	ID              string       `json:"id"`
	UserID          string       `json:"userId"`
	SeedType        SeedType     `json:"seedType"`
	PlantedDate     time.Time    `json:"plantedDate"`
	Status          string       `json:"status"` // "seedling", "growing", "yielding", "died"
	HealthScore     int          `json:"healthScore"`
	LastCheckIn     time.Time    `json:"lastCheckIn"`
	NextCheckIn     time.Time    `json:"nextCheckIn"`
	MonthlyCheckIns int          `json:"monthlyCheckIns"`
	TotalEarned     float64      `json:"totalEarned"`
	Photos          []PlantPhoto `json:"photos"`
	IsYieldingStage bool         `json:"isYieldingStage"` // true iff Status == yielding, never cleared
}

const (
	PlantStatusSeedling = "seedling"
	PlantStatusGrowing  = "growing"
	PlantStatusYielding = "yielding"
	// PlantStatusDied is a valid terminal status with no producing
	// transition in the current rules; reachable by future extension only.
	PlantStatusDied = "died"
)

// PlantPhoto is an append-only audit record of one check-in submission.
type PlantPhoto struct {
	ID               string            `json:"id"`
	PlantID          string            `json:"plantId"`
	UploadDate       time.Time         `json:"uploadDate"`
	ImageURL         string            `json:"imageUrl"`
	Stage            string            `json:"stage"` // "planting", "monthly", "yielding"
	HealthAssessment *HealthAssessment `json:"healthAssessment,omitempty"`
	RewardEarned     float64           `json:"rewardEarned"`
}

const (
	PhotoStagePlanting = "planting"
	PhotoStageMonthly  = "monthly"
	PhotoStageYielding = "yielding"
)

type HealthAssessment struct {
	GrowthRate    string   `json:"growthRate"`  // "excellent", "good", "moderate", "poor"
	LeavesColor   string   `json:"leavesColor"` // "vibrant", "normal", "pale", "brown"
	Issues        []string `json:"issues"`
	OverallHealth int      `json:"overallHealth"`
}
