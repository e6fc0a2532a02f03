package entities

type SeedType struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Category            string  `json:"category"` // "medicinal", "fruit", "vegetable", "purifier"
	Description         string  `json:"description"`
	Price               float64 `json:"price"`
	PlantingReward      float64 `json:"plantingReward"`
	MonthlyReward       float64 `json:"monthlyReward"`
	YieldingReward      float64 `json:"yieldingReward"`
	EnvironmentalImpact int     `json:"environmentalImpact"` // 0-100
	GrowthDuration      int     `json:"growthDuration"`      // months until yielding
	ImageURL            string  `json:"imageUrl"`
}

const (
	SeedCategoryMedicinal = "medicinal"
	SeedCategoryFruit     = "fruit"
	SeedCategoryVegetable = "vegetable"
	SeedCategoryPurifier  = "purifier"
)

type Coupon struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Discount float64 `json:"discount"` // percent off the charged total
	IsUsed   bool    `json:"isUsed"`
}
