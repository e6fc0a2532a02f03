package catalog

import (
	"strings"

	"Eco-Earn-Backend/entities"
)

const (
	BadgeFirstSprout  = "badge-first-sprout"
	BadgeGreenThumb   = "badge-green-thumb"
	BadgeStreakMaster = "badge-streak-master"
	BadgeEcoWarrior   = "badge-eco-warrior"
)

var badgeCatalog = []entities.Badge{
	{
		ID:          BadgeFirstSprout,
		Name:        "First Sprout",
		Description: "Purchased your first seed",
		Icon:        "🌱",
	},
	{
		ID:          BadgeGreenThumb,
		Name:        "Green Thumb",
		Description: "Grew 10 plants",
		Icon:        "🌿",
	},
	{
		ID:          BadgeStreakMaster,
		Name:        "Streak Master",
		Description: "Reached a 30 check-in streak",
		Icon:        "🔥",
	},
	{
		ID:          BadgeEcoWarrior,
		Name:        "Eco Warrior",
		Description: "Reached an environmental score of 500",
		Icon:        "🌍",
	},
}

func Badges() []entities.Badge {
	out := make([]entities.Badge, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

func BadgeByID(id string) (entities.Badge, bool) {
	for _, badge := range badgeCatalog {
		if badge.ID == id {
			return badge, true
		}
	}
	return entities.Badge{}, false
}

var couponCatalog = []entities.Coupon{
	{
		ID:       "coupon-green20",
		Code:     "GREEN20",
		Discount: 20,
	},
}

// CouponByCode matches case-insensitively, the way the storefront accepts
// coupon input.
func CouponByCode(code string) (entities.Coupon, bool) {
	for _, coupon := range couponCatalog {
		if strings.EqualFold(coupon.Code, code) {
			return coupon, true
		}
	}
	return entities.Coupon{}, false
}
