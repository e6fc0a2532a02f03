package user

import (
	"time"

	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/catalog"
)

// AwardMilestoneBadges appends any catalog badges the user's current stats
// qualify for. It is idempotent and append-only; earned badges are never
// revoked. Callers invoke it just before committing a user mutation.
func AwardMilestoneBadges(u *entities.User, now time.Time) {
	award := func(badgeID string) {
		if u.HasBadge(badgeID) {
			return
		}
		badge, ok := catalog.BadgeByID(badgeID)
		if !ok {
			return
		}
		badge.EarnedDate = now
		u.Badges = append(u.Badges, badge)
	}

	if u.PlantsGrown >= 1 {
		award(catalog.BadgeFirstSprout)
	}
	if u.PlantsGrown >= 10 {
		award(catalog.BadgeGreenThumb)
	}
	if u.ConsecutiveStreak >= 30 {
		award(catalog.BadgeStreakMaster)
	}
	if u.EnvironmentalScore >= 500 {
		award(catalog.BadgeEcoWarrior)
	}
}
