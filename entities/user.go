package entities

import (
	"time"
)

type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	WalletBalance      float64   `json:"walletBalance"`
	TotalEarnings      float64   `json:"totalEarnings"`      // lifetime rewards, never decreases
	PlantsGrown        int       `json:"plantsGrown"`        // lifetime count, never decreases
	EnvironmentalScore int       `json:"environmentalScore"` // cumulative, +10 per check-in
	ConsecutiveStreak  int       `json:"consecutiveStreak"`  // monotonic, no reset path
	Badges             []Badge   `json:"badges"`
	JoinedDate         time.Time `json:"joinedDate"`
}

type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedDate  time.Time `json:"earnedDate,omitempty"`
}

func (u *User) HasBadge(badgeID string) bool {
	for _, b := range u.Badges {
		if b.ID == badgeID {
			return true
		}
	}
	return false
}
