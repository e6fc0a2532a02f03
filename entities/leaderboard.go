package entities

type LeaderboardEntry struct {
	Rank               int    `json:"rank"`
	UserID             string `json:"userId"`
	UserName           string `json:"userName"`
	Avatar             string `json:"avatar,omitempty"`
	TotalPlants        int    `json:"totalPlants"`
	EnvironmentalScore int    `json:"environmentalScore"`
	ConsecutiveStreak  int    `json:"consecutiveStreak"`
	OverallScore       int    `json:"overallScore"`
}
