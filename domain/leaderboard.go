package domain

var (
	MessageSuccessGetLeaderboard = "leaderboard retrieved successfully"

	MessageFailedGetLeaderboard = "failed to retrieve leaderboard"
)
