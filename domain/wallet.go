package domain

var (
	MessageSuccessGetTransactions = "transaction history retrieved successfully"

	MessageFailedGetTransactions = "failed to retrieve transaction history"
)
