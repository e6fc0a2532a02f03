package entities

import (
	"time"
)

// Transaction is an append-only ledger entry. Balance is the wallet balance
// after applying Amount; it is an advisory snapshot, not independently
// verifiable without replaying the ledger.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"` // "reward", "penalty", "purchase", "withdrawal"
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	PlantID     string    `json:"plantId,omitempty"`
	Date        time.Time `json:"date"`
	Balance     float64   `json:"balance"`
}

const (
	TransactionReward   = "reward"
	TransactionPurchase = "purchase"
	// TransactionPenalty and TransactionWithdrawal are valid ledger types
	// that no current code path produces; kept for future extension.
	TransactionPenalty    = "penalty"
	TransactionWithdrawal = "withdrawal"
)
