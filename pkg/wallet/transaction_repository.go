package wallet

import (
	"context"

	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
)

type (
	// TransactionRepository reads the append-only ledger. The ledger is
	// stored newest first; writers prepend and commit through their own
	// repository's multi-key commit.
	TransactionRepository interface {
		GetTransactions(ctx context.Context) ([]entities.Transaction, error)
	}

	transactionRepository struct {
		store kvstore.Store
	}
)

func NewTransactionRepository(store kvstore.Store) TransactionRepository {
	return &transactionRepository{
		store: store,
	}
}

func (r *transactionRepository) GetTransactions(ctx context.Context) ([]entities.Transaction, error) {
	transactions := []entities.Transaction{}
	if _, err := r.store.Get(kvstore.KeyTransactions, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
