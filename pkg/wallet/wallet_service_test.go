package wallet

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
)

func seedLedger(t *testing.T, store kvstore.Store, n int) {
	t.Helper()
	transactions := make([]entities.Transaction, 0, n)
	for i := 0; i < n; i++ {
		transactions = append(transactions, entities.Transaction{
			ID:          fmt.Sprintf("tx-%d", i),
			Type:        entities.TransactionReward,
			Amount:      float64(i),
			Description: fmt.Sprintf("reward %d", i),
		})
	}
	require.NoError(t, store.Set(kvstore.KeyTransactions, transactions))
}

func TestGetTransactionHistory_FirstPage(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedLedger(t, store, 5)
	service := NewWalletService(NewTransactionRepository(store))

	transactions, count, err := service.GetTransactionHistory(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	require.Len(t, transactions, 2)
	// The ledger is stored newest first; pagination preserves that order.
	assert.Equal(t, "tx-0", transactions[0].ID)
	assert.Equal(t, "tx-1", transactions[1].ID)
}

func TestGetTransactionHistory_LastPartialPage(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedLedger(t, store, 5)
	service := NewWalletService(NewTransactionRepository(store))

	transactions, count, err := service.GetTransactionHistory(context.Background(), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	require.Len(t, transactions, 1)
	assert.Equal(t, "tx-4", transactions[0].ID)
}

func TestGetTransactionHistory_PageBeyondEnd(t *testing.T) {
	store := kvstore.NewMemoryStore()
	seedLedger(t, store, 3)
	service := NewWalletService(NewTransactionRepository(store))

	transactions, count, err := service.GetTransactionHistory(context.Background(), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Empty(t, transactions)
}

func TestGetTransactionHistory_EmptyLedger(t *testing.T) {
	store := kvstore.NewMemoryStore()
	service := NewWalletService(NewTransactionRepository(store))

	transactions, count, err := service.GetTransactionHistory(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, transactions)
}
