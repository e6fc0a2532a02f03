package wallet

import (
	"context"

	"Eco-Earn-Backend/entities"
)

type (
	WalletService interface {
		GetTransactionHistory(ctx context.Context, page, limit int) ([]entities.Transaction, int64, error)
	}

	walletService struct {
		transactionRepository TransactionRepository
	}
)

func NewWalletService(transactionRepository TransactionRepository) WalletService {
	return &walletService{
		transactionRepository: transactionRepository,
	}
}

func (s *walletService) GetTransactionHistory(ctx context.Context, page, limit int) ([]entities.Transaction, int64, error) {
	transactions, err := s.transactionRepository.GetTransactions(ctx)
	if err != nil {
		return nil, 0, err
	}

	count := int64(len(transactions))
	offset := (page - 1) * limit
	if offset >= len(transactions) {
		return []entities.Transaction{}, count, nil
	}
	end := offset + limit
	if end > len(transactions) {
		end = len(transactions)
	}
	return transactions[offset:end], count, nil
}
