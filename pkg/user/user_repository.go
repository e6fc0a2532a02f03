package user

import (
	"context"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
)

type (
	UserRepository interface {
		GetUser(ctx context.Context) (*entities.User, error)
		SaveUser(ctx context.Context, user *entities.User) error
		CommitRegistration(ctx context.Context, user *entities.User, transactions []entities.Transaction) error
	}

	userRepository struct {
		store kvstore.Store
	}
)

func NewUserRepository(store kvstore.Store) UserRepository {
	return &userRepository{
		store: store,
	}
}

func (r *userRepository) GetUser(ctx context.Context) (*entities.User, error) {
	var user entities.User
	found, err := r.store.Get(kvstore.KeyUser, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *userRepository) SaveUser(ctx context.Context, user *entities.User) error {
	return r.store.Set(kvstore.KeyUser, user)
}

func (r *userRepository) CommitRegistration(ctx context.Context, user *entities.User, transactions []entities.Transaction) error {
	return r.store.SetAll(map[string]any{
		kvstore.KeyUser:         user,
		kvstore.KeyTransactions: transactions,
		kvstore.KeyPlants:       []entities.Plant{},
	})
}
