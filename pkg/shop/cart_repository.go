package shop

import (
	"context"

	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
)

type (
	CartRepository interface {
		GetCart(ctx context.Context) (*entities.Cart, error)
		SaveCart(ctx context.Context, cart *entities.Cart) error
		CommitPurchase(ctx context.Context, user *entities.User, plants []entities.Plant, transactions []entities.Transaction) error
		CommitCheckout(ctx context.Context, cart *entities.Cart, user *entities.User, plants []entities.Plant, transactions []entities.Transaction) error
	}

	cartRepository struct {
		store kvstore.Store
	}
)

func NewCartRepository(store kvstore.Store) CartRepository {
	return &cartRepository{
		store: store,
	}
}

func (r *cartRepository) GetCart(ctx context.Context) (*entities.Cart, error) {
	cart := entities.Cart{Items: []entities.CartItem{}, Total: 0}
	if _, err := r.store.Get(kvstore.KeyCart, &cart); err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []entities.CartItem{}
	}
	return &cart, nil
}

func (r *cartRepository) SaveCart(ctx context.Context, cart *entities.Cart) error {
	return r.store.Set(kvstore.KeyCart, cart)
}

func (r *cartRepository) CommitPurchase(ctx context.Context, user *entities.User, plants []entities.Plant, transactions []entities.Transaction) error {
	return r.store.SetAll(map[string]any{
		kvstore.KeyUser:         user,
		kvstore.KeyPlants:       plants,
		kvstore.KeyTransactions: transactions,
	})
}

// CommitCheckout additionally clears the cart in the same pass.
func (r *cartRepository) CommitCheckout(ctx context.Context, cart *entities.Cart, user *entities.User, plants []entities.Plant, transactions []entities.Transaction) error {
	return r.store.SetAll(map[string]any{
		kvstore.KeyCart:         cart,
		kvstore.KeyUser:         user,
		kvstore.KeyPlants:       plants,
		kvstore.KeyTransactions: transactions,
	})
}
