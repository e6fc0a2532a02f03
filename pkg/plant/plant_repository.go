package plant

import (
	"context"

	"Eco-Earn-Backend/domain"
	"Eco-Earn-Backend/entities"
	"Eco-Earn-Backend/pkg/kvstore"
)

type (
	PlantRepository interface {
		GetPlants(ctx context.Context) ([]entities.Plant, error)
		GetPlantByID(ctx context.Context, id string) (*entities.Plant, error)
		SavePlants(ctx context.Context, plants []entities.Plant) error
		CommitCheckIn(ctx context.Context, plants []entities.Plant, user *entities.User, transactions []entities.Transaction) error
	}

	plantRepository struct {
		store kvstore.Store
	}
)

func NewPlantRepository(store kvstore.Store) PlantRepository {
	return &plantRepository{
		store: store,
	}
}

func (r *plantRepository) GetPlants(ctx context.Context) ([]entities.Plant, error) {
	plants := []entities.Plant{}
	if _, err := r.store.Get(kvstore.KeyPlants, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

func (r *plantRepository) GetPlantByID(ctx context.Context, id string) (*entities.Plant, error) {
	plants, err := r.GetPlants(ctx)
	if err != nil {
		return nil, err
	}
	for i := range plants {
		if plants[i].ID == id {
			return &plants[i], nil
		}
	}
	return nil, domain.ErrPlantNotFound
}

func (r *plantRepository) SavePlants(ctx context.Context, plants []entities.Plant) error {
	return r.store.Set(kvstore.KeyPlants, plants)
}

// CommitCheckIn persists the plant list, the user and the ledger in one
// pass so a check-in can never land partially.
func (r *plantRepository) CommitCheckIn(ctx context.Context, plants []entities.Plant, user *entities.User, transactions []entities.Transaction) error {
	return r.store.SetAll(map[string]any{
		kvstore.KeyPlants:       plants,
		kvstore.KeyUser:         user,
		kvstore.KeyTransactions: transactions,
	})
}
