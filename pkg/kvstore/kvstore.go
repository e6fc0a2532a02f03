package kvstore

// Persisted keys. Each holds one JSON document with no schema version;
// the only contract is that a write is visible to the next read in the
// same process.
const (
	KeyUser         = "user"
	KeyPlants       = "plants"
	KeyTransactions = "transactions"
	KeyLeaderboard  = "leaderboard"
	KeyCart         = "shopping_cart"
)

type (
	// Store is the persisted string -> JSON value mapping backing every
	// repository. Get reports false when the key is absent so callers can
	// fall back to their default. SetAll persists every pair in a single
	// pass; repositories use it to commit a multi-entity update so either
	// all of it lands or none of it does.
	Store interface {
		Get(key string, out any) (bool, error)
		Set(key string, value any) error
		SetAll(values map[string]any) error
	}
)
