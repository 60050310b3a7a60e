package store

import (
	"sync"

	"resto_pos_backend/internal/models"
)

// Snapshot is the serializable portion of application state: everything the
// persistence gateway mirrors to disk. The active cart and session are
// deliberately absent; they live only for the duration of the process.
type Snapshot struct {
	Products     []models.Product
	Categories   []models.Category
	Ingredients  []models.Ingredient
	Recipes      []models.Recipe
	Users        []models.User
	Orders       []models.Order
	BusinessInfo models.BusinessInfo
	Settings     models.Settings
}

// State is the single source of truth for the till. All reads and mutations
// go through the embedded mutex; derived values (cart totals, report
// aggregates) are always recomputed from the collections here, never cached.
type State struct {
	sync.Mutex
	Snapshot

	// Session-scoped, not persisted.
	Cart        []models.CartItem
	CurrentUser *models.User

	gateway *FileStore
}

// NewState loads the persisted snapshot through the gateway and wraps it in
// a State ready for the services.
func NewState(fs *FileStore) *State {
	return &State{
		Snapshot: fs.Load(),
		gateway:  fs,
	}
}

// NewStateFrom builds a State around an existing snapshot. A nil gateway
// makes Persist a no-op, which is what tests want.
func NewStateFrom(snap Snapshot, fs *FileStore) *State {
	return &State{Snapshot: snap, gateway: fs}
}

// Persist mirrors the current snapshot through the gateway. Best-effort:
// failures are logged inside the gateway and never surface here. Callers
// must already hold the state lock.
func (s *State) Persist() {
	if s.gateway != nil {
		s.gateway.Save(&s.Snapshot)
	}
}

// FindUser returns the user with the given id, or nil.
func (s *State) FindUser(id string) *models.User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// FindProduct returns the product with the given id, or nil.
func (s *State) FindProduct(id string) *models.Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}
