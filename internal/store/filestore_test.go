package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"resto_pos_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, false)

	cash := 25.0
	change := 2.45
	snap := EmptySnapshot()
	snap.Products = []models.Product{{ID: "p-1", Name: "Burger", Price: 8.50, CategoryID: "c-1", Options: []string{"rare", "well done"}}}
	snap.Categories = []models.Category{{ID: "c-1", Name: "Mains"}}
	snap.Ingredients = []models.Ingredient{{ID: "i-1", Name: "Beef", Unit: "kg", Stock: 5, MinStock: 2, UnitPrice: 9.80}}
	snap.Recipes = []models.Recipe{{ProductID: "p-1", Ingredients: []models.RecipeIngredient{{IngredientID: "i-1", Quantity: 0.15}}}}
	snap.Users = []models.User{{ID: "u-1", Name: "Ana", PIN: "0042", Role: models.RoleAdmin}}
	snap.Orders = []models.Order{{
		ID:            "o-1",
		Items:         []models.CartItem{{ID: "l-1", ProductID: "p-1", Name: "Burger", Price: 8.50, Quantity: 2}},
		Subtotal:      17.00,
		Tax:           1.70,
		Total:         18.70,
		PaymentMethod: models.PaymentCash,
		CashReceived:  &cash,
		ChangeDue:     &change,
		Status:        models.StatusCompleted,
		Timestamp:     time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC),
		CashierID:     "u-1",
	}}
	snap.BusinessInfo = models.BusinessInfo{Name: "Bistro", Address: "1 Main", Phone: "555", TaxID: "T-1"}
	snap.Settings = models.Settings{TaxRate: 0.10, Currency: models.CurrencyUSD}

	fs.Save(&snap)
	loaded := fs.Load()

	assert.Equal(t, snap.Products, loaded.Products)
	assert.Equal(t, snap.Categories, loaded.Categories)
	assert.Equal(t, snap.Ingredients, loaded.Ingredients)
	assert.Equal(t, snap.Recipes, loaded.Recipes)
	assert.Equal(t, snap.Users, loaded.Users)
	assert.Equal(t, snap.BusinessInfo, loaded.BusinessInfo)
	assert.Equal(t, snap.Settings, loaded.Settings)
	require.Len(t, loaded.Orders, 1)
	assert.Equal(t, snap.Orders[0].Items, loaded.Orders[0].Items)
	assert.Equal(t, *snap.Orders[0].CashReceived, *loaded.Orders[0].CashReceived)
	assert.True(t, snap.Orders[0].Timestamp.Equal(loaded.Orders[0].Timestamp))
}

func TestLoad_MissingDirFallsBackToSeed(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "never-written"), true)
	loaded := fs.Load()

	seed := SeedSnapshot()
	assert.Equal(t, seed.Users, loaded.Users)
	assert.Equal(t, seed.Products, loaded.Products)
	assert.Equal(t, seed.Settings, loaded.Settings)
}

func TestLoad_CorruptKeyFallsBackPerKey(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, false)

	snap := EmptySnapshot()
	snap.Users = []models.User{{ID: "u-1", Name: "Ana", PIN: "0042", Role: models.RoleAdmin}}
	snap.Products = []models.Product{{ID: "p-1", Name: "Burger", Price: 8.50}}
	fs.Save(&snap)

	// Corrupt one blob; the rest of the snapshot must still load.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644))

	loaded := fs.Load()
	assert.Empty(t, loaded.Users, "corrupt key falls back to its default")
	assert.Equal(t, snap.Products, loaded.Products, "other keys are unaffected")
}

func TestSave_UnwritableDirIsSwallowed(t *testing.T) {
	fs := NewFileStore(string([]byte{0}), false)
	snap := EmptySnapshot()
	// Must not panic or surface an error; the in-memory state stays
	// authoritative when mirroring fails.
	fs.Save(&snap)
}

func TestStatePersist_NilGatewayIsNoop(t *testing.T) {
	st := NewStateFrom(EmptySnapshot(), nil)
	st.Lock()
	st.Persist()
	st.Unlock()
}
