package services

import (
	"errors"
	"testing"

	"resto_pos_backend/internal/models"
)

func TestProductCRUD(t *testing.T) {
	st := newTestState()
	catalog := NewCatalogService(st)

	product, err := catalog.AddProduct("u-admin", ProductRequest{Name: "Pasta", Price: 9.00, CategoryID: "c-1"})
	if err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	if product.ID == "" {
		t.Error("expected a generated id")
	}

	updated, err := catalog.UpdateProduct("u-admin", product.ID, ProductRequest{Name: "Pasta", Price: 10.50, CategoryID: "c-1"})
	if err != nil {
		t.Fatalf("update product failed: %v", err)
	}
	if updated.Price != 10.50 {
		t.Errorf("expected price 10.50, got %.2f", updated.Price)
	}

	if err := catalog.DeleteProduct("u-admin", product.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.GetProduct(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	// Deleting again is a no-op.
	if err := catalog.DeleteProduct("u-admin", product.ID); err != nil {
		t.Fatal(err)
	}
}

func TestProductWrites_NonAdminRejected(t *testing.T) {
	st := newTestState()
	catalog := NewCatalogService(st)

	before := len(catalog.ListProducts(""))
	if _, err := catalog.AddProduct("u-cashier", ProductRequest{Name: "Cake", Price: 4}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(catalog.ListProducts("")) != before {
		t.Error("forbidden add must leave the catalog unchanged")
	}

	if _, err := catalog.UpdateProduct("u-cashier", "p-a", ProductRequest{Name: "Soup", Price: 1}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if st.FindProduct("p-a").Price != 6.50 {
		t.Error("forbidden update must leave the product unchanged")
	}
}

func TestAddProduct_RejectsNegativePrice(t *testing.T) {
	catalog := NewCatalogService(newTestState())
	if _, err := catalog.AddProduct("u-admin", ProductRequest{Name: "Broken", Price: -1}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestListProducts_CategoryFilter(t *testing.T) {
	catalog := NewCatalogService(newTestState())

	all := catalog.ListProducts("")
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}
	filtered := catalog.ListProducts("c-2")
	if len(filtered) != 1 || filtered[0].ID != "p-c" {
		t.Errorf("expected just p-c for c-2, got %v", filtered)
	}
}

func TestCategoryDelete_LeavesDanglingReferences(t *testing.T) {
	st := newTestState()
	catalog := NewCatalogService(st)

	category, err := catalog.AddCategory("u-admin", "Desserts")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.AddProduct("u-admin", ProductRequest{Name: "Tart", Price: 5, CategoryID: category.ID}); err != nil {
		t.Fatal(err)
	}
	if err := catalog.DeleteCategory("u-admin", category.ID); err != nil {
		t.Fatal(err)
	}

	// The product keeps its now-dangling category id; nothing validates it.
	products := catalog.ListProducts(category.ID)
	if len(products) != 1 || products[0].Name != "Tart" {
		t.Error("expected product to keep its dangling category reference")
	}
}

func TestIngredientCRUD(t *testing.T) {
	catalog := NewCatalogService(newTestState())

	ing, err := catalog.AddIngredient("u-admin", IngredientRequest{Name: "Flour", Unit: "kg", Stock: 10, MinStock: 2, UnitPrice: 0.80})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := catalog.UpdateIngredient("u-admin", ing.ID, IngredientRequest{Name: "Flour", Unit: "kg", Stock: 8, MinStock: 2, UnitPrice: 0.85})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Stock != 8 {
		t.Errorf("expected stock 8, got %v", updated.Stock)
	}

	if _, err := catalog.UpdateIngredient("u-admin", "ghost", IngredientRequest{Name: "X"}); !errors.Is(err, ErrIngredientNotFound) {
		t.Errorf("expected ErrIngredientNotFound, got %v", err)
	}

	if err := catalog.DeleteIngredient("u-admin", ing.ID); err != nil {
		t.Fatal(err)
	}
	if len(catalog.ListIngredients()) != 0 {
		t.Error("expected no ingredients left")
	}
}

func TestSetRecipe_UpsertsByProduct(t *testing.T) {
	catalog := NewCatalogService(newTestState())

	first := models.Recipe{ProductID: "p-a", Ingredients: []models.RecipeIngredient{{IngredientID: "i-1", Quantity: 0.2}}}
	if _, err := catalog.SetRecipe("u-admin", first); err != nil {
		t.Fatal(err)
	}

	// Second write for the same product replaces, never duplicates.
	second := models.Recipe{ProductID: "p-a", Ingredients: []models.RecipeIngredient{{IngredientID: "i-2", Quantity: 0.5}}}
	if _, err := catalog.SetRecipe("u-admin", second); err != nil {
		t.Fatal(err)
	}

	if n := len(catalog.ListRecipes()); n != 1 {
		t.Fatalf("expected one recipe per product, got %d", n)
	}
	got, err := catalog.GetRecipe("p-a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Ingredients[0].IngredientID != "i-2" {
		t.Error("expected the recipe to be replaced wholesale")
	}

	if err := catalog.DeleteRecipe("u-admin", "p-a"); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.GetRecipe("p-a"); !errors.Is(err, ErrRecipeNotFound) {
		t.Errorf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestSetRecipe_NonAdminRejected(t *testing.T) {
	catalog := NewCatalogService(newTestState())
	recipe := models.Recipe{ProductID: "p-a"}
	if _, err := catalog.SetRecipe("u-cashier", recipe); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(catalog.ListRecipes()) != 0 {
		t.Error("forbidden write must not store a recipe")
	}
}
