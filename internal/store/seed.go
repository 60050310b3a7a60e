package store

import (
	"resto_pos_backend/internal/models"
	"resto_pos_backend/pkg/utils"
)

// EmptySnapshot returns a snapshot with empty collections and neutral
// settings. Used when seeding is disabled.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Products:    []models.Product{},
		Categories:  []models.Category{},
		Ingredients: []models.Ingredient{},
		Recipes:     []models.Recipe{},
		Users:       []models.User{},
		Orders:      []models.Order{},
		Settings: models.Settings{
			TaxRate:  0.10,
			Currency: models.CurrencyUSD,
		},
	}
}

// SeedSnapshot returns the first-run dataset: a default admin and cashier,
// a small starter menu with recipes, and placeholder business info.
func SeedSnapshot() Snapshot {
	snap := EmptySnapshot()

	snap.Users = []models.User{
		{ID: "user-admin", Name: "Admin", PIN: "1234", Role: models.RoleAdmin},
		{ID: "user-cashier", Name: "Cashier", PIN: "5678", Role: models.RoleCashier},
	}

	snap.Categories = []models.Category{
		{ID: "cat-mains", Name: "Mains"},
		{ID: "cat-sides", Name: "Sides"},
		{ID: "cat-drinks", Name: "Drinks"},
	}

	snap.Products = []models.Product{
		{ID: "prod-burger", Name: "Classic Burger", Price: 8.50, CategoryID: "cat-mains", Description: utils.NewNullString("Beef patty, lettuce, tomato")},
		{ID: "prod-pizza", Name: "Margherita Pizza", Price: 11.00, CategoryID: "cat-mains", Description: utils.NewNullString("Tomato, mozzarella, basil")},
		{ID: "prod-fries", Name: "French Fries", Price: 3.50, CategoryID: "cat-sides", Options: []string{"small", "large"}},
		{ID: "prod-salad", Name: "Garden Salad", Price: 5.00, CategoryID: "cat-sides"},
		{ID: "prod-cola", Name: "Cola", Price: 2.50, CategoryID: "cat-drinks"},
		{ID: "prod-coffee", Name: "Coffee", Price: 3.00, CategoryID: "cat-drinks", Options: []string{"espresso", "americano", "latte"}},
	}

	snap.Ingredients = []models.Ingredient{
		{ID: "ing-beef", Name: "Ground Beef", Unit: "kg", Stock: 12, MinStock: 5, UnitPrice: 9.80, Category: "meat"},
		{ID: "ing-buns", Name: "Burger Buns", Unit: "pcs", Stock: 60, MinStock: 24, UnitPrice: 0.40, Category: "bakery"},
		{ID: "ing-mozzarella", Name: "Mozzarella", Unit: "kg", Stock: 6, MinStock: 2, UnitPrice: 7.20, Category: "dairy"},
		{ID: "ing-potatoes", Name: "Potatoes", Unit: "kg", Stock: 30, MinStock: 10, UnitPrice: 1.10, Category: "produce"},
		{ID: "ing-coffee-beans", Name: "Coffee Beans", Unit: "kg", Stock: 4, MinStock: 1, UnitPrice: 14.50, Category: "dry goods"},
	}

	snap.Recipes = []models.Recipe{
		{ProductID: "prod-burger", Ingredients: []models.RecipeIngredient{
			{IngredientID: "ing-beef", Quantity: 0.15},
			{IngredientID: "ing-buns", Quantity: 1},
		}},
		{ProductID: "prod-fries", Ingredients: []models.RecipeIngredient{
			{IngredientID: "ing-potatoes", Quantity: 0.25},
		}},
		{ProductID: "prod-coffee", Ingredients: []models.RecipeIngredient{
			{IngredientID: "ing-coffee-beans", Quantity: 0.02},
		}},
	}

	snap.BusinessInfo = models.BusinessInfo{
		Name:    "Corner Bistro",
		Address: "12 Market Street",
		Phone:   "+1 555 0100",
		TaxID:   "TAX-000111",
	}

	return snap
}
