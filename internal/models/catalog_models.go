package models

// Product represents a sellable item on the menu.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price"`
	CategoryID  string   `json:"category_id"`
	Image       string   `json:"image,omitempty"`
	Description *string  `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// Category is a menu section products reference by id.
// References are not validated; a product may point at a deleted category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name" binding:"required"`
}

// Ingredient is a raw material tracked for informational stock levels.
// Nothing in the order path decrements Stock.
type Ingredient struct {
	ID        string  `json:"id"`
	Name      string  `json:"name" binding:"required"`
	Unit      string  `json:"unit"` // e.g. kg, g, l, ml, pcs
	Stock     float64 `json:"stock"`
	MinStock  float64 `json:"min_stock"`
	UnitPrice float64 `json:"unit_price"`
	Category  string  `json:"category,omitempty"`
}

// RecipeIngredient is one line of a recipe.
type RecipeIngredient struct {
	IngredientID string  `json:"ingredient_id" binding:"required"`
	Quantity     float64 `json:"quantity"`
}

// Recipe maps a product to the ingredients it is made from.
// At most one recipe exists per product; writes upsert by ProductID.
type Recipe struct {
	ProductID   string             `json:"product_id" binding:"required"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}
