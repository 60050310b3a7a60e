package handlers

import (
	"errors"
	"net/http"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/services"
	"resto_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes product, category, ingredient and recipe CRUD.
type CatalogHandler struct {
	catalog services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: cs}
}

// respondCatalogError maps catalog-service sentinel errors to API responses.
func respondCatalogError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Admin role required.", err.Error()))
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrIngredientNotFound),
		errors.Is(err, services.ErrRecipeNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Not found.", err.Error()))
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Input validation failed.", err.Error()))
	default:
		utils.LogError(err, action)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal error.", ""))
	}
}

// --- Products ---

// GetProducts lists products, optionally filtered by ?category_id=.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListProducts(c.Query("category_id")))
}

// GetProductByID returns one product.
func (h *CatalogHandler) GetProductByID(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Param("id"))
	if err != nil {
		respondCatalogError(c, err, "GetProductByID")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a product to the catalog.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	product, err := h.catalog.AddProduct(c.GetString("userID"), req)
	if err != nil {
		respondCatalogError(c, err, "CreateProduct: Error from catalog.AddProduct")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct replaces the product matching the id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	product, err := h.catalog.UpdateProduct(c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		respondCatalogError(c, err, "UpdateProduct: Error from catalog.UpdateProduct")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.GetString("userID"), c.Param("id")); err != nil {
		respondCatalogError(c, err, "DeleteProduct: Error from catalog.DeleteProduct")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// --- Categories ---

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetCategories lists all categories.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListCategories())
}

// CreateCategory adds a category.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	category, err := h.catalog.AddCategory(c.GetString("userID"), req.Name)
	if err != nil {
		respondCatalogError(c, err, "CreateCategory: Error from catalog.AddCategory")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory renames a category.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	category, err := h.catalog.UpdateCategory(c.GetString("userID"), c.Param("id"), req.Name)
	if err != nil {
		respondCatalogError(c, err, "UpdateCategory: Error from catalog.UpdateCategory")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalog.DeleteCategory(c.GetString("userID"), c.Param("id")); err != nil {
		respondCatalogError(c, err, "DeleteCategory: Error from catalog.DeleteCategory")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

// --- Ingredients ---

// GetIngredients lists all ingredients.
func (h *CatalogHandler) GetIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListIngredients())
}

// CreateIngredient adds an ingredient.
func (h *CatalogHandler) CreateIngredient(c *gin.Context) {
	var req services.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	ingredient, err := h.catalog.AddIngredient(c.GetString("userID"), req)
	if err != nil {
		respondCatalogError(c, err, "CreateIngredient: Error from catalog.AddIngredient")
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient replaces the ingredient matching the id.
func (h *CatalogHandler) UpdateIngredient(c *gin.Context) {
	var req services.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	ingredient, err := h.catalog.UpdateIngredient(c.GetString("userID"), c.Param("id"), req)
	if err != nil {
		respondCatalogError(c, err, "UpdateIngredient: Error from catalog.UpdateIngredient")
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient removes an ingredient.
func (h *CatalogHandler) DeleteIngredient(c *gin.Context) {
	if err := h.catalog.DeleteIngredient(c.GetString("userID"), c.Param("id")); err != nil {
		respondCatalogError(c, err, "DeleteIngredient: Error from catalog.DeleteIngredient")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted"})
}

// --- Recipes ---

// GetRecipes lists all recipes.
func (h *CatalogHandler) GetRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListRecipes())
}

// GetRecipeByProduct returns the recipe for a product.
func (h *CatalogHandler) GetRecipeByProduct(c *gin.Context) {
	recipe, err := h.catalog.GetRecipe(c.Param("productId"))
	if err != nil {
		respondCatalogError(c, err, "GetRecipeByProduct")
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// SetRecipe upserts the recipe for a product.
func (h *CatalogHandler) SetRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	saved, err := h.catalog.SetRecipe(c.GetString("userID"), recipe)
	if err != nil {
		respondCatalogError(c, err, "SetRecipe: Error from catalog.SetRecipe")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteRecipe removes the recipe for a product.
func (h *CatalogHandler) DeleteRecipe(c *gin.Context) {
	if err := h.catalog.DeleteRecipe(c.GetString("userID"), c.Param("productId")); err != nil {
		respondCatalogError(c, err, "DeleteRecipe: Error from catalog.DeleteRecipe")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}
