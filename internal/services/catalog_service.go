package services

import (
	"errors"
	"fmt"

	"resto_pos_backend/internal/models"
	"resto_pos_backend/internal/store"
	"resto_pos_backend/pkg/utils"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrRecipeNotFound     = errors.New("no recipe for that product")
)

// --- DTOs ---

// ProductRequest carries the writable product fields.
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price"`
	CategoryID  string   `json:"category_id"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

// IngredientRequest carries the writable ingredient fields.
type IngredientRequest struct {
	Name      string  `json:"name" binding:"required"`
	Unit      string  `json:"unit"`
	Stock     float64 `json:"stock"`
	MinStock  float64 `json:"min_stock"`
	UnitPrice float64 `json:"unit_price"`
	Category  string  `json:"category"`
}

// --- CatalogService Interface ---

// CatalogService owns products, categories, ingredients and recipes. Writes
// require the actor to be an admin and mirror the affected collections
// through the persistence gateway. Reads are open to any authenticated user.
//
// Category references on products are not validated; a dangling category_id
// is tolerated, and deleting a product leaves any historical order or cart
// line that captured it untouched.
type CatalogService interface {
	ListProducts(categoryID string) []models.Product
	GetProduct(id string) (*models.Product, error)
	AddProduct(actorID string, req ProductRequest) (*models.Product, error)
	UpdateProduct(actorID, id string, req ProductRequest) (*models.Product, error)
	DeleteProduct(actorID, id string) error

	ListCategories() []models.Category
	AddCategory(actorID, name string) (*models.Category, error)
	UpdateCategory(actorID, id, name string) (*models.Category, error)
	DeleteCategory(actorID, id string) error

	ListIngredients() []models.Ingredient
	AddIngredient(actorID string, req IngredientRequest) (*models.Ingredient, error)
	UpdateIngredient(actorID, id string, req IngredientRequest) (*models.Ingredient, error)
	DeleteIngredient(actorID, id string) error

	ListRecipes() []models.Recipe
	GetRecipe(productID string) (*models.Recipe, error)
	SetRecipe(actorID string, recipe models.Recipe) (*models.Recipe, error)
	DeleteRecipe(actorID, productID string) error
}

type catalogService struct {
	st *store.State
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(st *store.State) CatalogService {
	return &catalogService{st: st}
}

func (s *catalogService) requireAdmin(actorID string) error {
	if !s.st.FindUser(actorID).IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// --- Products ---

// ListProducts returns the catalog, optionally filtered by category. An
// empty categoryID means all products.
func (s *catalogService) ListProducts(categoryID string) []models.Product {
	s.st.Lock()
	defer s.st.Unlock()

	out := make([]models.Product, 0, len(s.st.Products))
	for _, p := range s.st.Products {
		if categoryID == "" || p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) GetProduct(id string) (*models.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()
	if p := s.st.FindProduct(id); p != nil {
		product := *p
		return &product, nil
	}
	return nil, ErrProductNotFound
}

func (s *catalogService) AddProduct(actorID string, req ProductRequest) (*models.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	product := models.Product{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
		Description: utils.NewNullString(req.Description),
		Options:     req.Options,
	}
	s.st.Products = append(s.st.Products, product)
	s.st.Persist()
	return &product, nil
}

// UpdateProduct replaces the entry matching id wholesale. Cart lines and
// historical orders keep their captured name and price regardless.
func (s *catalogService) UpdateProduct(actorID, id string, req ProductRequest) (*models.Product, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	product := s.st.FindProduct(id)
	if product == nil {
		return nil, ErrProductNotFound
	}
	*product = models.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
		Description: utils.NewNullString(req.Description),
		Options:     req.Options,
	}
	updated := *product
	s.st.Persist()
	return &updated, nil
}

// DeleteProduct filters the product out. Absent ids are a no-op; no
// cascading cleanup of carts or recipes referencing the id.
func (s *catalogService) DeleteProduct(actorID, id string) error {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return err
	}

	kept := s.st.Products[:0]
	removed := false
	for _, p := range s.st.Products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.st.Products = kept
	if removed {
		s.st.Persist()
	}
	return nil
}

// --- Categories ---

func (s *catalogService) ListCategories() []models.Category {
	s.st.Lock()
	defer s.st.Unlock()
	out := make([]models.Category, len(s.st.Categories))
	copy(out, s.st.Categories)
	return out
}

func (s *catalogService) AddCategory(actorID, name string) (*models.Category, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if utils.IsEmpty(name) {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category := models.Category{ID: uuid.New().String(), Name: name}
	s.st.Categories = append(s.st.Categories, category)
	s.st.Persist()
	return &category, nil
}

func (s *catalogService) UpdateCategory(actorID, id, name string) (*models.Category, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if utils.IsEmpty(name) {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	for i := range s.st.Categories {
		if s.st.Categories[i].ID == id {
			s.st.Categories[i].Name = name
			category := s.st.Categories[i]
			s.st.Persist()
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// DeleteCategory removes the category. Products referencing it keep their
// dangling category_id.
func (s *catalogService) DeleteCategory(actorID, id string) error {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return err
	}

	kept := s.st.Categories[:0]
	removed := false
	for _, c := range s.st.Categories {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	s.st.Categories = kept
	if removed {
		s.st.Persist()
	}
	return nil
}

// --- Ingredients ---

func (s *catalogService) ListIngredients() []models.Ingredient {
	s.st.Lock()
	defer s.st.Unlock()
	out := make([]models.Ingredient, len(s.st.Ingredients))
	copy(out, s.st.Ingredients)
	return out
}

func (s *catalogService) AddIngredient(actorID string, req IngredientRequest) (*models.Ingredient, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	ingredient := models.Ingredient{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Unit:      req.Unit,
		Stock:     req.Stock,
		MinStock:  req.MinStock,
		UnitPrice: req.UnitPrice,
		Category:  req.Category,
	}
	s.st.Ingredients = append(s.st.Ingredients, ingredient)
	s.st.Persist()
	return &ingredient, nil
}

func (s *catalogService) UpdateIngredient(actorID, id string, req IngredientRequest) (*models.Ingredient, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	for i := range s.st.Ingredients {
		if s.st.Ingredients[i].ID == id {
			s.st.Ingredients[i] = models.Ingredient{
				ID:        id,
				Name:      req.Name,
				Unit:      req.Unit,
				Stock:     req.Stock,
				MinStock:  req.MinStock,
				UnitPrice: req.UnitPrice,
				Category:  req.Category,
			}
			ingredient := s.st.Ingredients[i]
			s.st.Persist()
			return &ingredient, nil
		}
	}
	return nil, ErrIngredientNotFound
}

func (s *catalogService) DeleteIngredient(actorID, id string) error {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return err
	}

	kept := s.st.Ingredients[:0]
	removed := false
	for _, ing := range s.st.Ingredients {
		if ing.ID == id {
			removed = true
			continue
		}
		kept = append(kept, ing)
	}
	s.st.Ingredients = kept
	if removed {
		s.st.Persist()
	}
	return nil
}

// --- Recipes ---

func (s *catalogService) ListRecipes() []models.Recipe {
	s.st.Lock()
	defer s.st.Unlock()
	out := make([]models.Recipe, len(s.st.Recipes))
	copy(out, s.st.Recipes)
	return out
}

func (s *catalogService) GetRecipe(productID string) (*models.Recipe, error) {
	s.st.Lock()
	defer s.st.Unlock()
	for i := range s.st.Recipes {
		if s.st.Recipes[i].ProductID == productID {
			recipe := s.st.Recipes[i]
			return &recipe, nil
		}
	}
	return nil, ErrRecipeNotFound
}

// SetRecipe upserts by product id: at most one recipe per product, replaced
// wholesale when one already exists.
func (s *catalogService) SetRecipe(actorID string, recipe models.Recipe) (*models.Recipe, error) {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}
	if utils.IsEmpty(recipe.ProductID) {
		return nil, fmt.Errorf("%w: product_id is required", ErrValidation)
	}

	for i := range s.st.Recipes {
		if s.st.Recipes[i].ProductID == recipe.ProductID {
			s.st.Recipes[i] = recipe
			s.st.Persist()
			return &recipe, nil
		}
	}
	s.st.Recipes = append(s.st.Recipes, recipe)
	s.st.Persist()
	return &recipe, nil
}

func (s *catalogService) DeleteRecipe(actorID, productID string) error {
	s.st.Lock()
	defer s.st.Unlock()

	if err := s.requireAdmin(actorID); err != nil {
		return err
	}

	kept := s.st.Recipes[:0]
	removed := false
	for _, r := range s.st.Recipes {
		if r.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.st.Recipes = kept
	if removed {
		s.st.Persist()
	}
	return nil
}
