package services

import (
	"fmt"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/macros"
	"github.com/joshegilbert/nutriz/models"
)

type RecipeService struct{}

func NewRecipeService() *RecipeService {
	return &RecipeService{}
}

type RecipeInput struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	ImageURL     string             `json:"imageUrl"`
	Ingredients  models.Ingredients `json:"ingredients"`
	Instructions string             `json:"instructions"`
	Tags         models.StringList  `json:"tags"`
}

// RecipeUpdate carries the patchable recipe fields. Pointer fields
// distinguish "leave alone" from "set empty", so descriptions and
// images can be cleared.
type RecipeUpdate struct {
	Name         *string             `json:"name"`
	Description  *string             `json:"description"`
	ImageURL     *string             `json:"imageUrl"`
	Ingredients  *models.Ingredients `json:"ingredients"`
	Instructions *string             `json:"instructions"`
	Tags         *models.StringList  `json:"tags"`
}

// RecipeResponse is a recipe plus its derived base macros; recipes
// never store overridden totals, so the macros are always computed.
type RecipeResponse struct {
	models.Recipe
	TotalMacros models.Macros `json:"totalMacros"`
}

// validateIngredients enforces that every referenced food exists in
// the owner's library at write time.
func validateIngredients(ingredients models.Ingredients, store macros.Store) error {
	for _, ing := range ingredients {
		if ing.FoodItemID == "" {
			return fmt.Errorf("ingredient requires a foodItem reference: %w", ErrValidation)
		}
		if _, ok := store.Food(ing.FoodItemID); !ok {
			return fmt.Errorf("food item %s: %w", ing.FoodItemID, ErrNotFound)
		}
	}
	return nil
}

func (s *RecipeService) respond(recipe *models.Recipe, store macros.Store) *RecipeResponse {
	return &RecipeResponse{
		Recipe:      *recipe,
		TotalMacros: macros.RecipeMacros(recipe, store).Rounded(),
	}
}

func (s *RecipeService) Create(nutritionistID uint, input RecipeInput) (*RecipeResponse, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("recipe name is required: %w", ErrValidation)
	}
	if input.Instructions == "" {
		return nil, fmt.Errorf("recipe instructions are required: %w", ErrValidation)
	}

	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}
	if err := validateIngredients(input.Ingredients, store); err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		NutritionistID: nutritionistID,
		Name:           input.Name,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		Ingredients:    input.Ingredients,
		Instructions:   input.Instructions,
		Tags:           input.Tags,
	}
	if err := config.DB.Create(recipe).Error; err != nil {
		return nil, err
	}
	return s.respond(recipe, store), nil
}

func (s *RecipeService) List(nutritionistID uint) ([]RecipeResponse, error) {
	var recipes []models.Recipe
	err := config.DB.
		Where("nutritionist_id = ?", nutritionistID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}
	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, *s.respond(&recipes[i], store))
	}
	return out, nil
}

func (s *RecipeService) Get(nutritionistID, recipeID uint) (*RecipeResponse, error) {
	recipe, err := s.load(nutritionistID, recipeID)
	if err != nil {
		return nil, err
	}
	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}
	return s.respond(recipe, store), nil
}

func (s *RecipeService) Update(nutritionistID, recipeID uint, update RecipeUpdate) (*RecipeResponse, error) {
	recipe, err := s.load(nutritionistID, recipeID)
	if err != nil {
		return nil, err
	}

	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}
	if update.Ingredients != nil {
		if err := validateIngredients(*update.Ingredients, store); err != nil {
			return nil, err
		}
	}
	if err := applyRecipeUpdate(recipe, update); err != nil {
		return nil, err
	}

	if err := config.DB.Save(recipe).Error; err != nil {
		return nil, err
	}
	return s.respond(recipe, store), nil
}

// applyRecipeUpdate copies the set patch fields onto the recipe. Name
// and instructions are required on the entity, so they can be changed
// but not blanked.
func applyRecipeUpdate(recipe *models.Recipe, update RecipeUpdate) error {
	if update.Name != nil {
		if *update.Name == "" {
			return fmt.Errorf("recipe name is required: %w", ErrValidation)
		}
		recipe.Name = *update.Name
	}
	if update.Instructions != nil {
		if *update.Instructions == "" {
			return fmt.Errorf("recipe instructions are required: %w", ErrValidation)
		}
		recipe.Instructions = *update.Instructions
	}
	if update.Description != nil {
		recipe.Description = *update.Description
	}
	if update.ImageURL != nil {
		recipe.ImageURL = *update.ImageURL
	}
	if update.Ingredients != nil {
		recipe.Ingredients = *update.Ingredients
	}
	if update.Tags != nil {
		recipe.Tags = *update.Tags
	}
	return nil
}

func (s *RecipeService) Delete(nutritionistID, recipeID uint) error {
	recipe, err := s.load(nutritionistID, recipeID)
	if err != nil {
		return err
	}
	return config.DB.Delete(recipe).Error
}

func (s *RecipeService) load(nutritionistID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", recipeID, nutritionistID).
		First(&recipe).Error
	if err != nil {
		return nil, fmt.Errorf("recipe %d: %w", recipeID, ErrNotFound)
	}
	return &recipe, nil
}
