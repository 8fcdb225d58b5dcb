package services

import (
	"fmt"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/macros"
	"github.com/joshegilbert/nutriz/models"
)

// MealService manages the reusable meal library. Component payloads
// are normalized and resolved at write time so stored meals always
// carry consistent macro snapshots.
type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

type MealInput struct {
	Name         string                `json:"name"`
	Description  string                `json:"description"`
	Components   models.MealComponents `json:"components"`
	MacrosSource models.MacroSource    `json:"macrosSource"`
	Macros       models.Macros         `json:"macros"`
}

// buildComponents validates and resolves each component. A food
// component referencing an unknown food is a hard error here (the
// nutritionist is actively picking it), unlike resolution-time misses
// inside the engine which degrade to zero.
func buildComponents(input models.MealComponents, store macros.Store) (models.MealComponents, error) {
	out := make(models.MealComponents, 0, len(input))
	for _, c := range input {
		c.Amount = models.NormalizeAmount(c.Amount)

		switch c.Type {
		case models.ComponentFood, models.ComponentRecipe:
			if c.SourceID == "" {
				return nil, fmt.Errorf("%s component requires a sourceId: %w", c.Type, ErrValidation)
			}
			if c.Type == models.ComponentFood {
				if _, ok := store.Food(c.SourceID); !ok {
					return nil, fmt.Errorf("food item %s: %w", c.SourceID, ErrNotFound)
				}
			} else {
				if _, ok := store.Recipe(c.SourceID); !ok {
					return nil, fmt.Errorf("recipe %s: %w", c.SourceID, ErrNotFound)
				}
			}
			if c.MacrosSource != models.MacroSourceOverridden {
				c.MacrosSource = models.MacroSourceAuto
			}
			c.Macros = macros.ComponentMacros(&c, store)
		case models.ComponentCustom:
			// Custom components are stored pre-totaled and pinned.
			c.Macros = c.Macros.Normalized()
			c.MacrosSource = models.MacroSourceOverridden
		default:
			return nil, fmt.Errorf("unknown component type %q: %w", c.Type, ErrValidation)
		}

		out = append(out, c)
	}
	return out, nil
}

func (s *MealService) Create(nutritionistID uint, input MealInput) (*models.Meal, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("meal name is required: %w", ErrValidation)
	}

	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}
	components, err := buildComponents(input.Components, store)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		NutritionistID: nutritionistID,
		Name:           input.Name,
		Description:    input.Description,
		Components:     components,
	}
	applyMealTotals(meal, input)

	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(nutritionistID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("nutritionist_id = ?", nutritionistID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) Get(nutritionistID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", mealID, nutritionistID).
		First(&meal).Error
	if err != nil {
		return nil, fmt.Errorf("meal %d: %w", mealID, ErrNotFound)
	}
	return &meal, nil
}

func (s *MealService) Update(nutritionistID, mealID uint, input MealInput) (*models.Meal, error) {
	meal, err := s.Get(nutritionistID, mealID)
	if err != nil {
		return nil, err
	}

	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}
	components, err := buildComponents(input.Components, store)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		meal.Name = input.Name
	}
	meal.Description = input.Description
	meal.Components = components
	applyMealTotals(meal, input)

	if err := config.DB.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Delete(nutritionistID, mealID uint) error {
	meal, err := s.Get(nutritionistID, mealID)
	if err != nil {
		return err
	}
	return config.DB.Delete(meal).Error
}

// applyMealTotals sets the meal's own MacroNode: the component sum
// when auto, the caller's pinned values when overridden.
func applyMealTotals(meal *models.Meal, input MealInput) {
	if input.MacrosSource == models.MacroSourceOverridden {
		meal.Macros = input.Macros.Normalized()
		meal.MacrosSource = models.MacroSourceOverridden
		return
	}

	var totals models.Macros
	for i := range meal.Components {
		totals = totals.Add(meal.Components[i].Macros)
	}
	meal.Macros = totals.Rounded()
	meal.MacrosSource = models.MacroSourceAuto
}
