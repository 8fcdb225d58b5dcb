package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/macros"
	"github.com/joshegilbert/nutriz/models"
)

type MealTemplateService struct{}

func NewMealTemplateService() *MealTemplateService {
	return &MealTemplateService{}
}

type MealTemplateInput struct {
	Name string              `json:"name"`
	Tags models.StringList   `json:"tags"`
	Meal models.TemplateMeal `json:"meal"`
}

// refreshTotals resolves the template's items through the engine and
// recomputes the derived total and item count before every save.
func refreshTotals(tpl *models.MealTemplate, store macros.Store) {
	for i := range tpl.Meal.Items {
		if tpl.Meal.Items[i].ID == "" {
			tpl.Meal.Items[i].ID = uuid.NewString()
		}
		macros.ResolveItem(&tpl.Meal.Items[i], store)
	}

	var totals models.Macros
	for i := range tpl.Meal.Items {
		totals = totals.Add(tpl.Meal.Items[i].Macros)
	}
	if tpl.Meal.MacrosSource != models.MacroSourceOverridden {
		tpl.Meal.Macros = totals.Rounded()
		tpl.Meal.MacrosSource = models.MacroSourceAuto
	}
	tpl.TotalMacros = totals.Rounded()
	tpl.ItemCount = len(tpl.Meal.Items)
}

func (s *MealTemplateService) Create(nutritionistID uint, input MealTemplateInput) (*models.MealTemplate, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("meal template name is required: %w", ErrValidation)
	}

	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}

	tpl := &models.MealTemplate{
		NutritionistID: nutritionistID,
		Name:           input.Name,
		Tags:           input.Tags,
		Meal:           input.Meal,
	}
	refreshTotals(tpl, store)

	if err := config.DB.Create(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *MealTemplateService) List(nutritionistID uint) ([]models.MealTemplate, error) {
	var templates []models.MealTemplate
	err := config.DB.
		Where("nutritionist_id = ?", nutritionistID).
		Order("created_at DESC").
		Find(&templates).Error
	return templates, err
}

func (s *MealTemplateService) Update(nutritionistID, templateID uint, input MealTemplateInput) (*models.MealTemplate, error) {
	var tpl models.MealTemplate
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", templateID, nutritionistID).
		First(&tpl).Error
	if err != nil {
		return nil, fmt.Errorf("meal template %d: %w", templateID, ErrNotFound)
	}

	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		tpl.Name = input.Name
	}
	if input.Tags != nil {
		tpl.Tags = input.Tags
	}
	tpl.Meal = input.Meal
	refreshTotals(&tpl, store)

	if err := config.DB.Save(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *MealTemplateService) Delete(nutritionistID, templateID uint) error {
	var tpl models.MealTemplate
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", templateID, nutritionistID).
		First(&tpl).Error
	if err != nil {
		return fmt.Errorf("meal template %d: %w", templateID, ErrNotFound)
	}
	return config.DB.Delete(&tpl).Error
}
