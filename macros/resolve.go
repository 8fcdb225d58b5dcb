package macros

import (
	log "github.com/sirupsen/logrus"

	"github.com/joshegilbert/nutriz/models"
)

// ResolveItem computes the macros for one program item in place.
// An overridden item is terminal: its stored macros are kept (after
// numeric coercion) and no lookup happens. Everything else resolves by
// type; a missing food/recipe/meal reference contributes zero rather
// than failing, since historical items may point at deleted entries.
func ResolveItem(item *models.ProgramItem, store Store) {
	if item.MacrosSource == models.MacroSourceOverridden {
		item.Macros = item.Macros.Normalized()
		return
	}

	amount := models.NormalizeAmount(item.Amount)

	switch item.Type {
	case models.ItemFood:
		item.Macros = FoodMacros(item.SourceID, amount, store)
	case models.ItemRecipe:
		item.Macros = recipeRefMacros(item.SourceID, amount, store)
	case models.ItemMeal:
		item.Macros = mealRefMacros(item.SourceID, amount, store)
	case models.ItemCustom:
		// Custom macros are stored as already-total; amount does not scale them.
		item.Macros = item.Macros.Normalized()
	default:
		item.Macros = models.Macros{}
	}
	item.MacrosSource = models.MacroSourceAuto
}

// FoodMacros is a food's per-serving macros scaled by amount, or zero
// when the reference no longer resolves.
func FoodMacros(sourceID string, amount float64, store Store) models.Macros {
	if sourceID == "" {
		return models.Macros{}
	}
	food, ok := store.Food(sourceID)
	if !ok {
		log.WithField("foodId", sourceID).Debug("macro resolution: food reference missing, contributing zero")
		return models.Macros{}
	}
	return food.PerServing.Normalized().Scale(amount)
}

// RecipeMacros is the recipe's base macros: the ingredient foods'
// per-serving macros times each ingredient quantity, summed. A missing
// ingredient food contributes zero.
func RecipeMacros(recipe *models.Recipe, store Store) models.Macros {
	var totals models.Macros
	for _, ing := range recipe.Ingredients {
		quantity := models.NormalizeAmount(ing.Quantity)
		totals = totals.Add(FoodMacros(ing.FoodItemID, quantity, store))
	}
	return totals
}

func recipeRefMacros(sourceID string, amount float64, store Store) models.Macros {
	if sourceID == "" {
		return models.Macros{}
	}
	recipe, ok := store.Recipe(sourceID)
	if !ok {
		log.WithField("recipeId", sourceID).Debug("macro resolution: recipe reference missing, contributing zero")
		return models.Macros{}
	}
	return RecipeMacros(recipe, store).Scale(amount)
}

// mealRefMacros resolves a nested meal reference: each component of
// the library meal is resolved on its own (food, recipe or custom),
// summed, then scaled by the item amount.
func mealRefMacros(sourceID string, amount float64, store Store) models.Macros {
	if sourceID == "" {
		return models.Macros{}
	}
	meal, ok := store.Meal(sourceID)
	if !ok {
		log.WithField("mealId", sourceID).Debug("macro resolution: meal reference missing, contributing zero")
		return models.Macros{}
	}

	var totals models.Macros
	for i := range meal.Components {
		totals = totals.Add(ComponentMacros(&meal.Components[i], store))
	}
	return totals.Scale(amount)
}

// ComponentMacros resolves one meal component. Components are typed
// food, recipe or custom only, so nesting bottoms out here.
func ComponentMacros(component *models.MealComponent, store Store) models.Macros {
	if component.MacrosSource == models.MacroSourceOverridden {
		return component.Macros.Normalized()
	}

	amount := models.NormalizeAmount(component.Amount)

	switch component.Type {
	case models.ComponentFood:
		return FoodMacros(component.SourceID, amount, store)
	case models.ComponentRecipe:
		if component.SourceID == "" {
			return models.Macros{}
		}
		recipe, ok := store.Recipe(component.SourceID)
		if !ok {
			log.WithField("recipeId", component.SourceID).Debug("macro resolution: recipe reference missing, contributing zero")
			return models.Macros{}
		}
		return RecipeMacros(recipe, store).Scale(amount)
	case models.ComponentCustom:
		return component.Macros.Normalized()
	}
	return models.Macros{}
}
