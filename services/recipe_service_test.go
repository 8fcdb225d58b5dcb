package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshegilbert/nutriz/models"
)

func TestApplyRecipeUpdateClearsOptionalFields(t *testing.T) {
	recipe := models.Recipe{
		Name:         "Grilled Chicken",
		Description:  "Weeknight staple",
		ImageURL:     "https://example.com/chicken.jpg",
		Instructions: "Grill it.",
	}

	empty := ""
	require.NoError(t, applyRecipeUpdate(&recipe, RecipeUpdate{
		Description: &empty,
		ImageURL:    &empty,
	}))

	assert.Empty(t, recipe.Description)
	assert.Empty(t, recipe.ImageURL)
	// Unset fields stay as they were.
	assert.Equal(t, "Grilled Chicken", recipe.Name)
	assert.Equal(t, "Grill it.", recipe.Instructions)
}

func TestApplyRecipeUpdateRejectsBlankRequiredFields(t *testing.T) {
	recipe := models.Recipe{Name: "Grilled Chicken", Instructions: "Grill it."}

	empty := ""
	err := applyRecipeUpdate(&recipe, RecipeUpdate{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)

	err = applyRecipeUpdate(&recipe, RecipeUpdate{Instructions: &empty})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Grilled Chicken", recipe.Name)
}

func TestApplyRecipeUpdateSetsFields(t *testing.T) {
	recipe := models.Recipe{Name: "Grilled Chicken", Instructions: "Grill it."}

	name := "Roast Chicken"
	ingredients := models.Ingredients{{FoodItemID: "1", Quantity: 2}}
	tags := models.StringList{"dinner"}
	require.NoError(t, applyRecipeUpdate(&recipe, RecipeUpdate{
		Name:        &name,
		Ingredients: &ingredients,
		Tags:        &tags,
	}))

	assert.Equal(t, "Roast Chicken", recipe.Name)
	assert.Equal(t, ingredients, recipe.Ingredients)
	assert.Equal(t, tags, recipe.Tags)
}
