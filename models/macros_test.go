package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberOr(t *testing.T) {
	assert.Equal(t, 5.5, NumberOr(5.5, 0))
	assert.Equal(t, 0.0, NumberOr(math.NaN(), 0))
	assert.Equal(t, 0.0, NumberOr(math.Inf(1), 0))
	assert.Equal(t, 0.0, NumberOr(-3, 0))
	assert.Equal(t, 0.0, NumberOr(0, 0))
}

func TestNormalizeAmount(t *testing.T) {
	assert.Equal(t, 2.5, NormalizeAmount(2.5))
	assert.Equal(t, 0.0, NormalizeAmount(0))
	assert.Equal(t, 0.0, NormalizeAmount(-1))
	assert.Equal(t, 1.0, NormalizeAmount(math.NaN()))
}

func TestMacrosRounded(t *testing.T) {
	m := Macros{Calories: 495.4, Protein: 93.04, Carbs: 0.25, Fat: 10.84}
	assert.Equal(t, Macros{Calories: 495, Protein: 93, Carbs: 0.3, Fat: 10.8}, m.Rounded())
}

func TestMacrosAddScale(t *testing.T) {
	a := Macros{Calories: 100, Protein: 10, Carbs: 5, Fat: 2}
	b := Macros{Calories: 50, Protein: 2, Carbs: 10, Fat: 1}
	assert.Equal(t, Macros{Calories: 150, Protein: 12, Carbs: 15, Fat: 3}, a.Add(b))
	assert.Equal(t, Macros{Calories: 200, Protein: 20, Carbs: 10, Fat: 4}, a.Scale(2))
}

func TestProgramItemDefaultsOnUnmarshal(t *testing.T) {
	var item ProgramItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"i1","type":"food","sourceId":"1"}`), &item))
	assert.Equal(t, 1.0, item.Amount)
	assert.Equal(t, MacroSourceAuto, item.MacrosSource)

	// An explicit zero survives as a placeholder; negatives clamp.
	require.NoError(t, json.Unmarshal([]byte(`{"id":"i2","type":"food","amount":0}`), &item))
	assert.Equal(t, 0.0, item.Amount)
	require.NoError(t, json.Unmarshal([]byte(`{"id":"i3","type":"food","amount":-2}`), &item))
	assert.Equal(t, 0.0, item.Amount)

	// Untyped items are custom.
	var untyped ProgramItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"i4"}`), &untyped))
	assert.Equal(t, ItemCustom, untyped.Type)
}

func TestMealComponentDefaultsOnUnmarshal(t *testing.T) {
	var c MealComponent
	require.NoError(t, json.Unmarshal([]byte(`{"sourceId":"1"}`), &c))
	assert.Equal(t, ComponentFood, c.Type)
	assert.Equal(t, 1.0, c.Amount)

	var custom MealComponent
	require.NoError(t, json.Unmarshal([]byte(`{"customName":"Shake"}`), &custom))
	assert.Equal(t, ComponentCustom, custom.Type)
}

func TestIngredientQuantityDefault(t *testing.T) {
	var ing Ingredient
	require.NoError(t, json.Unmarshal([]byte(`{"foodItem":"1","amount":"100g"}`), &ing))
	assert.Equal(t, 1.0, ing.Quantity)

	require.NoError(t, json.Unmarshal([]byte(`{"foodItem":"1","quantity":1.5}`), &ing))
	assert.Equal(t, 1.5, ing.Quantity)
}

func TestAbsentMacroFieldsDefaultToZero(t *testing.T) {
	var item ProgramItem
	require.NoError(t, json.Unmarshal([]byte(`{"id":"i1","type":"custom","macros":{"calories":120}}`), &item))
	assert.Equal(t, Macros{Calories: 120}, item.Macros)
}
