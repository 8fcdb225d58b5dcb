// Package macros is the macro aggregation engine: per-item resolution
// against a lookup snapshot and bottom-up rollup of item → meal → day
// → program totals, honoring the auto/overridden flag at every node.
// It is the single source of macro math for the whole backend.
package macros

import (
	"strconv"

	"github.com/joshegilbert/nutriz/models"
)

// Store is the read-only lookup contract the engine resolves against.
// Implementations are already scoped to one owner, so a reference
// outside the caller's scope simply reports false — it never errors
// and never leaks another owner's data.
type Store interface {
	Food(id string) (*models.FoodItem, bool)
	Recipe(id string) (*models.Recipe, bool)
	Meal(id string) (*models.Meal, bool)
}

// Snapshot is a map-backed Store. The caller loads one owner's
// entities up front; all engine lookups are then in-memory reads.
type Snapshot struct {
	foods   map[string]*models.FoodItem
	recipes map[string]*models.Recipe
	meals   map[string]*models.Meal
}

func NewSnapshot(foods []models.FoodItem, recipes []models.Recipe, meals []models.Meal) *Snapshot {
	s := &Snapshot{
		foods:   make(map[string]*models.FoodItem, len(foods)),
		recipes: make(map[string]*models.Recipe, len(recipes)),
		meals:   make(map[string]*models.Meal, len(meals)),
	}
	for i := range foods {
		s.foods[EntityID(foods[i].ID)] = &foods[i]
	}
	for i := range recipes {
		s.recipes[EntityID(recipes[i].ID)] = &recipes[i]
	}
	for i := range meals {
		s.meals[EntityID(meals[i].ID)] = &meals[i]
	}
	return s
}

func (s *Snapshot) Food(id string) (*models.FoodItem, bool) {
	f, ok := s.foods[id]
	return f, ok
}

func (s *Snapshot) Recipe(id string) (*models.Recipe, bool) {
	r, ok := s.recipes[id]
	return r, ok
}

func (s *Snapshot) Meal(id string) (*models.Meal, bool) {
	m, ok := s.meals[id]
	return m, ok
}

// EntityID is the string form of a database id as it appears in
// document sourceId fields.
func EntityID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
