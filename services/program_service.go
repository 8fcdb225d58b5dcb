package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/macros"
	"github.com/joshegilbert/nutriz/models"
)

// ProgramService owns the program document lifecycle: every mutation
// loads the owner's program, applies the structural edit, runs the
// full bottom-up macro recompute and rewrites the whole document.
type ProgramService struct{}

func NewProgramService() *ProgramService {
	return &ProgramService{}
}

type ProgramInput struct {
	Client    uint               `json:"client"`
	Name      string             `json:"name"`
	StartDate string             `json:"startDate"`
	Length    int                `json:"length"`
	Days      models.ProgramDays `json:"days"`
}

// ProgramUpdate carries the patchable root fields of a program.
type ProgramUpdate struct {
	Client    *uint               `json:"client"`
	Name      *string             `json:"name"`
	StartDate *string             `json:"startDate"`
	Length    *int                `json:"length"`
	Days      *models.ProgramDays `json:"days"`
}

type DayPatch struct {
	Date          *string               `json:"date"`
	Notes         *string               `json:"notes"`
	Meals         *[]models.ProgramMeal `json:"meals"`
	Macros        *models.Macros        `json:"macros"`
	MacrosSource  *models.MacroSource   `json:"macrosSource"`
	ActiveVariant *string               `json:"activeVariant"`
	Variants      *[]models.DayVariant  `json:"variants"`
}

type MealPatch struct {
	Name         *string               `json:"name"`
	MealTime     *string               `json:"mealTime"`
	Time         *string               `json:"time"`
	Items        *[]models.ProgramItem `json:"items"`
	Macros       *models.Macros        `json:"macros"`
	MacrosSource *models.MacroSource   `json:"macrosSource"`
}

type ItemPatch struct {
	Type         *models.ItemType    `json:"type"`
	SourceID     *string             `json:"sourceId"`
	Name         *string             `json:"name"`
	Amount       *float64            `json:"amount"`
	Unit         *string             `json:"unit"`
	Notes        *string             `json:"notes"`
	Time         *string             `json:"time"`
	Macros       *models.Macros      `json:"macros"`
	MacrosSource *models.MacroSource `json:"macrosSource"`
}

func ensureClientOwnership(clientID, nutritionistID uint) bool {
	var client models.Client
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", clientID, nutritionistID).
		First(&client).Error
	return err == nil
}

// Create builds a new program. When no days are supplied but start
// date and length are, the standard day skeleton is generated.
func (s *ProgramService) Create(nutritionistID uint, input ProgramInput) (*models.Program, error) {
	if input.Client == 0 {
		return nil, fmt.Errorf("client is required for program creation: %w", ErrValidation)
	}
	if !ensureClientOwnership(input.Client, nutritionistID) {
		return nil, fmt.Errorf("client: %w", ErrNotFound)
	}

	program := &models.Program{
		NutritionistID: nutritionistID,
		ClientID:       input.Client,
		Name:           input.Name,
		StartDate:      input.StartDate,
		Length:         input.Length,
		MacrosSource:   models.MacroSourceAuto,
		Days:           input.Days,
	}
	if len(program.Days) == 0 {
		program.Days = BuildProgramDays(input.StartDate, input.Length)
	}
	ensureNodeIDs(program.Days)

	return s.recalculateAndSave(program)
}

// List returns the owner's programs, optionally filtered by client,
// each recomputed so read responses always carry fresh totals.
func (s *ProgramService) List(nutritionistID uint, clientID string) ([]models.Program, error) {
	query := config.DB.
		Where("nutritionist_id = ?", nutritionistID).
		Order("created_at DESC")
	if clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var programs []models.Program
	if err := query.Find(&programs).Error; err != nil {
		return nil, err
	}

	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}
	for i := range programs {
		macros.RecalculateProgram(&programs[i], store)
	}
	return programs, nil
}

func (s *ProgramService) Get(nutritionistID, programID uint) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	store, err := LoadLookups(nutritionistID)
	if err != nil {
		return nil, err
	}
	return macros.RecalculateProgram(program, store), nil
}

func (s *ProgramService) Update(nutritionistID, programID uint, update ProgramUpdate) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}

	if update.Client != nil && *update.Client != program.ClientID {
		if !ensureClientOwnership(*update.Client, nutritionistID) {
			return nil, fmt.Errorf("client: %w", ErrNotFound)
		}
		program.ClientID = *update.Client
	}
	if update.Name != nil {
		program.Name = *update.Name
	}
	if update.StartDate != nil {
		program.StartDate = *update.StartDate
	}
	if update.Length != nil {
		program.Length = *update.Length
	}
	if update.Days != nil {
		program.Days = *update.Days
		ensureNodeIDs(program.Days)
	}

	return s.recalculateAndSave(program)
}

func (s *ProgramService) Delete(nutritionistID, programID uint) error {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return err
	}
	return config.DB.Delete(program).Error
}

// AddDay appends a day to the program.
func (s *ProgramService) AddDay(nutritionistID, programID uint, day models.ProgramDay) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	if day.ID == "" {
		day.ID = uuid.NewString()
	}
	ensureDayIDs(&day)
	program.Days = append(program.Days, day)

	return s.recalculateAndSave(program)
}

func (s *ProgramService) UpdateDay(nutritionistID, programID uint, dayID string, patch DayPatch) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	day, err := findDay(program, dayID)
	if err != nil {
		return nil, err
	}

	applyDayPatch(day, patch)
	ensureDayIDs(day)

	return s.recalculateAndSave(program)
}

// applyDayPatch copies the set patch fields onto the day. Variant
// fields apply first so a meals patch lands in the active variant's
// list when the day has variants; patching day.Meals directly there
// would be discarded by the next recompute's mirror overwrite.
func applyDayPatch(day *models.ProgramDay, patch DayPatch) {
	if patch.Date != nil {
		day.Date = *patch.Date
	}
	if patch.Notes != nil {
		day.Notes = *patch.Notes
	}
	if patch.Macros != nil {
		day.Macros = *patch.Macros
	}
	if patch.MacrosSource != nil {
		day.MacrosSource = *patch.MacrosSource
	}
	if patch.ActiveVariant != nil {
		day.ActiveVariant = *patch.ActiveVariant
	}
	if patch.Variants != nil {
		day.Variants = *patch.Variants
	}
	if patch.Meals != nil {
		*dayMeals(day) = *patch.Meals
	}
}

func (s *ProgramService) DeleteDay(nutritionistID, programID uint, dayID string) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}

	removed := false
	days := program.Days[:0]
	for _, day := range program.Days {
		if day.ID == dayID {
			removed = true
			continue
		}
		days = append(days, day)
	}
	if !removed {
		return nil, fmt.Errorf("day %s: %w", dayID, ErrNotFound)
	}
	program.Days = days

	return s.recalculateAndSave(program)
}

// SetDayVariant selects the active A/B variant of a day.
func (s *ProgramService) SetDayVariant(nutritionistID, programID uint, dayID, key string) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	day, err := findDay(program, dayID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range day.Variants {
		if day.Variants[i].Key == key {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("variant %s: %w", key, ErrNotFound)
	}
	day.ActiveVariant = key

	return s.recalculateAndSave(program)
}

// AddMeal appends a meal to a day. When the day has variants the edit
// targets the active variant, which is authoritative for the day.
func (s *ProgramService) AddMeal(nutritionistID, programID uint, dayID string, meal models.ProgramMeal) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	day, err := findDay(program, dayID)
	if err != nil {
		return nil, err
	}
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	ensureMealIDs(&meal)

	meals := dayMeals(day)
	*meals = append(*meals, meal)

	return s.recalculateAndSave(program)
}

func (s *ProgramService) UpdateMeal(nutritionistID, programID uint, dayID, mealID string, patch MealPatch) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	day, err := findDay(program, dayID)
	if err != nil {
		return nil, err
	}
	meal, err := findMeal(dayMeals(day), mealID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		meal.Name = *patch.Name
	}
	if patch.MealTime != nil {
		meal.MealTime = *patch.MealTime
	}
	if patch.Time != nil {
		meal.Time = *patch.Time
	}
	if patch.Items != nil {
		meal.Items = *patch.Items
	}
	if patch.Macros != nil {
		meal.Macros = *patch.Macros
	}
	if patch.MacrosSource != nil {
		meal.MacrosSource = *patch.MacrosSource
	}
	ensureMealIDs(meal)

	return s.recalculateAndSave(program)
}

func (s *ProgramService) DeleteMeal(nutritionistID, programID uint, dayID, mealID string) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	day, err := findDay(program, dayID)
	if err != nil {
		return nil, err
	}

	meals := dayMeals(day)
	removed := false
	kept := (*meals)[:0]
	for _, meal := range *meals {
		if meal.ID == mealID {
			removed = true
			continue
		}
		kept = append(kept, meal)
	}
	if !removed {
		return nil, fmt.Errorf("meal %s: %w", mealID, ErrNotFound)
	}
	*meals = kept

	return s.recalculateAndSave(program)
}

// AddItem appends an item to a meal.
func (s *ProgramService) AddItem(nutritionistID, programID uint, dayID, mealID string, item models.ProgramItem) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	day, err := findDay(program, dayID)
	if err != nil {
		return nil, err
	}
	meal, err := findMeal(dayMeals(day), mealID)
	if err != nil {
		return nil, err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	meal.Items = append(meal.Items, item)

	return s.recalculateAndSave(program)
}

func (s *ProgramService) UpdateItem(nutritionistID, programID uint, dayID, mealID, itemID string, patch ItemPatch) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	day, err := findDay(program, dayID)
	if err != nil {
		return nil, err
	}
	meal, err := findMeal(dayMeals(day), mealID)
	if err != nil {
		return nil, err
	}
	item, err := findItem(meal, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Type != nil {
		item.Type = *patch.Type
	}
	if patch.SourceID != nil {
		item.SourceID = *patch.SourceID
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Amount != nil {
		item.Amount = models.NormalizeAmount(*patch.Amount)
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.Notes != nil {
		item.Notes = *patch.Notes
	}
	if patch.Time != nil {
		item.Time = *patch.Time
	}
	if patch.Macros != nil {
		item.Macros = *patch.Macros
	}
	if patch.MacrosSource != nil {
		item.MacrosSource = *patch.MacrosSource
	}

	return s.recalculateAndSave(program)
}

func (s *ProgramService) DeleteItem(nutritionistID, programID uint, dayID, mealID, itemID string) (*models.Program, error) {
	program, err := s.load(nutritionistID, programID)
	if err != nil {
		return nil, err
	}
	day, err := findDay(program, dayID)
	if err != nil {
		return nil, err
	}
	meal, err := findMeal(dayMeals(day), mealID)
	if err != nil {
		return nil, err
	}

	removed := false
	items := meal.Items[:0]
	for _, item := range meal.Items {
		if item.ID == itemID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	if !removed {
		return nil, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
	}
	meal.Items = items

	return s.recalculateAndSave(program)
}

func (s *ProgramService) load(nutritionistID, programID uint) (*models.Program, error) {
	var program models.Program
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", programID, nutritionistID).
		First(&program).Error
	if err != nil {
		return nil, fmt.Errorf("program %d: %w", programID, ErrNotFound)
	}
	return &program, nil
}

// recalculateAndSave runs the engine over the whole tree and rewrites
// the document. A failed food/recipe lookup never aborts the save;
// the missing reference simply contributes zero.
func (s *ProgramService) recalculateAndSave(program *models.Program) (*models.Program, error) {
	store, err := LoadLookups(program.NutritionistID)
	if err != nil {
		return nil, err
	}
	macros.RecalculateProgram(program, store)

	if err := config.DB.Save(program).Error; err != nil {
		return nil, err
	}
	return program, nil
}

// dayMeals is where structural meal edits go: the active variant's
// list when variants exist, the day's own list otherwise.
func dayMeals(day *models.ProgramDay) *[]models.ProgramMeal {
	if len(day.Variants) > 0 {
		return &macros.ActiveVariant(day).Meals
	}
	return &day.Meals
}

func findDay(program *models.Program, dayID string) (*models.ProgramDay, error) {
	for i := range program.Days {
		if program.Days[i].ID == dayID {
			return &program.Days[i], nil
		}
	}
	return nil, fmt.Errorf("day %s: %w", dayID, ErrNotFound)
}

func findMeal(meals *[]models.ProgramMeal, mealID string) (*models.ProgramMeal, error) {
	for i := range *meals {
		if (*meals)[i].ID == mealID {
			return &(*meals)[i], nil
		}
	}
	return nil, fmt.Errorf("meal %s: %w", mealID, ErrNotFound)
}

func findItem(meal *models.ProgramMeal, itemID string) (*models.ProgramItem, error) {
	for i := range meal.Items {
		if meal.Items[i].ID == itemID {
			return &meal.Items[i], nil
		}
	}
	return nil, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
}

func ensureNodeIDs(days models.ProgramDays) {
	for i := range days {
		if days[i].ID == "" {
			days[i].ID = uuid.NewString()
		}
		ensureDayIDs(&days[i])
	}
}

func ensureDayIDs(day *models.ProgramDay) {
	ensureMealListIDs(day.Meals)
	for v := range day.Variants {
		ensureMealListIDs(day.Variants[v].Meals)
	}
}

func ensureMealListIDs(meals []models.ProgramMeal) {
	for i := range meals {
		if meals[i].ID == "" {
			meals[i].ID = uuid.NewString()
		}
		ensureMealIDs(&meals[i])
	}
}

func ensureMealIDs(meal *models.ProgramMeal) {
	for i := range meal.Items {
		if meal.Items[i].ID == "" {
			meal.Items[i].ID = uuid.NewString()
		}
	}
}
