package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshegilbert/nutriz/models"
	"github.com/joshegilbert/nutriz/services"
)

// POST /api/programs
func CreateProgram(c *gin.Context) {
	var input services.ProgramInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

// GET /api/programs?clientId=
func ListPrograms(c *gin.Context) {
	programs, err := services.NewProgramService().List(currentUserID(c), c.Query("clientId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, programs)
}

func GetProgram(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	program, err := services.NewProgramService().Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func UpdateProgram(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var update services.ProgramUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().Update(currentUserID(c), id, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

func DeleteProgram(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := services.NewProgramService().Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Program removed"})
}

// POST /api/programs/:id/days
func AddProgramDay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var day models.ProgramDay
	if err := c.ShouldBindJSON(&day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().AddDay(currentUserID(c), id, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

// PATCH /api/programs/:id/days/:dayId
func UpdateProgramDay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch services.DayPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().UpdateDay(currentUserID(c), id, c.Param("dayId"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

// DELETE /api/programs/:id/days/:dayId
func DeleteProgramDay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	program, err := services.NewProgramService().DeleteDay(currentUserID(c), id, c.Param("dayId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

// PUT /api/programs/:id/days/:dayId/variant
func SetProgramDayVariant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().SetDayVariant(currentUserID(c), id, c.Param("dayId"), body.Key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

// POST /api/programs/:id/days/:dayId/meals
func AddMealToDay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var meal models.ProgramMeal
	if err := c.ShouldBindJSON(&meal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().AddMeal(currentUserID(c), id, c.Param("dayId"), meal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

// PATCH /api/programs/:id/days/:dayId/meals/:mealId
func UpdateMealInDay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch services.MealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().
		UpdateMeal(currentUserID(c), id, c.Param("dayId"), c.Param("mealId"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

// DELETE /api/programs/:id/days/:dayId/meals/:mealId
func DeleteMealFromDay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	program, err := services.NewProgramService().
		DeleteMeal(currentUserID(c), id, c.Param("dayId"), c.Param("mealId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

// POST /api/programs/:id/days/:dayId/meals/:mealId/items
func AddItemToMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var item models.ProgramItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().
		AddItem(currentUserID(c), id, c.Param("dayId"), c.Param("mealId"), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, program)
}

// PATCH /api/programs/:id/days/:dayId/meals/:mealId/items/:itemId
func UpdateItemInMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch services.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	program, err := services.NewProgramService().
		UpdateItem(currentUserID(c), id, c.Param("dayId"), c.Param("mealId"), c.Param("itemId"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}

// DELETE /api/programs/:id/days/:dayId/meals/:mealId/items/:itemId
func DeleteItemFromMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	program, err := services.NewProgramService().
		DeleteItem(currentUserID(c), id, c.Param("dayId"), c.Param("mealId"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, program)
}
