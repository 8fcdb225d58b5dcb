package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshegilbert/nutriz/services"
)

func CreateMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.NewMealService().Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func ListMeals(c *gin.Context) {
	meals, err := services.NewMealService().List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func GetMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	meal, err := services.NewMealService().Get(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func UpdateMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.NewMealService().Update(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := services.NewMealService().Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal removed"})
}
