package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/models"
)

type FoodItemInput struct {
	Name               string        `json:"name" binding:"required"`
	Category           string        `json:"category"`
	DefaultServingSize string        `json:"defaultServingSize" binding:"required"`
	MacrosPerServing   models.Macros `json:"macrosPerServing"`
}

func CreateFoodItem(c *gin.Context) {
	var input FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.MacrosPerServing.Calories <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calories per serving is required"})
		return
	}

	food := models.FoodItem{
		NutritionistID:     currentUserID(c),
		Name:               input.Name,
		Category:           input.Category,
		DefaultServingSize: input.DefaultServingSize,
		PerServing:         input.MacrosPerServing.Normalized(),
	}
	if food.Category == "" {
		food.Category = "Other"
	}

	if err := config.DB.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}

func ListFoodItems(c *gin.Context) {
	var foods []models.FoodItem
	query := config.DB.Where("nutritionist_id = ?", currentUserID(c))
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("name ASC").Find(&foods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func GetFoodItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var food models.FoodItem
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", id, currentUserID(c)).
		First(&food).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}

func UpdateFoodItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var food models.FoodItem
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", id, currentUserID(c)).
		First(&food).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	var input FoodItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Edits retroactively change every computation that references
	// this food; programs pick the new values up on their next recompute.
	food.Name = input.Name
	if input.Category != "" {
		food.Category = input.Category
	}
	food.DefaultServingSize = input.DefaultServingSize
	food.PerServing = input.MacrosPerServing.Normalized()

	if err := config.DB.Save(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, food)
}

func DeleteFoodItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var food models.FoodItem
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", id, currentUserID(c)).
		First(&food).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	// Items that still reference this food will resolve to zero from
	// now on — accepted behavior, not an error.
	if err := config.DB.Delete(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food item removed"})
}
