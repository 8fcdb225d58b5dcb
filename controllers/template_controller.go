package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/models"
)

type TemplateInput struct {
	Type        string               `json:"type"`
	Name        string               `json:"name"`
	Tags        models.StringList    `json:"tags"`
	Meals       []models.ProgramMeal `json:"meals"`
	LayoutMeals []models.LayoutMeal  `json:"layoutMeals"`
}

// GET /api/templates
func ListTemplates(c *gin.Context) {
	var templates []models.Template
	err := config.DB.
		Where("nutritionist_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// POST /api/templates
func CreateTemplate(c *gin.Context) {
	var input TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Type == "" || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and name are required"})
		return
	}
	if input.Type != models.TemplateTypeDay && input.Type != models.TemplateTypeLayout {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be day or layout"})
		return
	}

	tpl := models.Template{
		NutritionistID: currentUserID(c),
		Type:           input.Type,
		Name:           input.Name,
		Tags:           input.Tags,
	}
	if input.Type == models.TemplateTypeDay {
		tpl.Meals = input.Meals
	} else {
		tpl.LayoutMeals = input.LayoutMeals
	}

	if err := config.DB.Create(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// PUT /api/templates/:id
func UpdateTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var tpl models.Template
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", id, currentUserID(c)).
		First(&tpl).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var input TemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		tpl.Name = input.Name
	}
	if input.Tags != nil {
		tpl.Tags = input.Tags
	}
	if input.Meals != nil {
		tpl.Meals = input.Meals
	}
	if input.LayoutMeals != nil {
		tpl.LayoutMeals = input.LayoutMeals
	}

	if err := config.DB.Save(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// DELETE /api/templates/:id
func DeleteTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var tpl models.Template
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", id, currentUserID(c)).
		First(&tpl).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	if err := config.DB.Delete(&tpl).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template removed"})
}
