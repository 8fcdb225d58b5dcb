package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joshegilbert/nutriz/services"
)

func CreateMealTemplate(c *gin.Context) {
	var input services.MealTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, err := services.NewMealTemplateService().Create(currentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

func ListMealTemplates(c *gin.Context) {
	templates, err := services.NewMealTemplateService().List(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func UpdateMealTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.MealTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, err := services.NewMealTemplateService().Update(currentUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func DeleteMealTemplate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := services.NewMealTemplateService().Delete(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meal template removed"})
}
