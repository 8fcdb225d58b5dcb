package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joshegilbert/nutriz/config"
	"github.com/joshegilbert/nutriz/models"
)

type ClientInput struct {
	Name    string            `json:"name" binding:"required"`
	DOB     string            `json:"dob" binding:"required"` // YYYY-MM-DD
	Contact models.Contact    `json:"contact"`
	Goals   models.StringList `json:"goals"`
	Notes   string            `json:"notes"`
}

func CreateClient(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", input.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dob must be YYYY-MM-DD"})
		return
	}

	client := models.Client{
		NutritionistID: currentUserID(c),
		Name:           input.Name,
		DOB:            dob,
		Contact:        input.Contact,
		Goals:          input.Goals,
		Notes:          input.Notes,
	}
	if err := config.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, client)
}

func ListClients(c *gin.Context) {
	var clients []models.Client
	err := config.DB.
		Where("nutritionist_id = ?", currentUserID(c)).
		Order("created_at DESC").
		Find(&clients).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func GetClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", id, currentUserID(c)).
		First(&client).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func UpdateClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", id, currentUserID(c)).
		First(&client).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client.Name = input.Name
	if dob, err := time.Parse("2006-01-02", input.DOB); err == nil {
		client.DOB = dob
	}
	client.Contact = input.Contact
	client.Goals = input.Goals
	client.Notes = input.Notes

	if err := config.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

func DeleteClient(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var client models.Client
	err := config.DB.
		Where("id = ? AND nutritionist_id = ?", id, currentUserID(c)).
		First(&client).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	if err := config.DB.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client removed"})
}
