// controllers/service.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"pearl-laundry-backend/config"
	"pearl-laundry-backend/models"
	"pearl-laundry-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for adding a
// catalog entry (admin only; the public catalog is read-only)
type CreateServiceInput struct {
	Name          string  `json:"name" binding:"required"`
	NameAr        string  `json:"nameAr"`
	Description   string  `json:"description"`
	DescriptionAr string  `json:"descriptionAr"`
	Duration      string  `json:"duration"`
	DurationAr    string  `json:"durationAr"`
	Price         float64 `json:"price" binding:"required,min=0"`
	Icon          string  `json:"icon"`
}

// GetServices retrieves the full service catalog
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific catalog entry by ID
func GetService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, uint(serviceID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// CreateService adds a catalog entry
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Name:          input.Name,
		NameAr:        input.NameAr,
		Description:   input.Description,
		DescriptionAr: input.DescriptionAr,
		Duration:      input.Duration,
		DurationAr:    input.DurationAr,
		Price:         input.Price,
		Icon:          input.Icon,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}
