// controllers/notification.go
package controllers

import (
	"net/http"

	"pearl-laundry-backend/config"
	"pearl-laundry-backend/models"
	"pearl-laundry-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetNotificationLogs lists pickup-reminder SMS attempts, newest first
func GetNotificationLogs(c *gin.Context) {
	var logs []models.PickupNotificationLog
	if err := config.DB.Order("sent_at DESC").Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve notification logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
