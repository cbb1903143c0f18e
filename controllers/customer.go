// controllers/customer.go
package controllers

import (
	"net/http"

	"pearl-laundry-backend/config"
	"pearl-laundry-backend/models"
	"pearl-laundry-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetCustomers retrieves the optional stored customer collection. The admin
// customer view does not use it; aggregates come from grouping orders by
// customerName instead.
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}
