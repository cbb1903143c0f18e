// controllers/tracking.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pearl-laundry-backend/config"
	"pearl-laundry-backend/models"
	"pearl-laundry-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TrackOrder resolves the public tracking view: a raw order id from the
// customer, parsed base 10. Nothing else is checked — anyone who knows a
// numeric id can see that order's full detail.
func TrackOrder(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter an order ID")
		return
	}

	orderID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter a valid numeric order ID")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Services").First(&order, uint(orderID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found. Please check your order ID.")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":       order,
		"statusIndex": models.DisplayIndex(order.Status),
		"statusFlow":  models.StatusFlow,
	})
}
