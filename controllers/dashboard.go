package controllers

import (
	"net/http"
	"time"

	"pearl-laundry-backend/analytics"
	"pearl-laundry-backend/config"
	"pearl-laundry-backend/models"
	"pearl-laundry-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview serves the admin dashboard: metrics over the full
// order list plus a filtered, sorted view of it. Filtering and sorting
// happen here over the loaded list, not in the store.
//
// Query params: status (scheduled|picked-up|in-progress|ready|delivered|all),
// range (today|week|month|all), sortBy, sortDir.
func GetDashboardOverview(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Services").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	// metrics always reflect the unfiltered collection
	metrics := analytics.Metrics(orders)

	filtered := analytics.FilterByStatus(orders, c.DefaultQuery("status", "all"))
	filtered = analytics.FilterByDateRange(filtered,
		analytics.DateRange(c.DefaultQuery("range", "all")), time.Now())

	sortBy := c.DefaultQuery("sortBy", "pickupDate")
	sortDir := c.DefaultQuery("sortDir", "desc")
	filtered = analytics.SortByField(filtered, sortBy, sortDir)

	c.JSON(http.StatusOK, gin.H{
		"metrics": metrics,
		"orders":  filtered,
	})
}

// GetCustomerSummary rolls up a customer's orders by exact name match for
// the admin customer detail view.
func GetCustomerSummary(c *gin.Context) {
	customerName := c.Param("name")

	var orders []models.Order
	if err := config.DB.Preload("Services").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	summary := analytics.CustomerAggregate(orders, customerName)
	if summary.OrderCount == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "No orders found for customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customerName": customerName,
		"summary":      summary,
		"orders":       analytics.CustomerOrders(orders, customerName),
	})
}
