// controllers/order.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pearl-laundry-backend/config"
	"pearl-laundry-backend/models"
	"pearl-laundry-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateOrderInput defines the expected JSON structure for booking an order.
// Services carries the selected catalog ids; line items are snapshotted
// server-side from the catalog.
type CreateOrderInput struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Services      []uint `json:"services" binding:"required,min=1"`
	PickupDate    string `json:"pickupDate" binding:"required"`
	PickupTime    string `json:"pickupTime" binding:"required"`
}

// UpdateOrderStatusInput defines the PATCH body for status updates
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// resolveLineItems maps selected service ids onto catalog snapshots with
// quantity fixed at 1. Unknown ids are returned so the caller can flag
// them; they contribute zero to the total.
func resolveLineItems(catalog []models.Service, selected []uint) (items []models.OrderLineItem, unknown []uint) {
	byID := make(map[uint]models.Service, len(catalog))
	for _, service := range catalog {
		byID[service.ID] = service
	}

	for _, id := range selected {
		service, ok := byID[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		items = append(items, models.OrderLineItem{
			ServiceID:   service.ID,
			ServiceName: service.Name,
			Quantity:    1,
			Price:       service.Price,
		})
	}
	return items, unknown
}

// CreateOrder books a new pickup. The order starts in scheduled with a
// creation-time totalPrice snapshot.
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if strings.TrimSpace(input.CustomerName) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Name is required")
		return
	}
	if strings.TrimSpace(input.Address) == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Address is required")
		return
	}
	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter a valid phone number")
		return
	}
	if !utils.ValidPickupTime(input.PickupTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pickup time slot")
		return
	}

	pickupDate, err := models.ParseDate(input.PickupDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid pickup date")
		return
	}
	// date-only comparison; a booking for later today is fine
	today := models.DateOf(time.Now())
	if pickupDate.Before(today.Time) {
		utils.RespondWithError(c, http.StatusBadRequest, "Pickup date cannot be in the past")
		return
	}

	var catalog []models.Service
	if err := config.DB.Find(&catalog).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load service catalog")
		return
	}

	items, unknown := resolveLineItems(catalog, input.Services)
	for _, id := range unknown {
		log.Printf("booking references unknown service %d, contributes zero", id)
	}
	if len(items) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Please select at least one service")
		return
	}

	order := models.Order{
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Address:       input.Address,
		Services:      items,
		PickupDate:    pickupDate,
		PickupTime:    input.PickupTime,
		Status:        models.StatusScheduled,
	}
	order.TotalPrice = order.LineItemTotal()

	if err := config.DB.Create(&order).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create order")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrders retrieves the entire order collection, unfiltered
func GetOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Services").Find(&orders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder retrieves a specific order by ID
func GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Services").First(&order, uint(orderID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus applies a PATCH {status} to an existing order. Any of
// the five lifecycle statuses is accepted regardless of the current one.
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid order ID format")
		return
	}

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	status, err := models.ParseStatus(input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status: "+input.Status)
		return
	}

	var order models.Order
	if err := config.DB.Preload("Services").First(&order, uint(orderID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Order not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := order.ApplyStatus(status); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status: "+input.Status)
		return
	}

	if err := config.DB.Model(&order).Update("status", order.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update order")
		return
	}

	c.JSON(http.StatusOK, order)
}
