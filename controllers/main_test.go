package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"pearl-laundry-backend/config"
	"pearl-laundry-backend/models"
	"pearl-laundry-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

// setupTestDB points the global handle at a fresh in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Service{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.Customer{},
		&models.AdminUser{},
		&models.PickupNotificationLog{},
	))

	config.DB = db
	return db
}

// testRouter wires the handlers the way routes.SetupRouter does, minus the
// CORS and timing middleware.
func testRouter() *gin.Engine {
	r := gin.New()

	r.GET("/services", GetServices)
	r.GET("/services/:id", GetService)
	r.GET("/orders", GetOrders)
	r.GET("/orders/:id", GetOrder)
	r.POST("/orders", CreateOrder)
	r.PATCH("/orders/:id", UpdateOrderStatus)
	r.GET("/customers", GetCustomers)
	r.GET("/track/:id", TrackOrder)
	r.POST("/auth/login", Login)

	admin := r.Group("/admin")
	admin.Use(utils.AuthMiddleware())
	{
		admin.GET("/dashboard", GetDashboardOverview)
		admin.GET("/customers/:name/summary", GetCustomerSummary)
		admin.POST("/services", CreateService)
	}

	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedCatalog(t *testing.T, db *gorm.DB) []models.Service {
	t.Helper()
	catalog := []models.Service{
		{Name: "Wash & Fold", Price: 15.00, Duration: "24 hours", Icon: "🧺"},
		{Name: "Dry Cleaning", Price: 25.00, Duration: "48 hours", Icon: "👔"},
	}
	for i := range catalog {
		require.NoError(t, db.Create(&catalog[i]).Error)
	}
	return catalog
}
