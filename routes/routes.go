package routes

import (
	"pearl-laundry-backend/config"
	"pearl-laundry-backend/controllers"
	"pearl-laundry-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// the booking site is served from a separate origin; mirror the old
	// mock server's allow-all policy
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.Use(config.PerformanceLogger())

	// public surface: catalog, booking, tracking
	r.GET("/services", controllers.GetServices)
	r.GET("/services/:id", controllers.GetService)

	orders := r.Group("/orders")
	{
		orders.GET("", controllers.GetOrders)
		orders.GET("/:id", controllers.GetOrder)
		orders.POST("", controllers.CreateOrder)
		orders.PATCH("/:id", controllers.UpdateOrderStatus)
	}

	r.GET("/customers", controllers.GetCustomers)
	r.GET("/track/:id", controllers.TrackOrder)

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	admin := r.Group("/admin")
	admin.Use(utils.AuthMiddleware())
	{
		admin.GET("/dashboard", controllers.GetDashboardOverview)
		admin.GET("/customers/:name/summary", controllers.GetCustomerSummary)
		admin.GET("/notifications", controllers.GetNotificationLogs)
		admin.POST("/services", controllers.CreateService)
	}

	return r
}
