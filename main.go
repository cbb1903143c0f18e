package main

import (
	"fmt"
	"log"
	"os"

	"pearl-laundry-backend/config"
	"pearl-laundry-backend/models"
	"pearl-laundry-backend/routes"
	"pearl-laundry-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Service{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.Customer{},
		&models.AdminUser{},
		&models.PickupNotificationLog{},
	)

	seedServices()
	seedAdminUser()
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminders := services.NewPickupReminderService(config.DB)
	reminders.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// seedServices loads the fixed laundry catalog on first boot
func seedServices() {
	var count int64
	config.DB.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	catalog := []models.Service{
		{
			Name: "Wash & Fold", NameAr: "غسيل وطي",
			Description:   "Everyday laundry washed, dried and neatly folded",
			DescriptionAr: "غسيل الملابس اليومية وتجفيفها وطيها بعناية",
			Duration:      "24 hours", DurationAr: "24 ساعة",
			Price: 15.00, Icon: "🧺",
		},
		{
			Name: "Dry Cleaning", NameAr: "تنظيف جاف",
			Description:   "Professional dry cleaning for delicate garments",
			DescriptionAr: "تنظيف جاف احترافي للملابس الحساسة",
			Duration:      "48 hours", DurationAr: "48 ساعة",
			Price: 25.00, Icon: "👔",
		},
		{
			Name: "Ironing", NameAr: "كي الملابس",
			Description:   "Crisp pressing for shirts, trousers and dresses",
			DescriptionAr: "كي احترافي للقمصان والبناطيل والفساتين",
			Duration:      "12 hours", DurationAr: "12 ساعة",
			Price: 10.00, Icon: "🔥",
		},
		{
			Name: "Bedding & Linens", NameAr: "المفارش والبياضات",
			Description:   "Deep cleaning for comforters, blankets and sheets",
			DescriptionAr: "تنظيف عميق للألحفة والبطانيات والملاءات",
			Duration:      "48 hours", DurationAr: "48 ساعة",
			Price: 30.00, Icon: "🛏️",
		},
		{
			Name: "Express Service", NameAr: "خدمة سريعة",
			Description:   "Same-day turnaround for urgent loads",
			DescriptionAr: "تسليم في نفس اليوم للطلبات العاجلة",
			Duration:      "6 hours", DurationAr: "6 ساعات",
			Price: 40.00, Icon: "⚡",
		},
	}

	for _, service := range catalog {
		if err := config.DB.Create(&service).Error; err != nil {
			log.Printf("Failed to seed service %q: %v", service.Name, err)
		}
	}
	log.Printf("Seeded %d catalog services", len(catalog))
}

// seedAdminUser creates the dashboard account from the environment if no
// admin exists yet
func seedAdminUser() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	config.DB.Model(&models.AdminUser{}).Count(&count)
	if count > 0 {
		return
	}

	admin := models.AdminUser{
		Email:    email,
		Password: password, // hashed in BeforeCreate hook
		Name:     "Administrator",
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
