// services/pickup_reminder.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"pearl-laundry-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type PickupReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewPickupReminderService(db *gorm.DB) *PickupReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &PickupReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the reminder pass every day at 8 AM, before the first
// pickup slot opens.
func (s *PickupReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 8 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Pickup reminder scheduler started")
}

// SendDailyReminders messages every customer with a scheduled pickup today.
func (s *PickupReminderService) SendDailyReminders() {
	log.Println("Starting daily pickup reminder processing...")

	today := models.DateOf(time.Now())

	var orders []models.Order
	if err := s.db.Where("pickup_date = ? AND status = ?", today, models.StatusScheduled).
		Find(&orders).Error; err != nil {
		log.Printf("Failed to fetch today's pickups: %v", err)
		return
	}

	for _, order := range orders {
		s.sendReminder(order)
	}

	log.Println("Daily pickup reminder processing completed")
}

func (s *PickupReminderService) sendReminder(order models.Order) {
	message := fmt.Sprintf(
		"Hi %s, a reminder that your laundry pickup (order #%d) is scheduled today at %s. Please have your items ready!",
		order.CustomerName, order.ID, order.PickupTime)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(order.CustomerPhone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder for order %d to %s: %v", order.ID, order.CustomerPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for order %d, SID: %s", order.ID, *resp.Sid)
	} else {
		log.Printf("Reminder sent for order %d, but no SID returned", order.ID)
	}

	reminderLog := models.PickupNotificationLog{
		OrderID:      order.ID,
		Phone:        order.CustomerPhone,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for order %d: %v", order.ID, err)
	}
}
