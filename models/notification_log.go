// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PickupNotificationLog records every pickup-reminder SMS attempt.
type PickupNotificationLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uint      `gorm:"index;not null" json:"orderId"`
	Phone        string    `gorm:"not null" json:"phone"`
	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"errorMessage,omitempty"`
	SentAt       time.Time `json:"sentAt"`
	gorm.Model   `json:"-"`
}

func (l *PickupNotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = uuid.New()
	return
}
