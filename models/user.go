package models

import (
	"time"

	"pearl-laundry-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser backs the dashboard login. A single account is seeded from
// ADMIN_EMAIL/ADMIN_PASSWORD at startup.
type AdminUser struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *AdminUser) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
