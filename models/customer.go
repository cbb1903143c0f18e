package models

// Customer is the optional stored collection exposed at GET /customers.
// It is not authoritative: the admin customer view groups orders on the
// exact customerName string instead of joining through this table.
type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}
