package models

// Service is a catalog entry. Seeded at startup and treated as immutable by
// the public booking flow; orders keep their own snapshots of name and price.
type Service struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	NameAr        string  `json:"nameAr,omitempty"`
	Description   string  `json:"description"`
	DescriptionAr string  `json:"descriptionAr,omitempty"`
	Duration      string  `json:"duration"`
	DurationAr    string  `json:"durationAr,omitempty"`
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Icon          string  `json:"icon"`
}
