package models

import "time"

type Order struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerPhone string `gorm:"not null" json:"customerPhone"`
	Address       string `gorm:"not null" json:"address"`

	Services []OrderLineItem `gorm:"foreignKey:OrderID" json:"services"`

	PickupDate Date   `gorm:"type:date;not null" json:"pickupDate"`
	PickupTime string `gorm:"not null" json:"pickupTime"`
	Status     Status `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`

	// TotalPrice is snapshotted at creation and never recomputed, so later
	// catalog price edits leave existing orders untouched.
	TotalPrice float64   `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LineItemTotal sums quantity*price over the line items. Equals TotalPrice
// at creation time; afterwards TotalPrice is the authoritative snapshot.
func (o *Order) LineItemTotal() float64 {
	var total float64
	for _, item := range o.Services {
		total += float64(item.Quantity) * item.Price
	}
	return total
}

type OrderLineItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     uint    `gorm:"index;not null" json:"-"`
	ServiceID   uint    `gorm:"index;not null" json:"serviceId"`
	ServiceName string  `gorm:"not null" json:"serviceName"`
	Quantity    int     `gorm:"default:1" json:"quantity"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
