package entity

import (
	"gorm.io/gorm"
)

const OrderStatusPlaced = "PLACED"

// Order is append-only history; never mutated after creation.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Items  []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Total  float64     `json:"total"`
	Status string      `gorm:"not null;default:PLACED" json:"status"`
}

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
