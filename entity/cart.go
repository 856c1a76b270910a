package entity

import (
	"gorm.io/gorm"
)

// Cart is one-per-user; PUT /api/cart replaces Items wholesale.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

type CartItem struct {
	gorm.Model
	CartID uint `json:"-"`
	Cart   Cart `json:"-"`

	// ItemID is the upstream menu item id, opaque to us.
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
