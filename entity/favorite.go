package entity

import (
	"gorm.io/gorm"
)

// Favorite is keyed by (userId, restaurantId); POST upserts, DELETE removes.
type Favorite struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_fav_user_restaurant;not null" json:"userId"`
	User   User `json:"-"`

	RestaurantID string  `gorm:"uniqueIndex:idx_fav_user_restaurant;not null" json:"restaurantId"`
	Name         string  `json:"name"`
	AvgRating    float64 `json:"avgRating"`
}
