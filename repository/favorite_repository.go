package repository

import (
	"errors"

	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{DB: db}
}

// Upsert ตาม key (user_id, restaurant_id): มีอยู่แล้วอัปเดตชื่อ/เรตติ้ง ไม่มีก็สร้าง
func (r *FavoriteRepository) Upsert(userID uint, restaurantID, name string, avgRating float64) (*entity.Favorite, error) {
	var fav entity.Favorite
	err := r.DB.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&fav).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fav = entity.Favorite{
			UserID:       userID,
			RestaurantID: restaurantID,
			Name:         name,
			AvgRating:    avgRating,
		}
		if err := r.DB.Create(&fav).Error; err != nil {
			return nil, err
		}
		return &fav, nil
	}
	if err != nil {
		return nil, err
	}

	fav.Name = name
	fav.AvgRating = avgRating
	if err := r.DB.Save(&fav).Error; err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepository) ListByUser(userID uint) ([]entity.Favorite, error) {
	favs := []entity.Favorite{}
	if err := r.DB.Where("user_id = ?", userID).Find(&favs).Error; err != nil {
		return nil, err
	}
	return favs, nil
}

// ลบจริง ไม่ soft delete: แถวที่ถูก soft delete จะไปชน unique index ตอน toggle กลับมา
func (r *FavoriteRepository) Delete(userID uint, restaurantID string) error {
	return r.DB.Unscoped().Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&entity.Favorite{}).Error
}
