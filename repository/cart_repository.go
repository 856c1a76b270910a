package repository

import (
	"errors"

	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืน Cart ของ user (key: user_id); ไม่มีก็คืน Cart ว่างโดยไม่ error เพื่อให้ client แสดงได้
func (r *CartRepository) GetByUser(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		c.Items = []entity.CartItem{}
	}
	return &c, nil
}

// ReplaceItems ทำ read-modify-write แบบ create-if-absent (key: user_id):
// ไม่มี cart ก็สร้าง แล้วแทนที่ items เดิมทั้งชุด
func (r *CartRepository) ReplaceItems(tx *gorm.DB, userID uint, items []entity.CartItem) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := tx.Unscoped().Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ID = 0
		items[i].CartID = c.ID
	}
	if len(items) > 0 {
		if err := tx.Create(&items).Error; err != nil {
			return nil, err
		}
	}

	c.Items = items
	if c.Items == nil {
		c.Items = []entity.CartItem{}
	}
	return &c, nil
}
