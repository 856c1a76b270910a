package repository

import (
	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// ประวัติออเดอร์ของ user ใหม่สุดก่อน
func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	orders := []entity.Order{}
	if err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
