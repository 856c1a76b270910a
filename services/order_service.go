package services

import (
	"errors"

	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"github.com/samir25141/SwiggyCloneBySamir/repository"
	"gorm.io/gorm"
)

var ErrEmptyOrder = errors.New("no items to order")

type OrderService struct {
	DB        *gorm.DB
	OrderRepo *repository.OrderRepository
	CartRepo  *repository.CartRepository
}

func NewOrderService(db *gorm.DB, or *repository.OrderRepository, cr *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, OrderRepo: or, CartRepo: cr}
}

// Place สร้างออเดอร์แล้วล้างคาร์ทใน transaction เดียว
// คาร์ทกับออเดอร์จะไม่มีวันค้างสถานะครึ่ง ๆ กลาง ๆ
func (s *OrderService) Place(userID uint, items []entity.OrderItem, total float64) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &entity.Order{
		UserID: userID,
		Items:  items,
		Total:  total,
		Status: entity.OrderStatusPlaced,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.OrderRepo.Create(tx, order); err != nil {
			return err
		}
		_, err := s.CartRepo.ReplaceItems(tx, userID, []entity.CartItem{})
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) History(userID uint) ([]entity.Order, error) {
	return s.OrderRepo.ListByUser(userID)
}
