package services

import (
	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"github.com/samir25141/SwiggyCloneBySamir/repository"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr}
}

func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	return s.CartRepo.GetByUser(userID)
}

// Replace แทนที่ของในคาร์ททั้งชุด (PUT semantics); สองคนเซฟพร้อมกัน = last write wins
func (s *CartService) Replace(userID uint, items []entity.CartItem) (*entity.Cart, error) {
	var cart *entity.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		c, err := s.CartRepo.ReplaceItems(tx, userID, items)
		if err != nil {
			return err
		}
		cart = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}
