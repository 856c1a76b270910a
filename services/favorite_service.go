package services

import (
	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"github.com/samir25141/SwiggyCloneBySamir/repository"
)

type FavoriteService struct {
	FavRepo *repository.FavoriteRepository
}

func NewFavoriteService(fr *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{FavRepo: fr}
}

func (s *FavoriteService) Save(userID uint, restaurantID, name string, avgRating float64) (*entity.Favorite, error) {
	return s.FavRepo.Upsert(userID, restaurantID, name, avgRating)
}

func (s *FavoriteService) List(userID uint) ([]entity.Favorite, error) {
	return s.FavRepo.ListByUser(userID)
}

func (s *FavoriteService) Remove(userID uint, restaurantID string) error {
	return s.FavRepo.Delete(userID, restaurantID)
}
