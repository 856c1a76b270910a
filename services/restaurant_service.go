package services

import (
	"context"
	"strings"

	"github.com/samir25141/SwiggyCloneBySamir/upstream"
)

// RestaurantService ดึงร้านจาก upstream แล้วกรองตาม query ฝั่ง server
type RestaurantService struct {
	Upstream *upstream.Client
}

func NewRestaurantService(uc *upstream.Client) *RestaurantService {
	return &RestaurantService{Upstream: uc}
}

type RestaurantQuery struct {
	Search    string
	MinRating float64
	Cuisine   string
	Lat       float64 // NaN = not provided
	Lng       float64
}

// Search คืนร้านที่ผ่านทั้งสาม filter (search OR cuisine substring, rating ≥, cuisine ตรงตัว)
func (s *RestaurantService) Search(ctx context.Context, q RestaurantQuery) ([]upstream.Restaurant, error) {
	restaurants, err := s.Upstream.FetchRestaurants(ctx, q.Lat, q.Lng)
	if err != nil {
		return nil, err
	}
	return FilterRestaurants(restaurants, q), nil
}

func (s *RestaurantService) Menu(ctx context.Context, restaurantID string, lat, lng float64) ([]upstream.MenuItem, error) {
	return s.Upstream.FetchMenu(ctx, restaurantID, lat, lng)
}

// FilterRestaurants เป็น pure function แยกไว้ให้เทสต์ตรง ๆ ได้
func FilterRestaurants(restaurants []upstream.Restaurant, q RestaurantQuery) []upstream.Restaurant {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	cuisine := strings.ToLower(strings.TrimSpace(q.Cuisine))

	out := []upstream.Restaurant{}
	for _, r := range restaurants {
		if !matchesSearch(r, search) {
			continue
		}
		if r.AvgRating < q.MinRating {
			continue
		}
		if !matchesCuisine(r, cuisine) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(r upstream.Restaurant, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(r.Name), search) {
		return true
	}
	for _, c := range r.Cuisines {
		if strings.Contains(strings.ToLower(c), search) {
			return true
		}
	}
	return false
}

func matchesCuisine(r upstream.Restaurant, cuisine string) bool {
	if cuisine == "" {
		return true
	}
	for _, c := range r.Cuisines {
		if strings.ToLower(c) == cuisine {
			return true
		}
	}
	return false
}
