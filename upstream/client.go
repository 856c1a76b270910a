package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/samir25141/SwiggyCloneBySamir/pkg/logger"
)

// พิกัดตั้งต้น (Delhi) ใช้เมื่อ caller ไม่ส่ง lat/lng มา
const (
	BaseLat = 28.7040592
	BaseLng = 77.10249019999999
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120 Safari/537.36"

type Restaurant struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	AvgRating         float64  `json:"avgRating"`
	Cuisines          []string `json:"cuisines"`
	AreaName          string   `json:"areaName"`
	CostForTwo        string   `json:"costForTwo"`
	SlaString         string   `json:"slaString"`
	CloudinaryImageID string   `json:"cloudinaryImageId"`
	Veg               bool     `json:"veg"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // major units (rupees)
	IsVeg       bool    `json:"isVeg"`
}

// Client เรียก Swiggy public API แล้ว normalize เป็น struct แบน ๆ ของเรา
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache // nil = no caching
}

func NewClient(baseURL string, cache *Cache) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		cache:   cache,
	}
}

// FetchRestaurants คืนรายการร้านแบบแบน; lat/lng ที่เป็น NaN จะถูกแทนด้วยค่า default
func (c *Client) FetchRestaurants(ctx context.Context, lat, lng float64) ([]Restaurant, error) {
	lat, lng = resolveCoords(lat, lng)

	key := fmt.Sprintf("swiggy:list:%.7f:%.7f", lat, lng)
	if cached, ok := cacheGet[[]Restaurant](ctx, c.cache, key); ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s/dapi/restaurants/list/v5?lat=%v&lng=%v&is-seo-homepage-enabled=true",
		c.baseURL, lat, lng)

	payload, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	restaurants := NormalizeRestaurants(payload)
	if len(restaurants) == 0 {
		logger.Warn().Float64("lat", lat).Float64("lng", lng).Msg("upstream returned no restaurants")
	}

	cacheSet(ctx, c.cache, key, restaurants)
	return restaurants, nil
}

// FetchMenu คืนเมนูของร้าน; โครงสร้างเพี้ยน → list ว่าง ไม่ error
func (c *Client) FetchMenu(ctx context.Context, restaurantID string, lat, lng float64) ([]MenuItem, error) {
	lat, lng = resolveCoords(lat, lng)

	key := fmt.Sprintf("swiggy:menu:%s:%.7f:%.7f", restaurantID, lat, lng)
	if cached, ok := cacheGet[[]MenuItem](ctx, c.cache, key); ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s/dapi/menu/pl?page-type=REGULAR_MENU&complete-menu=true&lat=%v&lng=%v&restaurantId=%s&catalog_qa=undefined&submitAction=ENTER",
		c.baseURL, lat, lng, restaurantID)

	payload, err := c.getJSON(ctx, url)
	if err != nil {
		return nil, err
	}

	items := NormalizeMenu(payload)
	logger.Info().Str("restaurantId", restaurantID).Int("items", len(items)).Msg("menu fetched")

	cacheSet(ctx, c.cache, key, items)
	return items, nil
}

func (c *Client) getJSON(ctx context.Context, url string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", res.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func resolveCoords(lat, lng float64) (float64, float64) {
	if math.IsNaN(lat) {
		lat = BaseLat
	}
	if math.IsNaN(lng) {
		lng = BaseLng
	}
	return lat, lng
}
