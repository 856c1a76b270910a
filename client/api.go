package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/samir25141/SwiggyCloneBySamir/upstream"
)

// API is a thin JSON client over the backend's public routes.
type API struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewAPI(baseURL, token string) *API {
	return &API{BaseURL: baseURL, Token: token, http: &http.Client{}}
}

type apiError struct {
	Message string `json:"message"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

func (a *API) Register(ctx context.Context, name, email, password string) (*authResponse, error) {
	var out authResponse
	err := a.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Login(ctx context.Context, email, password string) (*authResponse, error) {
	var out authResponse
	err := a.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type RestaurantQuery struct {
	Search    string
	MinRating float64
	Cuisine   string
	Lat       float64
	Lng       float64
}

func (a *API) Restaurants(ctx context.Context, q RestaurantQuery) ([]upstream.Restaurant, error) {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.MinRating > 0 {
		v.Set("minRating", strconv.FormatFloat(q.MinRating, 'f', -1, 64))
	}
	if q.Cuisine != "" {
		v.Set("cuisine", q.Cuisine)
	}
	v.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	v.Set("lng", strconv.FormatFloat(q.Lng, 'f', -1, 64))

	var out struct {
		Data []upstream.Restaurant `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/restaurants?"+v.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (a *API) Menu(ctx context.Context, restaurantID string, loc Location) ([]upstream.MenuItem, error) {
	path := fmt.Sprintf("/api/restaurants/%s/menu?lat=%v&lng=%v", restaurantID, loc.Lat, loc.Lng)
	var out struct {
		Data []upstream.MenuItem `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (a *API) FetchCart(ctx context.Context) ([]CartItem, error) {
	var out struct {
		Items []CartItem `json:"items"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/cart", nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (a *API) SaveCart(ctx context.Context, items []CartItem) error {
	return a.do(ctx, http.MethodPut, "/api/cart", map[string]any{"items": items}, nil)
}

type Favorite struct {
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	AvgRating    float64 `json:"avgRating"`
}

func (a *API) Favorites(ctx context.Context) ([]Favorite, error) {
	var out []Favorite
	if err := a.do(ctx, http.MethodGet, "/api/favorites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) AddFavorite(ctx context.Context, f Favorite) error {
	return a.do(ctx, http.MethodPost, "/api/favorites", f, nil)
}

func (a *API) RemoveFavorite(ctx context.Context, restaurantID string) error {
	return a.do(ctx, http.MethodDelete, "/api/favorites/"+restaurantID, nil, nil)
}

// ToggleFavorite adds the restaurant if absent, removes it if present.
func (a *API) ToggleFavorite(ctx context.Context, f Favorite) error {
	favs, err := a.Favorites(ctx)
	if err != nil {
		return err
	}
	for _, existing := range favs {
		if existing.RestaurantID == f.RestaurantID {
			return a.RemoveFavorite(ctx, f.RestaurantID)
		}
	}
	return a.AddFavorite(ctx, f)
}

type Order struct {
	ID        uint       `json:"ID"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"CreatedAt"`
}

func (a *API) PlaceOrder(ctx context.Context, items []CartItem, total float64) (*Order, error) {
	var out Order
	err := a.do(ctx, http.MethodPost, "/api/orders", map[string]any{"items": items, "total": total}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Orders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := a.do(ctx, http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}

	res, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var e apiError
		if json.NewDecoder(res.Body).Decode(&e) == nil && e.Message != "" {
			return fmt.Errorf("%s", e.Message)
		}
		return fmt.Errorf("request failed with status %d", res.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
