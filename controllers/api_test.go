package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/configs"
	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"github.com/samir25141/SwiggyCloneBySamir/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

func newTestServer(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctl_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Favorite{},
		&entity.Order{}, &entity.OrderItem{},
	))

	cfg := &configs.Config{
		JWTSecret:       "test-secret",
		JWTTTL:          time.Hour,
		UpstreamBaseURL: upstreamURL,
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Samir", "email": email, "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	decode(t, w, &res)
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestAuth_RegisterValidation(t *testing.T) {
	r := newTestServer(t, "http://unused")

	for _, body := range []gin.H{
		{"email": "a@b.c", "password": "p"},
		{"name": "A", "password": "p"},
		{"name": "A", "email": "a@b.c"},
		{},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res struct {
			Message string `json:"message"`
		}
		decode(t, w, &res)
		assert.Equal(t, "All fields are required", res.Message)
	}
}

func TestAuth_RegisterLoginFlow(t *testing.T) {
	r := newTestServer(t, "http://unused")
	registerUser(t, r, "samir@example.com")

	// email ซ้ำ
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Else", "email": "samir@example.com", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")

	// login ถูก
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "samir@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, w, &res)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "samir@example.com", res.User.Email)
}

func TestAuth_LoginGenericMessage(t *testing.T) {
	r := newTestServer(t, "http://unused")
	registerUser(t, r, "samir@example.com")

	wrongPass := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "samir@example.com", "password": "nope",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ghost@example.com", "password": "hunter22",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPass.Body.String(), "Invalid email or password")
}

func TestProtectedRoutes_Unauthorized(t *testing.T) {
	r := newTestServer(t, "http://unused")

	protected := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodPut, "/api/cart"},
		{http.MethodGet, "/api/favorites"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodDelete, "/api/favorites/r1"},
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/orders"},
		{http.MethodGet, "/api/auth/me"},
	}

	for _, route := range protected {
		// ไม่มี token
		w := doJSON(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
		assert.Contains(t, w.Body.String(), "Not authorized (no token)", route.path)

		// token มั่ว
		w = doJSON(t, r, route.method, route.path, "garbage.token.here", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, route.path)
		assert.Contains(t, w.Body.String(), "Not authorized (invalid or expired token)", route.path)
	}
}

func TestCart_PutGetRoundTrip(t *testing.T) {
	r := newTestServer(t, "http://unused")
	token := registerUser(t, r, "samir@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/cart", token, gin.H{
		"items": []gin.H{{"itemId": "x", "name": "A", "price": 10, "quantity": 2}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Items []struct {
			ItemID   string  `json:"itemId"`
			Name     string  `json:"name"`
			Price    float64 `json:"price"`
			Quantity int     `json:"quantity"`
		} `json:"items"`
	}
	decode(t, w, &res)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "x", res.Items[0].ItemID)
	assert.Equal(t, 10.0, res.Items[0].Price)
	assert.Equal(t, 2, res.Items[0].Quantity)

	// PUT ว่าง = ล้าง
	w = doJSON(t, r, http.MethodPut, "/api/cart", token, gin.H{"items": []gin.H{}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	decode(t, w, &res)
	assert.Empty(t, res.Items)
}

func TestCart_EmptyBeforeFirstSave(t *testing.T) {
	r := newTestServer(t, "http://unused")
	token := registerUser(t, r, "samir@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items": []}`, w.Body.String())
}

func TestFavorites_ToggleOverHTTP(t *testing.T) {
	r := newTestServer(t, "http://unused")
	token := registerUser(t, r, "samir@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/favorites", token, gin.H{
		"restaurantId": "r-100", "name": "Pizza Hut", "avgRating": 4.2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/favorites", token, nil)
	var favs []struct {
		RestaurantID string `json:"restaurantId"`
	}
	decode(t, w, &favs)
	require.Len(t, favs, 1)
	assert.Equal(t, "r-100", favs[0].RestaurantID)

	w = doJSON(t, r, http.MethodDelete, "/api/favorites/r-100", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/favorites", token, nil)
	decode(t, w, &favs)
	assert.Empty(t, favs)
}

func TestOrders_PlaceClearsCart(t *testing.T) {
	r := newTestServer(t, "http://unused")
	token := registerUser(t, r, "samir@example.com")

	w := doJSON(t, r, http.MethodPut, "/api/cart", token, gin.H{
		"items": []gin.H{{"itemId": "a", "name": "Dosa", "price": 5, "quantity": 1}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{
		"items": []gin.H{{"itemId": "a", "name": "Dosa", "price": 5, "quantity": 1}},
		"total": 5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var order struct {
		Status string  `json:"status"`
		Total  float64 `json:"total"`
	}
	decode(t, w, &order)
	assert.Equal(t, "PLACED", order.Status)
	assert.Equal(t, 5.0, order.Total)

	w = doJSON(t, r, http.MethodGet, "/api/cart", token, nil)
	assert.JSONEq(t, `{"items": []}`, w.Body.String())

	// ประวัติต้องมีออเดอร์นี้
	w = doJSON(t, r, http.MethodGet, "/api/orders", token, nil)
	var orders []struct {
		Status string `json:"status"`
	}
	decode(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "PLACED", orders[0].Status)
}

func TestOrders_EmptyItemsRejected(t *testing.T) {
	r := newTestServer(t, "http://unused")
	token := registerUser(t, r, "samir@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/orders", token, gin.H{"items": []gin.H{}, "total": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No items to order")
}

const listFixture = `{
	"data": {"cards": [
		{"card": {"card": {"gridElements": {"infoWithStyle": {"restaurants": [
			{"info": {"id": "1", "name": "Pizza Hut", "avgRating": 4.2, "cuisines": ["Italian"]}},
			{"info": {"id": "2", "name": "Spice", "avgRating": 3.0, "cuisines": ["Indian"]}}
		]}}}}}
	]}
}`

const menuFixture = `{
	"data": {"cards": [
		{"groupedCard": {"cardGroupMap": {"REGULAR": {"cards": [
			{"card": {"card": {"itemCards": [
				{"card": {"info": {"id": "m1", "name": "Margherita", "price": 25000, "isVeg": 1}}}
			]}}}
		]}}}}
	]}
}`

func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch req.URL.Path {
		case "/dapi/restaurants/list/v5":
			fmt.Fprint(w, listFixture)
		case "/dapi/menu/pl":
			fmt.Fprint(w, menuFixture)
		default:
			http.NotFound(w, req)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRestaurants_ListAndFilter(t *testing.T) {
	srv := fakeUpstream(t)
	r := newTestServer(t, srv.URL)

	w := doJSON(t, r, http.MethodGet, "/api/restaurants", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	decode(t, w, &res)
	require.Len(t, res.Data, 2)

	w = doJSON(t, r, http.MethodGet, "/api/restaurants?minRating=4", "", nil)
	decode(t, w, &res)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Pizza Hut", res.Data[0].Name)

	w = doJSON(t, r, http.MethodGet, "/api/restaurants?cuisine=ITALIAN", "", nil)
	decode(t, w, &res)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "1", res.Data[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/restaurants?search=spice", "", nil)
	decode(t, w, &res)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "2", res.Data[0].ID)
}

func TestRestaurants_UpstreamDown(t *testing.T) {
	r := newTestServer(t, "http://127.0.0.1:1") // nothing listens here

	w := doJSON(t, r, http.MethodGet, "/api/restaurants", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch restaurants")
}

func TestMenu_EndToEndNormalization(t *testing.T) {
	srv := fakeUpstream(t)
	r := newTestServer(t, srv.URL)

	w := doJSON(t, r, http.MethodGet, "/api/restaurants/1/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data []struct {
			ID    string  `json:"id"`
			Price float64 `json:"price"`
			IsVeg bool    `json:"isVeg"`
		} `json:"data"`
	}
	decode(t, w, &res)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "m1", res.Data[0].ID)
	assert.Equal(t, 250.0, res.Data[0].Price)
	assert.True(t, res.Data[0].IsVeg)
}
