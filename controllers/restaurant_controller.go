package controllers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/pkg/resp"
	"github.com/samir25141/SwiggyCloneBySamir/services"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /api/restaurants?search=&minRating=&cuisine=&lat=&lng=
func (h *RestaurantController) List(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)

	q := services.RestaurantQuery{
		Search:    c.Query("search"),
		MinRating: minRating,
		Cuisine:   c.Query("cuisine"),
		Lat:       parseCoord(c.Query("lat")),
		Lng:       parseCoord(c.Query("lng")),
	}

	restaurants, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		resp.ServerError(c, "Failed to fetch restaurants", err)
		return
	}
	resp.OK(c, gin.H{"data": restaurants})
}

// GET /api/restaurants/:id/menu?lat=&lng=
func (h *RestaurantController) Menu(c *gin.Context) {
	items, err := h.Svc.Menu(c.Request.Context(), c.Param("id"),
		parseCoord(c.Query("lat")), parseCoord(c.Query("lng")))
	if err != nil {
		resp.ServerError(c, "Failed to fetch menu", err)
		return
	}
	resp.OK(c, gin.H{"data": items})
}

// NaN = ไม่ได้ส่งมา ให้ upstream ใช้ค่า default
func parseCoord(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
