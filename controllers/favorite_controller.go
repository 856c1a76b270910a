package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/pkg/resp"
	"github.com/samir25141/SwiggyCloneBySamir/services"
	"github.com/samir25141/SwiggyCloneBySamir/utils"
)

type FavoriteController struct{ Svc *services.FavoriteService }

func NewFavoriteController(s *services.FavoriteService) *FavoriteController {
	return &FavoriteController{Svc: s}
}

type SaveFavoriteRequest struct {
	RestaurantID string  `json:"restaurantId" binding:"required"`
	Name         string  `json:"name"`
	AvgRating    float64 `json:"avgRating"`
}

// POST /api/favorites — upsert ตาม (user, restaurant)
func (h *FavoriteController) Save(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req SaveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fav, err := h.Svc.Save(uid, req.RestaurantID, req.Name, req.AvgRating)
	if err != nil {
		resp.ServerError(c, "Failed to save favorite", err)
		return
	}
	resp.OK(c, fav)
}

// GET /api/favorites
func (h *FavoriteController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	favs, err := h.Svc.List(uid)
	if err != nil {
		resp.ServerError(c, "Failed to load favourites", err)
		return
	}
	resp.OK(c, favs)
}

// DELETE /api/favorites/:restaurantId
func (h *FavoriteController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	if err := h.Svc.Remove(uid, c.Param("restaurantId")); err != nil {
		resp.ServerError(c, "Failed to remove favorite", err)
		return
	}
	resp.OK(c, gin.H{"success": true})
}
