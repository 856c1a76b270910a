package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"github.com/samir25141/SwiggyCloneBySamir/pkg/resp"
	"github.com/samir25141/SwiggyCloneBySamir/services"
	"github.com/samir25141/SwiggyCloneBySamir/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /api/cart — ไม่เคยมี cart ก็ตอบ items ว่าง ไม่ใช่ 404
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	cart, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, "Failed to load cart", err)
		return
	}
	resp.OK(c, gin.H{"items": cart.Items})
}

type SaveCartRequest struct {
	Items []entity.CartItem `json:"items"`
}

// PUT /api/cart — แทนที่ทั้งชุด
func (h *CartController) Save(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req SaveCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Items == nil {
		req.Items = []entity.CartItem{}
	}

	cart, err := h.Svc.Replace(uid, req.Items)
	if err != nil {
		resp.ServerError(c, "Failed to save cart", err)
		return
	}
	resp.OK(c, gin.H{"items": cart.Items})
}
