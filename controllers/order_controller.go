package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/samir25141/SwiggyCloneBySamir/entity"
	"github.com/samir25141/SwiggyCloneBySamir/pkg/resp"
	"github.com/samir25141/SwiggyCloneBySamir/services"
	"github.com/samir25141/SwiggyCloneBySamir/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

type CreateOrderRequest struct {
	Items []entity.OrderItem `json:"items"`
	Total float64            `json:"total"`
}

// POST /api/orders — สร้างออเดอร์แล้วล้างคาร์ท
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "No items to order")
		return
	}

	order, err := h.Svc.Place(uid, req.Items, req.Total)
	if err != nil {
		if errors.Is(err, services.ErrEmptyOrder) {
			resp.BadRequest(c, "No items to order")
			return
		}
		resp.ServerError(c, "Failed to place order", err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders — ใหม่สุดก่อน
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := h.Svc.History(uid)
	if err != nil {
		resp.ServerError(c, "Failed to load orders", err)
		return
	}
	resp.OK(c, orders)
}
