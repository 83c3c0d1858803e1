package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jooseppp/soveldaja-kassa-front/pkg/resp"
	"github.com/jooseppp/soveldaja-kassa-front/services"
)

type CartController struct{ Svc *services.SessionService }

func NewCartController(s *services.SessionService) *CartController { return &CartController{Svc: s} }

func (h *CartController) payload() gin.H {
	return gin.H{
		"items":      h.Svc.Cart.Lines(),
		"totalPrice": h.Svc.Cart.TotalPrice().StringFixed(2),
		"totalItems": h.Svc.Cart.TotalItems(),
	}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, h.payload())
}

type addToCartReq struct {
	DrinkID  uint `json:"drinkId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	err := h.Svc.AddToCart(req.DrinkID, req.Quantity)
	if errors.Is(err, services.ErrNoRegister) {
		resp.Unauthorized(c, err.Error())
		return
	}
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, h.payload())
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:drinkId
func (h *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("drinkId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid drink id")
		return
	}
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.Cart.SetQuantity(uint(id), req.Quantity)
	resp.OK(c, h.payload())
}

// DELETE /cart/items/:drinkId
func (h *CartController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("drinkId"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid drink id")
		return
	}
	h.Svc.Cart.Remove(uint(id))
	resp.OK(c, h.payload())
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Cart.Clear()
	resp.OK(c, h.payload())
}
