package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jooseppp/soveldaja-kassa-front/entity"
	"github.com/jooseppp/soveldaja-kassa-front/pkg/resp"
	"github.com/jooseppp/soveldaja-kassa-front/services"
)

type OrderController struct {
	Svc  *services.SessionService
	Edit *services.EditService
}

func NewOrderController(s *services.SessionService, e *services.EditService) *OrderController {
	return &OrderController{Svc: s, Edit: e}
}

// GET /orders?refresh=1
func (h *OrderController) History(c *gin.Context) {
	if c.Query("refresh") != "" {
		if err := h.Svc.RefreshHistory(c.Request.Context()); errors.Is(err, services.ErrNoRegister) {
			resp.Unauthorized(c, err.Error())
			return
		}
	}
	resp.OK(c, h.Svc.Orders())
}

// POST /checkout
func (h *OrderController) Checkout(c *gin.Context) {
	h.doCheckout(c, h.Svc.Checkout)
}

// POST /checkout/zero
func (h *OrderController) ZeroCheckout(c *gin.Context) {
	h.doCheckout(c, h.Svc.ZeroCheckout)
}

func (h *OrderController) doCheckout(c *gin.Context, run func(ctx context.Context) (*entity.Order, error)) {
	created, err := run(c.Request.Context())
	switch {
	case errors.Is(err, services.ErrNoRegister):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBusy):
		resp.Conflict(c, err.Error())
	case err != nil:
		resp.BadGateway(c, err)
	default:
		resp.Created(c, gin.H{
			"order":        created,
			"displayTotal": created.Total.StringFixed(2),
		})
	}
}

// POST /orders/:id/refresh-prices
func (h *OrderController) RefreshPrices(c *gin.Context) {
	order, err := h.Svc.FindOrder(c.Param("id"))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	items := h.Edit.RefreshPrices(c.Request.Context(), order.Items)
	resp.OK(c, gin.H{
		"items":        items,
		"isZeroOrder":  order.IsZeroOrder,
		"displayTotal": h.Edit.ComputeTotal(items, order.IsZeroOrder).StringFixed(2),
	})
}

type updateOrderReq struct {
	Items []entity.OrderItem `json:"items"`
}

// PUT /orders/:id
func (h *OrderController) Update(c *gin.Context) {
	original, err := h.Svc.FindOrder(c.Param("id"))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	var req updateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	edited := h.Edit.BuildUpdatedOrder(*original, req.Items)
	updated, err := h.Svc.UpdateOrder(c.Request.Context(), edited)
	switch {
	case errors.Is(err, services.ErrNoRegister):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrBusy):
		resp.Conflict(c, err.Error())
	case err != nil:
		resp.BadGateway(c, err)
	default:
		resp.OK(c, updated)
	}
}

// DELETE /orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	id := c.Param("id")
	err := h.Svc.DeleteOrder(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrNoRegister):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrBusy):
		resp.Conflict(c, err.Error())
	case err != nil:
		resp.BadGateway(c, err)
	default:
		resp.OK(c, gin.H{"deleted": id})
	}
}
