package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jooseppp/soveldaja-kassa-front/configs"
	"github.com/jooseppp/soveldaja-kassa-front/pkg/resp"
	"github.com/jooseppp/soveldaja-kassa-front/services"
	"github.com/jooseppp/soveldaja-kassa-front/utils"
)

type SessionController struct {
	Svc *services.SessionService
	Cfg *configs.Config
}

func NewSessionController(s *services.SessionService, cfg *configs.Config) *SessionController {
	return &SessionController{Svc: s, Cfg: cfg}
}

// GET /session/registers
func (h *SessionController) Registers(c *gin.Context) {
	regs, err := h.Svc.Registers(c.Request.Context())
	if err != nil {
		resp.Conflict(c, err.Error())
		return
	}
	resp.OK(c, regs)
}

type loginReq struct {
	RegisterID uint `json:"registerId" binding:"required"`
}

// POST /session/login
func (h *SessionController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	reg, err := h.Svc.SelectRegister(c.Request.Context(), req.RegisterID)
	if errors.Is(err, services.ErrRegisterNotFound) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	token, err := utils.GenerateTerminalToken(
		strconv.FormatUint(uint64(reg.ID), 10), h.Cfg.JWTSecret, h.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"register": reg, "token": token})
}

// POST /session/logout
func (h *SessionController) Logout(c *gin.Context) {
	h.Svc.Logout()
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /session/state
func (h *SessionController) State(c *gin.Context) {
	resp.OK(c, gin.H{
		"register":   h.Svc.CurrentRegister(),
		"busy":       h.Svc.Busy(),
		"cartItems":  h.Svc.Cart.TotalItems(),
		"cartTotal":  h.Svc.Cart.TotalPrice().StringFixed(2),
		"orderCount": len(h.Svc.Orders()),
	})
}

// GET /menu
func (h *SessionController) Menu(c *gin.Context) {
	if h.Svc.CurrentRegister() == nil {
		resp.Unauthorized(c, services.ErrNoRegister.Error())
		return
	}
	resp.OK(c, h.Svc.Drinks())
}
