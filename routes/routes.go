package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jooseppp/soveldaja-kassa-front/configs"
	"github.com/jooseppp/soveldaja-kassa-front/controllers"
	"github.com/jooseppp/soveldaja-kassa-front/middlewares"
	"github.com/jooseppp/soveldaja-kassa-front/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, svc *services.SessionService, edit *services.EditService) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	sessCtrl := controllers.NewSessionController(svc, cfg)
	cartCtrl := controllers.NewCartController(svc)
	orderCtrl := controllers.NewOrderController(svc, edit)

	// Login surface (public)
	s := r.Group("/session")
	{
		s.GET("/registers", sessCtrl.Registers)
		s.POST("/login", sessCtrl.Login)
	}

	// Everything else needs a logged-in register
	auth := r.Group("/", middlewares.TerminalSession(cfg.JWTSecret))
	{
		auth.POST("/session/logout", sessCtrl.Logout)
		auth.GET("/session/state", sessCtrl.State)

		auth.GET("/menu", sessCtrl.Menu)

		auth.GET("/cart", cartCtrl.Get)
		auth.POST("/cart/items", cartCtrl.Add)
		auth.PATCH("/cart/items/:drinkId", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/items/:drinkId", cartCtrl.Remove)
		auth.DELETE("/cart", cartCtrl.Clear)

		auth.POST("/checkout", orderCtrl.Checkout)
		auth.POST("/checkout/zero", orderCtrl.ZeroCheckout)

		auth.GET("/orders", orderCtrl.History)
		auth.POST("/orders/:id/refresh-prices", orderCtrl.RefreshPrices)
		auth.PUT("/orders/:id", orderCtrl.Update)
		auth.DELETE("/orders/:id", orderCtrl.Delete)
	}
}
