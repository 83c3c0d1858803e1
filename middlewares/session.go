package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jooseppp/soveldaja-kassa-front/utils"
)

// TerminalSession guards routes that require a logged-in register. It
// validates the token minted at login and exposes the register id it was
// bound to; whether that register is still the selected one is checked by
// the services, which fail fast with a missing-session error.
func TerminalSession(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		registerID, err := utils.ParseTerminalToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}
		c.Set("registerId", registerID)
		c.Next()
	}
}
