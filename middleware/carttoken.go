package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartTokenKey is the gin context key carrying the caller's cart token.
const CartTokenKey = "cart_token"

const cartCookieName = "esencia_cart"

// CartTokenMiddleware identifies the browser profile that owns a cart.
// The token comes from the X-Cart-Token header, then the cookie; when
// neither is present a fresh one is minted and set on both so the next
// request lands on the same slot.
func CartTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Cart-Token")
		if token == "" {
			token, _ = c.Cookie(cartCookieName)
		}
		if token == "" {
			token = uuid.NewString()
			c.SetCookie(cartCookieName, token, 30*24*3600, "/", "", false, true)
		}

		c.Header("X-Cart-Token", token)
		c.Set(CartTokenKey, token)
		c.Next()
	}
}
