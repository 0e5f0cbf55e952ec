package middleware

import (
	"github.com/arganshop/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartSessionHeader carries the anonymous cart session token
const CartSessionHeader = "X-Cart-Session"

const cartSessionKey = "cart_session"

// CartSession resolves the caller's cart session token. A caller without one,
// or with a token that is not a UUID, gets a fresh token. The resolved token
// is always echoed on the response so clients can persist it.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(CartSessionHeader)
		if _, err := uuid.Parse(token); err != nil {
			token = uuid.NewString()
		}

		c.Set(cartSessionKey, token)
		c.Writer.Header().Set(CartSessionHeader, token)
		ctx, _ := logger.WithCartSession(c.Request.Context(), logger.FromContext(c.Request.Context()), token)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetCartSession returns the resolved cart session token, or ""
func GetCartSession(c *gin.Context) string {
	return c.GetString(cartSessionKey)
}
