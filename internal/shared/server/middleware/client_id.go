package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/util"
)

const clientIDKey = "clientId"

// ClientID derives a stable, hashed identifier from the caller's network
// address and stores it on the context. Rate limiting and history are keyed
// by this value.
func ClientID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientIDKey, util.HashClientKey(c.ClientIP()))
		c.Next()
	}
}

// ClientIDFromContext fetches the identifier stored by ClientID middleware.
func ClientIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(clientIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
