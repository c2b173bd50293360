package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const corsAllowedMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// CORSMiddleware allows every origin, method and header with credentials.
// Browsers reject "*" alongside credentials, so the request origin is echoed.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Add("Vary", "Origin")

		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.Header("Access-Control-Allow-Methods", corsAllowedMethods)
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
			c.Header("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
