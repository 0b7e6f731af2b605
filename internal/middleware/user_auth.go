package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserAuth validates customer JWT tokens and injects userId and userEmail
// into the request context.
func UserAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			log.Println("[AUTH] [ERROR] user token rejected")
			return
		}

		userID, ok := claims["userId"].(string)
		if !ok || strings.TrimSpace(userID) == "" {
			log.Println("[AUTH] [ERROR] userId claim missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		email, _ := claims["email"].(string)

		c.Set("userId", userID)
		c.Set("userEmail", email)
		c.Next()
	}
}
