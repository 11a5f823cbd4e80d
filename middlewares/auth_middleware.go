package middlewares

import (
	"net/http"
	"strings"

	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/utils"

	"github.com/gin-gonic/gin"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":     false,
		"status_code": http.StatusUnauthorized,
		"error": gin.H{
			"name":    "UnauthorizedException",
			"message": "Unauthorized",
		},
	})
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// UserAuth menjaga route storefront: butuh token role user,
// user_id dari claims ditaruh di context.
func UserAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil || claims["role"] != "user" {
			abortUnauthorized(c)
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			abortUnauthorized(c)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// AdminAuth menjaga route dashboard: butuh token role admin.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil || claims["role"] != "admin" {
			abortUnauthorized(c)
			return
		}

		username, _ := claims["username"].(string)
		c.Set("username", username)
		c.Next()
	}
}
