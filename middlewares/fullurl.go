package middlewares

import "github.com/gin-gonic/gin"

// FullURL menghitung scheme+host request sekali, lalu handler meneruskan
// nilainya secara eksplisit ke service yang membangun url file upload.
func FullURL() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme := c.GetHeader("X-Forwarded-Proto")
		if scheme == "" {
			scheme = "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}
		}
		c.Set("fullurl", scheme+"://"+c.Request.Host)
		c.Next()
	}
}

// BaseURL membaca hasil FullURL dari context.
func BaseURL(c *gin.Context) string {
	return c.GetString("fullurl")
}
