package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			if allowedDomains == "*" {
				return true
			}
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, domain := range strings.Split(allowedDomains, ",") {
				if strings.Contains(origin, strings.TrimSpace(domain)) {
					return true
				}
			}
			return false
		},
		MaxAge: 12 * time.Hour,
	})
}
