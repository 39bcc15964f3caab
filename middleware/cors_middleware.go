package middleware

import (
	"time"

	"github.com/AnshNarg/bit-coin/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.ConfigManager) gin.HandlerFunc {
	return cors.New(cors.Config{
		// Exact frontend origins (avoid "*" when using credentials)
		AllowOrigins: cfg.GetConfig().FrontendUrls,

		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},

		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
		},

		ExposeHeaders: []string{"Content-Length"},

		// Must be true for the HttpOnly auth cookie to be sent
		AllowCredentials: true,

		MaxAge: 12 * time.Hour,
	})
}
