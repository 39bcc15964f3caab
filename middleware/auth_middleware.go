package middleware

import (
	"net/http"
	"time"

	"github.com/AnshNarg/bit-coin/auth"
	"github.com/AnshNarg/bit-coin/model"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie("auth_token")
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid session"})
			return
		}

		// --- SLIDING EXPIRY ---
		// If more than 15 minutes of the 30-minute token has passed, refresh it.
		// The refreshed cookie carries the same cross-site attributes as the
		// one set at login, or production browsers would drop it.
		if time.Until(claims.ExpiresAt.Time) < 15*time.Minute {
			newToken, _ := auth.GenerateToken(claims.User)
			if isProduction {
				c.SetSameSite(http.SameSiteNoneMode)
			}
			c.SetCookie("auth_token", newToken, 1800, "/", "", isProduction, true)
		}

		c.Set("user", claims.User)
		c.Next()
	}
}

// GetUser is a helper to extract the DTO from the context safely
func GetUser(c *gin.Context) (model.UserDto, bool) {
	val, exists := c.Get("user")
	if !exists {
		return model.UserDto{}, false
	}

	user, ok := val.(model.UserDto)
	return user, ok
}
