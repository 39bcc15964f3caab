package controller

import (
	"net/http"

	"github.com/AnshNarg/bit-coin/auth"
	localCache "github.com/AnshNarg/bit-coin/cache"
	"github.com/AnshNarg/bit-coin/middleware"
	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/service"
	"github.com/AnshNarg/bit-coin/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	userSvc      service.UserService
	isProduction bool
}

func NewAuthController(s service.UserService, isProduction bool) *AuthController {
	return &AuthController{
		userSvc:      s,
		isProduction: isProduction,
	}
}

func (ctrl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)

		protected := authGroup.Group("/")
		protected.Use(middleware.AuthMiddleware(ctrl.isProduction))
		{
			protected.POST("/logout", ctrl.Logout)
			protected.GET("/me", ctrl.GetMe)
		}
	}
}

// Login is a demo login: every well-formed request succeeds. The account is
// created on first sight of the email and a real JWT session cookie is set.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := zog.Struct(validator.LoginShape).Validate(&req); err != nil {
		log.Debug().Interface("issues", err).Msg("login validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
		return
	}

	user, err := ctrl.userSvc.GetOrCreateUser(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	userDto := user.ToDto()
	token, err := auth.GenerateToken(userDto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctrl.setAuthCookie(c, token, 1800)
	localCache.UserAuthCache.Delete(req.Email)
	c.JSON(http.StatusOK, userDto)
}

// Logout clears the authentication cookie
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetMe retrieves the authenticated user's details from the session
func (ctrl *AuthController) GetMe(c *gin.Context) {
	tokenUser, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if cached, found := localCache.UserAuthCache.Get(tokenUser.Email); found {
		c.JSON(http.StatusOK, cached.(model.UserDto))
		return
	}

	user, err := ctrl.userSvc.GetUser(c.Request.Context(), tokenUser.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	dto := user.ToDto()
	localCache.UserAuthCache.Set(dto.Email, dto, cache.DefaultExpiration)
	c.JSON(http.StatusOK, dto)
}

func (ctrl *AuthController) setAuthCookie(c *gin.Context, token string, maxAge int) {
	if ctrl.isProduction {
		c.SetSameSite(http.SameSiteNoneMode)
	}
	c.SetCookie("auth_token", token, maxAge, "/", "", ctrl.isProduction, true)
}
