package controller

import (
	"net/http"

	"github.com/AnshNarg/bit-coin/middleware"
	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/service"

	"github.com/gin-gonic/gin"
)

type PortfolioController struct {
	portfolioService service.PortfolioService
	isProduction     bool
}

func NewPortfolioController(ps service.PortfolioService, isProduction bool) *PortfolioController {
	return &PortfolioController{
		portfolioService: ps,
		isProduction:     isProduction,
	}
}

func (ctrl *PortfolioController) RegisterRoutes(router *gin.RouterGroup) {
	portfolioGroup := router.Group("/portfolio")
	portfolioGroup.Use(middleware.AuthMiddleware(ctrl.isProduction))
	{
		portfolioGroup.GET("", ctrl.getPortfolio)
	}
}

func (ctrl *PortfolioController) getPortfolio(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	portfolio, err := ctrl.portfolioService.GetPortfolio(c.Request.Context(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, portfolio)
}
