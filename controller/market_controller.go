package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AnshNarg/bit-coin/customerrors"
	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/service"

	"github.com/gin-gonic/gin"
)

type MarketController struct {
	marketService service.MarketService
}

func NewMarketController(ms service.MarketService) *MarketController {
	return &MarketController{
		marketService: ms,
	}
}

func (ctrl *MarketController) RegisterRoutes(router *gin.RouterGroup) {
	marketGroup := router.Group("/market")
	{
		marketGroup.GET("/symbols", ctrl.getSymbols)
		marketGroup.GET("/quote/:symbol", ctrl.getQuote)
		marketGroup.GET("/history/:symbol", ctrl.getHistory)
	}
}

func (ctrl *MarketController) getSymbols(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"symbols": ctrl.marketService.GetSymbols()})
}

func (ctrl *MarketController) getQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := ctrl.marketService.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		respondMarketError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (ctrl *MarketController) getHistory(c *gin.Context) {
	symbol := c.Param("symbol")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "1095"))

	series, err := ctrl.marketService.GetHistory(c.Request.Context(), symbol, days)
	if err != nil {
		respondMarketError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.HistoryResponse{
		Symbol: symbol,
		Days:   len(series),
		Series: series,
	})
}

// respondMarketError turns unknown symbols into a 400 that lists what is
// actually supported
func respondMarketError(c *gin.Context, err error) {
	if errors.Is(err, customerrors.ErrUnknownSymbol) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            "Invalid symbol",
			"availableSymbols": market.Symbols(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
