package controller

import (
	"net/http"
	"strconv"

	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/service"

	"github.com/gin-gonic/gin"
)

type PredictionController struct {
	predictionService service.PredictionService
}

func NewPredictionController(ps service.PredictionService) *PredictionController {
	return &PredictionController{
		predictionService: ps,
	}
}

func (ctrl *PredictionController) RegisterRoutes(router *gin.RouterGroup) {
	predictionGroup := router.Group("/predictions")
	{
		predictionGroup.GET("/:symbol", ctrl.getPrediction)
		predictionGroup.GET("/:symbol/model", ctrl.getModelInfo)
		predictionGroup.POST("/batch", ctrl.getBatchPredictions)
	}
}

func (ctrl *PredictionController) getPrediction(c *gin.Context) {
	symbol := c.Param("symbol")
	if !market.IsSupported(symbol) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            "Invalid symbol",
			"availableSymbols": market.Symbols(),
		})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	prediction, err := ctrl.predictionService.GetPrediction(c.Request.Context(), symbol, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate predictions"})
		return
	}

	c.JSON(http.StatusOK, prediction)
}

func (ctrl *PredictionController) getModelInfo(c *gin.Context) {
	info, err := ctrl.predictionService.GetModelInfo(c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            "Invalid symbol",
			"availableSymbols": market.Symbols(),
		})
		return
	}

	c.JSON(http.StatusOK, info)
}

func (ctrl *PredictionController) getBatchPredictions(c *gin.Context) {
	var req model.BatchPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": "Please provide a 'symbols' array in the request body",
		})
		return
	}

	c.JSON(http.StatusOK, ctrl.predictionService.GetBatch(c.Request.Context(), req.Symbols, req.Days))
}
