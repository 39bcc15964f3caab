package controller

import (
	"errors"
	"net/http"

	"github.com/AnshNarg/bit-coin/customerrors"
	"github.com/AnshNarg/bit-coin/middleware"
	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/service"
	"github.com/AnshNarg/bit-coin/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	orderService service.OrderService
	isProduction bool
}

func NewOrderController(os service.OrderService, isProduction bool) *OrderController {
	return &OrderController{
		orderService: os,
		isProduction: isProduction,
	}
}

func (ctrl *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	orderGroup.Use(middleware.AuthMiddleware(ctrl.isProduction))
	{
		orderGroup.POST("", ctrl.placeOrder)
		orderGroup.GET("", ctrl.listOrders)
	}
}

func (ctrl *OrderController) placeOrder(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req model.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Invalid request payload"))
		return
	}

	bodyValidation := zog.Struct(validator.OrderShape).
		TestFunc(validator.OrderSideTest)

	if err := bodyValidation.Validate(&req); err != nil {
		log.Debug().Interface("issues", err).Msg("order validation failed")
		c.JSON(http.StatusBadRequest, NewErrorResponse("Invalid order: symbol, BUY/SELL side and a positive quantity are required"))
		return
	}

	order, err := ctrl.orderService.PlaceOrder(c.Request.Context(), user.Email, req)
	if err != nil {
		ctrl.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(order, "Order filled"))
}

func (ctrl *OrderController) listOrders(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	orders, err := ctrl.orderService.ListOrders(c.Request.Context(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, NewResponse(orders, "Order history"))
}

func (ctrl *OrderController) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customerrors.ErrUnknownSymbol):
		c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
	case errors.Is(err, customerrors.ErrInsufficientFunds),
		errors.Is(err, customerrors.ErrInsufficientHoldings):
		c.JSON(http.StatusUnprocessableEntity, NewErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, NewErrorResponse("Internal server error"))
	}
}
