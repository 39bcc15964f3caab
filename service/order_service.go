package service

import (
	"context"
	"time"

	"github.com/AnshNarg/bit-coin/customerrors"
	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/repository"
	"github.com/AnshNarg/bit-coin/util"

	"github.com/rs/zerolog/log"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, email string, request model.OrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context, email string) ([]model.Order, error)
}

type OrderServiceImpl struct {
	portfolioRepo *repository.PortfolioRepository
	marketSvc     MarketService
}

func NewOrderService(repo *repository.PortfolioRepository, marketSvc MarketService) OrderService {
	return &OrderServiceImpl{
		portfolioRepo: repo,
		marketSvc:     marketSvc,
	}
}

// PlaceOrder executes a simulated market order at the current quote. Buys
// must be covered by cash, sells by holdings; anything else is rejected and
// still recorded in the history.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, email string, request model.OrderRequest) (*model.Order, error) {
	if !market.IsSupported(request.Symbol) {
		return nil, customerrors.ErrUnknownSymbol
	}

	quote, err := s.marketSvc.GetQuote(ctx, request.Symbol)
	if err != nil {
		return nil, err
	}

	orderId, err := util.GenerateOrderId()
	if err != nil {
		return nil, err
	}

	order := model.Order{
		OrderID:   orderId,
		Email:     email,
		Symbol:    request.Symbol,
		Side:      request.Side,
		Quantity:  request.Quantity,
		Price:     quote.Price,
		Total:     quote.Price * request.Quantity,
		Status:    model.StatusFilled,
		Timestamp: time.Now(),
	}

	if err := s.checkCoverage(ctx, email, order); err != nil {
		order.Status = model.StatusRejected
		s.portfolioRepo.RecordRejection(ctx, email, order)
		return nil, err
	}

	if err := s.portfolioRepo.ApplyFill(ctx, email, order); err != nil {
		return nil, err
	}

	log.Info().
		Str("orderId", order.OrderID).
		Str("symbol", order.Symbol).
		Str("side", string(order.Side)).
		Float64("quantity", order.Quantity).
		Float64("price", order.Price).
		Msg("order filled")

	return &order, nil
}

func (s *OrderServiceImpl) checkCoverage(ctx context.Context, email string, order model.Order) error {
	switch order.Side {
	case model.SideBuy:
		cash, err := s.portfolioRepo.CashBalance(ctx, email)
		if err != nil {
			return err
		}
		if cash < order.Total {
			return customerrors.ErrInsufficientFunds
		}
	case model.SideSell:
		position, err := s.portfolioRepo.Position(ctx, email, order.Symbol)
		if err != nil {
			return err
		}
		if position.Quantity < order.Quantity {
			return customerrors.ErrInsufficientHoldings
		}
	}
	return nil
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, email string) ([]model.Order, error) {
	return s.portfolioRepo.Orders(ctx, email)
}
