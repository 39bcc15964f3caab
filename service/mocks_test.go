package service

import (
	"context"

	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/model"

	"github.com/stretchr/testify/mock"
)

// MockMarketService implements MarketService for testing
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) GetSymbols() []model.SymbolInfo {
	args := m.Called()
	return args.Get(0).([]model.SymbolInfo)
}

func (m *MockMarketService) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

func (m *MockMarketService) GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error) {
	args := m.Called(ctx, symbol, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PricePoint), args.Error(1)
}

// fixedQuote is a helper for stubbing GetQuote
func fixedQuote(symbol string, price float64) *model.Quote {
	return &model.Quote{
		Symbol: symbol,
		Name:   market.DisplayName(symbol),
		Price:  price,
		Source: "simulated",
	}
}
