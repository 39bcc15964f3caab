package service

import (
	"context"
	"testing"

	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPortfolioEmpty(t *testing.T) {
	marketSvc := new(MockMarketService)
	repo := repository.NewPortfolioRepository(100000)
	svc := NewPortfolioService(repo, marketSvc)

	portfolio, err := svc.GetPortfolio(context.Background(), "fresh@example.com")

	require.NoError(t, err)
	assert.Equal(t, 100000.0, portfolio.CashBalance)
	assert.Equal(t, 100000.0, portfolio.TotalValue)
	assert.Empty(t, portfolio.Positions)
	assert.Zero(t, portfolio.ProfitLoss)
}

func TestGetPortfolioValuesPositions(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPortfolioRepository(100000)

	// fill a buy of 2 BTC at 40k directly through the repository
	require.NoError(t, repo.ApplyFill(ctx, "holder@example.com", model.Order{
		Symbol: "bitcoin", Side: model.SideBuy, Quantity: 2,
		Price: 40000, Total: 80000, Status: model.StatusFilled,
	}))

	marketSvc := new(MockMarketService)
	marketSvc.On("GetQuote", mock.Anything, "bitcoin").Return(fixedQuote("bitcoin", 50000), nil)

	svc := NewPortfolioService(repo, marketSvc)
	portfolio, err := svc.GetPortfolio(ctx, "holder@example.com")

	require.NoError(t, err)
	require.Len(t, portfolio.Positions, 1)

	position := portfolio.Positions[0]
	assert.Equal(t, "bitcoin", position.Symbol)
	assert.Equal(t, "Bitcoin", position.Name)
	assert.Equal(t, 2.0, position.Quantity)
	assert.InDelta(t, 40000, position.AvgBuyPrice, 1e-9)
	assert.InDelta(t, 100000, position.MarketValue, 1e-9)
	assert.InDelta(t, 20000, position.ProfitLoss, 1e-9)

	assert.InDelta(t, 20000, portfolio.CashBalance, 1e-9)
	assert.InDelta(t, 120000, portfolio.TotalValue, 1e-9)
	assert.InDelta(t, 20000, portfolio.ProfitLoss, 1e-9)
}
