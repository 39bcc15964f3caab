package service

import (
	"context"
	"testing"

	"github.com/AnshNarg/bit-coin/customerrors"
	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPredictionShape(t *testing.T) {
	generator := market.NewGeneratorWithSeed(42)
	history := generator.Synthesize("solana", 150, 365)

	marketSvc := new(MockMarketService)
	marketSvc.On("GetHistory", mock.Anything, "solana", 0).Return(history, nil)
	marketSvc.On("GetQuote", mock.Anything, "solana").Return(fixedQuote("solana", 150), nil)

	svc := NewPredictionService(marketSvc, generator)
	response, err := svc.GetPrediction(context.Background(), "solana", 30)

	require.NoError(t, err)
	assert.Equal(t, "solana", response.Symbol)
	assert.Equal(t, "Solana", response.Name)
	assert.Equal(t, 30, response.DaysAhead)
	require.Len(t, response.Predictions, 30)
	require.Len(t, response.Signals, 30)
	assert.Contains(t, []model.TrendSignal{model.TrendBullish, model.TrendBearish}, response.Trend)
}

func TestGetPredictionCachesResult(t *testing.T) {
	generator := market.NewGeneratorWithSeed(7)
	history := generator.Synthesize("dogecoin", 0.12, 365)

	marketSvc := new(MockMarketService)
	marketSvc.On("GetHistory", mock.Anything, "dogecoin", 0).Return(history, nil).Once()
	marketSvc.On("GetQuote", mock.Anything, "dogecoin").Return(fixedQuote("dogecoin", 0.12), nil).Once()

	svc := NewPredictionService(marketSvc, generator)
	ctx := context.Background()

	first, err := svc.GetPrediction(ctx, "dogecoin", 7)
	require.NoError(t, err)

	// second call must come from cache, not the market service
	second, err := svc.GetPrediction(ctx, "dogecoin", 7)
	require.NoError(t, err)
	assert.Same(t, first, second)
	marketSvc.AssertExpectations(t)
}

func TestClampHorizon(t *testing.T) {
	assert.Equal(t, 30, clampHorizon(0))
	assert.Equal(t, 30, clampHorizon(-4))
	assert.Equal(t, 1, clampHorizon(1))
	assert.Equal(t, 15, clampHorizon(15))
	assert.Equal(t, 30, clampHorizon(90))
}

func TestDeriveTradeCallThresholds(t *testing.T) {
	predictions := []model.PredictionPoint{
		{PredictedPrice: 106}, // +6% vs current → strong_buy
		{PredictedPrice: 109}, // +2.8% → buy
		{PredictedPrice: 110}, // +0.9% → hold
		{PredictedPrice: 106}, // -3.6% → sell
		{PredictedPrice: 99},  // -6.6% → strong_sell
	}

	calls := deriveTradeCalls(predictions, 100)
	require.Len(t, calls, 5)

	assert.Equal(t, model.CallStrongBuy, calls[0].Call)
	assert.Equal(t, model.CallBuy, calls[1].Call)
	assert.Equal(t, model.CallHold, calls[2].Call)
	assert.Equal(t, model.CallSell, calls[3].Call)
	assert.Equal(t, model.CallStrongSell, calls[4].Call)

	assert.Equal(t, 1, calls[0].Day)
	assert.Equal(t, 5, calls[4].Day)

	// confidence is |change|/10 capped at 1
	assert.InDelta(t, 0.6, calls[0].Confidence, 1e-9)
	assert.LessOrEqual(t, calls[4].Confidence, 1.0)
}

func TestGetBatchSkipsUnknownSymbols(t *testing.T) {
	generator := market.NewGeneratorWithSeed(3)
	history := generator.Synthesize("ethereum", 3500, 365)

	marketSvc := new(MockMarketService)
	marketSvc.On("GetHistory", mock.Anything, "ethereum", 0).Return(history, nil)
	marketSvc.On("GetQuote", mock.Anything, "ethereum").Return(fixedQuote("ethereum", 3500), nil)

	svc := NewPredictionService(marketSvc, generator)
	batch := svc.GetBatch(context.Background(), []string{"ethereum", "notacoin"}, 14)

	require.Len(t, batch.Predictions, 1)
	assert.Contains(t, batch.Predictions, "ethereum")
	assert.NotContains(t, batch.Predictions, "notacoin")
}

func TestGetModelInfo(t *testing.T) {
	svc := NewPredictionService(new(MockMarketService), market.NewGeneratorWithSeed(1))

	info, err := svc.GetModelInfo("bitcoin")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", info.Name)
	assert.Equal(t, "synthetic-trend-walk", info.ModelType)
	assert.Equal(t, 1095, info.HistoryDays)
	assert.Equal(t, 30, info.MaxHorizonDays)
	assert.InDelta(t, 0.15, info.BaseFraction, 1e-9)
	assert.InDelta(t, 65000, info.ReferencePrice, 1e-9)

	_, err = svc.GetModelInfo("notacoin")
	assert.ErrorIs(t, err, customerrors.ErrUnknownSymbol)
}

func TestOverallTrend(t *testing.T) {
	up := []model.PredictionPoint{{PredictedPrice: 110}, {PredictedPrice: 120}}
	down := []model.PredictionPoint{{PredictedPrice: 90}, {PredictedPrice: 80}}

	assert.Equal(t, model.TrendBullish, overallTrend(up, 100))
	assert.Equal(t, model.TrendBearish, overallTrend(down, 100))
	assert.Equal(t, model.TrendNeutral, overallTrend(nil, 100))
}
