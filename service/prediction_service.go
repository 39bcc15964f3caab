package service

import (
	"context"
	"math"
	"strconv"
	"time"

	localCache "github.com/AnshNarg/bit-coin/cache"
	"github.com/AnshNarg/bit-coin/customerrors"
	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/model"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	defaultHorizon = 30
	maxHorizon     = 30
)

type PredictionService interface {
	GetPrediction(ctx context.Context, symbol string, days int) (*model.PredictionResponse, error)
	GetBatch(ctx context.Context, symbols []string, days int) *model.BatchPredictionResponse
	GetModelInfo(symbol string) (*model.ModelInfo, error)
}

type PredictionServiceImpl struct {
	marketSvc MarketService
	generator *market.Generator
}

func NewPredictionService(marketSvc MarketService, generator *market.Generator) PredictionService {
	return &PredictionServiceImpl{
		marketSvc: marketSvc,
		generator: generator,
	}
}

// GetPrediction extrapolates a forward series from the symbol's historical
// tail. Results are cached per (symbol, horizon) and regenerated when stale.
func (s *PredictionServiceImpl) GetPrediction(ctx context.Context, symbol string, days int) (*model.PredictionResponse, error) {
	days = clampHorizon(days)

	cacheKey := symbol + ":" + strconv.Itoa(days)
	if val, found := localCache.PredictionCache.Get(cacheKey); found {
		return val.(*model.PredictionResponse), nil
	}

	history, err := s.marketSvc.GetHistory(ctx, symbol, 0)
	if err != nil {
		return nil, err
	}

	quote, err := s.marketSvc.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	predictions := s.generator.Predict(symbol, quote.Price, history, days)

	response := &model.PredictionResponse{
		Symbol:       symbol,
		Name:         market.DisplayName(symbol),
		CurrentPrice: quote.Price,
		DaysAhead:    days,
		Trend:        overallTrend(predictions, quote.Price),
		Predictions:  predictions,
		Signals:      deriveTradeCalls(predictions, quote.Price),
		GeneratedAt:  time.Now().Format(time.RFC3339),
	}

	localCache.PredictionCache.Set(cacheKey, response, cache.DefaultExpiration)
	log.Info().Str("symbol", symbol).Int("days", days).Msg("generated prediction series")

	return response, nil
}

// GetBatch runs GetPrediction for each supported symbol in the request;
// unsupported symbols are silently skipped.
func (s *PredictionServiceImpl) GetBatch(ctx context.Context, symbols []string, days int) *model.BatchPredictionResponse {
	results := make(map[string]*model.PredictionResponse, len(symbols))

	for _, symbol := range symbols {
		if !market.IsSupported(symbol) {
			continue
		}
		prediction, err := s.GetPrediction(ctx, symbol, days)
		if err != nil {
			log.Warn().Err(err).Str("symbol", symbol).Msg("batch prediction failed")
			continue
		}
		results[symbol] = prediction
	}

	return &model.BatchPredictionResponse{
		Predictions: results,
		RequestedAt: time.Now().Format(time.RFC3339),
	}
}

// GetModelInfo exposes the generator parameters behind a symbol's data
func (s *PredictionServiceImpl) GetModelInfo(symbol string) (*model.ModelInfo, error) {
	if !market.IsSupported(symbol) {
		return nil, customerrors.ErrUnknownSymbol
	}

	info := market.Describe(symbol)
	info.HistoryDays = fullHorizonDays
	info.MaxHorizonDays = maxHorizon
	return &info, nil
}

func clampHorizon(days int) int {
	if days <= 0 {
		return defaultHorizon
	}
	if days > maxHorizon {
		return maxHorizon
	}
	return days
}

// overallTrend compares the average predicted price against the current one
func overallTrend(predictions []model.PredictionPoint, currentPrice float64) model.TrendSignal {
	if len(predictions) == 0 {
		return model.TrendNeutral
	}

	sum := 0.0
	for _, p := range predictions {
		sum += p.PredictedPrice
	}

	if sum/float64(len(predictions)) > currentPrice {
		return model.TrendBullish
	}
	return model.TrendBearish
}

// deriveTradeCalls labels each forward day by its day-over-day predicted
// change: beyond +/-5% is a strong call, beyond +/-2% a plain one.
func deriveTradeCalls(predictions []model.PredictionPoint, currentPrice float64) []model.TradeCall {
	calls := make([]model.TradeCall, 0, len(predictions))

	prev := currentPrice
	for i, p := range predictions {
		changePct := 0.0
		if prev != 0 {
			changePct = (p.PredictedPrice - prev) / prev * 100
		}

		var call model.TradeCallType
		switch {
		case changePct > 5:
			call = model.CallStrongBuy
		case changePct > 2:
			call = model.CallBuy
		case changePct < -5:
			call = model.CallStrongSell
		case changePct < -2:
			call = model.CallSell
		default:
			call = model.CallHold
		}

		calls = append(calls, model.TradeCall{
			Day:        i + 1,
			Call:       call,
			Confidence: math.Min(math.Abs(changePct)/10, 1.0),
			ChangePct:  math.Round(changePct*100) / 100,
		})

		prev = p.PredictedPrice
	}

	return calls
}
