package service

import (
	"context"
	"time"

	localCache "github.com/AnshNarg/bit-coin/cache"
	"github.com/AnshNarg/bit-coin/client"
	"github.com/AnshNarg/bit-coin/customerrors"
	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/model"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// fullHorizonDays is the length of the series generated once per symbol
// (three years of daily points)
const fullHorizonDays = 1095

type MarketService interface {
	GetSymbols() []model.SymbolInfo
	GetQuote(ctx context.Context, symbol string) (*model.Quote, error)
	GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error)
}

type MarketServiceImpl struct {
	priceClient *client.CoinGeckoClient
	generator   *market.Generator
}

func NewMarketService(priceClient *client.CoinGeckoClient, generator *market.Generator) MarketService {
	return &MarketServiceImpl{
		priceClient: priceClient,
		generator:   generator,
	}
}

func (s *MarketServiceImpl) GetSymbols() []model.SymbolInfo {
	return market.Symbols()
}

// GetQuote prefers the live feed and falls back to a simulated quote so the
// demo keeps working offline
func (s *MarketServiceImpl) GetQuote(ctx context.Context, symbol string) (*model.Quote, error) {
	if !market.IsSupported(symbol) {
		return nil, customerrors.ErrUnknownSymbol
	}

	price, changePct, err := s.priceClient.GetSpotPrice(ctx, symbol)
	source := "coingecko"
	if err != nil {
		price, changePct = s.generator.SimulateQuote(symbol)
		source = "simulated"
		log.Debug().Str("symbol", symbol).Msg("serving simulated quote")
	}

	return &model.Quote{
		Symbol:    symbol,
		Name:      market.DisplayName(symbol),
		Price:     price,
		ChangePct: changePct,
		Source:    source,
		Timestamp: time.Now(),
	}, nil
}

// GetHistory returns the trailing days of the symbol's synthetic series.
// The full three-year series is generated on first request and cached for
// the process lifetime, anchored to the spot price at generation time.
func (s *MarketServiceImpl) GetHistory(ctx context.Context, symbol string, days int) ([]model.PricePoint, error) {
	if !market.IsSupported(symbol) {
		return nil, customerrors.ErrUnknownSymbol
	}

	if days <= 0 || days > fullHorizonDays {
		days = fullHorizonDays
	}

	series, err := s.fullSeries(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if days < len(series) {
		return series[len(series)-days:], nil
	}
	return series, nil
}

func (s *MarketServiceImpl) fullSeries(ctx context.Context, symbol string) ([]model.PricePoint, error) {
	if val, found := localCache.HistoryCache.Get(symbol); found {
		return val.([]model.PricePoint), nil
	}

	quote, err := s.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	series := s.generator.Synthesize(symbol, quote.Price, fullHorizonDays)
	localCache.HistoryCache.Set(symbol, series, cache.NoExpiration)

	log.Info().Str("symbol", symbol).Int("points", len(series)).Msg("synthesized historical series")
	return series, nil
}
