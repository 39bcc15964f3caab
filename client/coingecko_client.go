package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	localCache "github.com/AnshNarg/bit-coin/cache"
	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// CoinGeckoClient fetches live spot prices. Responses are cached for a
// minute, and the last successful value per symbol is kept forever so the
// demo stays usable when the feed is unreachable.
type CoinGeckoClient struct {
	client *resty.Client
}

type simplePriceResponse map[string]struct {
	Usd       float64 `json:"usd"`
	Change24h float64 `json:"usd_24h_change"`
}

func NewCoinGeckoClient(baseUrl string) *CoinGeckoClient {
	client := resty.New().
		SetBaseURL(baseUrl).
		SetTimeout(10 * time.Second).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		})

	return &CoinGeckoClient{
		client: client,
	}
}

// GetSpotPrice returns the current USD price and 24h change for a symbol
// (CoinGecko coin id, e.g. "bitcoin").
func (c *CoinGeckoClient) GetSpotPrice(ctx context.Context, symbol string) (float64, float64, error) {
	cacheKey := "spot_" + symbol

	if val, found := localCache.SpotPriceCache.Get(cacheKey); found {
		cached := val.([2]float64)
		return cached[0], cached[1], nil
	}

	var priceResponse simplePriceResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ids":                 symbol,
			"vs_currencies":       "usd",
			"include_24hr_change": "true",
		}).
		SetResult(&priceResponse).
		Get("/simple/price")

	if err != nil || !resp.IsSuccess() {
		log.Warn().Err(err).Str("symbol", symbol).Msg("coingecko request failed")
		return c.lastGood(symbol)
	}

	entry, ok := priceResponse[symbol]
	if !ok || entry.Usd <= 0 {
		return c.lastGood(symbol)
	}

	pair := [2]float64{entry.Usd, entry.Change24h}
	localCache.SpotPriceCache.Set(cacheKey, pair, cache.DefaultExpiration)
	localCache.LastGoodPriceCache.Set(cacheKey, pair, cache.NoExpiration)

	return entry.Usd, entry.Change24h, nil
}

func (c *CoinGeckoClient) lastGood(symbol string) (float64, float64, error) {
	if val, found := localCache.LastGoodPriceCache.Get("spot_" + symbol); found {
		cached := val.([2]float64)
		return cached[0], cached[1], nil
	}
	return 0, 0, fmt.Errorf("no price available for %s", strings.TrimSpace(symbol))
}
