package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SpotPriceCache keeps live quotes briefly so the upstream feed is not
// hammered on every request
var SpotPriceCache = cache.New(1*time.Minute, 2*time.Minute)

// LastGoodPriceCache never expires: it backs the offline fallback when the
// price feed is down
var LastGoodPriceCache = cache.New(cache.NoExpiration, 0)

// HistoryCache holds generated historical series for the process lifetime,
// keyed by symbol
var HistoryCache = cache.New(cache.NoExpiration, 0)

// PredictionCache holds prediction series keyed by symbol:days, regenerated
// when stale
var PredictionCache = cache.New(15*time.Minute, 30*time.Minute)

// RateLimiterCache keeps one token bucket per client IP
var RateLimiterCache = cache.New(1*time.Hour, 10*time.Minute)

// UserAuthCache avoids a user-store lookup on every authenticated request
var UserAuthCache = cache.New(1*time.Hour, 10*time.Minute)
