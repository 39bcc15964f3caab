package market

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/AnshNarg/bit-coin/model"
)

const (
	dailyNoiseRange   = 0.025 // +/- 2.5% multiplicative daily volatility
	seasonalAmplitude = 0.01
	seasonalPeriod    = 365.0
	priceFloorFrac    = 0.05 // of base price, keeps the path strictly positive
	openOffsetRange   = 0.005
	wickOffsetRange   = 0.01
	minVolume         = 1_000_000.0
	maxVolume         = 10_000_000.0
)

// Generator produces synthetic market data. It is pure computation over its
// inputs plus the injected RNG; callers own all caching. The mutex serializes
// RNG access, rand.Rand is not safe for concurrent handlers.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator seeds from the clock, so every process sees a fresh market
func NewGenerator() *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano())
}

// NewGeneratorWithSeed pins the RNG, letting tests assert exact output
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Synthesize fabricates a daily OHLCV series of horizonDays points ending
// today, anchored so the final close equals currentPrice. The path is a
// linear trend from a symbol-specific base price, perturbed by uniform
// daily noise and an annual seasonal cycle, with indicators attached to
// each point as the series grows.
func (g *Generator) Synthesize(symbol string, currentPrice float64, horizonDays int) []model.PricePoint {
	g.mu.Lock()
	defer g.mu.Unlock()

	basePrice := currentPrice * baseFraction(symbol)
	trendStep := (currentPrice - basePrice) / float64(horizonDays)
	floor := basePrice * priceFloorFrac

	series := make([]model.PricePoint, 0, horizonDays)
	tracker := NewTracker()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	price := basePrice

	for day := 0; day < horizonDays; day++ {
		price += trendStep
		price *= 1 + g.uniform(dailyNoiseRange)
		price *= 1 + seasonalAmplitude*math.Sin(2*math.Pi*float64(day)/seasonalPeriod)
		if price < floor {
			price = floor
		}

		close := price
		if day == horizonDays-1 {
			// anchor the endpoint to the supplied spot price
			close = currentPrice
			price = currentPrice
		}

		open := close * (1 + g.uniform(openOffsetRange))
		high := math.Max(open, close) * (1 + g.rng.Float64()*wickOffsetRange)
		low := math.Min(open, close) * (1 - g.rng.Float64()*wickOffsetRange)
		volume := minVolume + g.rng.Float64()*(maxVolume-minVolume)

		timestamp := today.AddDate(0, 0, -(horizonDays - 1 - day))

		series = append(series, model.PricePoint{
			Timestamp: timestamp.UnixMilli(),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     close,
			Volume:    volume,
			Derived:   tracker.Push(close),
		})
	}

	return series
}

// uniform draws from [-bound, +bound)
func (g *Generator) uniform(bound float64) float64 {
	return (g.rng.Float64()*2 - 1) * bound
}
