package market

import (
	"math"
	"time"

	"github.com/AnshNarg/bit-coin/model"
)

const (
	trendLookback    = 30
	trendWeight      = 0.3
	cycleAmplitude   = 0.01
	cyclePeriod      = 30.0
	forecastNoise    = 0.015 // +/- 1.5% per forward step
	confidenceStart  = 0.95
	confidenceDecay  = 0.015
	confidenceFloor  = 0.5
	bandWidthAtEnd   = 0.1 // full band width reaches 10% of price at the horizon
	bearishThreshold = 0.95
)

// Predict extrapolates a forward prediction series from the tail of a
// historical series. The walk is sequential: each step's price carries
// forward from the previous one, so the path stays internally consistent.
func (g *Generator) Predict(symbol string, currentPrice float64, history []model.PricePoint, horizonDays int) []model.PredictionPoint {
	g.mu.Lock()
	defer g.mu.Unlock()

	trend := trailingMeanReturn(history) * trendWeight

	predictions := make([]model.PredictionPoint, 0, horizonDays)
	today := time.Now().UTC()
	price := currentPrice
	prevHalfWidth := 0.0

	for i := 1; i <= horizonDays; i++ {
		cycle := cycleAmplitude * math.Sin(2*math.Pi*float64(i)/cyclePeriod)
		noise := g.uniform(forecastNoise)
		// drag grows with the horizon, pulling the walk back toward
		// trend-neutral on long forecasts
		reversion := -trend * float64(i) / float64(horizonDays)

		price *= 1 + trend + cycle + noise + reversion

		confidence := confidenceStart - confidenceDecay*float64(i)
		if confidence < confidenceFloor {
			confidence = confidenceFloor
		}

		halfWidth := price * bandWidthAtEnd / 2 * float64(i) / float64(horizonDays)
		if halfWidth < prevHalfWidth {
			halfWidth = prevHalfWidth
		}
		prevHalfWidth = halfWidth

		signal := model.TrendNeutral
		switch {
		case price > currentPrice:
			signal = model.TrendBullish
		case price < currentPrice*bearishThreshold:
			signal = model.TrendBearish
		}

		predictions = append(predictions, model.PredictionPoint{
			Date:           today.AddDate(0, 0, i).Format("2006-01-02"),
			PredictedPrice: price,
			Confidence:     confidence,
			Range: model.PriceRange{
				High: price + halfWidth,
				Low:  price - halfWidth,
			},
			Signal: signal,
		})
	}

	return predictions
}

// trailingMeanReturn averages the day-over-day fractional returns of the
// last trendLookback closes
func trailingMeanReturn(history []model.PricePoint) float64 {
	if len(history) < 2 {
		return 0
	}

	start := len(history) - trendLookback
	if start < 1 {
		start = 1
	}

	sum := 0.0
	count := 0
	for i := start; i < len(history); i++ {
		prev := history[i-1].Close
		if prev == 0 {
			continue
		}
		sum += (history[i].Close - prev) / prev
		count++
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
