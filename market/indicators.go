package market

import "github.com/AnshNarg/bit-coin/model"

const (
	smaShortPeriod  = 20
	smaMidPeriod    = 50
	smaLongPeriod   = 200
	rsiPeriod       = 14
	emaFastPeriod   = 12
	emaSlowPeriod   = 26
	bollingerOffset = 0.02
)

// Tracker computes technical indicators incrementally, one close at a time.
// Rolling sums and incremental EMA state keep a full series generation
// linear instead of recomputing every window from scratch per point.
type Tracker struct {
	closes []float64

	sumShort float64
	sumMid   float64
	sumLong  float64

	emaFast float64
	emaSlow float64

	// trailing rsiPeriod window of gains/losses
	gainSum float64
	lossSum float64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Push appends a close and returns the indicator overlay for that point.
// Indicator fields stay nil until the corresponding lookback window is full.
func (t *Tracker) Push(close float64) model.Derived {
	t.closes = append(t.closes, close)
	n := len(t.closes)

	t.sumShort = t.roll(t.sumShort, close, smaShortPeriod)
	t.sumMid = t.roll(t.sumMid, close, smaMidPeriod)
	t.sumLong = t.roll(t.sumLong, close, smaLongPeriod)
	t.rollRsi()
	t.rollEma(close)

	var ind model.IndicatorSet

	if n >= smaShortPeriod {
		sma20 := t.sumShort / smaShortPeriod
		upper := sma20 * (1 + bollingerOffset)
		lower := sma20 * (1 - bollingerOffset)
		ind.SMA20 = &sma20
		ind.BollingerUpper = &upper
		ind.BollingerLower = &lower
	}
	if n >= smaMidPeriod {
		sma50 := t.sumMid / smaMidPeriod
		ind.SMA50 = &sma50
	}
	if n >= smaLongPeriod {
		sma200 := t.sumLong / smaLongPeriod
		ind.SMA200 = &sma200
	}
	if n >= rsiPeriod+1 {
		rsi := t.rsi()
		ind.RSI = &rsi
	}
	if n >= emaSlowPeriod {
		macd := t.emaFast - t.emaSlow
		ind.MACD = &macd
	}

	return model.Derived{
		Indicators: ind,
		Signals:    deriveSignals(ind),
	}
}

// roll adds the newest close to a windowed sum and drops the close that
// left the window
func (t *Tracker) roll(sum, close float64, period int) float64 {
	sum += close
	if n := len(t.closes); n > period {
		sum -= t.closes[n-period-1]
	}
	return sum
}

func (t *Tracker) rollRsi() {
	n := len(t.closes)
	if n < 2 {
		return
	}

	delta := t.closes[n-1] - t.closes[n-2]
	if delta > 0 {
		t.gainSum += delta
	} else {
		t.lossSum -= delta
	}

	// drop the delta that left the trailing window
	if n > rsiPeriod+1 {
		old := t.closes[n-rsiPeriod-1] - t.closes[n-rsiPeriod-2]
		if old > 0 {
			t.gainSum -= old
		} else {
			t.lossSum += old
		}
	}
}

func (t *Tracker) rsi() float64 {
	avgGain := t.gainSum / rsiPeriod
	avgLoss := t.lossSum / rsiPeriod

	// a window with zero losses means pure upward momentum
	if avgLoss == 0 {
		return 100.0
	}

	rs := avgGain / avgLoss
	return 100.0 - (100.0 / (1.0 + rs))
}

func (t *Tracker) rollEma(close float64) {
	n := len(t.closes)

	switch {
	case n < emaFastPeriod:
	case n == emaFastPeriod:
		t.emaFast = average(t.closes)
	default:
		k := 2.0 / float64(emaFastPeriod+1)
		t.emaFast = (close-t.emaFast)*k + t.emaFast
	}

	switch {
	case n < emaSlowPeriod:
	case n == emaSlowPeriod:
		t.emaSlow = average(t.closes)
	default:
		k := 2.0 / float64(emaSlowPeriod+1)
		t.emaSlow = (close-t.emaSlow)*k + t.emaSlow
	}
}

func average(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// deriveSignals maps the indicator readings to categorical labels.
// Anything computed from a missing indicator stays neutral.
func deriveSignals(ind model.IndicatorSet) model.SignalSet {
	signals := model.SignalSet{
		Trend:      model.TrendNeutral,
		RsiSignal:  model.RsiNeutral,
		MacdSignal: model.TrendNeutral,
	}

	if ind.SMA20 != nil && ind.SMA50 != nil {
		if *ind.SMA20 > *ind.SMA50 {
			signals.Trend = model.TrendBullish
		} else {
			signals.Trend = model.TrendBearish
		}
	}

	if ind.RSI != nil {
		switch {
		case *ind.RSI > 70:
			signals.RsiSignal = model.RsiOverbought
		case *ind.RSI < 30:
			signals.RsiSignal = model.RsiOversold
		}
	}

	if ind.MACD != nil {
		if *ind.MACD > 0 {
			signals.MacdSignal = model.TrendBullish
		} else {
			signals.MacdSignal = model.TrendBearish
		}
	}

	return signals
}
