package model

import "time"

// IndicatorSet holds the technical indicators computed at a single point.
// Pointer fields stay nil (JSON null) until enough preceding history exists
// for the full lookback window.
type IndicatorSet struct {
	SMA20          *float64 `json:"sma20"`
	SMA50          *float64 `json:"sma50"`
	SMA200         *float64 `json:"sma200"`
	RSI            *float64 `json:"rsi"`
	MACD           *float64 `json:"macd"`
	BollingerUpper *float64 `json:"bollingerUpper"`
	BollingerLower *float64 `json:"bollingerLower"`
}

// SignalSet holds the categorical labels derived from IndicatorSet
type SignalSet struct {
	Trend      TrendSignal `json:"trend"`
	RsiSignal  RsiSignal   `json:"rsiSignal"`
	MacdSignal TrendSignal `json:"macdSignal"`
}

// Derived bundles the per-point indicator overlay
type Derived struct {
	Indicators IndicatorSet `json:"indicators"`
	Signals    SignalSet    `json:"signals"`
}

// PricePoint is one sampled OHLCV observation in a historical series
type PricePoint struct {
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
	Derived   Derived `json:"derived"`
}

// Quote is the current spot price for a symbol
type Quote struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ChangePct float64   `json:"changePct"`
	Source    string    `json:"source"` // "coingecko" or "simulated"
	Timestamp time.Time `json:"timestamp"`
}

// SymbolInfo describes one entry of the supported symbol set
type SymbolInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// HistoryResponse wraps a generated series for the history endpoint
type HistoryResponse struct {
	Symbol string       `json:"symbol"`
	Days   int          `json:"days"`
	Series []PricePoint `json:"series"`
}
