package model

// PriceRange is the widening uncertainty band around a predicted price
type PriceRange struct {
	High float64 `json:"high"`
	Low  float64 `json:"low"`
}

// PredictionPoint is one forward step of a prediction series
type PredictionPoint struct {
	Date           string      `json:"date"` // 2006-01-02
	PredictedPrice float64     `json:"predictedPrice"`
	Confidence     float64     `json:"confidence"`
	Range          PriceRange  `json:"range"`
	Signal         TrendSignal `json:"signal"`
}

// TradeCall is the per-day buy/sell recommendation derived from the
// day-over-day predicted change
type TradeCall struct {
	Day        int           `json:"day"`
	Call       TradeCallType `json:"call"`
	Confidence float64       `json:"confidence"`
	ChangePct  float64       `json:"changePct"`
}

// PredictionResponse is the full payload for the predictions endpoint
type PredictionResponse struct {
	Symbol       string            `json:"symbol"`
	Name         string            `json:"name"`
	CurrentPrice float64           `json:"currentPrice"`
	DaysAhead    int               `json:"daysAhead"`
	Trend        TrendSignal       `json:"trend"`
	Predictions  []PredictionPoint `json:"predictions"`
	Signals      []TradeCall       `json:"signals"`
	GeneratedAt  string            `json:"generatedAt"`
}

// BatchPredictionRequest is the body of POST /api/predictions/batch
type BatchPredictionRequest struct {
	Symbols []string `json:"symbols" binding:"required"`
	Days    int      `json:"days"`
}

// ModelInfo describes the generator parameters behind a symbol's synthetic
// series and predictions
type ModelInfo struct {
	Symbol             string  `json:"symbol"`
	Name               string  `json:"name"`
	ModelType          string  `json:"modelType"`
	HistoryDays        int     `json:"historyDays"`
	MaxHorizonDays     int     `json:"maxHorizonDays"`
	BaseFraction       float64 `json:"baseFraction"`
	ReferencePrice     float64 `json:"referencePrice"`
	DailyVolatility    float64 `json:"dailyVolatility"`
	SeasonalPeriodDays float64 `json:"seasonalPeriodDays"`
	ConfidenceFloor    float64 `json:"confidenceFloor"`
}

// BatchPredictionResponse maps each requested symbol to its predictions
type BatchPredictionResponse struct {
	Predictions map[string]*PredictionResponse `json:"batchPredictions"`
	RequestedAt string                         `json:"requestTimestamp"`
}
