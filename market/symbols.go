package market

import "github.com/AnshNarg/bit-coin/model"

type assetProfile struct {
	Name string
	// BaseFraction is the share of today's price the asset is modelled to
	// have been worth at the start of the synthetic horizon. Smaller
	// fraction = steeper multi-year growth.
	BaseFraction float64
	// ReferencePrice is the fallback USD spot price when the live feed is
	// unreachable.
	ReferencePrice float64
}

var assets = map[string]assetProfile{
	"bitcoin":  {Name: "Bitcoin", BaseFraction: 0.15, ReferencePrice: 65000.00},
	"ethereum": {Name: "Ethereum", BaseFraction: 0.20, ReferencePrice: 3500.00},
	"dogecoin": {Name: "Dogecoin", BaseFraction: 0.30, ReferencePrice: 0.12},
	"solana":   {Name: "Solana", BaseFraction: 0.05, ReferencePrice: 150.00},
}

// Unknown symbols get a middle-of-the-road growth profile
const defaultBaseFraction = 0.20

// symbolOrder keeps listing output stable
var symbolOrder = []string{"bitcoin", "ethereum", "dogecoin", "solana"}

// IsSupported reports whether the symbol belongs to the supported set
func IsSupported(symbol string) bool {
	_, ok := assets[symbol]
	return ok
}

// Symbols returns the supported symbol set in a stable order
func Symbols() []model.SymbolInfo {
	list := make([]model.SymbolInfo, 0, len(symbolOrder))
	for _, s := range symbolOrder {
		list = append(list, model.SymbolInfo{Symbol: s, Name: assets[s].Name})
	}
	return list
}

// DisplayName returns the human-readable asset name for a symbol
func DisplayName(symbol string) string {
	if profile, ok := assets[symbol]; ok {
		return profile.Name
	}
	return symbol
}

// ReferencePrice returns the fallback spot price for a symbol
func ReferencePrice(symbol string) float64 {
	if profile, ok := assets[symbol]; ok {
		return profile.ReferencePrice
	}
	return 100.00
}

// Describe reports the generator parameters used for a symbol. Horizon
// fields are filled in by the caller that owns them.
func Describe(symbol string) model.ModelInfo {
	return model.ModelInfo{
		Symbol:             symbol,
		Name:               DisplayName(symbol),
		ModelType:          "synthetic-trend-walk",
		BaseFraction:       baseFraction(symbol),
		ReferencePrice:     ReferencePrice(symbol),
		DailyVolatility:    dailyNoiseRange,
		SeasonalPeriodDays: seasonalPeriod,
		ConfidenceFloor:    confidenceFloor,
	}
}

func baseFraction(symbol string) float64 {
	if profile, ok := assets[symbol]; ok {
		return profile.BaseFraction
	}
	return defaultBaseFraction
}
