package model

// --- ENUMS ---
// UserRole represents the account access level
type UserRole string

// UserTheme represents the UI preference
type UserTheme string

const (
	RoleAdmin  UserRole  = "ADMIN"
	RoleUser   UserRole  = "USER"
	ThemeLight UserTheme = "LIGHT"
	ThemeDark  UserTheme = "DARK"
)

// TrendSignal classifies the SMA20/SMA50 relationship at a point
type TrendSignal string

const (
	TrendBullish TrendSignal = "bullish"
	TrendBearish TrendSignal = "bearish"
	TrendNeutral TrendSignal = "neutral"
)

// RsiSignal classifies the RSI reading at a point
type RsiSignal string

const (
	RsiOverbought RsiSignal = "overbought"
	RsiOversold   RsiSignal = "oversold"
	RsiNeutral    RsiSignal = "neutral"
)

// OrderSide is the direction of a simulated order
type OrderSide string

const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// OrderStatus tracks the lifecycle of a simulated order.
// Everything fills immediately, so only FILLED and REJECTED occur in practice.
type OrderStatus string

const (
	StatusFilled   OrderStatus = "FILLED"
	StatusRejected OrderStatus = "REJECTED"
)

// TradeCallType is the per-day recommendation attached to a prediction
type TradeCallType string

const (
	CallStrongBuy  TradeCallType = "strong_buy"
	CallBuy        TradeCallType = "buy"
	CallHold       TradeCallType = "hold"
	CallSell       TradeCallType = "sell"
	CallStrongSell TradeCallType = "strong_sell"
)
