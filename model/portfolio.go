package model

import "time"

// Position is one holding inside a virtual portfolio
type Position struct {
	Symbol       string  `json:"symbol"`
	Quantity     float64 `json:"quantity"`
	AvgBuyPrice  float64 `json:"avgBuyPrice"`
	InvestedCash float64 `json:"investedCash"`
}

// PositionDto adds current valuation on top of the stored position
type PositionDto struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	AvgBuyPrice  float64 `json:"avgBuyPrice"`
	InvestedCash float64 `json:"investedCash"`
	CurrentPrice float64 `json:"currentPrice"`
	MarketValue  float64 `json:"marketValue"`
	ProfitLoss   float64 `json:"profitLoss"`
}

// Order is one executed (or rejected) simulated order
type Order struct {
	OrderID   string      `json:"orderId"`
	Email     string      `json:"-"`
	Symbol    string      `json:"symbol"`
	Side      OrderSide   `json:"side"`
	Quantity  float64     `json:"quantity"`
	Price     float64     `json:"price"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// OrderRequest is the payload of POST /api/orders
type OrderRequest struct {
	Symbol   string    `json:"symbol"`
	Side     OrderSide `json:"side"`
	Quantity float64   `json:"quantity"`
}

// PortfolioDto is the valued snapshot returned by the portfolio endpoint
type PortfolioDto struct {
	Email       string        `json:"email"`
	CashBalance float64       `json:"cashBalance"`
	Positions   []PositionDto `json:"positions"`
	TotalValue  float64       `json:"totalValue"`
	ProfitLoss  float64       `json:"profitLoss"`
}
