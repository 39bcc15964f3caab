package repository

import (
	"context"
	"sync"

	"github.com/AnshNarg/bit-coin/model"
)

type portfolioRecord struct {
	cashBalance float64
	positions   map[string]model.Position // keyed by symbol
	orders      []model.Order
}

// PortfolioRepository is the in-memory store for virtual portfolios and
// their order history, keyed by user email.
type PortfolioRepository struct {
	mu              sync.Mutex
	records         map[string]*portfolioRecord
	startingBalance float64
}

func NewPortfolioRepository(startingBalance float64) *PortfolioRepository {
	return &PortfolioRepository{
		records:         make(map[string]*portfolioRecord),
		startingBalance: startingBalance,
	}
}

func (r *PortfolioRepository) getOrCreate(email string) *portfolioRecord {
	record, ok := r.records[email]
	if !ok {
		record = &portfolioRecord{
			cashBalance: r.startingBalance,
			positions:   make(map[string]model.Position),
		}
		r.records[email] = record
	}
	return record
}

// Snapshot returns the cash balance and a copy of all positions
func (r *PortfolioRepository) Snapshot(ctx context.Context, email string) (float64, []model.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.getOrCreate(email)

	positions := make([]model.Position, 0, len(record.positions))
	for _, p := range record.positions {
		positions = append(positions, p)
	}
	return record.cashBalance, positions, nil
}

// Position returns the holding for one symbol, zero-valued when absent
func (r *PortfolioRepository) Position(ctx context.Context, email, symbol string) (model.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.getOrCreate(email)
	position, ok := record.positions[symbol]
	if !ok {
		return model.Position{Symbol: symbol}, nil
	}
	return position, nil
}

// ApplyFill atomically adjusts cash and the position for a filled order and
// appends it to the order history.
func (r *PortfolioRepository) ApplyFill(ctx context.Context, email string, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.getOrCreate(email)
	position := record.positions[order.Symbol]
	position.Symbol = order.Symbol

	switch order.Side {
	case model.SideBuy:
		record.cashBalance -= order.Total
		newQuantity := position.Quantity + order.Quantity
		position.InvestedCash += order.Total
		position.AvgBuyPrice = position.InvestedCash / newQuantity
		position.Quantity = newQuantity
	case model.SideSell:
		record.cashBalance += order.Total
		// invested cash released proportionally to the quantity sold
		position.InvestedCash -= position.AvgBuyPrice * order.Quantity
		position.Quantity -= order.Quantity
	}

	if position.Quantity <= 1e-12 {
		delete(record.positions, order.Symbol)
	} else {
		record.positions[order.Symbol] = position
	}

	record.orders = append(record.orders, order)
	return nil
}

// RecordRejection keeps rejected orders in the history too
func (r *PortfolioRepository) RecordRejection(ctx context.Context, email string, order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.getOrCreate(email)
	record.orders = append(record.orders, order)
	return nil
}

// Orders returns the order history, newest first
func (r *PortfolioRepository) Orders(ctx context.Context, email string) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.getOrCreate(email)

	orders := make([]model.Order, len(record.orders))
	for i, o := range record.orders {
		orders[len(record.orders)-1-i] = o
	}
	return orders, nil
}

// CashBalance reads the current cash balance
func (r *PortfolioRepository) CashBalance(ctx context.Context, email string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.getOrCreate(email).cashBalance, nil
}
