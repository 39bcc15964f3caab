package customerrors

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUnknownSymbol        = errors.New("symbol is not in the supported set")
	ErrInsufficientFunds    = errors.New("insufficient cash balance for this order")
	ErrInsufficientHoldings = errors.New("insufficient holdings to sell")
	ErrPortfolioNotFound    = errors.New("portfolio not found")
)
