package service

import (
	"context"

	"github.com/AnshNarg/bit-coin/market"
	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type PortfolioService interface {
	GetPortfolio(ctx context.Context, email string) (*model.PortfolioDto, error)
}

type PortfolioServiceImpl struct {
	portfolioRepo *repository.PortfolioRepository
	marketSvc     MarketService
}

func NewPortfolioService(repo *repository.PortfolioRepository, marketSvc MarketService) PortfolioService {
	return &PortfolioServiceImpl{
		portfolioRepo: repo,
		marketSvc:     marketSvc,
	}
}

// GetPortfolio values every holding at the current quote
func (s *PortfolioServiceImpl) GetPortfolio(ctx context.Context, email string) (*model.PortfolioDto, error) {
	cash, positions, err := s.portfolioRepo.Snapshot(ctx, email)
	if err != nil {
		return nil, err
	}

	dto := &model.PortfolioDto{
		Email:       email,
		CashBalance: cash,
		Positions:   make([]model.PositionDto, 0, len(positions)),
		TotalValue:  cash,
	}

	for _, position := range positions {
		var positionDto model.PositionDto
		copier.Copy(&positionDto, &position)
		positionDto.Name = market.DisplayName(position.Symbol)

		quote, err := s.marketSvc.GetQuote(ctx, position.Symbol)
		if err != nil {
			log.Warn().Err(err).Str("symbol", position.Symbol).Msg("valuation quote failed")
			dto.Positions = append(dto.Positions, positionDto)
			continue
		}

		positionDto.CurrentPrice = quote.Price
		positionDto.MarketValue = quote.Price * position.Quantity
		positionDto.ProfitLoss = positionDto.MarketValue - position.InvestedCash

		dto.TotalValue += positionDto.MarketValue
		dto.ProfitLoss += positionDto.ProfitLoss
		dto.Positions = append(dto.Positions, positionDto)
	}

	return dto, nil
}
