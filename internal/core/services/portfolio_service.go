package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tradelite/stock_trading_app/internal/apperrors"
	"github.com/tradelite/stock_trading_app/internal/core/domain"
	portsrepo "github.com/tradelite/stock_trading_app/internal/core/ports/repositories"
	portssvc "github.com/tradelite/stock_trading_app/internal/core/ports/services"
	"github.com/tradelite/stock_trading_app/internal/middleware"
)

// portfolioService derives holdings and valuations from the trade ledger.
type portfolioService struct {
	ledgerRepo portsrepo.LedgerRepository
	quoteSvc   portssvc.QuoteSvcFacade
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(ledgerRepo portsrepo.LedgerRepository, quoteSvc portssvc.QuoteSvcFacade) portssvc.PortfolioSvcFacade {
	return &portfolioService{
		ledgerRepo: ledgerRepo,
		quoteSvc:   quoteSvc,
	}
}

var _ portssvc.PortfolioSvcFacade = (*portfolioService)(nil)

// ComputeHoldings returns net shares per symbol over the full event history.
func (s *portfolioService) ComputeHoldings(ctx context.Context, userID string) (map[string]int64, error) {
	holdings, err := s.ledgerRepo.FindHoldingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute holdings: %w", err)
	}
	return holdings, nil
}

// ComputeValuation values each held symbol at its current quote, fetching
// every distinct symbol exactly once per call. A symbol whose quote fails
// comes back flagged QuoteUnavailable with zero monetary fields instead of
// failing the whole valuation; only storage errors abort.
func (s *portfolioService) ComputeValuation(ctx context.Context, userID string) (*domain.Valuation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	holdings, err := s.ledgerRepo.FindHoldingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load holdings for valuation: %w", err)
	}

	cash, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance for valuation: %w", err)
	}

	// Stable row order for presentation and tests.
	symbols := make([]string, 0, len(holdings))
	for symbol := range holdings {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	valuation := &domain.Valuation{
		Holdings:      make([]domain.Holding, 0, len(symbols)),
		CashCents:     cash,
		NetWorthCents: cash,
	}

	for _, symbol := range symbols {
		shares := holdings[symbol]
		row := domain.Holding{Symbol: symbol, Shares: shares}

		quote, err := s.quoteSvc.Lookup(ctx, symbol)
		switch {
		case err == nil:
			row.PriceCents = quote.PriceCents
			row.TotalValueCents = quote.PriceCents * shares
			valuation.NetWorthCents += row.TotalValueCents
		case errors.Is(err, apperrors.ErrUnknownSymbol) || errors.Is(err, apperrors.ErrQuoteUnavailable):
			logger.Warn("Quote unavailable during valuation",
				slog.String("symbol", symbol),
				slog.String("error", err.Error()))
			row.QuoteUnavailable = true
		default:
			return nil, fmt.Errorf("failed to quote %s for valuation: %w", symbol, err)
		}

		valuation.Holdings = append(valuation.Holdings, row)
	}

	return valuation, nil
}
