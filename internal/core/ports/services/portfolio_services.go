package services

import (
	"context"

	"github.com/tradelite/stock_trading_app/internal/core/domain"
)

// PortfolioSvcFacade derives holdings and valuations from the trade ledger.
type PortfolioSvcFacade interface {
	// ComputeHoldings returns net shares per symbol. Never negative; calling
	// it twice with no intervening writes returns identical results.
	ComputeHoldings(ctx context.Context, userID string) (map[string]int64, error)

	// ComputeValuation values every held symbol at its current quote, one
	// fetch per symbol. Symbols the provider cannot price come back flagged
	// rather than failing the whole call.
	ComputeValuation(ctx context.Context, userID string) (*domain.Valuation, error)
}
