package services

import (
	"context"

	"github.com/tradelite/stock_trading_app/internal/core/domain"
)

// QuoteSvcFacade resolves ticker symbols to current prices. Implementations
// must distinguish an unknown symbol (ErrUnknownSymbol) from a provider
// outage (ErrQuoteUnavailable).
type QuoteSvcFacade interface {
	Lookup(ctx context.Context, symbol string) (*domain.Quote, error)
}
