package services

import (
	"context"

	"github.com/tradelite/stock_trading_app/internal/core/domain"
	"github.com/tradelite/stock_trading_app/internal/dto"
)

// TradingSvcFacade validates and applies buy, sell and top-up operations.
// Every operation is a single atomic transition: all validation happens
// before any write, and the balance change plus ledger event commit together.
type TradingSvcFacade interface {
	// Buy purchases shares at the current quoted price. Fails with
	// ErrValidation (bad share count), ErrUnknownSymbol, ErrQuoteUnavailable
	// or ErrInsufficientFunds.
	Buy(ctx context.Context, userID string, req dto.TradeRequest) (*domain.Trade, error)

	// Sell sells shares at the current quoted price. Fails with
	// ErrValidation, ErrUnknownSymbol, ErrQuoteUnavailable or
	// ErrInsufficientShares. Selling the exact net position succeeds.
	Sell(ctx context.Context, userID string, req dto.TradeRequest) (*domain.Trade, error)

	// TopUp credits the account with a major-unit amount string. Fails with
	// ErrInvalidAmount on malformed input. Returns the new balance in cents.
	TopUp(ctx context.Context, userID string, req dto.TopUpRequest) (int64, error)

	// ListTrades returns one page of the user's trade history, newest first.
	ListTrades(ctx context.Context, userID string, params dto.ListTradesParams) (*dto.ListTradesResponse, error)

	// GetBalance returns the user's cash balance in minor units.
	GetBalance(ctx context.Context, userID string) (int64, error)
}
