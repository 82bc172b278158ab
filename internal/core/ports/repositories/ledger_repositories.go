package repositories

import (
	"context"
	"time"

	"github.com/tradelite/stock_trading_app/internal/core/domain"
)

// ListTradesResult is one page of a user's trade history plus the token for
// the next page (nil on the last page).
type ListTradesResult struct {
	Trades    []domain.Trade
	NextToken *string
}

// LedgerRepository is the append-only trade ledger plus the paired cash
// balance. Record operations are atomic: the balance mutation and the event
// insert happen in one database transaction, with the user row locked so
// concurrent operations against the same user serialize.
type LedgerRepository interface {
	// RecordPurchase debits costCents from the user's balance and appends the
	// BUY trade. Fails with ErrInsufficientFunds when costCents exceeds the
	// balance (cost equal to the balance succeeds); nothing is written on
	// failure.
	RecordPurchase(ctx context.Context, trade domain.Trade, costCents int64) error

	// RecordSale credits proceedsCents to the user's balance and appends the
	// SELL trade. Net holdings for the symbol are recomputed under the lock;
	// the sale fails with ErrInsufficientShares only when trade.Shares exceeds
	// the net position, so selling the entire position succeeds.
	RecordSale(ctx context.Context, trade domain.Trade, proceedsCents int64) error

	// CreditBalance atomically adds amountCents to the user's balance and
	// returns the balance produced by that same update.
	CreditBalance(ctx context.Context, userID string, amountCents int64, updatedAt time.Time) (int64, error)

	// FindTradesByUser retrieves a page of the user's trades, newest first,
	// using token pagination.
	FindTradesByUser(ctx context.Context, userID string, limit int, nextToken *string) (*ListTradesResult, error)

	// FindHoldingsByUser returns net shares per symbol (purchases minus
	// sales), omitting symbols whose net position is zero.
	FindHoldingsByUser(ctx context.Context, userID string) (map[string]int64, error)

	// GetBalance returns the user's cash balance in minor units.
	GetBalance(ctx context.Context, userID string) (int64, error)
}
