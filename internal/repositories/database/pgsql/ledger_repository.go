package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradelite/stock_trading_app/internal/apperrors"
	"github.com/tradelite/stock_trading_app/internal/core/domain"
	portsrepo "github.com/tradelite/stock_trading_app/internal/core/ports/repositories"
	"github.com/tradelite/stock_trading_app/internal/models"
	"github.com/tradelite/stock_trading_app/internal/utils/mapping"
	"github.com/tradelite/stock_trading_app/internal/utils/pagination"
)

// PgxLedgerRepository persists the append-only trade ledger and the paired
// cash balance. All record operations lock the user row FOR UPDATE, so the
// read-validate-write sequence for one user cannot interleave with another
// operation on the same user.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const insertTradeQuery = `
	INSERT INTO trades (trade_id, user_id, symbol, trade_type, price_cents, shares, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
`

// lockBalance fetches the user's balance with the row locked for the
// remainder of the transaction.
func (r *PgxLedgerRepository) lockBalance(ctx context.Context, tx pgx.Tx, userID string) (int64, error) {
	var balance int64
	err := tx.QueryRow(ctx, `
		SELECT balance_cents FROM users
		WHERE user_id = $1 AND deleted_at IS NULL
		FOR UPDATE;
	`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to lock user row for "+userID, err)
	}
	return balance, nil
}

func (r *PgxLedgerRepository) insertTrade(ctx context.Context, tx pgx.Tx, trade domain.Trade) error {
	modelTrade := mapping.ToModelTrade(trade)
	_, err := tx.Exec(ctx, insertTradeQuery,
		modelTrade.TradeID,
		modelTrade.UserID,
		modelTrade.Symbol,
		modelTrade.TradeType,
		modelTrade.PriceCents,
		modelTrade.Shares,
		modelTrade.CreatedAt,
		modelTrade.CreatedBy,
		modelTrade.LastUpdatedAt,
		modelTrade.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert trade "+modelTrade.TradeID, err)
	}
	return nil
}

func (r *PgxLedgerRepository) setBalance(ctx context.Context, tx pgx.Tx, userID string, balanceCents int64, updatedAt time.Time) error {
	cmdTag, err := tx.Exec(ctx, `
		UPDATE users
		SET balance_cents = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4;
	`, balanceCents, updatedAt, userID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance for "+userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user " + userID + " not found for balance update")
	}
	return nil
}

// RecordPurchase debits the cost and appends the BUY trade in one
// transaction. The funds check runs against the locked balance; cost equal
// to the balance is allowed.
func (r *PgxLedgerRepository) RecordPurchase(ctx context.Context, trade domain.Trade, costCents int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalance(ctx, tx, trade.UserID)
	if err != nil {
		return err
	}
	if costCents > balance {
		return fmt.Errorf("cost %d exceeds balance %d: %w", costCents, balance, apperrors.ErrInsufficientFunds)
	}

	if err := r.setBalance(ctx, tx, trade.UserID, balance-costCents, trade.CreatedAt); err != nil {
		return err
	}
	if err := r.insertTrade(ctx, tx, trade); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// RecordSale credits the proceeds and appends the SELL trade in one
// transaction. Net holdings are recomputed under the user lock; the sale
// fails only when it would take the position negative.
func (r *PgxLedgerRepository) RecordSale(ctx context.Context, trade domain.Trade, proceedsCents int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	balance, err := r.lockBalance(ctx, tx, trade.UserID)
	if err != nil {
		return err
	}

	var netShares int64
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN trade_type = 'BUY' THEN shares ELSE -shares END), 0)
		FROM trades
		WHERE user_id = $1 AND symbol = $2;
	`, trade.UserID, trade.Symbol).Scan(&netShares)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute net shares for "+trade.Symbol, err)
	}

	if trade.Shares > netShares {
		return fmt.Errorf("selling %d of %d held: %w", trade.Shares, netShares, apperrors.ErrInsufficientShares)
	}

	if err := r.setBalance(ctx, tx, trade.UserID, balance+proceedsCents, trade.CreatedAt); err != nil {
		return err
	}
	if err := r.insertTrade(ctx, tx, trade); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// CreditBalance atomically adds amountCents to the user's balance and
// returns the balance written by that update, so callers report a figure
// that cannot drift from concurrent mutations.
func (r *PgxLedgerRepository) CreditBalance(ctx context.Context, userID string, amountCents int64, updatedAt time.Time) (int64, error) {
	var balance int64
	err := r.Pool.QueryRow(ctx, `
		UPDATE users
		SET balance_cents = balance_cents + $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL
		RETURNING balance_cents;
	`, amountCents, updatedAt, userID, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("user " + userID + " not found for balance credit")
		}
		return 0, apperrors.NewAppError(500, "failed to credit balance for "+userID, err)
	}
	return balance, nil
}

// FindTradesByUser retrieves one page of trades, newest first, using a
// (created_at, trade_id) cursor for a stable order across pages.
func (r *PgxLedgerRepository) FindTradesByUser(ctx context.Context, userID string, limit int, nextToken *string) (*portsrepo.ListTradesResult, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT trade_id, user_id, symbol, trade_type, price_cents, shares, created_at, created_by, last_updated_at, last_updated_by
		FROM trades
		WHERE user_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, trade_id DESC`

	args := []interface{}{userID}

	var query string
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastTradeID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr != nil {
			return nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (created_at, trade_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastTradeID)
		query = baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trades for user "+userID, err)
	}
	defer rows.Close()

	modelTrades := make([]models.Trade, 0, fetchLimit)
	for rows.Next() {
		var t models.Trade
		err := rows.Scan(
			&t.TradeID,
			&t.UserID,
			&t.Symbol,
			&t.TradeType,
			&t.PriceCents,
			&t.Shares,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trade row for user "+userID, err)
		}
		modelTrades = append(modelTrades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trade rows for user "+userID, err)
	}

	var nextTokenVal *string
	results := modelTrades
	if len(modelTrades) > limit {
		last := modelTrades[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TradeID)
		nextTokenVal = &token
		results = modelTrades[:limit]
	}

	return &portsrepo.ListTradesResult{
		Trades:    mapping.ToDomainTradeSlice(results),
		NextToken: nextTokenVal,
	}, nil
}

// FindHoldingsByUser returns net shares per symbol, omitting closed
// positions.
func (r *PgxLedgerRepository) FindHoldingsByUser(ctx context.Context, userID string) (map[string]int64, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT symbol, SUM(CASE WHEN trade_type = 'BUY' THEN shares ELSE -shares END) AS net_shares
		FROM trades
		WHERE user_id = $1
		GROUP BY symbol
		HAVING SUM(CASE WHEN trade_type = 'BUY' THEN shares ELSE -shares END) <> 0;
	`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query holdings for user "+userID, err)
	}
	defer rows.Close()

	holdings := make(map[string]int64)
	for rows.Next() {
		var symbol string
		var netShares int64
		if err := rows.Scan(&symbol, &netShares); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan holdings row for user "+userID, err)
		}
		holdings[symbol] = netShares
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating holdings rows for user "+userID, err)
	}

	return holdings, nil
}

// GetBalance returns the user's cash balance in minor units.
func (r *PgxLedgerRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.Pool.QueryRow(ctx, `
		SELECT balance_cents FROM users
		WHERE user_id = $1 AND deleted_at IS NULL;
	`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, "failed to read balance for "+userID, err)
	}
	return balance, nil
}
