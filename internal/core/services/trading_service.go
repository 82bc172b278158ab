package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tradelite/stock_trading_app/internal/apperrors"
	"github.com/tradelite/stock_trading_app/internal/core/domain"
	portsrepo "github.com/tradelite/stock_trading_app/internal/core/ports/repositories"
	portssvc "github.com/tradelite/stock_trading_app/internal/core/ports/services"
	"github.com/tradelite/stock_trading_app/internal/dto"
	"github.com/tradelite/stock_trading_app/internal/middleware"
	"github.com/tradelite/stock_trading_app/internal/utils"
)

// tradingService validates and applies buy/sell/top-up operations against
// the trade ledger. Validation always precedes mutation; the ledger
// repository makes each balance change and event insert atomic, with the
// user row locked so concurrent operations on one user serialize.
type tradingService struct {
	ledgerRepo portsrepo.LedgerRepository
	quoteSvc   portssvc.QuoteSvcFacade
}

// NewTradingService creates a new trading service.
func NewTradingService(ledgerRepo portsrepo.LedgerRepository, quoteSvc portssvc.QuoteSvcFacade) portssvc.TradingSvcFacade {
	return &tradingService{
		ledgerRepo: ledgerRepo,
		quoteSvc:   quoteSvc,
	}
}

var _ portssvc.TradingSvcFacade = (*tradingService)(nil)

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// resolveTrade validates the request shape and prices it via the quote
// provider. No mutation happens here.
func (s *tradingService) resolveTrade(ctx context.Context, userID string, req dto.TradeRequest, tradeType domain.TradeType) (*domain.Trade, error) {
	if req.Shares <= 0 {
		return nil, fmt.Errorf("%w: share count must be a positive whole number", apperrors.ErrValidation)
	}
	symbol := normalizeSymbol(req.Symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is required", apperrors.ErrValidation)
	}

	quote, err := s.quoteSvc.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// price * shares must stay within int64 cents or the cost wraps around
	if req.Shares > math.MaxInt64/quote.PriceCents {
		return nil, fmt.Errorf("%w: order value exceeds the supported range", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	return &domain.Trade{
		TradeID:    uuid.NewString(),
		UserID:     userID,
		Symbol:     quote.Symbol,
		TradeType:  tradeType,
		PriceCents: quote.PriceCents,
		Shares:     req.Shares,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// Buy purchases shares at the current quoted price.
func (s *tradingService) Buy(ctx context.Context, userID string, req dto.TradeRequest) (*domain.Trade, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trade, err := s.resolveTrade(ctx, userID, req, domain.Buy)
	if err != nil {
		return nil, err
	}

	cost := trade.TotalCents()
	if err := s.ledgerRepo.RecordPurchase(ctx, *trade, cost); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Info("Buy rejected for insufficient funds",
				slog.String("symbol", trade.Symbol),
				slog.Int64("cost_cents", cost))
			return nil, err
		}
		logger.Error("Failed to record purchase", slog.String("error", err.Error()), slog.String("symbol", trade.Symbol))
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	logger.Info("Purchase recorded",
		slog.String("trade_id", trade.TradeID),
		slog.String("symbol", trade.Symbol),
		slog.Int64("shares", trade.Shares),
		slog.Int64("price_cents", trade.PriceCents))
	return trade, nil
}

// Sell sells shares at the current quoted price. The ownership check runs
// inside the repository transaction against net holdings; selling the exact
// net position is allowed.
func (s *tradingService) Sell(ctx context.Context, userID string, req dto.TradeRequest) (*domain.Trade, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trade, err := s.resolveTrade(ctx, userID, req, domain.Sell)
	if err != nil {
		return nil, err
	}

	proceeds := trade.TotalCents()
	if err := s.ledgerRepo.RecordSale(ctx, *trade, proceeds); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientShares) {
			logger.Info("Sell rejected for insufficient shares",
				slog.String("symbol", trade.Symbol),
				slog.Int64("shares", trade.Shares))
			return nil, err
		}
		logger.Error("Failed to record sale", slog.String("error", err.Error()), slog.String("symbol", trade.Symbol))
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	logger.Info("Sale recorded",
		slog.String("trade_id", trade.TradeID),
		slog.String("symbol", trade.Symbol),
		slog.Int64("shares", trade.Shares),
		slog.Int64("price_cents", trade.PriceCents))
	return trade, nil
}

// TopUp credits the user's cash balance with a major-unit amount.
func (s *tradingService) TopUp(ctx context.Context, userID string, req dto.TopUpRequest) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amountCents, err := utils.ParseAmountToCents(req.Amount)
	if err != nil {
		return 0, err
	}

	balance, err := s.ledgerRepo.CreditBalance(ctx, userID, amountCents, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to credit balance", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to credit balance: %w", err)
	}

	logger.Info("Balance topped up", slog.Int64("amount_cents", amountCents), slog.Int64("balance_cents", balance))
	return balance, nil
}

// ListTrades returns one page of the user's trade history.
func (s *tradingService) ListTrades(ctx context.Context, userID string, params dto.ListTradesParams) (*dto.ListTradesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	result, err := s.ledgerRepo.FindTradesByUser(ctx, userID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve trades: %w", err)
	}

	return &dto.ListTradesResponse{
		Trades:    dto.ToTradeResponses(result.Trades),
		NextToken: result.NextToken,
	}, nil
}

// GetBalance returns the user's cash balance in minor units.
func (s *tradingService) GetBalance(ctx context.Context, userID string) (int64, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}
