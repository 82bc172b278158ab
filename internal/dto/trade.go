package dto

import (
	"time"

	"github.com/tradelite/stock_trading_app/internal/core/domain"
	"github.com/tradelite/stock_trading_app/internal/utils"
)

// TradeRequest is the body for buy and sell operations. Shares must be a
// positive whole number; fractional shares are rejected at binding time.
type TradeRequest struct {
	Symbol string `json:"symbol" binding:"required,ticker"`
	Shares int64  `json:"shares" binding:"required,gt=0"`
}

// TopUpRequest carries a major-unit amount string, e.g. "10.50". Parsing and
// the two-decimal-place rule live in the service, not the binding layer.
type TopUpRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// TradeResponse is the recorded ledger event as returned to clients.
type TradeResponse struct {
	TradeID    string    `json:"tradeID"`
	Symbol     string    `json:"symbol"`
	TradeType  string    `json:"tradeType"`
	Shares     int64     `json:"shares"`
	Price      string    `json:"price"`
	Total      string    `json:"total"`
	ExecutedAt time.Time `json:"executedAt"`
}

// BalanceResponse reports the user's cash balance.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// ListTradesParams defines query parameters for the history endpoint.
type ListTradesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTradesResponse is one page of trade history.
type ListTradesResponse struct {
	Trades    []TradeResponse `json:"trades"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToTradeResponse converts a domain.Trade to its response DTO.
func ToTradeResponse(t *domain.Trade) TradeResponse {
	return TradeResponse{
		TradeID:    t.TradeID,
		Symbol:     t.Symbol,
		TradeType:  string(t.TradeType),
		Shares:     t.Shares,
		Price:      utils.CentsToMajorString(t.PriceCents),
		Total:      utils.CentsToMajorString(t.TotalCents()),
		ExecutedAt: t.CreatedAt,
	}
}

// ToTradeResponses converts a slice of domain trades.
func ToTradeResponses(trades []domain.Trade) []TradeResponse {
	out := make([]TradeResponse, len(trades))
	for i := range trades {
		out[i] = ToTradeResponse(&trades[i])
	}
	return out
}
