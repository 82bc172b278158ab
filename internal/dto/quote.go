package dto

import (
	"github.com/tradelite/stock_trading_app/internal/core/domain"
	"github.com/tradelite/stock_trading_app/internal/utils"
)

// QuoteResponse is the public view of a quote.
type QuoteResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// ToQuoteResponse converts a domain.Quote to its response DTO.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		Symbol: q.Symbol,
		Name:   q.Name,
		Price:  utils.CentsToMajorString(q.PriceCents),
	}
}
