package dto

import (
	"github.com/tradelite/stock_trading_app/internal/core/domain"
	"github.com/tradelite/stock_trading_app/internal/utils"
)

// HoldingResponse is one valued portfolio row. Price and Total are empty when
// the quote was unavailable.
type HoldingResponse struct {
	Symbol           string `json:"symbol"`
	Shares           int64  `json:"shares"`
	Price            string `json:"price,omitempty"`
	Total            string `json:"total,omitempty"`
	QuoteUnavailable bool   `json:"quoteUnavailable,omitempty"`
}

// ValuationResponse is the full portfolio view.
type ValuationResponse struct {
	Holdings []HoldingResponse `json:"holdings"`
	Cash     string            `json:"cash"`
	NetWorth string            `json:"netWorth"`
}

// HoldingsResponse maps symbol to net shares without valuations.
type HoldingsResponse struct {
	Holdings map[string]int64 `json:"holdings"`
}

// ToValuationResponse converts a domain.Valuation to its response DTO,
// rounding to major units only here.
func ToValuationResponse(v *domain.Valuation) ValuationResponse {
	holdings := make([]HoldingResponse, len(v.Holdings))
	for i, h := range v.Holdings {
		row := HoldingResponse{
			Symbol:           h.Symbol,
			Shares:           h.Shares,
			QuoteUnavailable: h.QuoteUnavailable,
		}
		if !h.QuoteUnavailable {
			row.Price = utils.CentsToMajorString(h.PriceCents)
			row.Total = utils.CentsToMajorString(h.TotalValueCents)
		}
		holdings[i] = row
	}
	return ValuationResponse{
		Holdings: holdings,
		Cash:     utils.CentsToMajorString(v.CashCents),
		NetWorth: utils.CentsToMajorString(v.NetWorthCents),
	}
}
