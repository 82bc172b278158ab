package mapping

import (
	"github.com/tradelite/stock_trading_app/internal/core/domain"
	"github.com/tradelite/stock_trading_app/internal/models"
)

// ToModelTrade converts a domain.Trade to its persistence model.
func ToModelTrade(d domain.Trade) models.Trade {
	return models.Trade{
		TradeID:    d.TradeID,
		UserID:     d.UserID,
		Symbol:     d.Symbol,
		TradeType:  string(d.TradeType),
		PriceCents: d.PriceCents,
		Shares:     d.Shares,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainTrade converts a models.Trade to the domain representation.
func ToDomainTrade(m models.Trade) domain.Trade {
	return domain.Trade{
		TradeID:    m.TradeID,
		UserID:     m.UserID,
		Symbol:     m.Symbol,
		TradeType:  domain.TradeType(m.TradeType),
		PriceCents: m.PriceCents,
		Shares:     m.Shares,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainTradeSlice converts a slice of models.Trade to domain trades.
func ToDomainTradeSlice(ms []models.Trade) []domain.Trade {
	ds := make([]domain.Trade, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrade(m)
	}
	return ds
}
