package domain

// TradeType discriminates the two kinds of ledger events.
type TradeType string

const (
	Buy  TradeType = "BUY"
	Sell TradeType = "SELL"
)

// Trade is one append-only ledger event: a purchase or a sale of shares.
// Trades are never updated or deleted; holdings and history derive from the
// full sequence of a user's trades.
type Trade struct {
	TradeID    string    `json:"tradeID"` // Primary key (UUID)
	UserID     string    `json:"userID"`
	Symbol     string    `json:"symbol"`
	TradeType  TradeType `json:"tradeType"`
	PriceCents int64     `json:"priceCents"` // Price per share in minor units at execution time
	Shares     int64     `json:"shares"`     // Always positive; sign is carried by TradeType
	AuditFields
}

// SignedShares returns the trade's effect on net holdings.
func (t Trade) SignedShares() int64 {
	if t.TradeType == Sell {
		return -t.Shares
	}
	return t.Shares
}

// TotalCents returns the cash moved by this trade (price times shares).
func (t Trade) TotalCents() int64 {
	return t.PriceCents * t.Shares
}
