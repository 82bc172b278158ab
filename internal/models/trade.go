package models

// Trade mirrors the trades table. Rows are append-only.
type Trade struct {
	TradeID    string `db:"trade_id"`
	UserID     string `db:"user_id"`
	Symbol     string `db:"symbol"`
	TradeType  string `db:"trade_type"` // 'BUY' or 'SELL'
	PriceCents int64  `db:"price_cents"`
	Shares     int64  `db:"shares"`
	AuditFields
}
