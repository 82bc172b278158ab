package domain

// Holding is one valued row of a user's portfolio. When the quote provider
// cannot price the symbol, QuoteUnavailable is set and the monetary fields
// are zero; the row is still returned so one bad symbol never hides the rest.
type Holding struct {
	Symbol           string `json:"symbol"`
	Shares           int64  `json:"shares"`
	PriceCents       int64  `json:"priceCents"`
	TotalValueCents  int64  `json:"totalValueCents"`
	QuoteUnavailable bool   `json:"quoteUnavailable"`
}

// Valuation is the full portfolio view: valued holdings plus cash.
// NetWorthCents counts cash and every priceable holding; unpriceable rows
// contribute zero and are flagged on the row itself.
type Valuation struct {
	Holdings      []Holding `json:"holdings"`
	CashCents     int64     `json:"cashCents"`
	NetWorthCents int64     `json:"netWorthCents"`
}
