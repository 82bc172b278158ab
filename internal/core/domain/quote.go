package domain

// Quote is a point-in-time price for a symbol, already normalized to minor
// units. The provider's major-unit float never crosses this boundary.
type Quote struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}
