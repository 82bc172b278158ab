package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tradelite/stock_trading_app/internal/apperrors"
	"github.com/tradelite/stock_trading_app/internal/core/domain"
	portssvc "github.com/tradelite/stock_trading_app/internal/core/ports/services"
	"github.com/tradelite/stock_trading_app/internal/platform/config"
	"github.com/tradelite/stock_trading_app/internal/utils"
)

// quoteAPIResponse is the provider's wire format. Price is a major-unit
// float; it is converted to cents before leaving this package.
type quoteAPIResponse struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// Client looks up quotes against the configured HTTP quote API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a quote API client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.QuoteAPIURL, "/"),
		apiKey:     cfg.QuoteAPIKey,
		httpClient: &http.Client{Timeout: cfg.QuoteTimeout},
	}
}

var _ portssvc.QuoteSvcFacade = (*Client)(nil)

// Lookup fetches the current quote for symbol. A 404 from the provider maps
// to ErrUnknownSymbol; transport failures and other statuses map to
// ErrQuoteUnavailable.
func (c *Client) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", apperrors.ErrValidation)
	}

	reqURL := fmt.Sprintf("%s/quote/%s", c.baseURL, url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrQuoteUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownSymbol, symbol)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: provider returned %s", apperrors.ErrQuoteUnavailable, resp.Status)
	}

	var body quoteAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: malformed provider response: %v", apperrors.ErrQuoteUnavailable, err)
	}
	if body.Price <= 0 {
		return nil, fmt.Errorf("%w: non-positive price for %s", apperrors.ErrQuoteUnavailable, symbol)
	}

	return &domain.Quote{
		Symbol:     symbol,
		Name:       body.Name,
		PriceCents: utils.MajorUnitsToCents(body.Price),
	}, nil
}
