package quotes

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tradelite/stock_trading_app/internal/core/domain"
	portssvc "github.com/tradelite/stock_trading_app/internal/core/ports/services"
)

type cacheEntry struct {
	quote     domain.Quote
	fetchedAt time.Time
}

// CachingProvider wraps a QuoteSvcFacade with an in-memory TTL cache so a
// valuation pass never hits the provider twice for the same symbol within
// the TTL. Lookup failures are not cached.
type CachingProvider struct {
	inner portssvc.QuoteSvcFacade
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCachingProvider wraps inner with a TTL cache.
func NewCachingProvider(inner portssvc.QuoteSvcFacade, ttl time.Duration) *CachingProvider {
	return &CachingProvider{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

var _ portssvc.QuoteSvcFacade = (*CachingProvider)(nil)

// Lookup returns the cached quote when fresh, otherwise delegates to the
// wrapped provider and caches the result.
func (p *CachingProvider) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	p.mu.Lock()
	entry, ok := p.entries[symbol]
	p.mu.Unlock()
	if ok && p.now().Sub(entry.fetchedAt) < p.ttl {
		q := entry.quote
		return &q, nil
	}

	quote, err := p.inner.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.entries[quote.Symbol] = cacheEntry{quote: *quote, fetchedAt: p.now()}
	p.mu.Unlock()

	return quote, nil
}
