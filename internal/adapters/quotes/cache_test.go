package quotes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tradelite/stock_trading_app/internal/apperrors"
	"github.com/tradelite/stock_trading_app/internal/core/domain"
)

// countingProvider records lookups and serves canned responses.
type countingProvider struct {
	calls int
	quote *domain.Quote
	err   error
}

func (p *countingProvider) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	q := *p.quote
	return &q, nil
}

func TestCachingProvider_ServesFromCacheWithinTTL(t *testing.T) {
	inner := &countingProvider{quote: &domain.Quote{Symbol: "AAPL", PriceCents: 1500}}
	cache := NewCachingProvider(inner, 30*time.Second)

	q1, err := cache.Lookup(context.Background(), "AAPL")
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), q1.PriceCents)

	q2, err := cache.Lookup(context.Background(), "AAPL")
	assert.NoError(t, err)
	assert.Equal(t, q1, q2)
	assert.Equal(t, 1, inner.calls, "second lookup should hit the cache")
}

func TestCachingProvider_RefetchesAfterTTL(t *testing.T) {
	inner := &countingProvider{quote: &domain.Quote{Symbol: "AAPL", PriceCents: 1500}}
	cache := NewCachingProvider(inner, 30*time.Second)

	current := time.Now()
	cache.now = func() time.Time { return current }

	_, err := cache.Lookup(context.Background(), "AAPL")
	assert.NoError(t, err)

	current = current.Add(31 * time.Second)

	_, err = cache.Lookup(context.Background(), "AAPL")
	assert.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "stale entry should be refetched")
}

func TestCachingProvider_NormalizesSymbol(t *testing.T) {
	inner := &countingProvider{quote: &domain.Quote{Symbol: "AAPL", PriceCents: 1500}}
	cache := NewCachingProvider(inner, 30*time.Second)

	_, err := cache.Lookup(context.Background(), "aapl")
	assert.NoError(t, err)
	_, err = cache.Lookup(context.Background(), " AAPL ")
	assert.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "case and whitespace variants share one cache entry")
}

func TestCachingProvider_DoesNotCacheFailures(t *testing.T) {
	inner := &countingProvider{err: apperrors.ErrQuoteUnavailable}
	cache := NewCachingProvider(inner, 30*time.Second)

	_, err := cache.Lookup(context.Background(), "AAPL")
	assert.ErrorIs(t, err, apperrors.ErrQuoteUnavailable)

	_, err = cache.Lookup(context.Background(), "AAPL")
	assert.ErrorIs(t, err, apperrors.ErrQuoteUnavailable)
	assert.Equal(t, 2, inner.calls, "failures must not be cached")
}
