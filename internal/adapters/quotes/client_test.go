package quotes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradelite/stock_trading_app/internal/adapters/quotes"
	"github.com/tradelite/stock_trading_app/internal/apperrors"
	"github.com/tradelite/stock_trading_app/internal/platform/config"
)

func newTestClient(serverURL string) *quotes.Client {
	return quotes.NewClient(&config.Config{
		QuoteAPIURL:  serverURL,
		QuoteTimeout: 2 * time.Second,
	})
}

func TestClientLookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote/AAPL", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"AAPL","name":"Apple Inc.","price":150.25}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	quote, err := client.Lookup(context.Background(), "aapl")

	require.NoError(t, err)
	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, "Apple Inc.", quote.Name)
	assert.Equal(t, int64(15025), quote.PriceCents)
}

func TestClientLookup_UnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	quote, err := client.Lookup(context.Background(), "NOPE")

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrUnknownSymbol)
}

func TestClientLookup_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	quote, err := client.Lookup(context.Background(), "AAPL")

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrQuoteUnavailable)
}

func TestClientLookup_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	quote, err := client.Lookup(context.Background(), "AAPL")

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrQuoteUnavailable)
}

func TestClientLookup_NonPositivePrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":"AAPL","name":"Apple Inc.","price":0}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	quote, err := client.Lookup(context.Background(), "AAPL")

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrQuoteUnavailable)
}

func TestClientLookup_TransportFailure(t *testing.T) {
	// Point at a server that is already closed
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	quote, err := client.Lookup(context.Background(), "AAPL")

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrQuoteUnavailable)
}

func TestClientLookup_EmptySymbol(t *testing.T) {
	client := newTestClient("http://localhost:0")
	quote, err := client.Lookup(context.Background(), "   ")

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
