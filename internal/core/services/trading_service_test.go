package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tradelite/stock_trading_app/internal/apperrors"
	"github.com/tradelite/stock_trading_app/internal/core/domain"
	portsrepo "github.com/tradelite/stock_trading_app/internal/core/ports/repositories"
	portssvc "github.com/tradelite/stock_trading_app/internal/core/ports/services"
	"github.com/tradelite/stock_trading_app/internal/core/services"
	"github.com/tradelite/stock_trading_app/internal/dto"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) RecordPurchase(ctx context.Context, trade domain.Trade, costCents int64) error {
	args := m.Called(ctx, trade, costCents)
	return args.Error(0)
}

func (m *MockLedgerRepository) RecordSale(ctx context.Context, trade domain.Trade, proceedsCents int64) error {
	args := m.Called(ctx, trade, proceedsCents)
	return args.Error(0)
}

func (m *MockLedgerRepository) CreditBalance(ctx context.Context, userID string, amountCents int64, updatedAt time.Time) (int64, error) {
	args := m.Called(ctx, userID, amountCents, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) FindTradesByUser(ctx context.Context, userID string, limit int, nextToken *string) (*portsrepo.ListTradesResult, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsrepo.ListTradesResult), args.Error(1)
}

func (m *MockLedgerRepository) FindHoldingsByUser(ctx context.Context, userID string) (map[string]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockLedgerRepository) GetBalance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

var _ portssvc.QuoteSvcFacade = (*MockQuoteService)(nil)

// --- Test Suite ---
type TradingServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockQuoteSvc   *MockQuoteService
	service        portssvc.TradingSvcFacade
}

func (suite *TradingServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockQuoteSvc = new(MockQuoteService)
	suite.service = services.NewTradingService(suite.mockLedgerRepo, suite.mockQuoteSvc)
}

// --- Buy Tests ---

func (suite *TradingServiceTestSuite) TestBuy_Success() {
	ctx := context.Background()
	userID := "user-1"
	req := dto.TradeRequest{Symbol: "AAPL", Shares: 5}
	quote := &domain.Quote{Symbol: "AAPL", Name: "Apple Inc.", PriceCents: 1500}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(quote, nil).Once()
	suite.mockLedgerRepo.On("RecordPurchase", ctx, mock.MatchedBy(func(t domain.Trade) bool {
		return t.UserID == userID && t.Symbol == "AAPL" && t.TradeType == domain.Buy &&
			t.PriceCents == 1500 && t.Shares == 5
	}), int64(7500)).Return(nil).Once()

	trade, err := suite.service.Buy(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(trade)
	suite.Equal(int64(7500), trade.TotalCents())
	suite.NotEmpty(trade.TradeID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockQuoteSvc.AssertExpectations(suite.T())
}

func (suite *TradingServiceTestSuite) TestBuy_NormalizesSymbol() {
	ctx := context.Background()
	req := dto.TradeRequest{Symbol: "  aapl ", Shares: 1}
	quote := &domain.Quote{Symbol: "AAPL", PriceCents: 1500}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(quote, nil).Once()
	suite.mockLedgerRepo.On("RecordPurchase", ctx, mock.AnythingOfType("domain.Trade"), int64(1500)).Return(nil).Once()

	trade, err := suite.service.Buy(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.Equal("AAPL", trade.Symbol)
	suite.mockQuoteSvc.AssertExpectations(suite.T())
}

func (suite *TradingServiceTestSuite) TestBuy_InvalidShares() {
	ctx := context.Background()
	req := dto.TradeRequest{Symbol: "AAPL", Shares: 0}

	trade, err := suite.service.Buy(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(trade)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// Neither quote nor ledger may be touched on invalid input
	suite.mockQuoteSvc.AssertNotCalled(suite.T(), "Lookup", mock.Anything, mock.Anything)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TradingServiceTestSuite) TestBuy_UnknownSymbol() {
	ctx := context.Background()
	req := dto.TradeRequest{Symbol: "NOPE", Shares: 1}

	suite.mockQuoteSvc.On("Lookup", ctx, "NOPE").Return(nil, apperrors.ErrUnknownSymbol).Once()

	trade, err := suite.service.Buy(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(trade)
	suite.ErrorIs(err, apperrors.ErrUnknownSymbol)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TradingServiceTestSuite) TestBuy_InsufficientFunds() {
	ctx := context.Background()
	req := dto.TradeRequest{Symbol: "AAPL", Shares: 100}
	quote := &domain.Quote{Symbol: "AAPL", PriceCents: 1500}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(quote, nil).Once()
	suite.mockLedgerRepo.On("RecordPurchase", ctx, mock.AnythingOfType("domain.Trade"), int64(150000)).
		Return(apperrors.ErrInsufficientFunds).Once()

	trade, err := suite.service.Buy(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(trade)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TradingServiceTestSuite) TestBuy_OrderValueOverflow() {
	ctx := context.Background()
	// One share past the point where price * shares wraps int64
	shares := math.MaxInt64/1500 + 1
	req := dto.TradeRequest{Symbol: "AAPL", Shares: int64(shares)}
	quote := &domain.Quote{Symbol: "AAPL", PriceCents: 1500}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(quote, nil).Once()

	trade, err := suite.service.Buy(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(trade)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordPurchase", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TradingServiceTestSuite) TestBuy_MaxRepresentableOrder() {
	ctx := context.Background()
	// The largest share count for this price is still accepted
	shares := int64(math.MaxInt64 / 1500)
	req := dto.TradeRequest{Symbol: "AAPL", Shares: shares}
	quote := &domain.Quote{Symbol: "AAPL", PriceCents: 1500}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(quote, nil).Once()
	suite.mockLedgerRepo.On("RecordPurchase", ctx, mock.AnythingOfType("domain.Trade"), shares*1500).
		Return(apperrors.ErrInsufficientFunds).Once()

	_, err := suite.service.Buy(ctx, "user-1", req)

	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

// --- Sell Tests ---

func (suite *TradingServiceTestSuite) TestSell_Success() {
	ctx := context.Background()
	userID := "user-1"
	req := dto.TradeRequest{Symbol: "AAPL", Shares: 5}
	quote := &domain.Quote{Symbol: "AAPL", PriceCents: 1600}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(quote, nil).Once()
	suite.mockLedgerRepo.On("RecordSale", ctx, mock.MatchedBy(func(t domain.Trade) bool {
		return t.TradeType == domain.Sell && t.Shares == 5 && t.PriceCents == 1600
	}), int64(8000)).Return(nil).Once()

	trade, err := suite.service.Sell(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(trade)
	suite.Equal(domain.Sell, trade.TradeType)
	suite.Equal(int64(8000), trade.TotalCents())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TradingServiceTestSuite) TestSell_InsufficientShares() {
	ctx := context.Background()
	req := dto.TradeRequest{Symbol: "AAPL", Shares: 6}
	quote := &domain.Quote{Symbol: "AAPL", PriceCents: 1600}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(quote, nil).Once()
	suite.mockLedgerRepo.On("RecordSale", ctx, mock.AnythingOfType("domain.Trade"), int64(9600)).
		Return(apperrors.ErrInsufficientShares).Once()

	trade, err := suite.service.Sell(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(trade)
	suite.ErrorIs(err, apperrors.ErrInsufficientShares)
}

func (suite *TradingServiceTestSuite) TestSell_QuoteUnavailable() {
	ctx := context.Background()
	req := dto.TradeRequest{Symbol: "AAPL", Shares: 1}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(nil, apperrors.ErrQuoteUnavailable).Once()

	trade, err := suite.service.Sell(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(trade)
	suite.ErrorIs(err, apperrors.ErrQuoteUnavailable)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TradingServiceTestSuite) TestSell_OrderValueOverflow() {
	ctx := context.Background()
	shares := math.MaxInt64/1600 + 1
	req := dto.TradeRequest{Symbol: "AAPL", Shares: int64(shares)}
	quote := &domain.Quote{Symbol: "AAPL", PriceCents: 1600}

	suite.mockQuoteSvc.On("Lookup", ctx, "AAPL").Return(quote, nil).Once()

	trade, err := suite.service.Sell(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Nil(trade)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything)
}

// --- TopUp Tests ---

func (suite *TradingServiceTestSuite) TestTopUp_Success() {
	ctx := context.Background()
	userID := "user-1"
	req := dto.TopUpRequest{Amount: "10.50"}

	suite.mockLedgerRepo.On("CreditBalance", ctx, userID, int64(1050), mock.AnythingOfType("time.Time")).
		Return(int64(11050), nil).Once()

	balance, err := suite.service.TopUp(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal(int64(11050), balance)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *TradingServiceTestSuite) TestTopUp_TooManyDecimals() {
	ctx := context.Background()
	req := dto.TopUpRequest{Amount: "10.005"}

	balance, err := suite.service.TopUp(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Zero(balance)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "CreditBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TradingServiceTestSuite) TestTopUp_NegativeAmount() {
	ctx := context.Background()
	req := dto.TopUpRequest{Amount: "-5"}

	balance, err := suite.service.TopUp(ctx, "user-1", req)

	suite.Require().Error(err)
	suite.Zero(balance)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

// --- ListTrades Tests ---

func (suite *TradingServiceTestSuite) TestListTrades_Success() {
	ctx := context.Background()
	userID := "user-1"
	now := time.Now().UTC()
	trades := []domain.Trade{
		{TradeID: "t2", UserID: userID, Symbol: "AAPL", TradeType: domain.Sell, PriceCents: 1600, Shares: 5, AuditFields: domain.AuditFields{CreatedAt: now}},
		{TradeID: "t1", UserID: userID, Symbol: "AAPL", TradeType: domain.Buy, PriceCents: 1500, Shares: 5, AuditFields: domain.AuditFields{CreatedAt: now.Add(-time.Hour)}},
	}
	nextToken := "token"
	result := &portsrepo.ListTradesResult{Trades: trades, NextToken: &nextToken}

	suite.mockLedgerRepo.On("FindTradesByUser", ctx, userID, 20, (*string)(nil)).Return(result, nil).Once()

	page, err := suite.service.ListTrades(ctx, userID, dto.ListTradesParams{})

	suite.Require().NoError(err)
	suite.Require().Len(page.Trades, 2)
	suite.Equal("t2", page.Trades[0].TradeID)
	suite.Equal("SELL", page.Trades[0].TradeType)
	suite.Equal("80.00", page.Trades[0].Total)
	suite.Equal("75.00", page.Trades[1].Total)
	suite.Require().NotNil(page.NextToken)
	suite.Equal(nextToken, *page.NextToken)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestTradingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TradingServiceTestSuite))
}

// memoryLedger is a stateful in-memory LedgerRepository for end-to-end
// balance arithmetic checks.
type memoryLedger struct {
	balance int64
	trades  []domain.Trade
}

func (l *memoryLedger) netShares(symbol string) int64 {
	var net int64
	for _, t := range l.trades {
		if t.Symbol == symbol {
			net += t.SignedShares()
		}
	}
	return net
}

func (l *memoryLedger) RecordPurchase(ctx context.Context, trade domain.Trade, costCents int64) error {
	if costCents > l.balance {
		return apperrors.ErrInsufficientFunds
	}
	l.balance -= costCents
	l.trades = append(l.trades, trade)
	return nil
}

func (l *memoryLedger) RecordSale(ctx context.Context, trade domain.Trade, proceedsCents int64) error {
	if trade.Shares > l.netShares(trade.Symbol) {
		return apperrors.ErrInsufficientShares
	}
	l.balance += proceedsCents
	l.trades = append(l.trades, trade)
	return nil
}

func (l *memoryLedger) CreditBalance(ctx context.Context, userID string, amountCents int64, updatedAt time.Time) (int64, error) {
	l.balance += amountCents
	return l.balance, nil
}

func (l *memoryLedger) FindTradesByUser(ctx context.Context, userID string, limit int, nextToken *string) (*portsrepo.ListTradesResult, error) {
	return &portsrepo.ListTradesResult{Trades: l.trades}, nil
}

func (l *memoryLedger) FindHoldingsByUser(ctx context.Context, userID string) (map[string]int64, error) {
	holdings := make(map[string]int64)
	for _, t := range l.trades {
		holdings[t.Symbol] += t.SignedShares()
	}
	for symbol, shares := range holdings {
		if shares == 0 {
			delete(holdings, symbol)
		}
	}
	return holdings, nil
}

func (l *memoryLedger) GetBalance(ctx context.Context, userID string) (int64, error) {
	return l.balance, nil
}

var _ portsrepo.LedgerRepository = (*memoryLedger)(nil)

// TestBuyThenSellScenario walks the full cash cycle: starting with 10000
// cents, buying 5 shares at 1500 leaves 2500, and selling those 5 at 1600
// ends at 10500.
func TestBuyThenSellScenario(t *testing.T) {
	ctx := context.Background()
	ledger := &memoryLedger{balance: 10000}
	quoteSvc := new(MockQuoteService)
	service := services.NewTradingService(ledger, quoteSvc)

	quoteSvc.On("Lookup", ctx, "AAPL").Return(&domain.Quote{Symbol: "AAPL", PriceCents: 1500}, nil).Once()
	_, err := service.Buy(ctx, "user-1", dto.TradeRequest{Symbol: "AAPL", Shares: 5})
	if err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if ledger.balance != 2500 {
		t.Fatalf("balance after buy = %d, want 2500", ledger.balance)
	}

	// Selling more than held fails and changes nothing
	quoteSvc.On("Lookup", ctx, "AAPL").Return(&domain.Quote{Symbol: "AAPL", PriceCents: 1600}, nil)
	_, err = service.Sell(ctx, "user-1", dto.TradeRequest{Symbol: "AAPL", Shares: 6})
	if err == nil {
		t.Fatal("oversell should fail")
	}
	if ledger.balance != 2500 {
		t.Fatalf("balance after rejected sell = %d, want 2500", ledger.balance)
	}

	// Selling the exact position succeeds
	_, err = service.Sell(ctx, "user-1", dto.TradeRequest{Symbol: "AAPL", Shares: 5})
	if err != nil {
		t.Fatalf("sell failed: %v", err)
	}
	if ledger.balance != 10500 {
		t.Fatalf("final balance = %d, want 10500", ledger.balance)
	}

	holdings, err := ledger.FindHoldingsByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("holdings failed: %v", err)
	}
	if len(holdings) != 0 {
		t.Fatalf("closed position should drop out of holdings, got %v", holdings)
	}
}
