package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tradelite/stock_trading_app/internal/apperrors"
	portssvc "github.com/tradelite/stock_trading_app/internal/core/ports/services"
	"github.com/tradelite/stock_trading_app/internal/dto"
	"github.com/tradelite/stock_trading_app/internal/middleware"
	"github.com/tradelite/stock_trading_app/internal/utils"
)

// tradingHandler handles HTTP requests for trades and the cash balance.
type tradingHandler struct {
	tradingService portssvc.TradingSvcFacade
}

func newTradingHandler(ts portssvc.TradingSvcFacade) *tradingHandler {
	return &tradingHandler{
		tradingService: ts,
	}
}

// RegisterTradingRoutes registers trade and balance routes.
func RegisterTradingRoutes(rg *gin.RouterGroup, tradingService portssvc.TradingSvcFacade) {
	h := newTradingHandler(tradingService)

	trades := rg.Group("/trades")
	{
		trades.GET("", h.listTrades)
		trades.POST("/buy", h.buy)
		trades.POST("/sell", h.sell)
	}

	balance := rg.Group("/balance")
	{
		balance.GET("", h.getBalance)
		balance.POST("/topup", h.topUp)
	}
}

// respondTradeError translates a trade failure into the right status code.
// Unknown symbols are 422 here, not 404: the route exists, the entity in the
// request body does not.
func respondTradeError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnknownSymbol):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown symbol"})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient funds"})
	case errors.Is(err, apperrors.ErrInsufficientShares):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Insufficient shares"})
	case errors.Is(err, apperrors.ErrQuoteUnavailable):
		logger.Warn("Quote provider unavailable during trade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Quote provider unavailable"})
	default:
		logger.Error("Trade failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Trade failed"})
	}
}

// buy godoc
// @Summary Buy shares
// @Description Purchases shares at the current quoted price, debiting the cash balance.
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   trade body dto.TradeRequest true "Symbol and share count"
// @Success 201 {object} dto.TradeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Unknown symbol or insufficient funds"
// @Failure 502 {object} map[string]string "Quote provider unavailable"
// @Security BearerAuth
// @Router /trades/buy [post]
func (h *tradingHandler) buy(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	trade, err := h.tradingService.Buy(c.Request.Context(), userID, req)
	if err != nil {
		respondTradeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTradeResponse(trade))
}

// sell godoc
// @Summary Sell shares
// @Description Sells shares at the current quoted price, crediting the cash balance.
// @Tags trades
// @Accept  json
// @Produce  json
// @Param   trade body dto.TradeRequest true "Symbol and share count"
// @Success 201 {object} dto.TradeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Unknown symbol or insufficient shares"
// @Failure 502 {object} map[string]string "Quote provider unavailable"
// @Security BearerAuth
// @Router /trades/sell [post]
func (h *tradingHandler) sell(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	trade, err := h.tradingService.Sell(c.Request.Context(), userID, req)
	if err != nil {
		respondTradeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTradeResponse(trade))
}

// listTrades godoc
// @Summary List trade history
// @Description Retrieves one page of the user's trades, newest first.
// @Tags trades
// @Produce  json
// @Param   limit query int false "Max trades to return" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListTradesResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list trades"
// @Security BearerAuth
// @Router /trades [get]
func (h *tradingHandler) listTrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListTradesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.tradingService.ListTrades(c.Request.Context(), userID, params)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusBadRequest {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
			return
		}
		logger.Error("Failed to list trades", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trades"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// getBalance godoc
// @Summary Get cash balance
// @Description Returns the user's current cash balance.
// @Tags balance
// @Produce  json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to read balance"
// @Security BearerAuth
// @Router /balance [get]
func (h *tradingHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balanceCents, err := h.tradingService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to read balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: utils.CentsToMajorString(balanceCents)})
}

// topUp godoc
// @Summary Top up the cash balance
// @Description Credits the account with a major-unit amount, e.g. "10.50".
// @Tags balance
// @Accept  json
// @Produce  json
// @Param   topup body dto.TopUpRequest true "Amount to add"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to top up balance"
// @Security BearerAuth
// @Router /balance/topup [post]
func (h *tradingHandler) topUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	newBalanceCents, err := h.tradingService.TopUp(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to top up balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to top up balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: utils.CentsToMajorString(newBalanceCents)})
}
