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
)

// quoteHandler handles HTTP requests for stock quote lookups.
type quoteHandler struct {
	quoteService portssvc.QuoteSvcFacade
}

func newQuoteHandler(qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{
		quoteService: qs,
	}
}

// registerQuoteRoutes registers the quote lookup route.
func registerQuoteRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(quoteService)

	quotes := rg.Group("/quotes")
	{
		quotes.GET("/:symbol", h.getQuote)
	}
}

// getQuote godoc
// @Summary Look up a stock quote
// @Description Resolves a ticker symbol to its current price.
// @Tags quotes
// @Produce  json
// @Param   symbol path string true "Ticker symbol"
// @Success 200 {object} dto.QuoteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown symbol"
// @Failure 502 {object} map[string]string "Quote provider unavailable"
// @Security BearerAuth
// @Router /quotes/{symbol} [get]
func (h *quoteHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	symbol := c.Param("symbol")

	quote, err := h.quoteService.Lookup(c.Request.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Symbol is required"})
		case errors.Is(err, apperrors.ErrUnknownSymbol):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown symbol"})
		case errors.Is(err, apperrors.ErrQuoteUnavailable):
			logger.Warn("Quote provider unavailable", slog.String("symbol", symbol), slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Quote provider unavailable"})
		default:
			logger.Error("Failed to look up quote", slog.String("symbol", symbol), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up quote"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}
