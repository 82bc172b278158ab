package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradelite/stock_trading_app/internal/core/ports/services"
	"github.com/tradelite/stock_trading_app/internal/dto"
	"github.com/tradelite/stock_trading_app/internal/middleware"
)

// portfolioHandler handles HTTP requests for portfolio views.
type portfolioHandler struct {
	portfolioService portssvc.PortfolioSvcFacade
}

func newPortfolioHandler(ps portssvc.PortfolioSvcFacade) *portfolioHandler {
	return &portfolioHandler{
		portfolioService: ps,
	}
}

// registerPortfolioRoutes registers portfolio routes.
func registerPortfolioRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioSvcFacade) {
	h := newPortfolioHandler(portfolioService)

	portfolio := rg.Group("/portfolio")
	{
		portfolio.GET("", h.getValuation)
		portfolio.GET("/holdings", h.getHoldings)
	}
}

// getValuation godoc
// @Summary Get the valued portfolio
// @Description Returns all held positions priced at current quotes, plus cash and net worth. Positions whose quote is unavailable are flagged and excluded from the net worth.
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.ValuationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute valuation"
// @Security BearerAuth
// @Router /portfolio [get]
func (h *portfolioHandler) getValuation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	valuation, err := h.portfolioService.ComputeValuation(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute valuation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute valuation"})
		return
	}

	c.JSON(http.StatusOK, dto.ToValuationResponse(valuation))
}

// getHoldings godoc
// @Summary Get raw holdings
// @Description Returns net shares per symbol without hitting the quote provider.
// @Tags portfolio
// @Produce  json
// @Success 200 {object} dto.HoldingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute holdings"
// @Security BearerAuth
// @Router /portfolio/holdings [get]
func (h *portfolioHandler) getHoldings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	holdings, err := h.portfolioService.ComputeHoldings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute holdings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute holdings"})
		return
	}

	c.JSON(http.StatusOK, dto.HoldingsResponse{Holdings: holdings})
}
