package services

import (
	portsrepo "github.com/tradelite/stock_trading_app/internal/core/ports/repositories"
	portssvc "github.com/tradelite/stock_trading_app/internal/core/ports/services"
	"github.com/tradelite/stock_trading_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The quote facade is passed in because its
// concrete implementation (HTTP client plus cache) lives in the adapters
// layer.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, quoteSvc portssvc.QuoteSvcFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(cfg, repos.UserRepo)
	container.Quote = quoteSvc
	container.Trading = NewTradingService(repos.LedgerRepo, quoteSvc)
	container.Portfolio = NewPortfolioService(repos.LedgerRepo, quoteSvc)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade      = (*userService)(nil)
	_ portssvc.TradingSvcFacade   = (*tradingService)(nil)
	_ portssvc.PortfolioSvcFacade = (*portfolioService)(nil)
)
