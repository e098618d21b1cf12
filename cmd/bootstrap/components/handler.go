package components

import (
	"context"

	"autoflow/internal/handler"
	"autoflow/internal/handler/api"
	"autoflow/internal/handler/middleware"
	"autoflow/internal/pkg/clock"
	"autoflow/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewShowroomHandler,
		api.NewCatalogHandler,
		api.NewConfigurationHandler,
		api.NewProposalHandler,
		api.NewInvoiceHandler,
		api.NewStatisticsHandler,
		middleware.NewAuthMiddleware,
		NewShowroomRateLimiter,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Showroom      *api.ShowroomHandler
	Catalog       *api.CatalogHandler
	Configuration *api.ConfigurationHandler
	Proposal      *api.ProposalHandler
	Invoice       *api.InvoiceHandler
	Statistics    *api.StatisticsHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Showroom:      p.Showroom,
		Catalog:       p.Catalog,
		Configuration: p.Configuration,
		Proposal:      p.Proposal,
		Invoice:       p.Invoice,
		Statistics:    p.Statistics,
	}
}

// NewShowroomRateLimiter sweeps idle buckets for the life of the app.
func NewShowroomRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *middleware.IPRateLimiter {
	limiter := middleware.NewShowroomRateLimiter(cfg.RateLimit, clk)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go limiter.RunSweeper(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}

func NewMiddlewares(auth *middleware.AuthMiddleware, showroom *middleware.IPRateLimiter, logger *middleware.Logger) handler.Middlewares {
	return handler.Middlewares{
		Auth:     auth,
		Showroom: showroom,
		Logger:   logger,
	}
}
