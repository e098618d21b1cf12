package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"autoflow/internal/handler/api"
	reqdto "autoflow/internal/handler/dto/request"
	"autoflow/internal/handler/middleware"
	"autoflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler for the router.
type Handlers struct {
	Showroom      *api.ShowroomHandler
	Catalog       *api.CatalogHandler
	Configuration *api.ConfigurationHandler
	Proposal      *api.ProposalHandler
	Invoice       *api.InvoiceHandler
	Statistics    *api.StatisticsHandler
}

type Middlewares struct {
	Auth     *middleware.AuthMiddleware
	Showroom *middleware.IPRateLimiter
	Logger   *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) error {
	if err := reqdto.RegisterValidations(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, h, mw)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		showroom := apiGroup.Group("/showroom")
		showroom.Use(mw.Showroom.RateLimit())
		addRoutes(showroom, []route{
			{Method: http.MethodGet, Path: "/vehicles", Handler: h.Showroom.Search},
			{Method: http.MethodGet, Path: "/vehicles/:id", Handler: h.Showroom.Get},
		})

		authed := apiGroup.Group("")
		authed.Use(mw.Auth.RequireAuth())

		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/pricing/preview", Handler: h.Catalog.PreviewPricing},

			{Method: http.MethodGet, Path: "/vehicles", Handler: h.Catalog.ListVehicles},
			{Method: http.MethodPost, Path: "/vehicles", Handler: h.Catalog.CreateVehicle},
			{Method: http.MethodGet, Path: "/vehicles/:id", Handler: h.Catalog.GetVehicle},
			{Method: http.MethodPut, Path: "/vehicles/:id", Handler: h.Catalog.UpdateVehicle},
			{Method: http.MethodPatch, Path: "/vehicles/:id/status", Handler: h.Catalog.ChangeVehicleStatus},
			{Method: http.MethodPost, Path: "/vehicles/:id/duplicate", Handler: h.Catalog.DuplicateVehicle},

			{Method: http.MethodGet, Path: "/optionals", Handler: h.Catalog.ListOptionals},
			{Method: http.MethodPost, Path: "/optionals", Handler: h.Catalog.CreateOptional},
			{Method: http.MethodGet, Path: "/optionals/:id", Handler: h.Catalog.GetOptional},
			{Method: http.MethodPut, Path: "/optionals/:id", Handler: h.Catalog.UpdateOptional},
			{Method: http.MethodDelete, Path: "/optionals/:id", Handler: h.Catalog.DeleteOptional},

			{Method: http.MethodGet, Path: "/configurations", Handler: h.Configuration.List},
			{Method: http.MethodPost, Path: "/configurations", Handler: h.Configuration.Create},
			{Method: http.MethodGet, Path: "/configurations/:id", Handler: h.Configuration.Get},
			{Method: http.MethodPatch, Path: "/configurations/:id", Handler: h.Configuration.Update},
			{Method: http.MethodDelete, Path: "/configurations/:id", Handler: h.Configuration.Delete},

			{Method: http.MethodGet, Path: "/proposals", Handler: h.Proposal.List},
			{Method: http.MethodPost, Path: "/proposals", Handler: h.Proposal.Create},
			{Method: http.MethodPost, Path: "/proposals/expire-overdue", Handler: h.Proposal.ExpireOverdue},
			{Method: http.MethodGet, Path: "/proposals/:id", Handler: h.Proposal.Get},
			{Method: http.MethodGet, Path: "/proposals/:id/history", Handler: h.Proposal.History},
			{Method: http.MethodPost, Path: "/proposals/:id/accept", Handler: h.Proposal.Accept},
			{Method: http.MethodPost, Path: "/proposals/:id/reject", Handler: h.Proposal.Reject},
			{Method: http.MethodPost, Path: "/proposals/:id/confirm", Handler: h.Proposal.Confirm},
			{Method: http.MethodPost, Path: "/proposals/:id/expire", Handler: h.Proposal.Expire},
			{Method: http.MethodPost, Path: "/proposals/:id/override", Handler: h.Proposal.Override},
			{Method: http.MethodPatch, Path: "/proposals/:id/terms", Handler: h.Proposal.UpdateTerms},
			{Method: http.MethodPost, Path: "/proposals/:id/invoice", Handler: h.Invoice.Request},

			{Method: http.MethodGet, Path: "/invoices", Handler: h.Invoice.List},
			{Method: http.MethodGet, Path: "/invoices/:id", Handler: h.Invoice.Get},

			{Method: http.MethodGet, Path: "/statistics/dashboard", Handler: h.Statistics.Dashboard},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
