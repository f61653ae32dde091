package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/webfolio/portfolio-api/internal/auth"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/http/handler"
	"github.com/webfolio/portfolio-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/webfolio/portfolio-api/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	authMiddleware   *auth.Middleware
	rateLimiter      *middleware.RateLimiter
	healthHandler    *handler.HealthHandler
	simulatorHandler *handler.SimulatorHandler
	quoteHandler     *handler.QuoteHandler
	contactHandler   *handler.ContactHandler
	adminHandler     *handler.AdminHandler
	authHandler      *handler.AuthHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	healthHandler *handler.HealthHandler,
	simulatorHandler *handler.SimulatorHandler,
	quoteHandler *handler.QuoteHandler,
	contactHandler *handler.ContactHandler,
	adminHandler *handler.AdminHandler,
	authHandler *handler.AuthHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		healthHandler:    healthHandler,
		simulatorHandler: simulatorHandler,
		quoteHandler:     quoteHandler,
		contactHandler:   contactHandler,
		adminHandler:     adminHandler,
		authHandler:      authHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(middleware.MaxBodySize(rt.cfg.Server.MaxBodyKB * 1024))
	r.Use(rt.rateLimiter.Limit)

	r.Get("/health", rt.healthHandler.Live)
	r.Get("/health/ready", rt.healthHandler.Ready)

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", rt.simulatorHandler.Catalog)

		// Simulator
		r.Route("/simulator", func(r chi.Router) {
			r.Post("/estimate", rt.simulatorHandler.Estimate)
			r.Post("/sessions", rt.simulatorHandler.CreateSession)
			r.Route("/sessions/{id}", func(r chi.Router) {
				r.Get("/", rt.simulatorHandler.GetSession)
				r.Delete("/", rt.simulatorHandler.DeleteSession)
				r.Post("/reset", rt.simulatorHandler.ResetSession)
				r.Put("/project-type", rt.simulatorHandler.SetProjectType)
				r.Post("/{group}/{optionId}/toggle", rt.simulatorHandler.Toggle)
				r.Put("/sections/{sectionId}", rt.simulatorHandler.SetSection)
				r.Delete("/sections/{sectionId}", rt.simulatorHandler.RemoveSection)
				r.Put("/content/{optionId}", rt.simulatorHandler.SetContent)
				r.Get("/quote", rt.simulatorHandler.Quote)
			})
		})

		// Form endpoints send email or render documents; they get a
		// stricter per-IP budget
		r.Group(func(r chi.Router) {
			r.Use(rt.rateLimiter.LimitForms)
			r.Post("/contact", rt.contactHandler.Submit)
			r.Post("/generate-quote-pdf", rt.quoteHandler.GeneratePDF)
			r.Post("/generate-quote-xlsx", rt.quoteHandler.GenerateXLSX)
		})

		// Admin
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.authMiddleware.RequireRole(auth.RoleAdmin))

			r.Get("/me", rt.authHandler.Me)
			r.Post("/token", rt.authHandler.IssueToken)

			r.Route("/submissions", func(r chi.Router) {
				r.Get("/", rt.adminHandler.ListSubmissions)
				r.Get("/stats", rt.adminHandler.SubmissionStats)
				r.Get("/{id}", rt.adminHandler.GetSubmission)
				r.Get("/{id}/document", rt.adminHandler.DownloadDocument)
			})
		})
	})

	return r
}
