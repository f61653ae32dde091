package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/webfolio/portfolio-api/internal/config"
	"go.uber.org/zap"
)

// downloadHeaders must be readable by the site to name downloaded quotes
var downloadHeaders = []string{"Content-Disposition", "X-Request-ID"}

// CORS returns a CORS middleware for the site origins. Without configured
// origins every origin is allowed in development and none elsewhere.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   mergeHeaders(cfg.ExposedHeaders, downloadHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	allowAll := func(r *http.Request, origin string) bool { return origin != "" }
	development := environment == "development" || environment == "local" || environment == ""

	switch {
	case containsString(cfg.AllowedOrigins, "*"):
		if !development {
			logger.Warn("CORS configured with wildcard origin in non-development environment",
				zap.String("environment", environment))
		}
		options.AllowOriginFunc = allowAll
	case len(cfg.AllowedOrigins) > 0:
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS configured with explicit origins",
			zap.Strings("origins", cfg.AllowedOrigins))
	case development:
		options.AllowOriginFunc = allowAll
		logger.Info("CORS configured to allow all origins in development mode")
	default:
		// An empty AllowedOrigins means "*" to go-chi/cors
		options.AllowOriginFunc = func(r *http.Request, origin string) bool { return false }
		logger.Warn("CORS configured with no allowed origins - all cross-origin requests will be denied",
			zap.String("environment", environment))
	}

	return cors.Handler(options)
}

func mergeHeaders(configured, required []string) []string {
	out := append([]string{}, configured...)
	for _, h := range required {
		if !containsString(out, h) {
			out = append(out, h)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
