package logger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/webfolio/portfolio-api/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the service logger. Production and the json format write
// JSON lines; anything else gets the colored console encoder.
func NewLogger(cfg *config.LoggingConfig, appCfg *config.AppConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" || appCfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
		// Stack traces of handled errors are noise in the log pipeline;
		// panics are logged with their stack by the recovery middleware.
		zapCfg.DisableStacktrace = true
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Unknown levels fall back to info
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zapCfg.InitialFields = map[string]interface{}{
		"app":         appCfg.Name,
		"environment": appCfg.Environment,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

// WithRequest adds request context to logger
func WithRequest(logger *zap.Logger, method, path, requestID string) *zap.Logger {
	return logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)
}

// WithPrincipal adds the authenticated admin to logger
func WithPrincipal(logger *zap.Logger, subject, method string) *zap.Logger {
	return logger.With(
		zap.String("principal", subject),
		zap.String("auth_method", method),
	)
}

// WithSession tags logger with a simulator session
func WithSession(logger *zap.Logger, id uuid.UUID) *zap.Logger {
	return logger.With(zap.String("session_id", id.String()))
}

// WithLead tags logger with the sender of a contact request. The address is
// masked so visitor emails never reach the logs in clear.
func WithLead(logger *zap.Logger, email string) *zap.Logger {
	return logger.With(zap.String("lead", MaskEmail(email)))
}

// MaskEmail keeps the first rune of the local part and the domain:
// jean.dupont@example.com becomes j***@example.com
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	first := []rune(email[:at])[0]
	return string(first) + "***" + email[at:]
}
