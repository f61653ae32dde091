package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/webfolio/portfolio-api/internal/secrets"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Simulator SimulatorConfig
	Mail      MailConfig
	Telegram  TelegramConfig
	Storage   StorageConfig
	Secrets   SecretsConfig
	Admin     AdminConfig
	Quote     QuoteConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	MaxBodyKB      int64
	EnableSwagger  bool
}

// DatabaseConfig selects the lead store. Driver is "postgres" or "sqlite";
// with sqlite only SQLitePath is used.
type DatabaseConfig struct {
	Enabled         bool
	Driver          string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	AutoMigrate     bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SimulatorConfig controls the pricing catalog and server-side sessions
type SimulatorConfig struct {
	// CatalogPath overrides the embedded catalog when set
	CatalogPath string
	// SessionStore is "memory" or "redis"
	SessionStore string
	// SessionTTL is the idle lifetime of a session in minutes
	SessionTTL int
	// PurgeSchedule is the cron expression of the in-memory session purge
	PurgeSchedule string
}

type MailConfig struct {
	ResendAPIKey     string
	From             string
	To               string
	SubjectPrefix    string
	SendConfirmation bool
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
	// ArchiveQuotes keeps a copy of every quote attached to a contact request
	ArchiveQuotes bool
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	// "auto" uses environment in development, vault in staging/production
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

// AdminConfig protects the submissions API. Requests authenticate with the
// API key or an HS256 token signed with JWTSecret.
type AdminConfig struct {
	APIKey    string
	JWTSecret string
	JWTIssuer string
}

// QuoteConfig is printed on every generated document
type QuoteConfig struct {
	ValidityDays  int
	IssuerName    string
	IssuerTitle   string
	IssuerEmail   string
	IssuerPhone   string
	IssuerWebsite string
	IssuerAddress string
	IssuerSiret   string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins for CORS requests
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	// MaxAge is the max age (in seconds) for preflight cache
	MaxAge int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool
	// RequestsPerMinute is the global limit per IP
	RequestsPerMinute int
	// FormRequestsPerHour limits the contact and document endpoints per IP
	FormRequestsPerHour int
	WhitelistIPs        []string
	WhitelistPaths      []string
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// SessionTTLDuration returns the session lifetime as duration
func (s *SimulatorConfig) SessionTTLDuration() time.Duration {
	return time.Duration(s.SessionTTL) * time.Minute
}

// MailEnabled reports whether an email provider is configured
func (m *MailConfig) MailEnabled() bool {
	return m.ResendAPIKey != "" && m.To != ""
}

// Load loads configuration from file and environment variables
// This is a basic load that doesn't fetch secrets from vault
// Use LoadWithSecrets for full secret resolution
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Well-known variable names used by the hosting platform
	if cfg.Mail.ResendAPIKey == "" {
		cfg.Mail.ResendAPIKey = v.GetString("RESEND_API_KEY")
	}
	if cfg.Mail.To == "" {
		cfg.Mail.To = v.GetString("CONTACT_EMAIL")
	}
	if cfg.Admin.APIKey == "" {
		cfg.Admin.APIKey = v.GetString("ADMIN_API_KEY")
	}
	if cfg.Telegram.BotToken == "" {
		cfg.Telegram.BotToken = v.GetString("TELEGRAM_BOT_TOKEN")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = v.GetString("REDIS_URL")
	}

	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves secrets from the configured source.
//
// Key Vault is used when BOTH conditions are met:
// 1. USE_AZURE_KEY_VAULT environment variable is set to "true"
// 2. Environment is "staging" or "production"
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault {
		logger.Info("USE_AZURE_KEY_VAULT not enabled, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if !isValidEnv {
		logger.Warn("USE_AZURE_KEY_VAULT is enabled but environment is not staging or production, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	logger.Info("Azure Key Vault enabled for secrets",
		zap.String("environment", cfg.App.Environment),
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SourceVault,
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider (USE_AZURE_KEY_VAULT=true requires valid vault): %w", err)
	}

	if err := ApplySecrets(ctx, cfg, provider); err != nil {
		return nil, err
	}

	logger.Info("Secrets loaded from vault successfully")
	return cfg, nil
}

// SecretSource resolves a secret by vault name with an environment fallback
type SecretSource interface {
	GetSecretOrEnv(ctx context.Context, secretName, envVar string) (string, error)
}

// secretBindings maps vault secret names and env vars to config fields
func secretBindings(cfg *Config) []struct {
	secret, env string
	dst         *string
} {
	return []struct {
		secret, env string
		dst         *string
	}{
		{"resend-api-key", "RESEND_API_KEY", &cfg.Mail.ResendAPIKey},
		{"telegram-bot-token", "TELEGRAM_BOT_TOKEN", &cfg.Telegram.BotToken},
		{"admin-api-key", "ADMIN_API_KEY", &cfg.Admin.APIKey},
		{"admin-jwt-secret", "ADMIN_JWTSECRET", &cfg.Admin.JWTSecret},
		{"postgres-host", "DATABASE_HOST", &cfg.Database.Host},
		{"postgres-user", "DATABASE_USER", &cfg.Database.User},
		{"postgres-password", "DATABASE_PASSWORD", &cfg.Database.Password},
		{"redis-password", "REDIS_PASSWORD", &cfg.Redis.Password},
		{"storage-connection-string", "STORAGE_CLOUDCONNECTIONSTRING", &cfg.Storage.CloudConnectionString},
	}
}

// ApplySecrets overwrites the secret fields of cfg with the values found in
// src. Secrets that are missing everywhere keep their configured value.
func ApplySecrets(ctx context.Context, cfg *Config, src SecretSource) error {
	for _, b := range secretBindings(cfg) {
		value, err := src.GetSecretOrEnv(ctx, b.secret, b.env)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("failed to load secret %s: %w", b.secret, err)
			}
			continue
		}
		if value != "" {
			*b.dst = value
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "Portfolio API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	// Server defaults
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.requestTimeout", 60)
	v.SetDefault("server.maxBodyKB", 256)
	v.SetDefault("server.enableSwagger", true)

	// Database defaults
	v.SetDefault("database.enabled", true)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "portfolio")
	v.SetDefault("database.user", "portfolio")
	v.SetDefault("database.password", "portfolio")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "./data/portfolio.db")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 2)
	v.SetDefault("database.connMaxLifetime", 300)
	v.SetDefault("database.autoMigrate", true)

	// Redis defaults
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	// Simulator defaults
	v.SetDefault("simulator.sessionStore", "memory")
	v.SetDefault("simulator.sessionTTL", 120)
	v.SetDefault("simulator.purgeSchedule", "*/10 * * * *")

	// Mail defaults
	v.SetDefault("mail.from", "Portfolio <onboarding@resend.dev>")
	v.SetDefault("mail.subjectPrefix", "[Portfolio]")
	v.SetDefault("mail.sendConfirmation", false)

	// Secrets defaults
	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300)

	// Storage defaults
	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.cloudContainer", "quotes")
	v.SetDefault("storage.archiveQuotes", true)

	// Admin defaults
	v.SetDefault("admin.jwtIssuer", "portfolio-api")

	// Quote defaults
	v.SetDefault("quote.validityDays", 30)
	v.SetDefault("quote.issuerName", "Studio Web")
	v.SetDefault("quote.issuerTitle", "Développeur web freelance")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// CORS defaults - the site front end only
	v.SetDefault("cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-API-Key", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Content-Disposition", "X-Request-ID"})
	v.SetDefault("cors.allowCredentials", false)
	v.SetDefault("cors.maxAge", 300)

	// Security header defaults
	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'none'; frame-ancestors 'none'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 120)
	v.SetDefault("rateLimit.formRequestsPerHour", 10)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/ready"})
}
