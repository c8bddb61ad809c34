package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "5.0"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Providers   ProvidersConfig
	RateLimit   RateLimitConfig
	Chat        ChatConfig
	SMTP        SMTPConfig
	News        NewsConfig
	CORS        CORSConfig
	Tracing     TracingConfig
	Environment string
	RootURL     string
	LogLevel    string
	Version     string
}

type ServerConfig struct {
	Port            int
	Host            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	// HS256 secret shared with the identity provider that issues access tokens
	JWTSecret    string
	AdminUserIDs []string
}

// ProviderConfig holds the settings shared by every third-party event API client
type ProviderConfig struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type ProvidersConfig struct {
	Ticketmaster ProviderConfig
	JamBase      ProviderConfig
	SetlistFM    ProviderConfig
}

// RateLimitTier is a fixed number of requests allowed per window
type RateLimitTier struct {
	Limit  int
	Window time.Duration
}

type RateLimitConfig struct {
	Strict   RateLimitTier
	Moderate RateLimitTier
	Lenient  RateLimitTier
}

type ChatConfig struct {
	KeySalt       string
	KeyIterations int
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type NewsConfig struct {
	CacheTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "synth")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "10m")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)
	v.SetDefault("ROOT_URL", "http://localhost:5173")

	// Provider defaults
	v.SetDefault("TICKETMASTER_BASE_URL", "https://app.ticketmaster.com/discovery/v2")
	v.SetDefault("TICKETMASTER_TIMEOUT", "10s")
	v.SetDefault("TICKETMASTER_CACHE_TTL", "5m")
	v.SetDefault("JAMBASE_BASE_URL", "https://www.jambase.com/jb-api/v1")
	v.SetDefault("JAMBASE_TIMEOUT", "10s")
	v.SetDefault("JAMBASE_CACHE_TTL", "5m")
	v.SetDefault("SETLISTFM_BASE_URL", "https://api.setlist.fm/rest/1.0")
	v.SetDefault("SETLISTFM_TIMEOUT", "10s")
	v.SetDefault("SETLISTFM_CACHE_TTL", "1h")

	// Rate limit tiers
	v.SetDefault("RATE_LIMIT_STRICT", 10)
	v.SetDefault("RATE_LIMIT_MODERATE", 30)
	v.SetDefault("RATE_LIMIT_LENIENT", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")

	// Chat encryption
	v.SetDefault("CHAT_KEY_SALT", "synth-chat-key-salt-2026-01-27-e2e2e")
	v.SetDefault("CHAT_KEY_ITERATIONS", 100000)

	// SMTP defaults
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "Synth")

	v.SetDefault("NEWS_CACHE_TTL", "30m")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "synth-api")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	window := v.GetDuration("RATE_LIMIT_WINDOW")

	config := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			JWTSecret:    v.GetString("JWT_SECRET"),
			AdminUserIDs: splitList(v.GetString("ADMIN_USER_IDS")),
		},
		Providers: ProvidersConfig{
			Ticketmaster: providerConfig(v, "TICKETMASTER"),
			JamBase:      providerConfig(v, "JAMBASE"),
			SetlistFM:    providerConfig(v, "SETLISTFM"),
		},
		RateLimit: RateLimitConfig{
			Strict:   RateLimitTier{Limit: v.GetInt("RATE_LIMIT_STRICT"), Window: window},
			Moderate: RateLimitTier{Limit: v.GetInt("RATE_LIMIT_MODERATE"), Window: window},
			Lenient:  RateLimitTier{Limit: v.GetInt("RATE_LIMIT_LENIENT"), Window: window},
		},
		Chat: ChatConfig{
			KeySalt:       v.GetString("CHAT_KEY_SALT"),
			KeyIterations: v.GetInt("CHAT_KEY_ITERATIONS"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		News: NewsConfig{
			CacheTTL: v.GetDuration("NEWS_CACHE_TTL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Tracing: TracingConfig{
			Enabled:             v.GetBool("TRACING_ENABLED"),
			ServiceName:         v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability: v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
		},
		Environment: v.GetString("ENVIRONMENT"),
		RootURL:     v.GetString("ROOT_URL"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	if config.Auth.JWTSecret == "" && !config.IsDevelopment() {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func providerConfig(v *viper.Viper, prefix string) ProviderConfig {
	return ProviderConfig{
		APIKey:   v.GetString(prefix + "_API_KEY"),
		BaseURL:  strings.TrimRight(v.GetString(prefix+"_BASE_URL"), "/"),
		Timeout:  v.GetDuration(prefix + "_TIMEOUT"),
		CacheTTL: v.GetDuration(prefix + "_CACHE_TTL"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsAdmin reports whether the user id is listed in ADMIN_USER_IDS
func (c *Config) IsAdmin(userID string) bool {
	for _, id := range c.Auth.AdminUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}
