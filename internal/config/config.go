package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// TelegramConfig holds the Bot API credentials used by the contact relay.
// Both BotToken and ChatID must be set for submissions to be forwarded.
type TelegramConfig struct {
	BotToken string        `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string        `env:"TELEGRAM_CHAT_ID"`
	APIBase  string        `env:"TELEGRAM_API_BASE" envDefault:"https://api.telegram.org" validate:"required,url"`
	Timeout  time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s" validate:"gte=0"`
}

// Configured reports whether both the credential and the destination are present.
func (t TelegramConfig) Configured() bool {
	return strings.TrimSpace(t.BotToken) != "" && strings.TrimSpace(t.ChatID) != ""
}

// LogConfig controls the zap logger and optional lumberjack file rotation.
type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100" validate:"gt=0"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5" validate:"gte=0"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30" validate:"gte=0"`
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Port            int           `env:"PORT" envDefault:"3000" validate:"min=1,max=65535"`
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Environment     string        `env:"APP_ENV" envDefault:"development" validate:"oneof=development production"`
	AssetsDir       string        `env:"ASSETS_DIR" envDefault:"web/static"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"dist"`
	AllowedOrigins  []string      `env:"API_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	TLSRedirect     bool          `env:"TLS_REDIRECT" envDefault:"false"`
	MetricsEnabled  bool          `env:"METRICS_ENABLED" envDefault:"true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	Telegram TelegramConfig
	Log      LogConfig
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) IsDevelopment() bool {
	return c.Environment != EnvProduction
}

// Load reads an optional .env file, then parses and validates the environment.
func Load() (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return Parse()
}

// Parse builds a Config from the current process environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Telegram.BotToken = strings.TrimSpace(cfg.Telegram.BotToken)
	cfg.Telegram.ChatID = strings.TrimSpace(cfg.Telegram.ChatID)
	cfg.Telegram.APIBase = strings.TrimRight(strings.TrimSpace(cfg.Telegram.APIBase), "/")
	cfg.AllowedOrigins = trimList(cfg.AllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func trimList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return []string{"*"}
	}
	return result
}
