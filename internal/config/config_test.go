package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "HOST", "APP_ENV", "ASSETS_DIR", "STATIC_DIR", "API_ALLOWED_ORIGINS",
		"TLS_REDIRECT", "METRICS_ENABLED", "SHUTDOWN_TIMEOUT",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "TELEGRAM_API_BASE", "TELEGRAM_TIMEOUT",
		"LOG_LEVEL", "LOG_FILE",
	} {
		key := key
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { _ = os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { _ = os.Unsetenv(key) })
		}
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIBase)
	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.Telegram.Configured())
}

func TestParse_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("TELEGRAM_BOT_TOKEN", " 123:abc ")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200")
	t.Setenv("TELEGRAM_API_BASE", "http://localhost:9000/")
	t.Setenv("API_ALLOWED_ORIGINS", "https://luxestudio.uz, https://www.luxestudio.uz,")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "http://localhost:9000", cfg.Telegram.APIBase)
	assert.True(t, cfg.Telegram.Configured())
	assert.Equal(t, []string{"https://luxestudio.uz", "https://www.luxestudio.uz"}, cfg.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown environment", "APP_ENV", "staging"},
		{"port out of range", "PORT", "70000"},
		{"port not a number", "PORT", "http"},
		{"bad api base", "TELEGRAM_API_BASE", "not a url"},
		{"bad log level", "LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestTelegramConfig_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  TelegramConfig
		want bool
	}{
		{"both set", TelegramConfig{BotToken: "t", ChatID: "c"}, true},
		{"token missing", TelegramConfig{ChatID: "c"}, false},
		{"chat missing", TelegramConfig{BotToken: "t"}, false},
		{"blank values", TelegramConfig{BotToken: " ", ChatID: "\t"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Configured())
		})
	}
}
