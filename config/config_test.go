package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/coursefront/catalog"
	"github.com/networkteam/coursefront/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("COURSEFRONT_API_URL", "https://shop.example.com/")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/", cfg.APIURL)
	assert.Equal(t, ":1095", cfg.ListenAddr)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, uint64(100), cfg.JournalSize)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "https://shop.example.com", cfg.BaseURL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COURSEFRONT_API_URL", "http://localhost:8080")
	t.Setenv("COURSEFRONT_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("COURSEFRONT_HTTP_TIMEOUT", "1500ms")
	t.Setenv("COURSEFRONT_JOURNAL_SIZE", "25")
	t.Setenv("COURSEFRONT_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, 1500*time.Millisecond, cfg.HTTPTimeout)
	assert.Equal(t, uint64(25), cfg.JournalSize)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing api url", env: map[string]string{"COURSEFRONT_API_URL": ""}},
		{name: "relative api url", env: map[string]string{"COURSEFRONT_API_URL": "/api"}},
		{name: "unsupported scheme", env: map[string]string{"COURSEFRONT_API_URL": "ftp://shop.example.com"}},
		{name: "invalid timeout", env: map[string]string{"COURSEFRONT_API_URL": "http://localhost", "COURSEFRONT_HTTP_TIMEOUT": "soon"}},
		{name: "zero journal size", env: map[string]string{"COURSEFRONT_API_URL": "http://localhost", "COURSEFRONT_JOURNAL_SIZE": "0"}},
		{name: "invalid log level", env: map[string]string{"COURSEFRONT_API_URL": "http://localhost", "COURSEFRONT_LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_IsBaseURLProvider(t *testing.T) {
	var provider catalog.BaseURLProvider = config.Config{APIURL: "http://localhost:8080"}
	assert.Equal(t, "http://localhost:8080", provider.BaseURL())
}
