package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.NotEmpty(t, cfg.Token.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INVOICING_API_BASE_URL", "https://billing.example.com/api")
	t.Setenv("INVOICING_API_TIMEOUT", "15s")
	t.Setenv("INVOICING_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://billing.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "not a url"}}
	assert.Error(t, cfg.Validate())

	cfg.API.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNegativeTimeout(t *testing.T) {
	cfg := &Config{API: APIConfig{BaseURL: "http://localhost:8000/api", Timeout: -time.Second}}
	assert.Error(t, cfg.Validate())
}
