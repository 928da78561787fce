package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "restclient",
			Version: "v1.0.0",
			Env:     EnvDevelopment,
		},
		API: APIConfig{
			BaseURL:     "https://api.example.com",
			Timeout:     10 * time.Second,
			MaxAttempts: 3,
			RetryDelay:  time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.App.Env)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 1, cfg.API.MaxAttempts)
	assert.Equal(t, time.Second, cfg.API.RetryDelay)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("API_BASEURL", "https://staging.example.com")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("APP_ENV", EnvStaging)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, EnvStaging, cfg.App.Env)
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidateRejectsBadEnv(t *testing.T) {
	cfg := validConfig()
	cfg.App.Env = "sandbox"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Env")
}

func TestValidateRejectsMissingBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.API.BaseURL = ""

	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsNonPositiveTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.API.Timeout = 0

	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsZeroAttempts(t *testing.T) {
	cfg := validConfig()
	cfg.API.MaxAttempts = 0

	assert.Error(t, Validate(cfg))
}
