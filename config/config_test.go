package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "SERVER_ADDR", "ENVIRONMENT", "LOG_LEVEL", "STORE_DRIVER",
		"DATABASE_URL", "DATABASE_NAME", "DATA_DIR", "LLM_PROVIDER", "LLM_MODEL",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "LLM_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ServerAddr)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "./data", cfg.Store.DataDir)
	assert.Equal(t, DefaultModel, cfg.LLM.Model)
	assert.Equal(t, Duration(20*time.Second), cfg.LLM.Timeout)
	assert.False(t, cfg.LLMEnabled(), "no credential means fallback mode")
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "wonderlens")
	t.Setenv("LLM_TIMEOUT", "5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.True(t, cfg.LLMEnabled())
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, Duration(5*time.Second), cfg.LLM.Timeout)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_MODEL", "gpt-4o")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_addr": ":7000",
		"store": {"driver": "sqlite", "data_dir": "/tmp/wl"},
		"llm": {"provider": "deepseek", "model": "deepseek-chat", "api_key": "sk-file", "base_url": "https://api.deepseek.com/v1", "timeout": "15s"}
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.ServerAddr)
	assert.Equal(t, "/tmp/wl", cfg.Store.DataDir)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model, "env wins over file")
	assert.Equal(t, Duration(15*time.Second), cfg.LLM.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	t.Setenv("STORE_DRIVER", "dynamo")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "mongo")
	_, err = Load("")
	assert.ErrorContains(t, err, "DATABASE_URL")

	t.Setenv("STORE_DRIVER", "")
	t.Setenv("LLM_PROVIDER", "deepseek")
	_, err = Load("")
	assert.ErrorContains(t, err, "base_url")

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLLMEnabled_Mock(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "mock")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.LLMEnabled())
}
