package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wonderlens/config"
	"wonderlens/generator"
)

func TestBuildLLM(t *testing.T) {
	cfg := &config.Config{LLM: &config.LLMConfig{Provider: "openai", Model: config.DefaultModel}}
	llm, err := buildLLM(cfg)
	require.NoError(t, err)
	assert.Nil(t, llm, "no credential selects fallback mode")

	cfg.LLM.APIKey = "sk-test"
	llm, err = buildLLM(cfg)
	require.NoError(t, err)
	assert.IsType(t, &generator.OpenAILLM{}, llm)

	cfg.LLM = &config.LLMConfig{Provider: "mock"}
	llm, err = buildLLM(cfg)
	require.NoError(t, err)
	assert.Equal(t, generator.MockLLM{}, llm)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverSQLite, DataDir: t.TempDir()}}

	st, err := openStore(context.Background(), cfg)
	require.NoError(t, err)
	defer st.Close(context.Background())
	assert.NoError(t, st.Ping(context.Background()))
}

func TestBuildLogger(t *testing.T) {
	_, err := buildLogger(&config.Config{Environment: "production", LogLevel: "warn"}, false)
	assert.NoError(t, err)
	_, err = buildLogger(&config.Config{Environment: "production", LogLevel: "loud"}, false)
	assert.Error(t, err)
}
