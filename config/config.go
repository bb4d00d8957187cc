// Package config loads server settings from an optional JSON file overlaid by
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

const (
	DefaultModel    = "gpt-4o-mini"
	DefaultProvider = "openai"
)

// Config holds all application configuration.
type Config struct {
	ServerAddr  string      `json:"server_addr,omitempty"`
	Environment string      `json:"environment,omitempty"`
	LogLevel    string      `json:"log_level,omitempty"`
	Store       StoreConfig `json:"store"`
	LLM         *LLMConfig  `json:"llm,omitempty"`
}

// StoreConfig selects and locates the document store.
type StoreConfig struct {
	Driver       string `json:"driver,omitempty"`
	DatabaseURL  string `json:"database_url,omitempty"`
	DatabaseName string `json:"database_name,omitempty"`
	DataDir      string `json:"data_dir,omitempty"`
}

// LLMConfig configures the text-generation provider. An empty APIKey
// disables the provider and every generation uses the fallback templates,
// except for the offline "mock" provider which needs no key.
type LLMConfig struct {
	Provider string   `json:"provider,omitempty"`
	Model    string   `json:"model,omitempty"`
	APIKey   string   `json:"api_key,omitempty"`
	BaseURL  string   `json:"base_url,omitempty"`
	Timeout  Duration `json:"timeout,omitempty"`
}

// Duration reads "20s"-style strings from JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"20s\": %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Load reads path when it is non-empty, applies environment overrides and
// defaults, and validates the result. A missing file at path is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if cfg.LLM == nil {
		cfg.LLM = &LLMConfig{}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		c.ServerAddr = ":" + port
	}
	c.ServerAddr = getEnv("SERVER_ADDR", c.ServerAddr)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.Store.Driver = getEnv("STORE_DRIVER", c.Store.Driver)
	c.Store.DatabaseURL = getEnv("DATABASE_URL", c.Store.DatabaseURL)
	c.Store.DatabaseName = getEnv("DATABASE_NAME", c.Store.DatabaseName)
	c.Store.DataDir = getEnv("DATA_DIR", c.Store.DataDir)

	c.LLM.Provider = getEnv("LLM_PROVIDER", c.LLM.Provider)
	c.LLM.Model = getEnv("LLM_MODEL", c.LLM.Model)
	c.LLM.APIKey = getEnv("OPENAI_API_KEY", c.LLM.APIKey)
	c.LLM.BaseURL = getEnv("OPENAI_BASE_URL", c.LLM.BaseURL)
	c.LLM.Timeout = Duration(getEnvDuration("LLM_TIMEOUT", time.Duration(c.LLM.Timeout)))
}

func (c *Config) applyDefaults() {
	if c.ServerAddr == "" {
		c.ServerAddr = ":8000"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Store.Driver == "" {
		// A database URL means a Mongo deployment.
		if c.Store.DatabaseURL != "" {
			c.Store.Driver = DriverMongo
		} else {
			c.Store.Driver = DriverSQLite
		}
	}
	if c.Store.DataDir == "" {
		c.Store.DataDir = "./data"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = DefaultProvider
	}
	if c.LLM.Model == "" {
		c.LLM.Model = DefaultModel
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = Duration(20 * time.Second)
	}
}

// Validate checks if all required configuration is present.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
	case DriverMongo:
		if c.Store.DatabaseURL == "" || c.Store.DatabaseName == "" {
			return errors.New("store driver mongo requires DATABASE_URL and DATABASE_NAME")
		}
	default:
		return fmt.Errorf("store driver %q not supported", c.Store.Driver)
	}
	switch c.LLM.Provider {
	case "openai", "mock":
	case "deepseek":
		// DeepSeek exposes an OpenAI-compatible API and has no default endpoint here.
		if c.LLM.BaseURL == "" {
			return errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	return nil
}

// LLMEnabled reports whether generation should call a provider.
func (c *Config) LLMEnabled() bool {
	if c.LLM == nil {
		return false
	}
	return c.LLM.Provider == "mock" || c.LLM.APIKey != ""
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts "20s" or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
