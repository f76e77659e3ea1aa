// Package config loads process-wide configuration once at boot into an
// immutable value that is passed explicitly to the components that need it.
// Precedence, lowest to highest: optional YAML file, then environment
// variables (a .env file loaded at startup populates the environment before
// this package reads it).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultEndpointURL is the model-serving endpoint used when
// DATABRICKS_ENDPOINT_URL is not set.
const DefaultEndpointURL = "https://dbc-32cf6ae7-cf82.staging.cloud.databricks.com/serving-endpoints/databricks-gpt-oss-120b/invocations"

// ServerConfig holds the HTTP bind settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// LLMConfig holds the model-serving call settings.
type LLMConfig struct {
	// Token is the bearer token for the serving endpoint. May be empty;
	// the client reports a configuration error per call instead of the
	// process failing at boot.
	Token string `yaml:"token"`

	// EndpointURL is the full invocations URL of the serving endpoint.
	EndpointURL string `yaml:"endpoint_url"`

	// Model is an optional model name forwarded in the request payload.
	Model string `yaml:"model"`

	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Config is the root configuration value.
type Config struct {
	Server ServerConfig `yaml:"server"`
	LLM    LLMConfig    `yaml:"llm"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8000",
		},
		LLM: LLMConfig{
			EndpointURL: DefaultEndpointURL,
			MaxTokens:   500,
			Temperature: 0.7,
			Timeout:     30 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables. path may be empty, in which case CONFIG_FILE is
// consulted; a missing file is not an error, a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := loadYAMLFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	overrideFromEnv(&cfg)
	return cfg, nil
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func overrideFromEnv(cfg *Config) {
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if token := os.Getenv("DATABRICKS_API_TOKEN"); token != "" {
		cfg.LLM.Token = token
	}
	if url := os.Getenv("DATABRICKS_ENDPOINT_URL"); url != "" {
		cfg.LLM.EndpointURL = url
	}
	if model := os.Getenv("LLM_MODEL_NAME"); model != "" {
		cfg.LLM.Model = model
	}
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LLM.MaxTokens = n
		}
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.LLM.Temperature = f
		}
	}
	if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.LLM.Timeout = time.Duration(n) * time.Second
		}
	}
}

// Addr returns the host:port bind address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// MaskedToken returns a non-sensitive representation of the token for
// diagnostic output.
func (l LLMConfig) MaskedToken() string {
	if l.Token == "" {
		return "Not set"
	}
	return "***"
}
