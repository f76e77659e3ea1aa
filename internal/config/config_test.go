package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv blanks every variable this package reads so tests are hermetic.
// An empty value is treated as unset by the loader.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "HOST", "PORT",
		"DATABRICKS_API_TOKEN", "DATABRICKS_ENDPOINT_URL",
		"LLM_MODEL_NAME", "LLM_MAX_TOKENS", "LLM_TEMPERATURE", "LLM_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Errorf("addr = %q", cfg.Server.Addr())
	}
	if cfg.LLM.Token != "" {
		t.Errorf("token = %q, want empty", cfg.LLM.Token)
	}
	if cfg.LLM.EndpointURL != DefaultEndpointURL {
		t.Errorf("endpoint = %q", cfg.LLM.EndpointURL)
	}
	if cfg.LLM.MaxTokens != 500 || cfg.LLM.Temperature != 0.7 {
		t.Errorf("llm defaults = %+v", cfg.LLM)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("timeout = %v", cfg.LLM.Timeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("DATABRICKS_API_TOKEN", "tok")
	t.Setenv("DATABRICKS_ENDPOINT_URL", "https://example.com/invocations")
	t.Setenv("LLM_MAX_TOKENS", "800")
	t.Setenv("LLM_TIMEOUT_SECONDS", "10")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9000" {
		t.Errorf("addr = %q", cfg.Server.Addr())
	}
	if cfg.LLM.Token != "tok" {
		t.Errorf("token = %q", cfg.LLM.Token)
	}
	if cfg.LLM.EndpointURL != "https://example.com/invocations" {
		t.Errorf("endpoint = %q", cfg.LLM.EndpointURL)
	}
	if cfg.LLM.MaxTokens != 800 {
		t.Errorf("max_tokens = %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.LLM.Timeout)
	}
}

func TestLoad_YAMLFileWithEnvPrecedence(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: \"9100\"\nllm:\n  token: file-token\n  max_tokens: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	// Env beats file.
	t.Setenv("DATABRICKS_API_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9100" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.LLM.MaxTokens != 250 {
		t.Errorf("max_tokens = %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Token != "env-token" {
		t.Errorf("token = %q, want env override", cfg.LLM.Token)
	}
}

func TestLoad_MissingFileIsNotError(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMaskedToken(t *testing.T) {
	if got := (LLMConfig{}).MaskedToken(); got != "Not set" {
		t.Errorf("masked empty token = %q", got)
	}
	if got := (LLMConfig{Token: "secret"}).MaskedToken(); got != "***" {
		t.Errorf("masked token = %q", got)
	}
}
