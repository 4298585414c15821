package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{URI: "mongodb://localhost:27017"},
		Model:    ModelConfig{APIKey: "test-key"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingModelKey(t *testing.T) {
	// No completion fallback path exists, so a missing credential must fail
	// at startup, not per request.
	cfg := validConfig()
	cfg.Model.APIKey = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing model.api_key")
	}
	if !strings.Contains(err.Error(), "model.api_key") {
		t.Errorf("error %q does not name model.api_key", err)
	}
}

func TestValidate_MissingDatabaseURI(t *testing.T) {
	cfg := validConfig()
	cfg.Database.URI = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database.uri")
	}
}

func TestValidate_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_TemperatureRange(t *testing.T) {
	cfg := validConfig()
	cfg.Model.Temperature = 3.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range temperature")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Model.Provider != "openai" {
		t.Errorf("model.provider default = %q, want openai", cfg.Model.Provider)
	}
	if cfg.Model.TimeoutSec != 30 {
		t.Errorf("model.timeout_sec default = %d, want 30", cfg.Model.TimeoutSec)
	}
	if cfg.Pipeline.DefaultCollection != "articles" {
		t.Errorf("pipeline.default_collection default = %q, want articles", cfg.Pipeline.DefaultCollection)
	}
	if cfg.Database.QueryTimeoutSec != 15 {
		t.Errorf("database.query_timeout_sec default = %d, want 15", cfg.Database.QueryTimeoutSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("ASKDB_TEST_KEY", "sk-123")

	in := []byte("api_key: ${ASKDB_TEST_KEY}\nbase_url: ${ASKDB_TEST_URL:-https://api.openai.com/v1}")
	out := string(expandEnvVars(in))

	if !strings.Contains(out, "api_key: sk-123") {
		t.Errorf("env var not expanded: %s", out)
	}
	if !strings.Contains(out, "base_url: https://api.openai.com/v1") {
		t.Errorf("default not applied: %s", out)
	}
}
