package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Storage: StorageConfig{
			Endpoint:  "localhost:9000",
			AccessKey: "minio",
			SecretKey: "minio123",
			Bucket:    "keepstack",
		},
		Embedding:  EmbeddingConfig{APIKey: "test-key"},
		Generation: GenerationConfig{APIKey: "test-key"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingStorage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no endpoint", func(c *Config) { c.Storage.Endpoint = "" }},
		{"no bucket", func(c *Config) { c.Storage.Bucket = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_KeyPrefixTrailingSlash(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.KeyPrefix = "embeddings"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for key prefix without trailing slash")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Storage.KeyPrefix != "embeddings/" {
		t.Errorf("expected default key prefix embeddings/, got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Storage.FetchConcurrency != 8 {
		t.Errorf("expected default fetch concurrency 8, got %d", cfg.Storage.FetchConcurrency)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected default read timeout 10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Cache.TTLHours != 168 {
		t.Errorf("expected default cache ttl 168h, got %d", cfg.Cache.TTLHours)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("KEEPSTACK_TEST_KEY", "secret")
	defer os.Unsetenv("KEEPSTACK_TEST_KEY")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"set variable", "api_key: ${KEEPSTACK_TEST_KEY}", "api_key: secret"},
		{"unset with default", "port: ${KEEPSTACK_TEST_UNSET:-8080}", "port: 8080"},
		{"unset without default", "key: ${KEEPSTACK_TEST_UNSET}", "key: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(expandEnvVars([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("ENV")
	if env := GetEnv(); env != "local" {
		t.Errorf("expected default env local, got %q", env)
	}

	os.Setenv("ENV", "prod")
	defer os.Unsetenv("ENV")
	if env := GetEnv(); env != "prod" {
		t.Errorf("expected env prod, got %q", env)
	}
}
