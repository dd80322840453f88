package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"CONFIG_FILE", "PORT", "DATA_FILE", "LLM_MODEL", "API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "health_data.json", cfg.DataFile)
	assert.Empty(t, cfg.APIKey)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:5173")
}

func TestLoadReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "port: \"9090\"\ndata_file: /tmp/health.json\nmodel: claude-opus-4-1\nallowed_origins:\n  - https://health.example.com\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LLM_MODEL", "")
	os.Unsetenv("LLM_MODEL")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/health.json", cfg.DataFile)
	assert.Equal(t, "claude-opus-4-1", cfg.Model)
	assert.Equal(t, []string{"https://health.example.com"}, cfg.AllowedOrigins)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")

	assert.Equal(t, "7070", Load().Port)
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("HEALTHTRACK_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("HEALTHTRACK_TEST_KEY", "fallback"))

	t.Setenv("HEALTHTRACK_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("HEALTHTRACK_TEST_KEY", "fallback"))
}
