package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "chatbot.db", cfg.DatabaseDSN)
	assert.Equal(t, "gemini", cfg.DefaultModel)
	assert.Equal(t, 5, cfg.RecallLimit)
	require.Len(t, cfg.Models, 2)
	assert.Equal(t, "gemini-2.0-flash", cfg.Models[0].Model)
	assert.Equal(t, "gpt-4o-mini", cfg.Models[1].Model)
}

func TestModelLookup(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	m, ok := cfg.Model("openai")
	require.True(t, ok)
	assert.Equal(t, "gpt-4o-mini", m.Model)

	_, ok = cfg.Model("claude")
	assert.False(t, ok)
}

func TestParseJson_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"database_driver": "postgres",
		"database_dsn": "postgres://localhost/chatbot",
		"recall_limit": 10
	}`), 0o600))

	origArgs := os.Args
	os.Args = []string{"app", "-c", path}
	defer func() { os.Args = origArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "postgres://localhost/chatbot", cfg.DatabaseDSN)
	assert.Equal(t, 10, cfg.RecallLimit)
	// untouched fields keep their defaults
	assert.Equal(t, "gemini", cfg.DefaultModel)
	assert.Len(t, cfg.Models, 2)
}

func TestParseJson_ModelsReplaceRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"models": [
			{"name": "local", "model": "llama3.1:8b", "base_url": "http://localhost:11434/v1/"}
		]
	}`), 0o600))

	origArgs := os.Args
	os.Args = []string{"app", "-config", path}
	defer func() { os.Args = origArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Len(t, cfg.Models, 1)
	assert.Equal(t, "local", cfg.Models[0].Name)
	assert.Equal(t, "http://localhost:11434/v1/", cfg.Models[0].BaseURL)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"app", "-e", "postgres", "-m", "openai", "-r", "3"}
	defer func() { os.Args = origArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "openai", cfg.DefaultModel)
	assert.Equal(t, 3, cfg.RecallLimit)
	assert.Equal(t, "chatbot.db", cfg.DatabaseDSN)
}
