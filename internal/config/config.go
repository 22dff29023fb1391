// Package config assembles runtime settings from defaults, an optional JSON
// file and command-line flags, in that order of precedence.
package config

import "os"

// ModelConfig describes one chat model the application can talk to.
//
// Fields:
//   - Name: short name the user types to select the model (e.g. "gemini").
//   - Model: provider model id (e.g. "gemini-2.0-flash").
//   - BaseURL: OpenAI-compatible endpoint; empty means the OpenAI default.
//   - APIKey: credential for the endpoint.
type ModelConfig struct {
	Name    string
	Model   string
	BaseURL string
	APIKey  string
}

// Config holds runtime settings for the chatbot.
//
// Fields:
//   - DatabaseDriver: "sqlite" or "postgres".
//   - DatabaseDSN: connection string, a file path for sqlite.
//   - DefaultModel: name of the model active at startup.
//   - RecallLimit: how many past conversations recall and summary use.
//   - Models: the configured model roster.
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	DefaultModel   string
	RecallLimit    int
	Models         []ModelConfig
}

// LoadDefaults populates c with sensible defaults. API keys come from the
// environment so they never need to live in a config file.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "chatbot.db"
	c.DefaultModel = "gemini"
	c.RecallLimit = 5
	c.Models = []ModelConfig{
		{
			Name:    "gemini",
			Model:   "gemini-2.0-flash",
			BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/",
			APIKey:  os.Getenv("GEMINI_API_KEY"),
		},
		{
			Name:   "openai",
			Model:  "gpt-4o-mini",
			APIKey: os.Getenv("OPENAI_API_KEY"),
		},
	}
}

// Model returns the ModelConfig with the given name, or false when the name
// is not configured.
func (c *Config) Model(name string) (ModelConfig, bool) {
	for _, m := range c.Models {
		if m.Name == name {
			return m, true
		}
	}
	return ModelConfig{}, false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
