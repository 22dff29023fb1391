package config

import (
	"encoding/json"
	"os"

	"github.com/sparshTatiya/Gen-AI-LLM-Chatbot/internal/flagx"
)

// JsonModelConfig is a DTO used exclusively for JSON unmarshalling.
type JsonModelConfig struct {
	Name    string `json:"name"`
	Model   string `json:"model"`
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// non-empty values are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDriver string            `json:"database_driver"`
	DatabaseDSN    string            `json:"database_dsn"`
	DefaultModel   string            `json:"default_model"`
	RecallLimit    int               `json:"recall_limit"`
	Models         []JsonModelConfig `json:"models"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Empty JSON fields leave the corresponding Config values untouched, so a
// partial file overrides only what it names. Panics on read or unmarshal
// errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDriver != "" {
		cfg.DatabaseDriver = jc.DatabaseDriver
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.DefaultModel != "" {
		cfg.DefaultModel = jc.DefaultModel
	}
	if jc.RecallLimit > 0 {
		cfg.RecallLimit = jc.RecallLimit
	}
	if len(jc.Models) > 0 {
		models := make([]ModelConfig, 0, len(jc.Models))
		for _, m := range jc.Models {
			models = append(models, ModelConfig{
				Name:    m.Name,
				Model:   m.Model,
				BaseURL: m.BaseURL,
				APIKey:  m.APIKey,
			})
		}
		cfg.Models = models
	}
}
