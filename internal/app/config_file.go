package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally onto flags and env vars.
type FileConfig struct {
	Server struct {
		Addr string `yaml:"addr" json:"addr"`
	} `yaml:"server" json:"server"`

	DB struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"db" json:"db"`

	LLM struct {
		BaseURL     string   `yaml:"base" json:"base"`
		Model       string   `yaml:"model" json:"model"`
		APIKey      string   `yaml:"key" json:"key"`
		Temperature *float64 `yaml:"temperature" json:"temperature"`
		MaxTokens   int      `yaml:"maxTokens" json:"maxTokens"`
	} `yaml:"llm" json:"llm"`

	Cache struct {
		Dir string `yaml:"dir" json:"dir"`
	} `yaml:"cache" json:"cache"`

	View struct {
		ShowValueProps *bool `yaml:"showValueProps" json:"showValueProps"`
	} `yaml:"view" json:"view"`

	Export struct {
		ValueProps *bool `yaml:"valueProps" json:"valueProps"`
		Context    *bool `yaml:"context" json:"context"`
	} `yaml:"export" json:"export"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for fields still at their
// defaults. Flags should already be parsed; explicit flags win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	def := Defaults()

	if (cfg.Addr == "" || cfg.Addr == def.Addr) && fc.Server.Addr != "" {
		cfg.Addr = fc.Server.Addr
	}
	if (cfg.DBPath == "" || cfg.DBPath == def.DBPath) && fc.DB.Path != "" {
		cfg.DBPath = fc.DB.Path
	}
	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.Temperature == def.Temperature && fc.LLM.Temperature != nil {
		cfg.Temperature = *fc.LLM.Temperature
	}
	if (cfg.MaxTokens == 0 || cfg.MaxTokens == def.MaxTokens) && fc.LLM.MaxTokens > 0 {
		cfg.MaxTokens = fc.LLM.MaxTokens
	}
	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if fc.View.ShowValueProps != nil {
		cfg.ShowValueProps = *fc.View.ShowValueProps
	}
	if fc.Export.ValueProps != nil {
		cfg.ExportValueProps = *fc.Export.ValueProps
	}
	if fc.Export.Context != nil {
		cfg.ExportContext = *fc.Export.Context
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return errors.New("config: server addr is required")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("config: db path is required")
	}
	if strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required (or set LLM_MODEL)")
	}
	if cfg.MaxTokens < 0 {
		return errors.New("config: negative token limits are not allowed")
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return errors.New("config: temperature must be within [0, 2]")
	}
	return nil
}
