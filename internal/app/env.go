package app

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvToConfig overlays set environment variables onto cfg, overriding
// whatever earlier layers (defaults, config file) put there. Callers apply
// explicitly passed flags afterwards, so the effective precedence is
// flag > env > file > defaults.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if v := os.Getenv("DRAFTFORGE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DRAFTFORGE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLMBaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLMModel = v
	}
	// OPENAI_API_KEY kept as a fallback for drop-in compatibility
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLMAPIKey = v
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if s := os.Getenv("LLM_TEMPERATURE"); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if s := os.Getenv("LLM_MAX_TOKENS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	setBool := func(dst *bool, envKey string) {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			switch s {
			case "1", "true", "yes", "on":
				*dst = true
			case "0", "false", "no", "off":
				*dst = false
			}
		}
	}
	setBool(&cfg.ShowValueProps, "SHOW_VALUE_PROPS")
	setBool(&cfg.ExportValueProps, "EXPORT_VALUE_PROPS")
	setBool(&cfg.ExportContext, "EXPORT_CONTEXT")
	setBool(&cfg.Verbose, "VERBOSE")
}
