package app

// Config holds runtime configuration for the service.
type Config struct {
	// Server
	Addr string

	// Storage
	DBPath   string
	CacheDir string

	// LLM
	LLMBaseURL  string
	LLMModel    string
	LLMAPIKey   string
	Temperature float64
	MaxTokens   int

	// Surfaces
	ShowValueProps   bool
	ExportValueProps bool
	ExportContext    bool

	// Behavior
	Verbose bool
}

// Defaults returns the built-in configuration before file, env and flag
// overlays are applied.
func Defaults() Config {
	return Config{
		Addr:             ":8070",
		DBPath:           "draftforge.db",
		Temperature:      0.9,
		MaxTokens:        1700,
		ShowValueProps:   true,
		ExportValueProps: true,
		ExportContext:    true,
	}
}
