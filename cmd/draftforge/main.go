package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/draftforge/draftforge/internal/api"
	"github.com/draftforge/draftforge/internal/app"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	def := app.Defaults()
	var (
		addr        string
		dbPath      string
		cacheDir    string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		temperature float64
		maxTokens   int
		configPath  string
		verbose     bool
	)
	flag.StringVar(&addr, "addr", def.Addr, "HTTP listen address")
	flag.StringVar(&dbPath, "db", def.DBPath, "Path to the provider profile database")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for cached model responses; empty disables caching")
	flag.StringVar(&llmBaseURL, "llm.base", "", "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", "", "Model name")
	flag.StringVar(&llmKey, "llm.key", "", "API key for the OpenAI-compatible server")
	flag.Float64Var(&temperature, "llm.temperature", def.Temperature, "Sampling temperature for drafting passes")
	flag.IntVar(&maxTokens, "llm.maxTokens", def.MaxTokens, "Completion token cap per drafting pass")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	// Precedence: flag > env > file > defaults. The file and env overlays run
	// first; flags the user actually passed are applied on top.
	cfg := def
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = addr
		case "db":
			cfg.DBPath = dbPath
		case "cache.dir":
			cfg.CacheDir = cacheDir
		case "llm.base":
			cfg.LLMBaseURL = llmBaseURL
		case "llm.model":
			cfg.LLMModel = llmModel
		case "llm.key":
			cfg.LLMAPIKey = llmKey
		case "llm.temperature":
			cfg.Temperature = temperature
		case "llm.maxTokens":
			cfg.MaxTokens = maxTokens
		case "v":
			cfg.Verbose = verbose
		}
	})

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init application")
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewServer(a),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}
