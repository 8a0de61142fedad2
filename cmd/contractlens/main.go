package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/contractlens/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		templatePath string
		contractPath string
		outputPath   string
		outputPDF    string
		configPath   string
		llmBaseURL   string
		llmModel     string
		llmKey       string
		minWords     int
		maxWords     int
		cacheDir     string
		cacheMaxAge  time.Duration
		cacheClear   bool
		dryRun       bool
		verbose      bool
	)

	// Load a local dotenv, if any, before flag defaults read the environment.
	_ = app.LoadEnvFiles(".env")

	flag.StringVar(&templatePath, "template", "", "Path to the template document (PDF, HTML, or text)")
	flag.StringVar(&contractPath, "contract", "", "Path to the contract document (PDF, HTML, or text)")
	flag.StringVar(&outputPath, "output", app.OutputDefault, "Path to write the Markdown validation report")
	flag.StringVar(&outputPDF, "output.pdf", "", "Optional path to also write the report as PDF")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for summarization and entity recognition")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.IntVar(&minWords, "summary.minWords", app.SummaryMinWordsDefault, "Lower bound for summary length in words")
	flag.IntVar(&maxWords, "summary.maxWords", app.SummaryMaxWordsDefault, "Upper bound for summary length in words")
	flag.StringVar(&cacheDir, "cache.dir", envOr("CACHE_DIR", app.CacheDirDefault), "Model response cache directory")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear cache directory before run")
	flag.BoolVar(&dryRun, "dry-run", false, "Extract and compare clauses without calling the model")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		TemplatePath:    templatePath,
		ContractPath:    contractPath,
		OutputPath:      outputPath,
		OutputPDFPath:   outputPDF,
		LLMBaseURL:      llmBaseURL,
		LLMModel:        llmModel,
		LLMAPIKey:       llmKey,
		SummaryMinWords: minWords,
		SummaryMaxWords: maxWords,
		DryRun:          dryRun,
		Verbose:         verbose,
		CacheDir:        cacheDir,
		CacheMaxAge:     cacheMaxAge,
		CacheClear:      cacheClear,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.TemplatePath == "" || cfg.ContractPath == "" {
		fmt.Fprintln(os.Stderr, "contractlens: both -template and -contract are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
