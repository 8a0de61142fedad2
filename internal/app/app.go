package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/contractlens/internal/cache"
	"github.com/hyperifyio/contractlens/internal/clause"
	"github.com/hyperifyio/contractlens/internal/highlight"
	"github.com/hyperifyio/contractlens/internal/ingest"
	"github.com/hyperifyio/contractlens/internal/llm"
	"github.com/hyperifyio/contractlens/internal/ner"
	"github.com/hyperifyio/contractlens/internal/report"
	"github.com/hyperifyio/contractlens/internal/summarize"
)

// App wires the validation pipeline together: ingest both documents, extract
// and compare clauses, then decorate the report with an LLM summary and
// entity highlights.
type App struct {
	cfg       Config
	ai        llm.Client
	respCache *cache.ResponseCache
}

// New builds the application from configuration. The LLM client is not
// constructed for dry runs; a dry run never talks to the model.
func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{cfg: cfg}

	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			// Best effort; an unpurgeable cache should not fail startup.
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
		a.respCache = &cache.ResponseCache{Dir: cfg.CacheDir}
	}

	if cfg.DryRun {
		return a, nil
	}

	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	client := openai.NewClientWithConfig(transportCfg)
	a.ai = &llm.OpenAIProvider{Inner: client}

	// Connectivity preflight: list models, warn rather than fail so the
	// summary-failure path can still produce a report.
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if models, err := client.ListModels(pctx); err != nil {
		log.Warn().Err(err).Msg("LLM model list failed; continuing")
	} else {
		log.Debug().Int("count", len(models.Models)).Msg("LLM models available")
	}

	return a, nil
}

// Run executes one validation pass over the configured document pair and
// writes the Markdown report, plus a PDF rendering when requested.
func (a *App) Run(ctx context.Context) error {
	templateText, err := a.readDocument(a.cfg.TemplatePath)
	if err != nil {
		return fmt.Errorf("template: %w", err)
	}
	contractText, err := a.readDocument(a.cfg.ContractPath)
	if err != nil {
		return fmt.Errorf("contract: %w", err)
	}

	templateClauses := clause.Extract(templateText)
	contractClauses := clause.Extract(contractText)
	log.Info().
		Int("templateClauses", templateClauses.Len()).
		Int("contractClauses", contractClauses.Len()).
		Msg("clauses extracted")

	deviations := clause.Compare(templateClauses, contractClauses)
	log.Info().Int("deviations", len(deviations)).Msg("clause sets compared")

	in := report.Input{
		TemplateName:    filepath.Base(a.cfg.TemplatePath),
		ContractName:    filepath.Base(a.cfg.ContractPath),
		TemplateClauses: templateClauses,
		ContractClauses: contractClauses,
		Deviations:      deviations,
	}

	if !a.cfg.DryRun {
		recognizer := &ner.Service{Client: a.ai, Model: a.cfg.LLMModel, Cache: a.respCache}
		entities, err := recognizer.Recognize(ctx, contractText)
		if err != nil {
			// The report is still useful without entities.
			log.Warn().Err(err).Msg("entity recognition failed; continuing without entities")
			entities = nil
		}

		summarizer := &summarize.Service{
			Client:   a.ai,
			Model:    a.cfg.LLMModel,
			Cache:    a.respCache,
			MinWords: a.cfg.SummaryMinWords,
			MaxWords: a.cfg.SummaryMaxWords,
		}
		summary := summarizer.Summary(ctx, contractText)

		in.Summary = highlight.Apply(summary, ner.Surfaces(entities))
		in.Entities = entities
		in.Model = a.cfg.LLMModel
	}

	md := report.Render(in)
	if err := os.WriteFile(a.cfg.OutputPath, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Bool("dryRun", a.cfg.DryRun).Msg("wrote report")

	if a.cfg.OutputPDFPath != "" {
		if err := writeReportPDF(md, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.OutputPDFPath).Msg("wrote PDF report")
	}
	return nil
}

func (a *App) readDocument(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no document path configured")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := ingest.Text(b)
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", path, err)
	}
	return text, nil
}
