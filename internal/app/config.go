package app

import "time"

// Config holds runtime configuration for a validation run.
type Config struct {
	TemplatePath string
	ContractPath string

	OutputPath    string
	OutputPDFPath string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Summary length bounds, in words.
	SummaryMinWords int
	SummaryMaxWords int

	// Behavior
	DryRun   bool
	Verbose  bool
	CacheDir string

	CacheMaxAge time.Duration
	CacheClear  bool
}
