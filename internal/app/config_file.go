package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally onto the dotted flag names.
type FileConfig struct {
	Template  string `yaml:"template" json:"template"`
	Contract  string `yaml:"contract" json:"contract"`
	Output    string `yaml:"output" json:"output"`
	OutputPDF string `yaml:"outputPDF" json:"outputPDF"`

	LLM struct {
		BaseURL string `yaml:"base" json:"base"`
		Model   string `yaml:"model" json:"model"`
		APIKey  string `yaml:"key" json:"key"`
	} `yaml:"llm" json:"llm"`

	Summary struct {
		MinWords int `yaml:"minWords" json:"minWords"`
		MaxWords int `yaml:"maxWords" json:"maxWords"`
	} `yaml:"summary" json:"summary"`

	Cache struct {
		Dir string `yaml:"dir" json:"dir"`
		// MaxAge is a Go duration string such as "24h".
		MaxAge string `yaml:"maxAge" json:"maxAge"`
		Clear  bool   `yaml:"clear" json:"clear"`
	} `yaml:"cache" json:"cache"`

	DryRun  bool `yaml:"dryRun" json:"dryRun"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig, choosing the parser by
// file extension and trying both when the extension is unknown.
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

// Defaults shared between flag registration and file-config overlay.
const (
	OutputDefault          = "validation.md"
	CacheDirDefault        = ".contractlens-cache"
	SummaryMinWordsDefault = 150
	SummaryMaxWordsDefault = 500
)

// ApplyFileConfig overlays values from FileConfig into cfg for fields still
// at their zero or flag-default value. Flags must already be parsed; explicit
// flags keep precedence over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.TemplatePath == "" && fc.Template != "" {
		cfg.TemplatePath = fc.Template
	}
	if cfg.ContractPath == "" && fc.Contract != "" {
		cfg.ContractPath = fc.Contract
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == OutputDefault) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.OutputPDFPath == "" && fc.OutputPDF != "" {
		cfg.OutputPDFPath = fc.OutputPDF
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

	if (cfg.SummaryMinWords == 0 || cfg.SummaryMinWords == SummaryMinWordsDefault) && fc.Summary.MinWords > 0 {
		cfg.SummaryMinWords = fc.Summary.MinWords
	}
	if (cfg.SummaryMaxWords == 0 || cfg.SummaryMaxWords == SummaryMaxWordsDefault) && fc.Summary.MaxWords > 0 {
		cfg.SummaryMaxWords = fc.Summary.MaxWords
	}

	if (cfg.CacheDir == "" || cfg.CacheDir == CacheDirDefault) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge != "" {
		if d, err := time.ParseDuration(fc.Cache.MaxAge); err == nil && d > 0 {
			cfg.CacheMaxAge = d
		}
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}

	if !cfg.DryRun && fc.DryRun {
		cfg.DryRun = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
