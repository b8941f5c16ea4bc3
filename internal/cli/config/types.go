// Package config provides configuration management for the chtlcheck CLI.
package config

import "github.com/leapstack-labs/chtlcheck/pkg/report"

// Config holds all CLI configuration options.
type Config struct {
	Inputs       []string     `koanf:"inputs"`
	Extensions   []string     `koanf:"extensions"`
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
	LogFormat    string       `koanf:"log_format"`
	Jobs         int          `koanf:"jobs"`
	Report       ReportConfig `koanf:"report"`
	Lint         LintConfig   `koanf:"lint"`

	// ProjectRoot is the directory holding the config file, or the working directory.
	ProjectRoot string `koanf:"-"`
}

// ReportConfig controls the Markdown report artifact.
type ReportConfig struct {
	Path    string `koanf:"path"`
	Enabled bool   `koanf:"enabled"`
}

// LintConfig selects the syntax checks.
type LintConfig struct {
	Disabled []string `koanf:"disabled"`
}

// Default configuration values
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogFormat = "text"
	DefaultReport    = report.DefaultPath
	EnvPrefix        = "CHTLCHECK_"
)

// DefaultExtensions are collected from input directories.
var DefaultExtensions = []string{".chtl"}

// ConfigFileNames are searched for, in order, in each directory.
var ConfigFileNames = []string{"chtlcheck.yaml", "chtlcheck.yml"}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Extensions:   append([]string(nil), DefaultExtensions...),
		OutputFormat: DefaultOutput,
		LogFormat:    DefaultLogFormat,
		Report: ReportConfig{
			Path:    DefaultReport,
			Enabled: true,
		},
	}
}
