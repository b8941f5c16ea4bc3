// Package validator runs feature extraction, the syntax checks and statistics
// over a list of CHTL files and aggregates the results of one run.
package validator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/feature"
	"github.com/leapstack-labs/chtlcheck/pkg/lint"
	"github.com/leapstack-labs/chtlcheck/pkg/stats"

	// Register the shipped syntax checks.
	_ "github.com/leapstack-labs/chtlcheck/pkg/lint/rules"
)

// ErrNoInputs is returned by Run when there is nothing to validate.
var ErrNoInputs = errors.New("no input files")

// errInvalidUTF8 marks files whose bytes are not valid UTF-8.
var errInvalidUTF8 = errors.New("invalid UTF-8")

// DefaultExtensions are the file extensions collected from input directories.
var DefaultExtensions = []string{".chtl"}

// Config holds validator configuration.
type Config struct {
	// Catalog is the feature catalog (optional, uses feature.Default if nil)
	Catalog *feature.Catalog
	// Lint selects the syntax checks (optional, all enabled if nil)
	Lint *lint.Config
	// Jobs bounds parallel file validation; 0 or 1 runs sequentially
	Jobs int
	// Extensions filters files found in input directories (optional, DefaultExtensions if empty)
	Extensions []string
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Validator validates CHTL files.
type Validator struct {
	extractor  *feature.Extractor
	scanner    *lint.Scanner
	jobs       int
	extensions []string
	logger     *slog.Logger
}

// New creates a validator.
func New(cfg Config) (*Validator, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.Jobs < 0 {
		return nil, fmt.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}
	if unknown := cfg.Lint.Unknown(); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown check IDs: %v", unknown)
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	v := &Validator{
		extractor:  feature.NewExtractor(cfg.Catalog),
		scanner:    lint.NewScanner(cfg.Lint),
		jobs:       cfg.Jobs,
		extensions: exts,
		logger:     logger,
	}

	logger.Debug("validator ready",
		"features", v.extractor.Catalog().Len(),
		"checks", len(v.scanner.Enabled()),
		"jobs", cfg.Jobs)

	return v, nil
}

// Catalog returns the feature catalog in use.
func (v *Validator) Catalog() *feature.Catalog {
	return v.extractor.Catalog()
}

// Expand expands input directories using the configured extensions.
func (v *Validator) Expand(paths []string) ([]string, error) {
	return ExpandInputs(paths, v.extensions)
}

// Run validates every path and aggregates the results in input order.
// A per-file failure becomes a diagnostic in that file's result; only
// context cancellation aborts the run.
func (v *Validator) Run(ctx context.Context, paths []string) (*core.AggregateReport, error) {
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	v.logger.Info("starting validation", "files", len(paths), "jobs", v.jobs)

	results := make([]core.ValidationResult, len(paths))
	if v.jobs > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(v.jobs)
		for i, path := range paths {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = v.ValidateFile(path)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = v.ValidateFile(path)
		}
	}

	coverage := core.NewCoverage()
	for _, r := range results {
		coverage.AddMatches(r.Features)
	}

	agg := &core.AggregateReport{Results: results, Coverage: coverage}
	v.logger.Info("validation complete",
		"files", len(results),
		"valid", agg.ValidCount(),
		"features_covered", coverage.Len())

	return agg, nil
}

// ValidateFile reads and validates one file. Read failures yield an invalid
// result carrying a single file-level diagnostic.
func (v *Validator) ValidateFile(path string) core.ValidationResult {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied input
	if err == nil && !utf8.Valid(content) {
		err = errInvalidUTF8
	}
	if err != nil {
		d := readDiagnostic(path, err)
		v.logger.Warn("cannot read file", "path", path, "kind", d.Kind, "error", err)
		return core.ValidationResult{
			Path:        path,
			Valid:       false,
			Features:    []core.FeatureMatch{},
			Diagnostics: []core.Diagnostic{d},
			Warnings:    []core.Diagnostic{},
		}
	}

	return v.ValidateText(path, string(content))
}

// ValidateText validates already loaded text. The text is never modified.
func (v *Validator) ValidateText(path, text string) core.ValidationResult {
	features := v.extractor.Extract(text)
	diags := v.scanner.Scan(text)
	if diags == nil {
		diags = []core.Diagnostic{}
	}

	result := core.ValidationResult{
		Path:        path,
		Valid:       len(diags) == 0,
		Features:    features,
		Diagnostics: diags,
		Warnings:    []core.Diagnostic{},
		Statistics:  stats.Compute(text, features),
	}

	v.logger.Debug("validated file",
		"path", path,
		"valid", result.Valid,
		"features", len(features),
		"diagnostics", len(diags))

	return result
}

func readDiagnostic(path string, err error) core.Diagnostic {
	if errors.Is(err, fs.ErrNotExist) {
		return core.Diagnostic{
			Kind:     core.KindFileNotFound,
			Severity: core.SeverityError,
			Message:  fmt.Sprintf("file not found: %s", path),
		}
	}
	return core.Diagnostic{
		Kind:     core.KindFileReadError,
		Severity: core.SeverityError,
		Message:  fmt.Sprintf("failed to read file: %v", err),
	}
}
