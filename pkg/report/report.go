// Package report turns the aggregate of a validation run into a summary,
// a coverage checklist and a Markdown document.
package report

import (
	"path/filepath"
	"time"

	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/feature"
	"github.com/leapstack-labs/chtlcheck/pkg/stats"
)

// DefaultPath is where the Markdown report is written unless configured otherwise.
const DefaultPath = "CHTL_SYNTAX_VALIDATION_REPORT.md"

// Options carries the run metadata printed in the report header.
type Options struct {
	RunID       string
	GeneratedAt time.Time
	Version     string
	// Catalog resolves categories of checklist labels (optional, feature.Default if nil)
	Catalog *feature.Catalog
}

// Summary holds run-level counts. Totals cover valid files only.
type Summary struct {
	FilesTotal     int     `json:"files_total" yaml:"files_total"`
	FilesValid     int     `json:"files_valid" yaml:"files_valid"`
	SuccessRate    float64 `json:"success_rate_percent" yaml:"success_rate_percent"`
	TotalLines     int     `json:"total_lines" yaml:"total_lines"`
	TotalFeatures  int     `json:"total_features" yaml:"total_features"`
	TotalKilobytes float64 `json:"total_kilobytes" yaml:"total_kilobytes"`
}

// ChecklistItem is one feature label with its usage across valid files.
type ChecklistItem struct {
	Label       string `json:"label" yaml:"label"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Present     bool   `json:"present" yaml:"present"`
	FilesUsing  int    `json:"files_using" yaml:"files_using"`
	Occurrences int    `json:"occurrences" yaml:"occurrences"`
}

// FileSection is the per-file part of the report.
type FileSection struct {
	Path        string              `json:"path" yaml:"path"`
	Name        string              `json:"name" yaml:"name"`
	Valid       bool                `json:"valid" yaml:"valid"`
	Statistics  core.FileStatistics `json:"statistics" yaml:"statistics"`
	Features    []core.FeatureMatch `json:"features" yaml:"features"`
	Diagnostics []core.Diagnostic   `json:"diagnostics" yaml:"diagnostics"`
}

// FileLevelError returns the diagnostic of a file that could not be read.
func (f FileSection) FileLevelError() (core.Diagnostic, bool) {
	for _, d := range f.Diagnostics {
		if d.Kind.IsFileLevel() {
			return d, true
		}
	}
	return core.Diagnostic{}, false
}

// Report is the rendered-independent outcome of one run.
type Report struct {
	RunID        string          `json:"run_id" yaml:"run_id"`
	GeneratedAt  time.Time       `json:"generated_at" yaml:"generated_at"`
	Version      string          `json:"version,omitempty" yaml:"version,omitempty"`
	Summary      Summary         `json:"summary" yaml:"summary"`
	Expected     []ChecklistItem `json:"expected" yaml:"expected"`
	Additional   []ChecklistItem `json:"additional" yaml:"additional"`
	Files        []FileSection   `json:"files" yaml:"files"`
	CoveredCount int             `json:"covered_count" yaml:"covered_count"`
	CoverageRate float64         `json:"coverage_rate_percent" yaml:"coverage_rate_percent"`
	Verdict      Verdict         `json:"verdict" yaml:"verdict"`
}

// ExpectedCount returns the size of the checklist.
func (r *Report) ExpectedCount() int {
	return len(r.Expected)
}

// Generate builds the report. It does not touch the filesystem and does not
// modify agg.
func Generate(agg *core.AggregateReport, opts Options) *Report {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = feature.Default()
	}

	var results []core.ValidationResult
	var coverage *core.Coverage
	if agg != nil {
		results = agg.Results
		coverage = agg.Coverage
	}

	r := &Report{
		RunID:       opts.RunID,
		GeneratedAt: opts.GeneratedAt,
		Version:     opts.Version,
	}

	usage := make(map[string]*ChecklistItem)
	for _, res := range results {
		r.Summary.FilesTotal++
		r.Files = append(r.Files, newFileSection(res))
		if !res.Valid {
			continue
		}
		r.Summary.FilesValid++
		r.Summary.TotalLines += res.Statistics.TotalLines
		r.Summary.TotalFeatures += len(res.Features)
		r.Summary.TotalKilobytes += res.Statistics.KilobyteSize
		for _, f := range res.Features {
			item, ok := usage[f.Label]
			if !ok {
				item = &ChecklistItem{Label: f.Label, Category: f.Category}
				usage[f.Label] = item
			}
			item.FilesUsing++
			item.Occurrences += f.Count
		}
	}
	r.Summary.SuccessRate = stats.Percent(r.Summary.FilesValid, r.Summary.FilesTotal)
	r.Summary.TotalKilobytes = stats.Round(r.Summary.TotalKilobytes, 2)

	r.Expected = make([]ChecklistItem, 0, len(expectedLabels))
	for _, label := range expectedLabels {
		item := ChecklistItem{Label: label, Present: coverage.Has(label)}
		if rule, ok := catalog.RuleByLabel(label); ok {
			item.Category = string(rule.Category)
		}
		if u, ok := usage[label]; ok {
			item.FilesUsing = u.FilesUsing
			item.Occurrences = u.Occurrences
		}
		if item.Present {
			r.CoveredCount++
		}
		r.Expected = append(r.Expected, item)
	}

	// Labels() is sorted, so additional features come out alphabetically.
	r.Additional = []ChecklistItem{}
	for _, label := range coverage.Labels() {
		if isExpected(label) {
			continue
		}
		item := ChecklistItem{Label: label, Present: true}
		if rule, ok := catalog.RuleByLabel(label); ok {
			item.Category = string(rule.Category)
		}
		if u, ok := usage[label]; ok {
			item.FilesUsing = u.FilesUsing
			item.Occurrences = u.Occurrences
		}
		r.Additional = append(r.Additional, item)
	}

	r.CoverageRate = stats.Percent(r.CoveredCount, len(expectedLabels))
	r.Verdict = Decide(r.Summary.FilesValid, r.Summary.FilesTotal, r.CoveredCount, len(expectedLabels))

	return r
}

func newFileSection(res core.ValidationResult) FileSection {
	return FileSection{
		Path:        res.Path,
		Name:        filepath.Base(res.Path),
		Valid:       res.Valid,
		Statistics:  res.Statistics,
		Features:    res.Features,
		Diagnostics: res.Diagnostics,
	}
}
