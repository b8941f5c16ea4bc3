package core

// =============================================================================
// Features
// =============================================================================

// FeatureMatch records how often one catalog rule matched a file.
// Only matches with Count >= 1 are ever stored in a result.
type FeatureMatch struct {
	RuleID   string `json:"rule_id" yaml:"rule_id"`
	Label    string `json:"label" yaml:"label"`
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// =============================================================================
// Diagnostics
// =============================================================================

// DiagnosticKind classifies a diagnostic.
type DiagnosticKind string

// File-level kinds stop analysis of the file they are reported for.
const (
	KindFileNotFound  DiagnosticKind = "FileNotFound"
	KindFileReadError DiagnosticKind = "FileReadError"
)

// Rule-level kinds accumulate; a file may carry any combination of them.
const (
	KindMixedOperatorDeclaration       DiagnosticKind = "MixedOperatorDeclaration"
	KindChainedInheritance             DiagnosticKind = "ChainedInheritance"
	KindInvalidExceptConstraintTarget  DiagnosticKind = "InvalidExceptConstraintTarget"
	KindDisallowedDeleteSelectorTarget DiagnosticKind = "DisallowedDeleteSelectorTarget"
)

// IsFileLevel reports whether the kind describes a file access failure.
func (k DiagnosticKind) IsFileLevel() bool {
	return k == KindFileNotFound || k == KindFileReadError
}

// Diagnostic is a reported violation. Line is 1-based and 0 when the
// diagnostic is not tied to a line; Count is set for whole-text checks.
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind" yaml:"kind"`
	RuleID   string         `json:"rule_id,omitempty" yaml:"rule_id,omitempty"`
	Severity Severity       `json:"severity" yaml:"severity"`
	Line     int            `json:"line,omitempty" yaml:"line,omitempty"`
	Count    int            `json:"count,omitempty" yaml:"count,omitempty"`
	Message  string         `json:"message" yaml:"message"`
}

// =============================================================================
// Statistics
// =============================================================================

// FileStatistics holds the size and comment metrics of one file.
type FileStatistics struct {
	TotalLines    int     `json:"total_lines" yaml:"total_lines"`
	NonEmptyLines int     `json:"non_empty_lines" yaml:"non_empty_lines"`
	CommentLines  int     `json:"comment_lines" yaml:"comment_lines"`
	CodeLines     int     `json:"code_lines" yaml:"code_lines"`
	ByteSize      int     `json:"byte_size" yaml:"byte_size"`
	KilobyteSize  float64 `json:"kilobyte_size" yaml:"kilobyte_size"`
	// FeatureCount is the number of distinct feature rules matched, not the
	// sum of their occurrences and not the number of categories.
	FeatureCount  int     `json:"feature_count" yaml:"feature_count"`
	// CategoryCount is the number of distinct categories among those rules.
	CategoryCount int     `json:"category_count" yaml:"category_count"`
	CommentRatio  float64 `json:"comment_ratio_percent" yaml:"comment_ratio_percent"`
}

// =============================================================================
// Results
// =============================================================================

// ValidationResult is the outcome of validating one input path.
// Valid is true exactly when Diagnostics is empty.
type ValidationResult struct {
	Path        string         `json:"path" yaml:"path"`
	Valid       bool           `json:"valid" yaml:"valid"`
	Features    []FeatureMatch `json:"features" yaml:"features"`
	Diagnostics []Diagnostic   `json:"diagnostics" yaml:"diagnostics"`
	// Warnings is reserved for non-fatal advisories. No shipped check emits one.
	Warnings   []Diagnostic   `json:"warnings" yaml:"warnings"`
	Statistics FileStatistics `json:"statistics" yaml:"statistics"`
}

// AggregateReport collects every result of one run, in input order, together
// with the labels matched anywhere during that run.
type AggregateReport struct {
	Results  []ValidationResult `json:"results" yaml:"results"`
	Coverage *Coverage          `json:"coverage" yaml:"coverage"`
}

// ValidCount returns the number of valid results.
func (a *AggregateReport) ValidCount() int {
	n := 0
	for _, r := range a.Results {
		if r.Valid {
			n++
		}
	}
	return n
}

// AllValid reports whether every result is valid.
func (a *AggregateReport) AllValid() bool {
	return a.ValidCount() == len(a.Results)
}
