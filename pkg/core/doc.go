// Package core defines the shared language of the chtlcheck system.
//
// This package contains:
//   - Per-file analysis values (FeatureMatch, Diagnostic, FileStatistics)
//   - Run results (ValidationResult, AggregateReport, Coverage)
//   - Severity and RuleInfo used by checks and tooling
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
