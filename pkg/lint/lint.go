package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leapstack-labs/chtlcheck/pkg/core"
)

// Scope tells whether a check reports per line or once for the whole text.
// It is part of a check's documentation, shown by the checks command.
type Scope string

// Check scopes.
const (
	ScopeLine Scope = "line"
	ScopeText Scope = "text"
)

// Source is the text handed to every check. Lines are split once and shared.
type Source struct {
	Text  string
	lines []string
}

// NewSource wraps file text for checking.
func NewSource(text string) *Source {
	return &Source{Text: text}
}

// Lines returns the text split on newlines. An empty text has one empty line.
func (s *Source) Lines() []string {
	if s.lines == nil {
		s.lines = strings.Split(s.Text, "\n")
	}
	return s.lines
}

// CheckFunc inspects a source and returns its findings. The scanner fills in
// RuleID, Kind and Severity; checks set Line or Count and the Message.
type CheckFunc func(src *Source) []core.Diagnostic

// RuleDef is a data-driven check definition.
// Rules are stateless - all context comes via the Source.
type RuleDef struct {
	ID          string              // Unique identifier, e.g., "SE01"
	Name        string              // Short name, e.g., "mixed-operator-declaration"
	Group       string              // Category, e.g., "syntax"
	Description string              // Human-readable description
	Kind        core.DiagnosticKind // Kind stamped on every diagnostic
	Scope       Scope               // Line or whole-text reporting
	Severity    core.Severity       // Default severity
	Check       CheckFunc           // The check function

	// Documentation fields
	Rationale   string
	BadExample  string
	GoodExample string
	Fix         string
}

// CountCheck builds a whole-text CheckFunc that reports one diagnostic with
// the number of non-overlapping matches of re, or nothing when there are none.
func CountCheck(re *regexp.Regexp, format string) CheckFunc {
	return func(src *Source) []core.Diagnostic {
		n := len(re.FindAllStringIndex(src.Text, -1))
		if n == 0 {
			return nil
		}
		return []core.Diagnostic{{
			Count:   n,
			Message: fmt.Sprintf(format, n),
		}}
	}
}
