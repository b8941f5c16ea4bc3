package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/feature"
	"github.com/leapstack-labs/chtlcheck/pkg/lint"
)

func init() {
	lint.Register(MixedOperator)
}

// MixedOperator flags attribute statements that assign with both ':' and '='.
var MixedOperator = lint.RuleDef{
	ID:          "SE01",
	Name:        "mixed-operator-declaration",
	Group:       groupSyntax,
	Description: "Attribute statement uses both colon and equals assignment.",
	Kind:        core.KindMixedOperatorDeclaration,
	Scope:       lint.ScopeLine,
	Severity:    core.SeverityError,
	Check:       checkMixedOperator,
	Rationale:   "CHTL treats ':' and '=' as equivalent, but a statement may use only one of them.",
	BadExample:  "class: value = another;",
	GoodExample: "class: value;",
	Fix:         "Pick one assignment operator for the statement.",
}

var mixedOperatorPattern = feature.MustCompile(`\w+\s*:\s*[^;=]+\s*=\s*[^;]+;`)

// Lines starting with these are comments.
var commentPrefixes = []string{"//", "--", "/*"}

// Substrings that legitimately carry both ':' and '=' on one line.
var mixedOperatorExclusions = []string{
	"http:", "https:",
	"function(", "console.log", "Date(", "setTimeout(", "setInterval(",
	"at:", "transform:", "content:", "background:",
}

func checkMixedOperator(src *lint.Source) []core.Diagnostic {
	var diagnostics []core.Diagnostic
	for i, line := range src.Lines() {
		trimmed := strings.TrimSpace(line)
		if hasAnyPrefix(trimmed, commentPrefixes) || containsAny(line, mixedOperatorExclusions) {
			continue
		}
		if !mixedOperatorPattern.MatchString(line) {
			continue
		}
		diagnostics = append(diagnostics, core.Diagnostic{
			Line:    i + 1,
			Message: fmt.Sprintf("line %d: mixed colon and equals assignment: %s", i+1, trimmed),
		})
	}
	return diagnostics
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
