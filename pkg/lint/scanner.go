package lint

import "github.com/leapstack-labs/chtlcheck/pkg/core"

// Scanner runs the registered checks against CHTL text.
type Scanner struct {
	config *Config
}

// NewScanner creates a new scanner with optional configuration.
func NewScanner(config *Config) *Scanner {
	if config == nil {
		config = NewConfig()
	}
	return &Scanner{config: config}
}

// Scan runs every enabled check in ID order and returns the accumulated
// diagnostics. One check never suppresses another.
func (s *Scanner) Scan(text string) []core.Diagnostic {
	src := NewSource(text)

	var diagnostics []core.Diagnostic
	for _, rule := range GetAll() {
		if s.config.IsDisabled(rule.ID) {
			continue
		}

		diags := rule.Check(src)
		for i := range diags {
			diags[i].RuleID = rule.ID
			diags[i].Kind = rule.Kind
			diags[i].Severity = rule.Severity
		}

		diagnostics = append(diagnostics, diags...)
	}

	return diagnostics
}

// Enabled returns the checks this scanner runs, sorted by ID.
func (s *Scanner) Enabled() []RuleDef {
	var rules []RuleDef
	for _, rule := range GetAll() {
		if !s.config.IsDisabled(rule.ID) {
			rules = append(rules, rule)
		}
	}
	return rules
}
