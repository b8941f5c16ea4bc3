package lint

import "strings"

// Config controls which checks run.
//
// There are no severity overrides: every check reports errors, and a file is
// valid exactly when it has no diagnostics.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules: make(map[string]bool),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[strings.ToUpper(ruleID)]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[strings.ToUpper(strings.TrimSpace(ruleID))] = true
	return c
}

// Unknown returns the disabled IDs that are not registered.
func (c *Config) Unknown() []string {
	if c == nil {
		return nil
	}
	var unknown []string
	for id := range c.DisabledRules {
		if _, ok := GetByID(id); !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown
}
