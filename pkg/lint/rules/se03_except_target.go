package rules

import (
	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/feature"
	"github.com/leapstack-labs/chtlcheck/pkg/lint"
)

func init() {
	lint.Register(ExceptTarget)
}

// ExceptTarget flags except constraints that name a bare type marker.
var ExceptTarget = lint.RuleDef{
	ID:          "SE03",
	Name:        "invalid-except-target",
	Group:       groupSyntax,
	Description: "except names a bare @Style, @Var or @JavaScript marker.",
	Kind:        core.KindInvalidExceptConstraintTarget,
	Scope:       lint.ScopeText,
	Severity:    core.SeverityError,
	Check: lint.CountCheck(
		feature.MustCompile(`except\s+@(JavaScript|Style|Var)\s*[;,]`),
		"invalid except constraint target: %d occurrence(s)",
	),
	Rationale:   "Property-type markers are only valid after a [Template] or [Custom] prefix.",
	BadExample:  "except @Style;",
	GoodExample: "except [Template] @Style;",
	Fix:         "Qualify the marker with [Template] or [Custom], or constrain an element instead.",
}
