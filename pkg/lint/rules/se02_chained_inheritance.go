package rules

import (
	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/feature"
	"github.com/leapstack-labs/chtlcheck/pkg/lint"
)

func init() {
	lint.Register(ChainedInheritance)
}

// ChainedInheritance flags inherit statements naming more than one parent.
var ChainedInheritance = lint.RuleDef{
	ID:          "SE02",
	Name:        "chained-inheritance",
	Group:       groupSyntax,
	Description: "inherit names several @Style parents in one statement.",
	Kind:        core.KindChainedInheritance,
	Scope:       lint.ScopeText,
	Severity:    core.SeverityError,
	Check: lint.CountCheck(
		feature.MustCompile(`inherit\s+@Style\s+\w+\s*,\s*@Style`),
		"unsupported chained inheritance: %d occurrence(s)",
	),
	Rationale:   "An inherit statement takes exactly one parent.",
	BadExample:  "inherit @Style A, @Style B;",
	GoodExample: "inherit @Style A;\ninherit @Style B;",
	Fix:         "Split the statement into one inherit per parent.",
}
