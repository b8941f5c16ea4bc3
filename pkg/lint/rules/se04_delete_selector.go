package rules

import (
	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/feature"
	"github.com/leapstack-labs/chtlcheck/pkg/lint"
)

func init() {
	lint.Register(DeleteSelector)
}

// DeleteSelector flags delete statements aimed at a class or id selector.
var DeleteSelector = lint.RuleDef{
	ID:          "SE04",
	Name:        "delete-selector-target",
	Group:       groupSyntax,
	Description: "delete targets a .class or #id selector.",
	Kind:        core.KindDisallowedDeleteSelectorTarget,
	Scope:       lint.ScopeText,
	Severity:    core.SeverityError,
	Check: lint.CountCheck(
		feature.MustCompile(`delete\s+[.#]\w+\s*[;,]`),
		"delete targets a CSS selector: %d occurrence(s)",
	),
	Rationale:   "delete removes properties, elements or inherited templates, never selectors.",
	BadExample:  "delete .box;",
	GoodExample: "delete color;",
	Fix:         "Delete the property or element instead of the selector.",
}
