// Package lint provides the disallowed-construct scanner for CHTL sources.
//
// # Architecture
//
// The lint package follows the same two-layer split the feature catalog uses:
//
//  1. Root package (pkg/lint/): shared contracts (RuleDef, Source, Config), the registry and the Scanner
//  2. Rules package (pkg/lint/rules/): the shipped checks, one file per check
//
// # Rule Registration
//
// Checks are registered via init() functions when their package is imported:
//
//	import _ "github.com/leapstack-labs/chtlcheck/pkg/lint/rules"
//
// # Shipped Checks
//
//   - SE01 mixed-operator-declaration: colon and equals in one attribute statement (per line)
//   - SE02 chained-inheritance: several @Style parents in one inherit statement
//   - SE03 invalid-except-target: except naming a bare @Style, @Var or @JavaScript marker
//   - SE04 delete-selector-target: delete aimed at a .class or #id selector
//
// Every check reports with error severity, so any diagnostic invalidates the file.
//
// # Configuration
//
// Use Config to skip checks:
//
//	config := lint.NewConfig()
//	config.Disable("SE01")
//	scanner := lint.NewScanner(config)
//	diags := scanner.Scan(text)
//
// # Creating Custom Checks
//
//	var MyCheck = lint.RuleDef{
//		ID:          "SE99",
//		Name:        "my-check",
//		Group:       "syntax",
//		Description: "My custom check",
//		Kind:        "MyKind",
//		Severity:    core.SeverityError,
//		Check:       checkMine,
//	}
//
//	func init() {
//		lint.Register(MyCheck)
//	}
package lint
