// Package rules provides the shipped CHTL syntax checks.
//
// Rules in this package:
//   - SE01: Colon and equals assignment mixed in one attribute statement
//   - SE02: Chained @Style inheritance
//   - SE03: except naming a bare property-type marker
//   - SE04: delete targeting a CSS selector
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/chtlcheck/pkg/lint/rules"
package rules

// Group shared by every shipped check.
const groupSyntax = "syntax"
