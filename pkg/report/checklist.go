package report

// expectedLabels is the curated list of constructs a complete CHTL test
// suite is expected to exercise. It is kept apart from the feature catalog:
// the catalog may grow without changing what the coverage rate measures.
var expectedLabels = []string{
	"Single-line comment", "Multi-line comment", "Generator comment",
	"Text node", "Colon attribute", "Equals attribute", "HTML element",
	"Style group template", "Element template", "Variable group template",
	"Composed inheritance", "Explicit inheritance",
	"Custom style group", "Custom element", "Custom variable group",
	"Property deletion", "Index access",
	"HTML embedding", "Style embedding", "JavaScript embedding", "Custom type embedding",
	"Style block", "Class selector", "ID selector", "Pseudo-class selector",
	"Pseudo-element selector", "Variable usage", "Variable specialization",
	"Script block", "Enhanced selector", "Arrow operator",
	"listen function", "delegate function", "animate function",
	"Virtual object", "iNeverAway function", "State overload",
	"CHTL module import", "CJMOD extension import",
	"Namespace definition", "Namespace usage",
	"Configuration block", "Info block", "Export block",
	"Except constraint",
}

// Checklist returns the expected feature labels in display order.
func Checklist() []string {
	out := make([]string, len(expectedLabels))
	copy(out, expectedLabels)
	return out
}

func isExpected(label string) bool {
	for _, l := range expectedLabels {
		if l == label {
			return true
		}
	}
	return false
}
