package feature

import "regexp"

// Category is a CHTL syntax subsystem.
type Category string

// Categories in catalog declaration order.
const (
	CategoryComments      Category = "comments"
	CategoryMarkup        Category = "markup"
	CategoryTemplates     Category = "templates"
	CategoryCustom        Category = "custom"
	CategoryOrigin        Category = "origin"
	CategoryImport        Category = "import"
	CategoryNamespace     Category = "namespace"
	CategoryConfiguration Category = "configuration"
	CategoryConstraint    Category = "constraint"
	CategoryStyling       Category = "styling"
	CategoryScripting     Category = "scripting"
)

// FeatureRule detects one syntax construct.
type FeatureRule struct {
	ID       string         // Stable identifier, e.g. "JS03"
	Category Category       // Owning subsystem
	Label    string         // Human-readable name used in reports and coverage
	Source   string         // Pattern as written, before Unicode widening
	Pattern  *regexp.Regexp // Compiled matcher
}

// Count returns the number of non-overlapping matches of the rule in text.
func (r FeatureRule) Count(text string) int {
	return len(r.Pattern.FindAllStringIndex(text, -1))
}

// rule builds a FeatureRule from a hard-coded source. It panics on a bad
// pattern, which can only happen if the built-in table is edited incorrectly.
func rule(id string, cat Category, label, source string) FeatureRule {
	return FeatureRule{
		ID:       id,
		Category: cat,
		Label:    label,
		Source:   source,
		Pattern:  MustCompile(source),
	}
}
