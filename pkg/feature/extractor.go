package feature

import "github.com/leapstack-labs/chtlcheck/pkg/core"

// Extractor applies every catalog rule to a text.
type Extractor struct {
	catalog *Catalog
}

// NewExtractor creates an extractor over a catalog. A nil catalog means Default().
func NewExtractor(catalog *Catalog) *Extractor {
	if catalog == nil {
		catalog = Default()
	}
	return &Extractor{catalog: catalog}
}

// Catalog returns the catalog the extractor applies.
func (e *Extractor) Catalog() *Catalog {
	return e.catalog
}

// Extract counts the matches of every rule and returns those with at least
// one occurrence, in catalog declaration order. The text is never modified.
func (e *Extractor) Extract(text string) []core.FeatureMatch {
	matches := make([]core.FeatureMatch, 0, 16)
	for _, r := range e.catalog.rules {
		n := r.Count(text)
		if n == 0 {
			continue
		}
		matches = append(matches, core.FeatureMatch{
			RuleID:   r.ID,
			Label:    r.Label,
			Category: string(r.Category),
			Count:    n,
		})
	}
	return matches
}
