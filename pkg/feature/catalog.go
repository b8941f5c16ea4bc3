package feature

import (
	"errors"
	"fmt"
)

// Catalog is an immutable, ordered registry of feature rules.
// It is safe for concurrent use.
type Catalog struct {
	rules      []FeatureRule
	byID       map[string]int
	byLabel    map[string]int
	categories []Category
}

// NewCatalog builds a catalog from rules in declaration order.
// IDs and labels must be unique and every rule needs a pattern.
func NewCatalog(rules ...FeatureRule) (*Catalog, error) {
	c := &Catalog{
		rules:   make([]FeatureRule, 0, len(rules)),
		byID:    make(map[string]int, len(rules)),
		byLabel: make(map[string]int, len(rules)),
	}

	seenCat := make(map[Category]bool)
	var errs []error
	for _, r := range rules {
		switch {
		case r.ID == "" || r.Label == "":
			errs = append(errs, fmt.Errorf("rule %q: id and label are required", r.ID))
			continue
		case r.Pattern == nil:
			errs = append(errs, fmt.Errorf("rule %s: missing pattern", r.ID))
			continue
		}
		if _, dup := c.byID[r.ID]; dup {
			errs = append(errs, fmt.Errorf("rule %s: duplicate id", r.ID))
			continue
		}
		if _, dup := c.byLabel[r.Label]; dup {
			errs = append(errs, fmt.Errorf("rule %s: duplicate label %q", r.ID, r.Label))
			continue
		}

		c.byID[r.ID] = len(c.rules)
		c.byLabel[r.Label] = len(c.rules)
		c.rules = append(c.rules, r)
		if !seenCat[r.Category] {
			seenCat[r.Category] = true
			c.categories = append(c.categories, r.Category)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Rules returns a copy of all rules in declaration order.
func (c *Catalog) Rules() []FeatureRule {
	out := make([]FeatureRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Len returns the number of rules.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Rule returns a rule by its ID.
func (c *Catalog) Rule(id string) (FeatureRule, bool) {
	i, ok := c.byID[id]
	if !ok {
		return FeatureRule{}, false
	}
	return c.rules[i], true
}

// RuleByLabel returns a rule by its label.
func (c *Catalog) RuleByLabel(label string) (FeatureRule, bool) {
	i, ok := c.byLabel[label]
	if !ok {
		return FeatureRule{}, false
	}
	return c.rules[i], true
}

// ByCategory returns the rules of one category in declaration order.
func (c *Catalog) ByCategory(cat Category) []FeatureRule {
	var out []FeatureRule
	for _, r := range c.rules {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns the categories in the order they first appear.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Labels returns every rule label in declaration order.
func (c *Catalog) Labels() []string {
	out := make([]string, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.Label
	}
	return out
}
