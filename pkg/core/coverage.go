package core

import (
	"encoding/json"
	"slices"
	"sync"
)

// Coverage is the set of feature labels observed during one run.
// It is append-only and safe for concurrent use; adding a present label is a no-op.
// A Coverage belongs to exactly one run and must not be reused.
type Coverage struct {
	mu     sync.RWMutex
	labels map[string]struct{}
}

// NewCoverage creates an empty coverage set.
func NewCoverage() *Coverage {
	return &Coverage{labels: make(map[string]struct{})}
}

// Add inserts labels into the set.
func (c *Coverage) Add(labels ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range labels {
		c.labels[l] = struct{}{}
	}
}

// AddMatches inserts the label of every match.
func (c *Coverage) AddMatches(matches []FeatureMatch) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range matches {
		c.labels[m.Label] = struct{}{}
	}
}

// Has reports whether the label was observed.
func (c *Coverage) Has(label string) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.labels[label]
	return ok
}

// Len returns the number of distinct labels.
func (c *Coverage) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.labels)
}

// Labels returns the observed labels sorted alphabetically.
func (c *Coverage) Labels() []string {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	out := make([]string, 0, len(c.labels))
	for l := range c.labels {
		out = append(out, l)
	}
	c.mu.RUnlock()
	slices.Sort(out)
	return out
}

// MarshalJSON encodes the set as a sorted list.
func (c *Coverage) MarshalJSON() ([]byte, error) {
	labels := c.Labels()
	if labels == nil {
		labels = []string{}
	}
	return json.Marshal(labels)
}

// MarshalYAML encodes the set as a sorted list.
func (c *Coverage) MarshalYAML() (any, error) {
	return c.Labels(), nil
}
