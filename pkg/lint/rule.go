package lint

import "github.com/leapstack-labs/chtlcheck/pkg/core"

// Info extracts metadata from a RuleDef for documentation/tooling.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		Type:            core.RuleTypeCheck,
		Scope:           string(r.Scope),
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

// AllRules returns metadata for every registered check, sorted by ID.
func AllRules() []core.RuleInfo {
	defs := GetAll()
	infos := make([]core.RuleInfo, 0, len(defs))
	for _, d := range defs {
		infos = append(infos, d.Info())
	}
	return infos
}
