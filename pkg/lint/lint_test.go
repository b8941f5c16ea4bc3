package lint

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/chtlcheck/pkg/core"
)

func withCleanRegistry(t *testing.T) {
	t.Helper()
	Clear()
	t.Cleanup(Clear)
}

func lineCheck(word string) CheckFunc {
	re := regexp.MustCompile(word)
	return func(src *Source) []core.Diagnostic {
		var diags []core.Diagnostic
		for i, line := range src.Lines() {
			if re.MatchString(line) {
				diags = append(diags, core.Diagnostic{Line: i + 1, Message: line})
			}
		}
		return diags
	}
}

func TestSource_Lines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single", "div", []string{"div"}},
		{"trailing newline", "a\nb\n", []string{"a", "b", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(tt.text)
			assert.Equal(t, tt.want, src.Lines())
			assert.Equal(t, tt.want, src.Lines())
		})
	}
}

func TestCountCheck(t *testing.T) {
	check := CountCheck(regexp.MustCompile(`x`), "found %d")

	assert.Nil(t, check(NewSource("abc")))

	diags := check(NewSource("x x\nx"))
	require.Len(t, diags, 1)
	assert.Equal(t, 3, diags[0].Count)
	assert.Equal(t, "found 3", diags[0].Message)
	assert.Zero(t, diags[0].Line)
}

func TestConfig(t *testing.T) {
	cfg := NewConfig()
	assert.False(t, cfg.IsDisabled("SE01"))

	cfg.Disable(" se01 ")
	assert.True(t, cfg.IsDisabled("SE01"))
	assert.True(t, cfg.IsDisabled("se01"))
	assert.False(t, cfg.IsDisabled("SE02"))

	var nilCfg *Config
	assert.False(t, nilCfg.IsDisabled("SE01"))
	assert.Nil(t, nilCfg.Unknown())
}

func TestConfig_Unknown(t *testing.T) {
	withCleanRegistry(t)
	Register(RuleDef{ID: "T01", Check: lineCheck("a")})

	cfg := NewConfig().Disable("T01").Disable("NOPE")
	assert.Equal(t, []string{"NOPE"}, cfg.Unknown())
}

func TestRegistry(t *testing.T) {
	withCleanRegistry(t)

	Register(RuleDef{ID: "T02", Group: "b", Check: lineCheck("b")})
	Register(RuleDef{ID: "T01", Group: "a", Check: lineCheck("a")})

	assert.Equal(t, 2, Count())

	all := GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "T01", all[0].ID)
	assert.Equal(t, "T02", all[1].ID)

	r, ok := GetByID("t02")
	require.True(t, ok)
	assert.Equal(t, "b", r.Group)

	_, ok = GetByID("T99")
	assert.False(t, ok)

	assert.Len(t, GetByGroup("a"), 1)
	assert.Empty(t, GetByGroup("zzz"))

	assert.Panics(t, func() { Register(RuleDef{ID: "T03"}) })
}

func TestRuleDef_Info(t *testing.T) {
	def := RuleDef{
		ID:          "T01",
		Name:        "test-rule",
		Group:       "syntax",
		Description: "desc",
		Severity:    core.SeverityError,
		Scope:       ScopeLine,
		Rationale:   "why",
		Fix:         "how",
		Check:       lineCheck("a"),
	}

	info := def.Info()
	assert.Equal(t, "T01", info.ID)
	assert.Equal(t, "test-rule", info.Name)
	assert.Equal(t, core.RuleTypeCheck, info.Type)
	assert.Equal(t, core.SeverityError, info.DefaultSeverity)
	assert.Equal(t, "line", info.Scope)
	assert.Equal(t, "why", info.Rationale)
	assert.Equal(t, "how", info.Fix)
}

func TestAllRules(t *testing.T) {
	withCleanRegistry(t)
	Register(RuleDef{ID: "T02", Check: lineCheck("b")})
	Register(RuleDef{ID: "T01", Check: lineCheck("a")})

	infos := AllRules()
	require.Len(t, infos, 2)
	assert.Equal(t, "T01", infos[0].ID)
	assert.Equal(t, "T02", infos[1].ID)
}

func TestScanner_StampsAndOrders(t *testing.T) {
	withCleanRegistry(t)
	Register(RuleDef{ID: "T02", Kind: "Bee", Severity: core.SeverityError, Check: lineCheck("b")})
	Register(RuleDef{ID: "T01", Kind: "Ay", Severity: core.SeverityError, Check: lineCheck("a")})

	diags := NewScanner(nil).Scan("b\na")
	require.Len(t, diags, 2)

	assert.Equal(t, "T01", diags[0].RuleID)
	assert.Equal(t, core.DiagnosticKind("Ay"), diags[0].Kind)
	assert.Equal(t, 2, diags[0].Line)

	assert.Equal(t, "T02", diags[1].RuleID)
	assert.Equal(t, core.DiagnosticKind("Bee"), diags[1].Kind)
	assert.Equal(t, 1, diags[1].Line)
	assert.Equal(t, core.SeverityError, diags[1].Severity)
}

func TestScanner_DisabledRules(t *testing.T) {
	withCleanRegistry(t)
	Register(RuleDef{ID: "T01", Check: lineCheck("a")})
	Register(RuleDef{ID: "T02", Check: lineCheck("b")})

	scanner := NewScanner(NewConfig().Disable("T01"))
	diags := scanner.Scan("a\nb")
	require.Len(t, diags, 1)
	assert.Equal(t, "T02", diags[0].RuleID)

	enabled := scanner.Enabled()
	require.Len(t, enabled, 1)
	assert.Equal(t, "T02", enabled[0].ID)
}

func TestScanner_Empty(t *testing.T) {
	withCleanRegistry(t)
	assert.Empty(t, NewScanner(nil).Scan("anything"))
}
