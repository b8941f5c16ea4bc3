package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/lint"
	"github.com/leapstack-labs/chtlcheck/pkg/lint/rules"
)

func TestRegistered(t *testing.T) {
	all := lint.GetAll()
	require.Len(t, all, 4)

	ids := make([]string, 0, len(all))
	for _, r := range all {
		ids = append(ids, r.ID)
		assert.Equal(t, core.SeverityError, r.Severity, r.ID)
		assert.NotEmpty(t, r.Description, r.ID)
		assert.NotEmpty(t, r.BadExample, r.ID)
	}
	assert.Equal(t, []string{"SE01", "SE02", "SE03", "SE04"}, ids)
}

func TestBadExamplesAreFlagged(t *testing.T) {
	for _, r := range lint.GetAll() {
		t.Run(r.ID, func(t *testing.T) {
			assert.NotEmpty(t, r.Check(lint.NewSource(r.BadExample)))
			assert.Empty(t, r.Check(lint.NewSource(r.GoodExample)))
		})
	}
}

func TestMixedOperator(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines []int
	}{
		{"mixed", "color: red = blue;", []int{1}},
		{"colon only", "color: red;", nil},
		{"equals only", "id = box;", nil},
		{"line comment", "// class: a = b;", nil},
		{"indented block comment", "   /* class: a = b; */", nil},
		{"generator comment", "-- class: a = b;", nil},
		{"url excluded", "  href: http://x.io?a=b;", nil},
		{"transform excluded", "transform: rotate(a=b);", nil},
		{"setTimeout excluded", "setTimeout(() => { a: b = c; })", nil},
		{"missing terminator", "class: a = b", nil},
		{
			name:      "several lines",
			text:      "div {\n  class: a = b;\n  style: x = y;\n}",
			wantLines: []int{2, 3},
		},
		{"unicode names", "类名: 值 = 其他;", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := rules.MixedOperator.Check(lint.NewSource(tt.text))
			var lines []int
			for _, d := range diags {
				lines = append(lines, d.Line)
				assert.Contains(t, d.Message, "mixed colon and equals assignment")
			}
			assert.Equal(t, tt.wantLines, lines)
		})
	}
}

func TestMixedOperator_MessageCarriesTrimmedLine(t *testing.T) {
	diags := rules.MixedOperator.Check(lint.NewSource("\n\t class: value = another;  "))
	require.Len(t, diags, 1)
	assert.Equal(t, "line 2: mixed colon and equals assignment: class: value = another;", diags[0].Message)
}

func TestCountingChecks(t *testing.T) {
	tests := []struct {
		name  string
		rule  lint.RuleDef
		text  string
		count int
	}{
		{"chained pair", rules.ChainedInheritance, "inherit @Style A, @Style B;", 1},
		{"chained triple", rules.ChainedInheritance, "inherit @Style A, @Style B, @Style C;", 1},
		{"chained twice", rules.ChainedInheritance, "inherit @Style A, @Style B;\ninherit @Style C,@Style D;", 2},
		{"single inherit", rules.ChainedInheritance, "inherit @Style A;", 0},
		{"except style", rules.ExceptTarget, "except @Style;", 1},
		{"except list", rules.ExceptTarget, "except @Var, span;\nexcept @JavaScript;", 2},
		{"except qualified", rules.ExceptTarget, "except [Template] @Style;", 0},
		{"except html", rules.ExceptTarget, "except @Html;", 0},
		{"delete class", rules.DeleteSelector, "delete .box;", 1},
		{"delete id list", rules.DeleteSelector, "delete #main, color;", 1},
		{"delete twice", rules.DeleteSelector, "delete .a; delete #b;", 2},
		{"delete property", rules.DeleteSelector, "delete color;", 0},
		{"delete unicode", rules.DeleteSelector, "delete .盒子;", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := tt.rule.Check(lint.NewSource(tt.text))
			if tt.count == 0 {
				assert.Empty(t, diags)
				return
			}
			require.Len(t, diags, 1)
			assert.Equal(t, tt.count, diags[0].Count)
			assert.Contains(t, diags[0].Message, "occurrence(s)")
		})
	}
}

func TestScanner_MixedAndChained(t *testing.T) {
	text := "class: value = another;\ninherit @Style A, @Style B;"

	diags := lint.NewScanner(nil).Scan(text)
	require.Len(t, diags, 2)

	assert.Equal(t, core.KindMixedOperatorDeclaration, diags[0].Kind)
	assert.Equal(t, "SE01", diags[0].RuleID)
	assert.Equal(t, 1, diags[0].Line)

	assert.Equal(t, core.KindChainedInheritance, diags[1].Kind)
	assert.Equal(t, "SE02", diags[1].RuleID)
	assert.Equal(t, 1, diags[1].Count)
	assert.Equal(t, "unsupported chained inheritance: 1 occurrence(s)", diags[1].Message)
}

func TestScanner_ChecksAccumulate(t *testing.T) {
	text := `div {
    class: a = b;
    style {
        inherit @Style A, @Style B;
        delete .box;
    }
    except @Var;
}`
	diags := lint.NewScanner(nil).Scan(text)

	kinds := make([]core.DiagnosticKind, 0, len(diags))
	for _, d := range diags {
		kinds = append(kinds, d.Kind)
		assert.Equal(t, core.SeverityError, d.Severity)
	}
	assert.Equal(t, []core.DiagnosticKind{
		core.KindMixedOperatorDeclaration,
		core.KindChainedInheritance,
		core.KindInvalidExceptConstraintTarget,
		core.KindDisallowedDeleteSelectorTarget,
	}, kinds)
}

func TestScanner_Disabled(t *testing.T) {
	text := "class: value = another;\ninherit @Style A, @Style B;"
	diags := lint.NewScanner(lint.NewConfig().Disable("SE02")).Scan(text)
	require.Len(t, diags, 1)
	assert.Equal(t, "SE01", diags[0].RuleID)
}

func TestScanner_CleanText(t *testing.T) {
	text := `[Template] @Style Base { color: red; }
div {
    id = main;
    style { @Style Base; .box { width: 10px; } }
}`
	assert.Empty(t, lint.NewScanner(nil).Scan(text))
}
