package feature

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/chtlcheck/pkg/core"
)

func TestWiden(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare word", `\w+`, `[\p{L}\p{N}_]+`},
		{"inside class", `[\w./]+`, `[\p{L}\p{N}_./]+`},
		{"escaped brackets in class", `[@\[\]\w\s,]+;`, `[@\[\]\p{L}\p{N}_\s,]+;`},
		{"after escaped bracket", `\[Template\]\s*@Style\s+\w+`, `\[Template\]\s*@Style\s+[\p{L}\p{N}_]+`},
		{"escaped backslash", `\\w`, `\\w`},
		{"no word class", `->listen\s*\(`, `->listen\s*\(`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, widen(tt.in))
		})
	}
}

func TestCompile_Invalid(t *testing.T) {
	_, err := Compile(`(unclosed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(unclosed")

	assert.Panics(t, func() { MustCompile(`[`) })
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	assert.Same(t, cat, Default(), "default catalog is built once")
	assert.Equal(t, 53, cat.Len())
	assert.Equal(t, []Category{
		CategoryComments, CategoryMarkup, CategoryTemplates, CategoryCustom,
		CategoryOrigin, CategoryImport, CategoryNamespace, CategoryConfiguration,
		CategoryConstraint, CategoryStyling, CategoryScripting,
	}, cat.Categories())

	perCategory := map[Category]int{
		CategoryComments: 3, CategoryMarkup: 4, CategoryTemplates: 5, CategoryCustom: 7,
		CategoryOrigin: 4, CategoryImport: 6, CategoryNamespace: 2, CategoryConfiguration: 5,
		CategoryConstraint: 1, CategoryStyling: 7, CategoryScripting: 9,
	}
	for c, n := range perCategory {
		assert.Len(t, cat.ByCategory(c), n, "category %s", c)
	}

	r, ok := cat.Rule("JS03")
	require.True(t, ok)
	assert.Equal(t, "Arrow operator", r.Label)

	r, ok = cat.RuleByLabel("Text node")
	require.True(t, ok)
	assert.Equal(t, "MK01", r.ID)

	_, ok = cat.Rule("ZZ99")
	assert.False(t, ok)
}

func TestCatalog_RulesReturnsCopy(t *testing.T) {
	cat := Default()
	rules := cat.Rules()
	rules[0].Label = "mutated"

	first, _ := cat.Rule(rules[0].ID)
	assert.Equal(t, "Single-line comment", first.Label)
	assert.Equal(t, "Single-line comment", cat.Labels()[0])
}

func TestNewCatalog_Errors(t *testing.T) {
	re := regexp.MustCompile(`x`)

	tests := []struct {
		name    string
		rules   []FeatureRule
		wantErr string
	}{
		{
			name:    "duplicate id",
			rules:   []FeatureRule{{ID: "A1", Label: "a", Pattern: re}, {ID: "A1", Label: "b", Pattern: re}},
			wantErr: "duplicate id",
		},
		{
			name:    "duplicate label",
			rules:   []FeatureRule{{ID: "A1", Label: "a", Pattern: re}, {ID: "A2", Label: "a", Pattern: re}},
			wantErr: "duplicate label",
		},
		{
			name:    "missing pattern",
			rules:   []FeatureRule{{ID: "A1", Label: "a"}},
			wantErr: "missing pattern",
		},
		{
			name:    "missing label",
			rules:   []FeatureRule{{ID: "A1", Pattern: re}},
			wantErr: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.rules...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRuleCounts(t *testing.T) {
	tests := []struct {
		id   string
		text string
		want int
	}{
		{"CM01", "// a\nx\n// b", 2},
		{"CM02", "/* a\nb */ x /* c */", 2},
		{"CM03", "-- generator\n", 1},
		{"MK01", "text { hello } text{", 2},
		{"MK02", "color: red;", 1},
		{"MK03", "id = box;", 1},
		{"MK04", "div { span { } }", 2},
		{"TP01", "[Template] @Style Theme", 1},
		{"TP01", "[Template] @Style 主题", 1},
		{"TP05", "inherit @Style Base;", 1},
		{"CU04", "delete color, width;", 1},
		{"CU06", "div[0] li[12]", 2},
		{"CU07", "insert after div[0] {", 1},
		{"OR01", "[Origin] @Html\n[Origin] @Html page", 2},
		{"IM01", "[Import] @Html from a/b.html as page", 1},
		{"IM05", "[Import] @CJmod from ext/chtholly", 1},
		{"IM06", "[Import] [Custom] @Element Box", 1},
		{"NS01", "[Namespace] space", 1},
		{"NS02", "from space.ui.buttons", 1},
		{"CF04", "[Name] [Name]", 2},
		{"CN01", "except span, [Custom] @Element Box;", 1},
		{"ST02", ".box .item-2", 2},
		{"ST03", "#main", 1},
		{"ST04", "&:hover", 1},
		{"ST05", "&::before", 1},
		{"ST07", "Theme(color = red)", 1},
		{"JS02", "{{.box}}->listen(", 1},
		{"JS03", "a->b->c", 2},
		{"JS04", "{{btn}}->listen({", 1},
		{"JS05", "{{list}}->delegate({", 1},
		{"JS06", "const a = animate({", 1},
		{"JS07", "vir handler = listen({", 1},
		{"JS08", "iNeverAway({", 1},
		{"JS09", `"click<primary>"`, 1},
		{"JS09", `"plain"`, 0},
	}

	cat := Default()
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, ok := cat.Rule(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, r.Count(tt.text))
		})
	}
}

func TestExtract_CommentAndElement(t *testing.T) {
	ext := NewExtractor(nil)
	got := ext.Extract("// a comment\ndiv { }")

	assert.Equal(t, []core.FeatureMatch{
		{RuleID: "CM01", Label: "Single-line comment", Category: "comments", Count: 1},
		{RuleID: "MK04", Label: "HTML element", Category: "markup", Count: 1},
	}, got)
}

func TestExtract_PreservesCatalogOrder(t *testing.T) {
	text := `script { {{box}}->listen({ click: fn }); }
style { .box { color: red; } }
// trailing comment`
	got := NewExtractor(Default()).Extract(text)
	require.NotEmpty(t, got)

	index := make(map[string]int)
	for i, r := range Default().Rules() {
		index[r.ID] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, index[got[i-1].RuleID], index[got[i].RuleID])
	}
	for _, m := range got {
		assert.GreaterOrEqual(t, m.Count, 1)
	}
}

func TestExtract_EmptyText(t *testing.T) {
	assert.Empty(t, NewExtractor(nil).Extract(""))
}

func TestExtract_Idempotent(t *testing.T) {
	text := "[Template] @Style Base { color: red; }\ndiv { style { @Style Base; } }"
	ext := NewExtractor(nil)
	assert.Equal(t, ext.Extract(text), ext.Extract(text))
}

func TestExtract_MonotonicCounting(t *testing.T) {
	a := "div { // one\n}"
	b := "span { } // two -> x .cls"
	joined := a + "\n" + b

	for _, r := range Default().Rules() {
		assert.GreaterOrEqual(t, r.Count(joined), r.Count(a), "rule %s", r.ID)
	}

	for _, id := range []string{"CM01", "MK04", "JS03", "ST02"} {
		r, _ := Default().Rule(id)
		assert.Equal(t, r.Count(a)+r.Count(b), r.Count(joined), "rule %s", id)
	}
}
