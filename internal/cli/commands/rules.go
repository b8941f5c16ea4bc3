package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/chtlcheck/internal/cli/output"
	"github.com/leapstack-labs/chtlcheck/pkg/feature"
	"github.com/leapstack-labs/chtlcheck/pkg/report"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Category string // Filter by category
	Expected bool   // Only checklist features
	Verbose  bool   // Show patterns
	Format   string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [feature-id|label]",
		Short: "List the CHTL feature catalog",
		Long: `List every syntax feature the validator detects.

Features are grouped by category (comments, markup, templates, ...).
Features marked as expected belong to the coverage checklist used by
the report verdict. Use --verbose to see the detection patterns.

Output adapts to environment:
  - Terminal: Styled tables
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # List all features
  chtlcheck rules

  # Show one feature by ID or label
  chtlcheck rules JS03
  chtlcheck rules "Arrow operator"

  # List the styling features
  chtlcheck rules --category styling

  # List only the coverage checklist
  chtlcheck rules --expected

  # Output as JSON
  chtlcheck rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showFeature(cmd, args[0], opts)
			}
			return listFeatures(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category")
	cmd.Flags().BoolVarP(&opts.Expected, "expected", "e", false, "Only list checklist features")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show detection patterns")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, c := range feature.Default().Categories() {
			names = append(names, string(c))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// FeatureEntry is one catalog feature as shown by the rules command.
type FeatureEntry struct {
	ID       string `json:"id" yaml:"id"`
	Category string `json:"category" yaml:"category"`
	Label    string `json:"label" yaml:"label"`
	Pattern  string `json:"pattern" yaml:"pattern"`
	Expected bool   `json:"expected" yaml:"expected"`
}

// FeaturesOutput is the machine-readable output of the feature listing.
type FeaturesOutput struct {
	Features []FeatureEntry `json:"features" yaml:"features"`
	Count    struct {
		Expected int `json:"expected" yaml:"expected"`
		Total    int `json:"total" yaml:"total"`
	} `json:"count" yaml:"count"`
}

func featureEntries(cat *feature.Catalog, opts *RulesOptions) []FeatureEntry {
	checklist := report.Checklist()

	var entries []FeatureEntry
	for _, r := range cat.Rules() {
		if opts.Category != "" && !strings.EqualFold(string(r.Category), opts.Category) {
			continue
		}
		expected := slices.Contains(checklist, r.Label)
		if opts.Expected && !expected {
			continue
		}
		entries = append(entries, FeatureEntry{
			ID:       r.ID,
			Category: string(r.Category),
			Label:    r.Label,
			Pattern:  r.Source,
			Expected: expected,
		})
	}
	return entries
}

func listFeatures(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer
	entries := featureEntries(feature.Default(), opts)

	if opts.Category != "" && len(entries) == 0 {
		return fmt.Errorf("no features in category %q", opts.Category)
	}

	out := FeaturesOutput{Features: entries}
	for _, e := range entries {
		if e.Expected {
			out.Count.Expected++
		}
	}
	out.Count.Total = len(entries)

	if handled, err := r.Data(out); handled {
		return err
	}

	if r.EffectiveMode() == output.ModeText {
		r.Println("")
		r.Println(r.Styles().Header1.Render(fmt.Sprintf("CHTL Features (%d, %d expected)", out.Count.Total, out.Count.Expected)))
	} else {
		r.Println(output.FormatHeader(1, "CHTL Features"))
	}
	r.Println("")

	titleCaser := cases.Title(language.English)
	for _, group := range groupByCategory(entries) {
		r.Header(2, titleCaser.String(group[0].Category))
		r.Println("")

		tw := featureTable(r, group, opts.Verbose)
		r.RenderTable(tw)
		r.Println("")
	}

	if r.EffectiveMode() == output.ModeText {
		r.Println(r.Styles().Muted.Render("Use 'chtlcheck rules <feature-id>' for details"))
		r.Println("")
	}
	return nil
}

// groupByCategory splits entries into runs of one category, keeping order.
func groupByCategory(entries []FeatureEntry) [][]FeatureEntry {
	var groups [][]FeatureEntry
	for _, e := range entries {
		n := len(groups)
		if n == 0 || groups[n-1][0].Category != e.Category {
			groups = append(groups, nil)
			n++
		}
		groups[n-1] = append(groups[n-1], e)
	}
	return groups
}

func featureTable(r *output.Renderer, entries []FeatureEntry, verbose bool) table.Writer {
	header := []any{"ID", "Label", "Expected"}
	if verbose {
		header = append(header, "Pattern")
	}
	tw := r.NewTable(header...)

	for _, e := range entries {
		mark := ""
		if e.Expected {
			mark = "yes"
		}
		row := table.Row{e.ID, e.Label, mark}
		if verbose {
			row = append(row, "`"+e.Pattern+"`")
		}
		tw.AppendRow(row)
	}
	return tw
}

func showFeature(cmd *cobra.Command, key string, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer
	cat := feature.Default()

	rule, ok := cat.Rule(strings.ToUpper(key))
	if !ok {
		rule, ok = cat.RuleByLabel(key)
	}
	if !ok {
		return fmt.Errorf("feature %q not found", key)
	}

	entry := FeatureEntry{
		ID:       rule.ID,
		Category: string(rule.Category),
		Label:    rule.Label,
		Pattern:  rule.Source,
		Expected: slices.Contains(report.Checklist(), rule.Label),
	}

	if handled, err := r.Data(entry); handled {
		return err
	}

	expected := "no"
	if entry.Expected {
		expected = "yes"
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		r.Printf("# %s - %s\n\n", entry.ID, entry.Label)
		r.Println(output.FormatKeyValue("Category", entry.Category))
		r.Println(output.FormatKeyValue("Expected", expected))
		r.Println("")
		r.Println("## Pattern")
		r.Println("")
		r.Println("```")
		r.Println(entry.Pattern)
		r.Println("```")
		return nil
	}

	styles := r.Styles()
	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", entry.ID, entry.Label)))
	r.Println("")
	r.Printf("  %s: %s\n", styles.Bold.Render("Category"), entry.Category)
	r.Printf("  %s: %s\n", styles.Bold.Render("Expected"), expected)
	r.Println("")
	r.Println(styles.Bold.Render("Pattern"))
	r.Println(styles.Muted.Render("  " + entry.Pattern))
	r.Println("")
	return nil
}
