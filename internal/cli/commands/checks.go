package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/chtlcheck/internal/cli/output"
	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/lint"
	_ "github.com/leapstack-labs/chtlcheck/pkg/lint/rules" // register syntax checks
)

// ChecksOptions holds options for the checks command.
type ChecksOptions struct {
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewChecksCommand creates the checks command.
func NewChecksCommand() *cobra.Command {
	opts := &ChecksOptions{}
	cmd := &cobra.Command{
		Use:   "checks [check-id]",
		Short: "List the disallowed-construct checks",
		Long: `List the syntax checks that make a file invalid.

Every check reports errors: a file with any finding fails validation.
Checks can be disabled with --disable or lint.disabled in chtlcheck.yaml.
Use --verbose to see the rationale of each check.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: Machine-readable format`,
		Example: `  # List all checks
  chtlcheck checks

  # Show details for a specific check
  chtlcheck checks SE01

  # Show full documentation
  chtlcheck checks -V

  # Output as JSON
  chtlcheck checks --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showCheck(cmd, args[0], opts)
			}
			return listChecks(cmd, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

// ChecksOutput is the machine-readable output of the checks listing.
type ChecksOutput struct {
	Checks []core.RuleInfo `json:"checks" yaml:"checks"`
	Count  int             `json:"count" yaml:"count"`
}

func listChecks(cmd *cobra.Command, opts *ChecksOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	// AllRules is sorted by ID; every shipped check is in one group.
	checks := lint.AllRules()

	if handled, err := r.Data(ChecksOutput{Checks: checks, Count: len(checks)}); handled {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		return listChecksMarkdown(r, checks, opts.Verbose)
	}
	return listChecksText(r, checks, opts.Verbose)
}

// listChecksText outputs checks in styled text format.
func listChecksText(r *output.Renderer, checks []core.RuleInfo, verbose bool) error {
	styles := r.Styles()
	titleCaser := cases.Title(language.English)

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Syntax Checks (%d)", len(checks))))
	r.Println("")

	currentGroup := ""
	for _, check := range checks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("  " + titleCaser.String(currentGroup)))
		}

		severityStyle := getSeverityStyle(styles, check.DefaultSeverity)
		r.Printf("    %s  %s - %s  %s\n",
			styles.Muted.Render(check.ID),
			check.Name,
			severityStyle.Render(check.DefaultSeverity.String()),
			styles.Muted.Render(scopeLabel(check.Scope)),
		)

		if verbose {
			r.Println(styles.Muted.Render("        " + check.Description))
			if check.Rationale != "" {
				r.Println(styles.Muted.Render("        Why: " + output.Truncate(oneLine(check.Rationale), 80)))
			}
			r.Println("")
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render("Use 'chtlcheck checks <check-id>' for detailed documentation"))
	r.Println("")

	return nil
}

// listChecksMarkdown outputs checks in markdown format.
func listChecksMarkdown(r *output.Renderer, checks []core.RuleInfo, verbose bool) error {
	r.Println("# Syntax Checks")
	r.Println("")

	titleCaser := cases.Title(language.English)
	currentGroup := ""
	for _, check := range checks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println("## " + titleCaser.String(currentGroup))
			r.Println("")
		}

		r.Printf("- **%s** - %s (`%s`, %s)\n", check.ID, check.Name, check.DefaultSeverity.String(), scopeLabel(check.Scope))
		if verbose {
			r.Println("  " + check.Description)
			if check.Rationale != "" {
				r.Println("  > " + oneLine(check.Rationale))
			}
		}
	}

	r.Println("")
	return nil
}

func showCheck(cmd *cobra.Command, checkID string, opts *ChecksOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	def, ok := lint.GetByID(checkID)
	if !ok {
		return fmt.Errorf("check %q not found", checkID)
	}
	check := def.Info()

	if handled, err := r.Data(check); handled {
		return err
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		return showCheckMarkdown(r, &check)
	}
	return showCheckText(r, &check)
}

// showCheckText displays detailed check info in text format.
func showCheckText(r *output.Renderer, check *core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", check.ID, check.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), check.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), check.DefaultSeverity.String())
	r.Printf("  %s: %s\n", styles.Bold.Render("Scope"), scopeLabel(check.Scope))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + check.Description)
	r.Println("")

	if check.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + check.Rationale)
		r.Println("")
	}

	if check.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(check.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if check.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(check.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if check.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + check.Fix)
		r.Println("")
	}

	return nil
}

// showCheckMarkdown displays detailed check info in markdown format.
func showCheckMarkdown(r *output.Renderer, check *core.RuleInfo) error {
	r.Printf("# %s - %s\n\n", check.ID, check.Name)
	r.Printf("**Group:** %s | **Severity:** `%s` | **Scope:** %s\n\n",
		check.Group, check.DefaultSeverity.String(), scopeLabel(check.Scope))
	r.Println(check.Description)
	r.Println("")

	if check.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(check.Rationale)
		r.Println("")
	}

	if check.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```chtl")
		r.Println(check.BadExample)
		r.Println("```")
		r.Println("")
	}

	if check.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```chtl")
		r.Println(check.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if check.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(check.Fix)
		r.Println("")
	}

	return nil
}

// Helper functions

func getSeverityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarning:
		return styles.Warning
	case core.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

// scopeLabel describes how often a check reports.
func scopeLabel(scope string) string {
	switch lint.Scope(scope) {
	case lint.ScopeLine:
		return "per line"
	case lint.ScopeText:
		return "once per file"
	default:
		return "unscoped"
	}
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
