package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/chtlcheck/internal/cli/output"
	"github.com/leapstack-labs/chtlcheck/internal/validator"
	"github.com/leapstack-labs/chtlcheck/internal/watch"
	"github.com/leapstack-labs/chtlcheck/pkg/core"
	"github.com/leapstack-labs/chtlcheck/pkg/report"
)

// mainFeatureCount is how many features the console lists per valid file.
const mainFeatureCount = 3

// maxNameWidth caps the file name column in the console.
const maxNameWidth = 40

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Format string // Output format override
	Watch  bool   // Re-run on changes
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(version string) *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Validate CHTL files and write the syntax report",
		Long: `Validate CHTL source files against the feature catalog and the
disallowed-construct checks, then write a Markdown report.

Directories are searched recursively for files with the configured
extensions (default .chtl). Without arguments the inputs from
chtlcheck.yaml or CHTLCHECK_INPUTS are used.

The command exits non-zero when any file is invalid, including files
that cannot be found or read.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON/YAML: The full report, machine-readable`,
		Example: `  # Validate a directory
  chtlcheck validate ./src

  # Validate specific files without writing the report
  chtlcheck validate --no-report page.chtl layout.chtl

  # Emit the report as JSON
  chtlcheck validate ./src --format json

  # Skip a check
  chtlcheck validate ./src --disable SE01

  # Re-validate on every change
  chtlcheck validate ./src --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts, version)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch inputs and re-validate on change")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// validateRun carries what one validation pass needs.
type validateRun struct {
	cmdCtx    *CommandContext
	validator *validator.Validator
	inputs    []string
	version   string
}

func runValidate(cmd *cobra.Command, args []string, opts *ValidateOptions, version string) error {
	if opts.Format != "" && !slices.Contains(output.Modes, opts.Format) {
		return fmt.Errorf("invalid format %q (valid: %s)", opts.Format, strings.Join(output.Modes, ", "))
	}

	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg

	inputs := args
	if len(inputs) == 0 {
		inputs = cfg.Inputs
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: pass files or directories, or set inputs in chtlcheck.yaml", validator.ErrNoInputs)
	}

	v, err := validator.New(validator.Config{
		Lint:       buildLintConfig(cfg),
		Jobs:       cfg.Jobs,
		Extensions: cfg.Extensions,
		Logger:     cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	run := &validateRun{
		cmdCtx:    cmdCtx,
		validator: v,
		inputs:    inputs,
		version:   version,
	}

	if opts.Watch {
		return run.watch(cmd.Context())
	}
	return run.once(cmd.Context())
}

// once validates the inputs, writes the report and renders the outcome.
func (vr *validateRun) once(ctx context.Context) error {
	cfg := vr.cmdCtx.Cfg
	r := vr.cmdCtx.Renderer

	paths, err := vr.validator.Expand(vr.inputs)
	if err != nil {
		return err
	}

	agg, err := vr.validator.Run(ctx, paths)
	if err != nil {
		if errors.Is(err, validator.ErrNoInputs) {
			return fmt.Errorf("%w: no files with extensions %s found", err, strings.Join(cfg.Extensions, ", "))
		}
		return err
	}

	rep := report.Generate(agg, report.Options{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Version:     vr.version,
		Catalog:     vr.validator.Catalog(),
	})

	reportPath := ""
	if cfg.Report.Enabled {
		if err := writeReport(cfg.Report.Path, rep); err != nil {
			return err
		}
		reportPath = cfg.Report.Path
		vr.cmdCtx.Logger.Info("report written", "path", reportPath, "run_id", rep.RunID)
	}

	handled, err := r.Data(rep)
	if err != nil {
		return err
	}
	if !handled {
		if r.EffectiveMode() == output.ModeMarkdown {
			renderValidateMarkdown(r, rep, reportPath)
		} else {
			renderValidateText(r, rep, reportPath)
		}
	}

	if !agg.AllValid() {
		return ErrValidationFailed
	}
	return nil
}

// watch runs once, then again after every settled change until interrupted.
func (vr *validateRun) watch(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := vr.cmdCtx.Renderer
	pass := func(ctx context.Context) {
		if err := vr.once(ctx); err != nil && !errors.Is(err, ErrValidationFailed) {
			r.Error(err.Error())
		}
	}

	w, err := watch.New(watch.Config{
		Paths:      vr.inputs,
		Extensions: vr.cmdCtx.Cfg.Extensions,
		OnChange: func(ctx context.Context, changed string) {
			r.Println(r.Styles().Muted.Render("Change detected: " + changed))
			pass(ctx)
		},
		Logger: vr.cmdCtx.Logger,
	})
	if err != nil {
		return err
	}

	pass(ctx)
	r.Println(r.Styles().Muted.Render("Watching for changes (Ctrl+C to stop)"))
	return w.Run(ctx)
}

func writeReport(path string, rep *report.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	//nolint:gosec // G306: the report is a shareable document
	if err := os.WriteFile(path, []byte(rep.Markdown()), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// mainFeatures lists the first few feature labels of a file with the total.
func mainFeatures(features []core.FeatureMatch) string {
	labels := make([]string, 0, mainFeatureCount)
	for i, f := range features {
		if i == mainFeatureCount {
			break
		}
		labels = append(labels, f.Label)
	}
	return fmt.Sprintf("%s (%d total)", strings.Join(labels, ", "), len(features))
}

func fileDetails(f report.FileSection) string {
	return fmt.Sprintf("%d lines · %d features · %.2f KB",
		f.Statistics.TotalLines, f.Statistics.FeatureCount, f.Statistics.KilobyteSize)
}

// nameColumnWidth is the display width of the widest file name, capped.
func nameColumnWidth(files []report.FileSection) int {
	width := 0
	for _, f := range files {
		width = max(width, output.Width(f.Name))
	}
	return min(width, maxNameWidth)
}

// renderValidateText prints the styled console mirror of the report.
func renderValidateText(r *output.Renderer, rep *report.Report, reportPath string) {
	styles := r.Styles()
	width := nameColumnWidth(rep.Files)

	r.Println("")
	r.Println(styles.Header1.Render("CHTL Syntax Validation"))
	r.Println("")

	for _, f := range rep.Files {
		name := styles.Path.Render(output.PadRight(output.Truncate(f.Name, width), width))

		if d, ok := f.FileLevelError(); ok {
			r.Printf("  %s %s  %s\n", styles.StatusFailed.String(), name, styles.Error.Render(d.Message))
			continue
		}

		if f.Valid {
			r.Printf("  %s %s  %s\n", styles.StatusSuccess.String(), name, styles.Muted.Render(fileDetails(f)))
			if len(f.Features) > 0 {
				r.Println(styles.Muted.Render("      main features: " + mainFeatures(f.Features)))
			}
			continue
		}

		r.Printf("  %s %s  %s\n", styles.StatusFailed.String(), name, styles.Muted.Render(fileDetails(f)))
		for _, d := range f.Diagnostics {
			r.Printf("      %s  %s\n", styles.Bold.Render(d.RuleID), styles.Error.Render(d.Message))
		}
	}

	r.Println("")
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Printf("  Files:    %d/%d valid (%.1f%%)\n",
		rep.Summary.FilesValid, rep.Summary.FilesTotal, rep.Summary.SuccessRate)
	r.Printf("  Coverage: %d/%d expected features (%.1f%%)\n",
		rep.CoveredCount, rep.ExpectedCount(), rep.CoverageRate)
	r.Printf("  Verdict:  %s %s\n", rep.Verdict.Icon(), verdictStyle(r, rep.Verdict).Render(rep.Verdict.Title()))
	if reportPath != "" {
		r.Printf("  Report:   %s\n", styles.Path.Render(reportPath))
	}
	r.Println("")
}

// renderValidateMarkdown prints the console mirror as Markdown.
func renderValidateMarkdown(r *output.Renderer, rep *report.Report, reportPath string) {
	r.Println("# CHTL Syntax Validation")
	r.Println("")

	for _, f := range rep.Files {
		if d, ok := f.FileLevelError(); ok {
			r.Printf("- ❌ **%s**: %s\n", f.Name, d.Message)
			continue
		}

		icon := "✅"
		if !f.Valid {
			icon = "❌"
		}
		r.Printf("- %s **%s**: %s\n", icon, f.Name, fileDetails(f))
		if f.Valid && len(f.Features) > 0 {
			r.Printf("  - main features: %s\n", mainFeatures(f.Features))
		}
		for _, d := range f.Diagnostics {
			r.Printf("  - `%s` %s\n", d.RuleID, d.Message)
		}
	}
	r.Println("")

	r.Println("## Summary")
	r.Println("")
	r.Println(output.FormatKeyValue("Files", fmt.Sprintf("%d/%d valid (%.1f%%)",
		rep.Summary.FilesValid, rep.Summary.FilesTotal, rep.Summary.SuccessRate)))
	r.Println(output.FormatKeyValue("Coverage", fmt.Sprintf("%d/%d expected features (%.1f%%)",
		rep.CoveredCount, rep.ExpectedCount(), rep.CoverageRate)))
	r.Println(output.FormatKeyValue("Verdict", rep.Verdict.Icon()+" "+rep.Verdict.Title()))
	if reportPath != "" {
		r.Println(output.FormatKeyValue("Report", "`"+reportPath+"`"))
	}
}

func verdictStyle(r *output.Renderer, v report.Verdict) lipgloss.Style {
	switch v {
	case report.VerdictFullyCompliant:
		return r.Styles().Success
	case report.VerdictMostlyPassing:
		return r.Styles().Warning
	default:
		return r.Styles().Error
	}
}
