package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const timestampLayout = "2006-01-02 15:04:05"

var numbers = message.NewPrinter(language.English)

// Markdown renders the report as a Markdown document.
func (r *Report) Markdown() string {
	var b strings.Builder
	ts := r.GeneratedAt.Format(timestampLayout)

	b.WriteString("# CHTL Syntax Validation Report\n\n")

	b.WriteString("## 📊 Overview\n\n")
	fmt.Fprintf(&b, "**Generated**: %s  \n", ts)
	if r.RunID != "" {
		fmt.Fprintf(&b, "**Run ID**: %s  \n", r.RunID)
	}
	b.WriteString("**Scope**: every construct of the CHTL grammar reference\n\n")

	b.WriteString("### 🎯 Statistics\n\n")
	fmt.Fprintf(&b, "- **Files**: %d\n", r.Summary.FilesTotal)
	fmt.Fprintf(&b, "- **Passed**: %d\n", r.Summary.FilesValid)
	fmt.Fprintf(&b, "- **Success rate**: %.1f%%\n", r.Summary.SuccessRate)
	numbers.Fprintf(&b, "- **Total lines**: %d\n", r.Summary.TotalLines)
	fmt.Fprintf(&b, "- **Features found**: %d\n", r.Summary.TotalFeatures)
	fmt.Fprintf(&b, "- **Total size**: %.1fKB\n\n", r.Summary.TotalKilobytes)

	b.WriteString("## 🧪 Feature Coverage\n\n")
	b.WriteString("Expected constructs of the CHTL grammar:\n\n")
	for _, item := range r.Expected {
		if item.Present {
			fmt.Fprintf(&b, "- ✅ **%s**: used by %d file(s)\n", item.Label, item.FilesUsing)
		} else {
			fmt.Fprintf(&b, "- ❌ **%s**: not exercised\n", item.Label)
		}
	}

	if len(r.Additional) > 0 {
		b.WriteString("\n### 📋 Additional Features Observed\n\n")
		for _, item := range r.Additional {
			fmt.Fprintf(&b, "- ✅ **%s**: used by %d file(s)\n", item.Label, item.FilesUsing)
		}
	}

	b.WriteString("\n## 📁 File Details\n\n")
	for _, f := range r.Files {
		writeFileSection(&b, f)
	}

	b.WriteString("## 🎯 Coverage Analysis\n\n")
	fmt.Fprintf(&b, "- **Expected features**: %d\n", r.ExpectedCount())
	fmt.Fprintf(&b, "- **Covered features**: %d\n", r.CoveredCount)
	fmt.Fprintf(&b, "- **Coverage rate**: %.1f%%\n\n", r.CoverageRate)

	b.WriteString("## 🏆 Verdict\n\n")
	fmt.Fprintf(&b, "%s **%s**\n\n", r.Verdict.Icon(), r.Verdict.Title())
	b.WriteString(r.Verdict.Summary())
	b.WriteString("\n")

	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "**Generated at**: %s  \n", ts)
	if r.Version != "" {
		fmt.Fprintf(&b, "**Validator**: chtlcheck %s  \n", r.Version)
	} else {
		b.WriteString("**Validator**: chtlcheck  \n")
	}

	return b.String()
}

func writeFileSection(b *strings.Builder, f FileSection) {
	status := "✅ PASS"
	if !f.Valid {
		status = "❌ FAIL"
	}
	fmt.Fprintf(b, "### %s %s\n\n", f.Name, status)

	if f.Valid {
		st := f.Statistics
		b.WriteString("**Statistics**:\n")
		fmt.Fprintf(b, "- Total lines: %d\n", st.TotalLines)
		fmt.Fprintf(b, "- Code lines: %d\n", st.CodeLines)
		fmt.Fprintf(b, "- Comment lines: %d\n", st.CommentLines)
		fmt.Fprintf(b, "- Comment ratio: %.1f%%\n", st.CommentRatio)
		fmt.Fprintf(b, "- Size: %.2fKB\n", st.KilobyteSize)
		fmt.Fprintf(b, "- Features: %d\n\n", st.FeatureCount)

		if len(f.Features) > 0 {
			b.WriteString("**Features**:\n")
			for _, m := range f.Features {
				fmt.Fprintf(b, "- %s: %d\n", m.Label, m.Count)
			}
			b.WriteString("\n")
		}
		return
	}

	b.WriteString("**Errors**:\n")
	for _, d := range f.Diagnostics {
		fmt.Fprintf(b, "- %s: %s\n", d.Kind, d.Message)
	}
	b.WriteString("\n")
}
