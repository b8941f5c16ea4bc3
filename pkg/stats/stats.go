// Package stats computes size and comment metrics for CHTL sources.
package stats

import (
	"math"
	"strings"

	"github.com/leapstack-labs/chtlcheck/pkg/core"
)

// Lines whose trimmed text starts with one of these count as comments.
var commentPrefixes = []string{"//", "/*", "--"}

// Compute derives the statistics of a text and the features matched in it.
// An empty text has one empty line.
func Compute(text string, features []core.FeatureMatch) core.FileStatistics {
	lines := strings.Split(text, "\n")

	var nonEmpty, comments int
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmpty++
		if isComment(trimmed) {
			comments++
		}
	}

	categories := make(map[string]struct{}, len(features))
	for _, f := range features {
		categories[f.Category] = struct{}{}
	}

	st := core.FileStatistics{
		TotalLines:    len(lines),
		NonEmptyLines: nonEmpty,
		CommentLines:  comments,
		CodeLines:     nonEmpty - comments,
		ByteSize:      len(text),
		KilobyteSize:  Round(float64(len(text))/1024, 2),
		FeatureCount:  len(features),
		CategoryCount: len(categories),
	}
	if st.TotalLines > 0 {
		st.CommentRatio = Round(float64(comments)/float64(st.TotalLines)*100, 1)
	}
	return st
}

func isComment(trimmed string) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Percent returns part/total*100 rounded to one decimal, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round(float64(part)/float64(total)*100, 1)
}
