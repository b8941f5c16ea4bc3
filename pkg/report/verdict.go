package report

// Verdict is the overall outcome of a run.
type Verdict string

// Verdicts, from best to worst.
const (
	VerdictFullyCompliant Verdict = "fully_compliant"
	VerdictMostlyPassing  Verdict = "mostly_passing"
	VerdictFailing        Verdict = "failing"
)

// Coverage and success thresholds, in percent.
const (
	FullCoverageThreshold  = 95
	MostlyPassingThreshold = 80
)

// Decide picks the verdict from file and checklist counts. It works on the
// integer counts so the thresholds are exact.
func Decide(filesValid, filesTotal, covered, expected int) Verdict {
	if filesTotal == 0 {
		return VerdictFailing
	}
	if filesValid == filesTotal && expected > 0 && covered*100 >= FullCoverageThreshold*expected {
		return VerdictFullyCompliant
	}
	if filesValid*100 >= MostlyPassingThreshold*filesTotal {
		return VerdictMostlyPassing
	}
	return VerdictFailing
}

// Title returns the headline shown for the verdict.
func (v Verdict) Title() string {
	switch v {
	case VerdictFullyCompliant:
		return "Validation passed"
	case VerdictMostlyPassing:
		return "Validation mostly passed"
	default:
		return "Validation failed"
	}
}

// Summary returns the explanatory paragraph shown under the headline.
func (v Verdict) Summary() string {
	switch v {
	case VerdictFullyCompliant:
		return "Every file passed the syntax checks and the expected feature coverage is excellent.\n" +
			"The sources follow the CHTL grammar without deviations or private extensions."
	case VerdictMostlyPassing:
		return "Most files passed, but there is room for improvement.\n" +
			"Review the failing files and fix their syntax problems."
	default:
		return "Several files have syntax problems that need careful review.\n" +
			"Consult the CHTL grammar reference to correct them."
	}
}

// Icon returns the emoji marker for the verdict.
func (v Verdict) Icon() string {
	switch v {
	case VerdictFullyCompliant:
		return "✅"
	case VerdictMostlyPassing:
		return "⚠️"
	default:
		return "❌"
	}
}
