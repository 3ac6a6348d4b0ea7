package domain

// Severity levels for issues. Errors gate the exit code; warnings and
// info never fail a run on their own.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue represents one finding produced by a validation rule.
type Issue struct {
	Severity      string `json:"severity"`
	Message       string `json:"message"`
	File          string `json:"file,omitempty"`
	FixSuggestion string `json:"fix_suggestion,omitempty"`
}

// RuleResult holds the outcome of a single rule invocation. Issues
// keep their discovery order.
type RuleResult struct {
	Name   string  `json:"name"`
	Passed bool    `json:"passed"`
	Issues []Issue `json:"issues,omitempty"`
}

// NewRuleResult derives Passed from the issues: a rule fails only on
// error-severity findings, so a warnings-only result still passes.
func NewRuleResult(name string, issues []Issue) *RuleResult {
	passed := true
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			passed = false
			break
		}
	}
	return &RuleResult{Name: name, Passed: passed, Issues: issues}
}

// CountSeverities tallies issues across all results. Warnings are
// derived as everything that is not an error, matching the summary
// line's arithmetic.
func CountSeverities(results []*RuleResult) (total, errors, warnings int) {
	for _, r := range results {
		for _, issue := range r.Issues {
			total++
			if issue.Severity == SeverityError {
				errors++
			}
		}
	}
	warnings = total - errors
	return total, errors, warnings
}

// ExitCode maps a result set to the process exit code: 1 when any
// issue has error severity, 0 otherwise. Startup failures (exit 2)
// never reach this point.
func ExitCode(results []*RuleResult) int {
	_, errors, _ := CountSeverities(results)
	if errors > 0 {
		return 1
	}
	return 0
}

// RunConfig is the read-only configuration for one validation run.
// It is built once at startup and shared by every rule.
type RunConfig struct {
	DotfilesDir string
	Verbose     bool
	FixMode     bool
}

// FileEntry is one file mapping declared in a dotter config `files`
// section. Target is parsed for completeness but only Source and Group
// feed the validation logic.
type FileEntry struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Group  string `json:"group"`
}
