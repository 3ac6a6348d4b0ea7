// Package tui renders validation results for the terminal and maps a
// result set to the process exit code.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcheck/dotcheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

const (
	glyphPass = "✓"
	glyphFail = "✗"
	glyphWarn = "⚠"
	glyphInfo = "ℹ"
)

// RenderHeader returns the banner printed before the rules run.
func RenderHeader() string {
	return titleStyle.Render("Validating dotfiles repository...") + "\n\n"
}

// RenderResult renders one rule's outcome: a pass/fail glyph with the
// rule name, one line per issue, and an indented fix suggestion where
// present.
func RenderResult(r *domain.RuleResult) string {
	var b strings.Builder

	if r.Passed {
		b.WriteString(passStyle.Render(glyphPass + " " + r.Name))
	} else {
		b.WriteString(failStyle.Render(glyphFail + " " + r.Name))
	}
	b.WriteString("\n")

	for _, issue := range r.Issues {
		line := issue.Message
		if issue.File != "" {
			line += fmt.Sprintf(" (%s)", issue.File)
		}

		switch issue.Severity {
		case domain.SeverityError:
			b.WriteString("  " + failStyle.Render(glyphFail+" "+line))
		case domain.SeverityWarning:
			b.WriteString("  " + warnStyle.Render(glyphWarn+" "+line))
		default:
			b.WriteString("  " + infoStyle.Render(glyphInfo+" "+line))
		}
		b.WriteString("\n")

		if issue.FixSuggestion != "" {
			b.WriteString("    " + dimStyle.Render(issue.FixSuggestion) + "\n")
		}
	}

	return b.String()
}

// Summarize prints the final tally and returns the process exit code:
// 1 when any error-severity issue exists, 0 otherwise. Warnings alone
// never fail the run.
func Summarize(w io.Writer, results []*domain.RuleResult, cfg domain.RunConfig) int {
	total, errors, warnings := domain.CountSeverities(results)

	fmt.Fprintln(w)
	fmt.Fprintln(w, separatorLine)

	switch {
	case errors > 0:
		fmt.Fprintln(w, failStyle.Render(fmt.Sprintf(
			"%s Validation failed: %d issue(s) found (%d errors, %d warnings)",
			glyphFail, total, errors, warnings)))
		if cfg.FixMode {
			renderFixes(w, results)
		}
	case warnings > 0:
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(
			"%s Validation completed with %d warning(s)", glyphWarn, warnings)))
	default:
		fmt.Fprintln(w, passStyle.Render(glyphPass+" All validations passed!"))
	}

	return domain.ExitCode(results)
}

// renderFixes batches remediation commands: one block of .gitignore
// negation lines, and one git add command covering every untracked
// file. Entries appear once per occurrence; rules already deduplicate
// per source.
func renderFixes(w io.Writer, results []*domain.RuleResult) {
	var ignored, untracked []string
	for _, r := range results {
		for _, issue := range r.Issues {
			if issue.File == "" {
				continue
			}
			switch {
			case strings.Contains(issue.FixSuggestion, ".gitignore"):
				ignored = append(ignored, issue.File)
			case strings.Contains(issue.FixSuggestion, "git add"):
				untracked = append(untracked, issue.File)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Fix suggestions:"))

	if len(ignored) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, infoStyle.Render(glyphInfo+" Add these lines to .gitignore:"))
		for _, file := range ignored {
			fmt.Fprintln(w, passStyle.Render("  !"+file))
		}
	}

	if len(untracked) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, infoStyle.Render(glyphInfo+" Run this command to track files:"))
		fmt.Fprintln(w, passStyle.Render("  git add "+strings.Join(untracked, " ")))
	}
}
