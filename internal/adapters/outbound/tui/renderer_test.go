package tui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcheck/dotcheck/internal/adapters/outbound/tui"
	"github.com/dotcheck/dotcheck/internal/domain"
)

func TestRenderResult_Passed(t *testing.T) {
	out := tui.RenderResult(domain.NewRuleResult("No broken symlinks", nil))
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "No broken symlinks")
}

func TestRenderResult_FailedWithIssues(t *testing.T) {
	r := domain.NewRuleResult("Dotter files exist and are tracked", []domain.Issue{
		{
			Severity:      domain.SeverityError,
			Message:       "File ignored by git: .zshrc",
			File:          ".zshrc",
			FixSuggestion: "Add to .gitignore: !.zshrc",
		},
		{
			Severity:      domain.SeverityWarning,
			Message:       "File not tracked: .vimrc",
			File:          ".vimrc",
			FixSuggestion: "Run: git add .vimrc",
		},
	})

	out := tui.RenderResult(r)
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "⚠")
	assert.Contains(t, out, "File ignored by git: .zshrc (.zshrc)")
	assert.Contains(t, out, "Add to .gitignore: !.zshrc")
	assert.Contains(t, out, "Run: git add .vimrc")
}

func TestRenderResult_IssueWithoutFileHasNoSuffix(t *testing.T) {
	r := domain.NewRuleResult("rule", []domain.Issue{
		{Severity: domain.SeverityError, Message: "Internal rule failure: boom"},
	})
	out := tui.RenderResult(r)
	assert.Contains(t, out, "Internal rule failure: boom")
	assert.NotContains(t, out, "()")
}

func TestSummarize_AllClear(t *testing.T) {
	var buf bytes.Buffer
	results := []*domain.RuleResult{domain.NewRuleResult("a", nil)}

	code := tui.Summarize(&buf, results, domain.RunConfig{})
	assert.Equal(t, 0, code)
	assert.Contains(t, buf.String(), "All validations passed!")
}

func TestSummarize_WarningsOnly(t *testing.T) {
	var buf bytes.Buffer
	results := []*domain.RuleResult{
		domain.NewRuleResult("a", []domain.Issue{
			{Severity: domain.SeverityWarning, Message: "w"},
			{Severity: domain.SeverityWarning, Message: "w2"},
		}),
	}

	code := tui.Summarize(&buf, results, domain.RunConfig{})
	assert.Equal(t, 0, code, "warnings never fail the run")
	assert.Contains(t, buf.String(), "2 warning(s)")
}

func TestSummarize_ErrorsFail(t *testing.T) {
	var buf bytes.Buffer
	results := []*domain.RuleResult{
		domain.NewRuleResult("a", []domain.Issue{
			{Severity: domain.SeverityError, Message: "e"},
			{Severity: domain.SeverityWarning, Message: "w"},
		}),
	}

	code := tui.Summarize(&buf, results, domain.RunConfig{})
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "Validation failed: 2 issue(s) found (1 errors, 1 warnings)")
}

func TestSummarize_FixModeBatchesSuggestions(t *testing.T) {
	var buf bytes.Buffer
	results := []*domain.RuleResult{
		domain.NewRuleResult("tracked", []domain.Issue{
			{
				Severity:      domain.SeverityError,
				Message:       "File ignored by git: .zshrc",
				File:          ".zshrc",
				FixSuggestion: "Add to .gitignore: !.zshrc",
			},
			{
				Severity:      domain.SeverityWarning,
				Message:       "File not tracked: .vimrc",
				File:          ".vimrc",
				FixSuggestion: "Run: git add .vimrc",
			},
			{
				Severity:      domain.SeverityWarning,
				Message:       "File not tracked: .gitconfig",
				File:          ".gitconfig",
				FixSuggestion: "Run: git add .gitconfig",
			},
		}),
	}

	code := tui.Summarize(&buf, results, domain.RunConfig{FixMode: true})
	require.Equal(t, 1, code)

	out := buf.String()
	assert.Contains(t, out, "Fix suggestions:")
	assert.Contains(t, out, "Add these lines to .gitignore:")
	assert.Contains(t, out, "!.zshrc")
	assert.Contains(t, out, "git add .vimrc .gitconfig")
}

func TestSummarize_WithoutFixModeNoBatches(t *testing.T) {
	var buf bytes.Buffer
	results := []*domain.RuleResult{
		domain.NewRuleResult("tracked", []domain.Issue{
			{
				Severity:      domain.SeverityError,
				Message:       "File ignored by git: .zshrc",
				File:          ".zshrc",
				FixSuggestion: "Add to .gitignore: !.zshrc",
			},
		}),
	}

	code := tui.Summarize(&buf, results, domain.RunConfig{FixMode: false})
	assert.Equal(t, 1, code)
	assert.NotContains(t, buf.String(), "Fix suggestions:")
}
