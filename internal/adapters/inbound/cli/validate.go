package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/dotcheck/dotcheck/internal/adapters/outbound/dotter"
	"github.com/dotcheck/dotcheck/internal/adapters/outbound/gitrepo"
	"github.com/dotcheck/dotcheck/internal/adapters/outbound/tui"
	"github.com/dotcheck/dotcheck/internal/application"
	"github.com/dotcheck/dotcheck/internal/domain"
)

// resolveDotfilesDir picks the repository root: DOTFILES_DIR if set,
// ~/.dotfiles otherwise. The directory must exist; anything else is a
// startup failure.
func resolveDotfilesDir() (string, error) {
	dir := os.Getenv("DOTFILES_DIR")
	if dir == "" {
		dir = filepath.Join(xdg.Home, ".dotfiles")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving dotfiles directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("dotfiles directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("dotfiles directory %s is not a directory", abs)
	}

	return abs, nil
}

// runValidation wires the adapters, streams each rule's result as it
// completes, and returns the final exit code.
func runValidation(w io.Writer, dir string, verbose, fixMode bool) int {
	cfg := domain.RunConfig{
		DotfilesDir: dir,
		Verbose:     verbose,
		FixMode:     fixMode,
	}

	fmt.Fprint(w, tui.RenderHeader())

	validator := application.NewValidator(cfg, gitrepo.Open(dir), dotter.New())
	results := validator.Run(func(r *domain.RuleResult) {
		fmt.Fprint(w, tui.RenderResult(r))
	})

	return tui.Summarize(w, results, cfg)
}
