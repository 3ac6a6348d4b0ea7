// Package cli wires the validation pipeline behind a cobra command.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcheck/dotcheck/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

// exitError carries a process exit code through cobra's error path.
// Code 2 is reserved for startup failures that prevent any rule from
// running.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func newRootCmd() *cobra.Command {
	var (
		fixMode bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "dotcheck",
		Short: "Validate a dotfiles repository",
		Long: `dotcheck runs read-only consistency checks over a dotter-managed
dotfiles repository: declared files exist and are tracked by git, no
tracked path is a broken symlink, and tracked TOML, JSON and YAML
files parse.

The repository root comes from the DOTFILES_DIR environment variable,
defaulting to ~/.dotfiles. dotcheck never modifies the repository.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbose, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDotfilesDir()
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			code := runValidation(cmd.OutOrStdout(), dir, verbose, fixMode)
			if code != 0 {
				return &exitError{code: code}
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show diagnostic output while rules run")
	cmd.Flags().BoolVarP(&fixMode, "fix", "f", false, "Show batched fix suggestions in the summary")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newMCPCmd())

	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintln(os.Stderr, ee.err)
			}
			return ee.code
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	return 0
}
