package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fpt/internal/cli"
	"fpt/internal/compare"
	"fpt/internal/config"
)

// CompareCommand handles the compare command
type CompareCommand struct {
	deps *deps
}

// NewCompareCommand creates a new CompareCommand
func NewCompareCommand(d *deps) *CompareCommand {
	return &CompareCommand{deps: d}
}

// Command builds the cobra command. It is also the root of the stand-alone
// compare binary.
func (cc *CompareCommand) Command(flags *cli.Flags, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <expected_file> <actual_output>",
		Short: "Compare program output with an expected-output file",
		Long: `Compare a literal output string with the content of an expected-output file.
Exit status is 0 on match, 1 on mismatch or unreadable file, 2 on invalid invocation.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &cli.ExitError{
					Code: compare.ExitUsage,
					Err:  fmt.Errorf("expected 2 arguments, got %d; usage: %s", len(args), cmd.UseLine()),
				}
			}
			return nil
		},
		RunE:    cc.Execute,
		PreRunE: applyFlags(cfg, flags),
	}
	cmd.Flags().StringVar(&flags.Policy, "policy", "", "Compare policy: exact or first-token")
	// flags must precede positionals so outputs like -1.5 stay literal
	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.ExitError{Code: compare.ExitUsage, Err: err}
	})
	return cmd
}

// Execute runs the command
func (cc *CompareCommand) Execute(cmd *cobra.Command, args []string) error {
	comparator, err := cc.deps.comparator()
	if err != nil {
		return &cli.ExitError{Code: compare.ExitUsage, Err: err}
	}

	expectedFile, actual := args[0], args[1]
	match, err := comparator.MatchFile(expectedFile, actual)
	if err != nil {
		stderr := color.New(color.FgRed)
		if errors.Is(err, fs.ErrNotExist) {
			stderr.Fprintf(cmd.ErrOrStderr(), "Error: Expected output file '%s' not found\n", expectedFile)
		} else {
			stderr.Fprintf(cmd.ErrOrStderr(), "Error reading expected output file: %v\n", err)
		}
		return &cli.ExitError{Code: compare.ExitMismatch}
	}

	cc.deps.logger(cmd).Debug("compared", "file", expectedFile, "policy", comparator.Policy(), "match", match)
	if !match {
		return &cli.ExitError{Code: compare.ExitMismatch}
	}
	return nil
}
