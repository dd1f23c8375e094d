package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fpt/internal/discovery"
	"fpt/internal/storage"
	"fpt/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	deps *deps
}

// NewListCommand creates a new ListCommand
func NewListCommand(d *deps) *ListCommand {
	return &ListCommand{deps: d}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.deps.config

	fixtures, err := discovery.NewScanner(lc.deps.fs, cfg).Scan(cfg.OutputDir)
	if err != nil {
		return err
	}
	fixtures = discovery.NewFilter().FilterByName(fixtures, cfg.Flags.Filter)

	if len(fixtures) == 0 {
		color.New(color.FgYellow).Fprintln(output(cmd), "No fixtures found")
		return nil
	}

	// the last run is optional, without it nothing is marked
	failed := make(map[string]struct{})
	if st, err := storage.New(lc.deps.fs, cfg); err == nil {
		if last, err := st.Load(); err == nil {
			for _, f := range last.Details {
				failed[f.Fixture] = struct{}{}
			}
		}
	}

	ui.NewFormatter(output(cmd)).PrintFixtureList(fixtures, failed)
	return nil
}
