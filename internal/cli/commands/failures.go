package commands

import (
	"github.com/spf13/cobra"

	"fpt/internal/storage"
	"fpt/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	deps *deps
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(d *deps) *FailuresCommand {
	return &FailuresCommand{deps: d}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	st, err := storage.New(fc.deps.fs, fc.deps.config)
	if err != nil {
		return err
	}
	results, err := st.Load()
	if err != nil {
		return err
	}

	return ui.NewFailureViewer(st).View(results)
}
