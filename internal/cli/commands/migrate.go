package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fpt/internal/storage"
)

// MigrateCommand handles the migrate command
type MigrateCommand struct {
	deps *deps
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(d *deps) *MigrateCommand {
	return &MigrateCommand{deps: d}
}

// Execute runs the command
func (mc *MigrateCommand) Execute(cmd *cobra.Command, args []string) error {
	db := mc.deps.config.Database
	if err := storage.NewMySQLStorage(mc.deps.config).EnsureSchema(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	color.New(color.FgGreen).Fprintf(output(cmd), "✓ Results schema ready in %s on %s:%s\n", db.Name, db.Host, db.Port)
	return nil
}
