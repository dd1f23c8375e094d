package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fpt/internal/cli"
	"fpt/internal/discovery"
	"fpt/internal/execution"
	"fpt/internal/storage"
	"fpt/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	deps *deps
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(d *deps) *RunCommand {
	return &RunCommand{deps: d}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.deps.config
	log := rc.deps.logger(cmd)

	comparator, err := rc.deps.comparator()
	if err != nil {
		return err
	}
	st, err := storage.New(rc.deps.fs, cfg)
	if err != nil {
		return err
	}

	// Discover fixtures
	fixtures, err := discovery.NewScanner(rc.deps.fs, cfg).Scan(cfg.OutputDir)
	if err != nil {
		return err
	}
	fixtures = discovery.NewFilter().FilterByName(fixtures, cfg.Flags.Filter)

	if len(fixtures) == 0 {
		color.New(color.FgYellow).Fprintln(output(cmd), "No fixtures to run")
		return nil
	}
	log.Info("running fixtures", "count", len(fixtures), "binary", cfg.GetBinaryPath(), "policy", comparator.Policy())

	runner := execution.NewRunner(rc.deps.fs, cfg, comparator)
	pool := execution.NewWorkerPool(cfg, runner, log)
	pool.SetProgress(ui.NewProgressBar(cmd.ErrOrStderr(), len(fixtures)))

	results, duration, runErr := pool.Execute(cmd.Context(), fixtures, cfg.Flags.FailFast)
	if runErr != nil {
		log.Warn("run interrupted", "completed", len(results), "err", runErr)
	}

	// Save results
	if err := st.Save(results, duration, cfg.Processors, string(comparator.Policy())); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}
	stored, err := st.Load()
	if err != nil {
		return fmt.Errorf("failed to load run results: %w", err)
	}

	ui.NewFormatter(output(cmd)).PrintRunStats(stored)

	if runErr != nil {
		return runErr
	}
	if stored.Meta.FailedFixtures+stored.Meta.ErroredFixtures > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
