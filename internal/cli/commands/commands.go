package commands

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"fpt/internal/cli"
	"fpt/internal/compare"
	"fpt/internal/config"
	"fpt/internal/logger"
)

// Commands holds all CLI commands
type Commands struct {
	Extract  *ExtractCommand
	Compare  *CompareCommand
	List     *ListCommand
	Run      *RunCommand
	Failures *FailuresCommand
	Migrate  *MigrateCommand
}

// deps are shared by every command. Anything that depends on flags is built
// after flag parsing.
type deps struct {
	config *config.Config
	fs     afero.Fs
}

func (d *deps) logger(cmd *cobra.Command) logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.Level(d.config.LogLevel),
		Output: cmd.ErrOrStderr(),
	})
}

func (d *deps) comparator() (*compare.Comparator, error) {
	policy, err := compare.ParsePolicy(d.config.Policy)
	if err != nil {
		return nil, err
	}
	return compare.NewComparator(d.fs, policy), nil
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, fs afero.Fs) *Commands {
	d := &deps{config: cfg, fs: fs}

	return &Commands{
		Extract:  NewExtractCommand(d),
		Compare:  NewCompareCommand(d),
		List:     NewListCommand(d),
		Run:      NewRunCommand(d),
		Failures: NewFailuresCommand(d),
		Migrate:  NewMigrateCommand(d),
	}
}

func applyFlags(cfg *config.Config, flags *cli.Flags) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// Extract command
	extractCmd := &cobra.Command{
		Use:     "extract",
		Short:   "Generate fixture directories from the test corpus",
		Long:    "Parse every corpus file matching the source pattern and write one {op}_{type}_{n} fixture directory per valid line",
		Args:    cobra.NoArgs,
		RunE:    c.Extract.Execute,
		PreRunE: applyFlags(cfg, flags),
	}
	extractCmd.Flags().StringVar(&flags.Pattern, "pattern", "", fmt.Sprintf("Glob selecting corpus files (default %q)", config.DefaultSourcePattern))
	extractCmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", fmt.Sprintf("Fixture output root (default %q)", config.DefaultOutputDir))
	extractCmd.Flags().BoolVar(&flags.Clean, "clean", false, "Remove the output root before extracting")
	rootCmd.AddCommand(extractCmd)

	rootCmd.AddCommand(c.Compare.Command(flags, cfg))

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List generated fixtures",
		Long:    "Scan the fixture output root and list fixtures, marking those that failed in the last run",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags(cfg, flags),
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter fixtures by name pattern (e.g. 'plus_*' or 'div')")
	listCmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Fixture output root")
	rootCmd.AddCommand(listCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the program under test against every fixture",
		Long:    "Feed each fixture input to the program, compare its output with the expected output and store the results",
		Args:    cobra.NoArgs,
		RunE:    c.Run.Execute,
		PreRunE: applyFlags(cfg, flags),
	}
	runCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, fmt.Sprintf("Number of processors to use (default %d)", config.DefaultProcessors))
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter fixtures by name pattern (e.g. 'plus_*' or 'div')")
	runCmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Fixture output root")
	runCmd.Flags().StringVarP(&flags.BinaryPath, "binary", "b", "", fmt.Sprintf("Program under test (default %q)", config.DefaultBinaryPath))
	runCmd.Flags().StringVar(&flags.Policy, "policy", "", "Compare policy: exact or first-token")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, fmt.Sprintf("Per-fixture timeout (default %s)", config.DefaultTimeout))
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failing fixture")
	rootCmd.AddCommand(runCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View fixture failures interactively",
		Long:    "Display failed fixtures from the last run in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags(cfg, flags),
	}
	rootCmd.AddCommand(failuresCmd)

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:     "migrate",
		Short:   "Create the MySQL results schema",
		Long:    "Create the results database and tables used when FPT_RESULTS_BACKEND=mysql",
		Args:    cobra.NoArgs,
		RunE:    c.Migrate.Execute,
		PreRunE: applyFlags(cfg, flags),
	}
	rootCmd.AddCommand(migrateCmd)
}

// output returns the command's stdout writer
func output(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
